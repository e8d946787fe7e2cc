/*
Package generator builds random profile pictures.

A picture is made of three layers: a solid background color, a border and an
icon. The border and icon are mask images picked at random from their
directories, each stamped onto the picture in a color picked at random from
its own color set.
*/
package generator

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"

	"github.com/bodgit/profileimage/picture"
)

// ErrNoMasks is returned when there are no border or icon masks to choose
// from.
var ErrNoMasks = errors.New("generator: no mask images available")

// Source is the randomness a Generator draws from. *rand.Rand satisfies it
// but is not safe for concurrent use.
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Generator creates profile pictures. It is safe for concurrent use provided
// its Source is.
type Generator struct {
	background []int
	midground  []int
	foreground []int
	borders    []string
	icons      []string
	rand       Source
	logger     *log.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithRand sets the source of randomness. The default is the process-wide
// math/rand source.
func WithRand(r Source) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithMasks uses the given mask files rather than scanning the directories
// in the Config. An empty list falls back to its directory.
func WithMasks(borders, icons []string) Option {
	return func(g *Generator) {
		g.borders = append([]string(nil), borders...)
		g.icons = append([]string(nil), icons...)
	}
}

// New returns a Generator for cfg. Unless WithMasks is used, the border and
// icon directories are scanned once here.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		background: append([]int(nil), cfg.Background...),
		midground:  append([]int(nil), cfg.Midground...),
		foreground: append([]int(nil), cfg.Foreground...),
		rand:       globalSource{},
		logger:     log.New(ioutil.Discard, "", 0),
	}
	for _, o := range opts {
		o(g)
	}

	var err error
	if g.borders == nil {
		if g.borders, err = scan(cfg.Borders, "border"); err != nil {
			return nil, err
		}
	}
	if g.icons == nil {
		if g.icons, err = scan(cfg.Icons, "icon"); err != nil {
			return nil, err
		}
	}
	if len(g.borders) == 0 || len(g.icons) == 0 {
		return nil, ErrNoMasks
	}

	g.logger.Printf("Using %d border and %d icon masks\n", len(g.borders), len(g.icons))

	return g, nil
}

func scan(dir, kind string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: no %s directory configured", ErrNoMasks, kind)
	}
	files, err := listMasks(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s directory %s is empty", ErrNoMasks, kind, dir)
	}
	return files, nil
}

func (g *Generator) pickColor(set []int) int {
	return set[g.rand.Intn(len(set))]
}

func (g *Generator) pickMask(files []string) string {
	return files[g.rand.Intn(len(files))]
}

func (g *Generator) stamp(img *picture.Image, file string, c int) error {
	m, err := LoadMask(file)
	if err != nil {
		return err
	}
	return ApplyMask(img, m, c)
}

// Generate returns a new random profile picture. The picture is either
// complete or an error is returned.
func (g *Generator) Generate() (*picture.Image, error) {
	if len(g.borders) == 0 || len(g.icons) == 0 {
		return nil, ErrNoMasks
	}

	img := picture.New()

	background := g.pickColor(g.background)
	if err := img.Fill(background); err != nil {
		return nil, err
	}

	border := g.pickMask(g.borders)
	midground := g.pickColor(g.midground)
	if err := g.stamp(img, border, midground); err != nil {
		return nil, err
	}

	icon := g.pickMask(g.icons)
	foreground := g.pickColor(g.foreground)
	if err := g.stamp(img, icon, foreground); err != nil {
		return nil, err
	}

	g.logger.Printf("Generated picture from \"%s\" (%d) and \"%s\" (%d) on %d\n", border, midground, icon, foreground, background)

	return img, nil
}

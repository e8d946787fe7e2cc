package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/bodgit/profileimage"
	"github.com/bodgit/profileimage/generator"
	"github.com/bodgit/profileimage/picture"
	"github.com/bodgit/profileimage/store"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const defaultDB = "profiles.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newGenerator(c *cli.Context, logger *log.Logger) (*generator.Generator, error) {
	cfg := generator.DefaultConfig()
	if file := c.String("config"); file != "" {
		var err error
		if cfg, err = generator.LoadConfig(file); err != nil {
			return nil, err
		}
	}
	if c.IsSet("borders") || cfg.Borders == "" {
		cfg.Borders = c.String("borders")
	}
	if c.IsSet("icons") || cfg.Icons == "" {
		cfg.Icons = c.String("icons")
	}
	return generator.New(cfg, generator.WithLogger(logger))
}

func newProfileImage(c *cli.Context) (*profileimage.ProfileImage, error) {
	logger := newLogger(c)
	gen, err := newGenerator(c, logger)
	if err != nil {
		return nil, err
	}
	return profileimage.New(gen, logger), nil
}

func parsePicture(s string, isInt bool) (*picture.Image, error) {
	if !isInt {
		return picture.FromBase64(s)
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("%w: \"%s\" is not an integer", picture.ErrFormat, s)
	}
	return picture.FromInt(n)
}

func writePicture(w io.Writer, img *picture.Image, format string) error {
	var err error
	switch format {
	case "json":
		err = json.NewEncoder(w).Encode(struct {
			Image *picture.Image `json:"image"`
		}{img})
	case "base64":
		_, err = fmt.Fprintln(w, img.Base64())
	case "int":
		_, err = fmt.Fprintln(w, img.Int().String())
	case "text":
		_, err = fmt.Fprint(w, img.String())
	default:
		err = fmt.Errorf("unknown format \"%s\"", format)
	}
	return err
}

func savePNG(file string, img *picture.Image, scale int) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := profileimage.WritePNG(f, img, picture.DefaultPalette, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// output writes img to the file named by --output as a PNG, or to stdout in
// the chosen --format.
func output(c *cli.Context, img *picture.Image) error {
	if file := c.String("output"); file != "" {
		return savePNG(file, img, c.Int("scale"))
	}
	return writePicture(c.App.Writer, img, c.String("format"))
}

func outputFlags(format string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   format,
			Usage:   "output format: json, base64, int or text",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write a PNG to `FILE` instead",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "PNG pixel size",
		},
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "profileimage"
	app.Usage = "Pixel-art profile picture utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"PROFILEIMAGE_CONFIG"},
			Usage:   "path to YAML generator configuration",
		},
		&cli.StringFlag{
			Name:    "borders",
			EnvVars: []string{"PROFILEIMAGE_BORDERS"},
			Value:   filepath.Join(cwd, "borders"),
			Usage:   "directory of border masks",
		},
		&cli.StringFlag{
			Name:    "icons",
			EnvVars: []string{"PROFILEIMAGE_ICONS"},
			Value:   filepath.Join(cwd, "icons"),
			Usage:   "directory of icon masks",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PROFILEIMAGE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Generate a random profile picture",
			Description: "",
			Flags:       outputFlags("json"),
			Action: func(c *cli.Context) error {
				p, err := newProfileImage(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				img, err := p.Generate()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := output(c, img); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "render",
			Usage:       "Render an encoded profile picture",
			Description: "",
			ArgsUsage:   "PICTURE",
			Flags: append(outputFlags("text"), &cli.BoolFlag{
				Name:  "int",
				Usage: "PICTURE is an integer rather than base64",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				img, err := parsePicture(c.Args().First(), c.Bool("int"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := output(c, img); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Convert an image into a profile picture",
			Description: "The image is scaled to 16x16 and mapped onto the default palette.",
			ArgsUsage:   "FILE",
			Flags: append(outputFlags("base64"), &cli.BoolFlag{
				Name:  "dither",
				Usage: "apply Floyd-Steinberg dithering",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c)

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				m, kind, err := image.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				logger.Printf("Decoded %s image %v\n", kind, m.Bounds())

				img, _, err := picture.Convert(m, picture.DefaultPalette, c.Bool("dither"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := output(c, img); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "save",
			Usage:       "Store a profile picture",
			Description: "Without --picture a random profile picture is generated.",
			ArgsUsage:   "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "picture",
					Usage: "base64 encoded picture",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				var (
					img *picture.Image
					err error
				)
				if s := c.String("picture"); s != "" {
					if img, err = picture.FromBase64(s); err != nil {
						return cli.NewExitError(err, 1)
					}
				} else {
					p, err := newProfileImage(c)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					if img, err = p.Generate(); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				s, err := store.Open(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer s.Close()

				if err := s.Put(c.Args().First(), img); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "show",
			Usage:       "Show a stored profile picture",
			Description: "",
			ArgsUsage:   "NAME",
			Flags:       outputFlags("text"),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				s, err := store.Open(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer s.Close()

				img, err := s.Get(c.Args().First())
				if err != nil {
					if errors.Is(err, store.ErrNotFound) {
						return cli.NewExitError(fmt.Sprintf("no picture stored for \"%s\"", c.Args().First()), 1)
					}
					return cli.NewExitError(err, 1)
				}

				if err := output(c, img); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Generate many profile pictures as PNG files",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   100,
					Usage:   "number of pictures",
				},
				&cli.IntFlag{
					Name:  "workers",
					Value: 10,
					Usage: "number of concurrent workers",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 8,
					Usage: "PNG pixel size",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p, err := newProfileImage(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := p.Batch(c.Args().First(), c.Int("count"), c.Int("workers"), picture.DefaultPalette, c.Int("scale")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

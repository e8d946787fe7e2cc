package picture

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a color index or coordinate is out of
	// range.
	ErrValidation = errors.New("picture: invalid value")

	// ErrBounds is returned when a coordinate lies outside the picture. It
	// also matches ErrValidation.
	ErrBounds = fmt.Errorf("%w: coordinate out of bounds", ErrValidation)

	// ErrFormat is returned for malformed serialized input.
	ErrFormat = errors.New("picture: malformed data")
)

func validColor(c int) error {
	if c < 0 || c >= PaletteSize {
		return fmt.Errorf("%w: color %d must be between 0 and %d", ErrValidation, c, PaletteSize-1)
	}
	return nil
}

func validPoint(x, y int) error {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return fmt.Errorf("%w: (%d, %d)", ErrBounds, x, y)
	}
	return nil
}

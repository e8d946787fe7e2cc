package picture

import (
	"errors"
	"fmt"
	"io"
)

var (
	errNotEnough = fmt.Errorf("%w: not enough image data", ErrFormat)
	errTooMuch   = fmt.Errorf("%w: too much image data", ErrFormat)
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r     io.Reader
	image *Image
	tmp   [Size]byte
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			return err
		}
		return errNotEnough
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	d.image = new(Image)
	d.image.unpack(d.tmp[:])

	return nil
}

// Decode reads a profile picture from r. r must hold exactly 128 bytes.
func Decode(r io.Reader) (*Image, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.image, nil
}

package bitmap

import (
	"errors"
	"image"
	"io"
)

var (
	errNotEnough = errors.New("bitmap: not enough image data")
	errTooMuch   = errors.New("bitmap: too much image data")
)

type decoder struct {
	r io.Reader

	w   int
	h   int
	img *RGB565
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	var hdr [2]byte
	if err := readFull(d.r, hdr[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}
	d.h = int(hdr[0])
	d.w = int(hdr[1])

	if configOnly {
		return nil
	}

	d.img = NewRGB565(image.Rect(0, 0, d.w, d.h))
	if len(d.img.Pix) > 0 {
		if err := readFull(d.r, d.img.Pix); err != nil {
			if err != io.ErrUnexpectedEOF {
				return err
			}
			return errNotEnough
		}
	}

	var tmp [1]byte
	switch n, err := d.r.Read(tmp[:]); {
	case n != 0:
		return errTooMuch
	case err != io.EOF && err != nil:
		return err
	}

	return nil
}

// Decode reads a packed asset from r and returns it as an image.Image. The
// stream must contain exactly one asset; trailing bytes are an error.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.img, nil
}

// DecodeConfig returns the dimensions of a packed asset after reading only
// its header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Model,
		Width:      d.w,
		Height:     d.h,
	}, nil
}

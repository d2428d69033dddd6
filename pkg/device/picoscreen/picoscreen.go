// Package picoscreen drives a 240x240 pico panel over USB CDC serial.
//
// A draw is a 4 byte window [x0, y0, x1, y1] (end exclusive) followed by
// (x1-x0)*(y1-y0) big-endian RGB565 pixels. The firmware derives the payload
// length from the window, so nothing else is framed.
package picoscreen

import (
	"image"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"picopack/pkg/bitmap"
	"picopack/pkg/proto"
)

// Side is the panel edge length in pixels.
const Side = 240

func New(serial *proto.Serial, logger *zap.Logger) (proto.Screen, error) {
	dev := NewFrom(serial, logger)
	return dev, serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    115200,
		ReadTimeout: 10 * time.Millisecond,
	})
}

// NewFrom wraps an already open port.
func NewFrom(port io.ReadWriteCloser, logger *zap.Logger) *Pico {
	return &Pico{
		port:   port,
		logger: logger,
		width:  Side,
		height: Side,
	}
}

type Pico struct {
	port   io.ReadWriteCloser
	logger *zap.Logger
	width  int
	height int
}

func (p *Pico) Draw(x int, y int, img image.Image) error {
	size := img.Bounds().Size()

	if x < 0 || y < 0 || size.X+x > p.width || size.Y+y > p.height {
		return errors.New("window overflow")
	}

	if err := p.sendWindow(x, y, x+size.X, y+size.Y); err != nil {
		return err
	}

	return p.sendBytes(bitmap.Pixels(img))
}

func (p *Pico) Clear() error {
	if err := p.sendWindow(0, 0, p.width, p.height); err != nil {
		return err
	}

	return p.sendBytes(make([]byte, p.width*p.height*2))
}

func (p *Pico) Close() error {
	return p.port.Close()
}

package virtual

import (
	"image"
	"image/draw"
)

// NewCanvas is an in-memory screen that accumulates draws, for tests and
// offline rendering.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	_ = c.Clear()
	return c
}

type Canvas struct {
	img *image.RGBA
}

func (c *Canvas) Draw(x int, y int, img image.Image) error {
	size := img.Bounds().Size()
	rect := image.Rect(x, y, x+size.X, y+size.Y)
	draw.Draw(c.img, rect, img, img.Bounds().Min, draw.Src)
	return nil
}

func (c *Canvas) Clear() error {
	draw.Draw(c.img, c.img.Bounds(), image.Black, image.Point{}, draw.Src)
	return nil
}

func (c *Canvas) Close() error {
	return nil
}

// Image returns the backing frame.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

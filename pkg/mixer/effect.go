package mixer

import "image"

// Write is one positioned chunk of a frame.
type Write struct {
	At  image.Point
	Img image.Image
}

type Image interface {
	image.Image
	SubImage(image.Rectangle) image.Image
}

// Effect slices a frame into the writes that repaint it.
type Effect interface {
	Name() string
	Process(img Image) (<-chan Write, error)
}

package mixer

import (
	"image"

	"github.com/samber/lo"

	"picopack/pkg/proto"
)

func NewDrawer(dst proto.Screen, opts ...Option) *Drawer {
	d := &Drawer{
		dev: dst,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

type Drawer struct {
	dev  proto.Screen
	effs []Effect
}

// Canvas pushes one frame to the device, through a randomly picked effect
// when any are configured.
func (d *Drawer) Canvas(img image.Image) error {
	eff := lo.Sample(d.effs)
	if eff != nil {
		w, err := eff.Process(img.(Image))
		if err != nil {
			return err
		}

		for w2 := range w {
			if err := d.dev.Draw(w2.At.X, w2.At.Y, w2.Img); err != nil {
				return err
			}
		}
		return nil
	}

	return d.dev.Draw(0, 0, img)
}

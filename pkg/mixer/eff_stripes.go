package mixer

import (
	"image"
	"math/rand"
	"time"

	"github.com/samber/lo"
)

// EffectStripes repaints the frame as count full width bands in random
// order.
func EffectStripes(count int) Effect {
	return &stripes{count: count}
}

type stripes struct {
	count int
}

func (e *stripes) Name() string {
	return "stripes"
}

func (e *stripes) Process(img Image) (<-chan Write, error) {
	wc := make(chan Write)

	go func() {
		r := img.Bounds()

		count := e.count
		if count < 1 {
			count = 1
		}
		step := (r.Dy() + count - 1) / count

		var ws []Write
		for y := r.Min.Y; y < r.Max.Y; y += step {
			ws = append(ws, Write{
				At:  image.Pt(r.Min.X, y),
				Img: img.SubImage(image.Rect(r.Min.X, y, r.Max.X, y+step)),
			})
		}

		rand.Seed(time.Now().UnixNano())
		lo.Shuffle(ws)

		for _, w2 := range ws {
			wc <- w2
		}

		close(wc)
	}()

	return wc, nil
}

package packer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelStats(t *testing.T) {
	m := testImage(3, 1,
		color.NRGBA{R: 0, G: 0xff, A: 0xff},
		color.NRGBA{R: 128, A: 0xff},
		color.NRGBA{R: 0xff, A: 0xff},
	)

	st := channelStats(m)
	assert.Equal(t, 0.0, st.RedMin)
	assert.Equal(t, 1.0, st.RedMax)
}

func TestChannelStatsUniform(t *testing.T) {
	m := testImage(2, 2,
		color.NRGBA{R: 51, A: 0xff},
		color.NRGBA{R: 51, A: 0xff},
		color.NRGBA{R: 51, A: 0xff},
		color.NRGBA{R: 51, A: 0xff},
	)

	st := channelStats(m)
	assert.Equal(t, 0.2, st.RedMin)
	assert.Equal(t, st.RedMin, st.RedMax)
}

func TestChannelStatsEmpty(t *testing.T) {
	st := channelStats(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, Stats{}, st)
}

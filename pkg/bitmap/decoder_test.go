package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	src := nrgba(3, 2,
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{G: 255, A: 255},
		color.NRGBA{B: 255, A: 255},
		color.NRGBA{R: 128, G: 64, B: 32, A: 255},
		color.NRGBA{R: 1, G: 2, B: 3, A: 255},
		color.NRGBA{R: 250, G: 250, B: 250, A: 255},
	)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))
	encoded := append([]byte(nil), buf.Bytes()...)

	m, err := Decode(&buf)
	require.NoError(t, err)

	p, ok := m.(*RGB565)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 3, 2), p.Bounds())

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			n := src.NRGBAAt(x, y)
			assert.Equal(t, Pack(n.R, n.G, n.B), p.RGB565At(x, y))
		}
	}

	// Re-encoding a decoded asset reproduces the original bytes.
	var again bytes.Buffer
	require.NoError(t, Encode(&again, p))
	assert.Equal(t, encoded, again.Bytes())
}

func TestDecodeConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 7, 5))))

	cfg, err := DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Width)
	assert.Equal(t, 5, cfg.Height)
}

func TestDecodeEmpty(t *testing.T) {
	m, err := Decode(bytes.NewReader([]byte{0x00, 0x00}))
	require.NoError(t, err)
	assert.True(t, m.Bounds().Empty())
}

func TestDecodeNotEnoughData(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0x02, 0x02, 0xff}))
	assert.EqualError(t, err, "bitmap: not enough image data")

	_, err = Decode(bytes.NewReader([]byte{0x02}))
	assert.EqualError(t, err, "bitmap: not enough image data")
}

func TestDecodeTooMuchData(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0x01, 0x01, 0xff, 0xff, 0x00}))
	assert.EqualError(t, err, "bitmap: too much image data")
}

package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nrgba(w, h int, colors ...color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, colors[i])
			i++
		}
	}
	return m
}

func TestEncodeSinglePixel(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, nrgba(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0xff, 0xff}, buf.Bytes())

	buf.Reset()
	err = Encode(&buf, nrgba(1, 1, color.NRGBA{A: 255}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0x00, 0x00}, buf.Bytes())

	buf.Reset()
	err = Encode(&buf, nrgba(1, 1, color.NRGBA{R: 128, G: 64, B: 32, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0x79, 0xe3}, buf.Bytes())
}

func TestEncodeHeaderAndLength(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 2))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))

	// Height byte first, then width, then 2 bytes per pixel.
	assert.Equal(t, 2+2*3*2, buf.Len())
	assert.Equal(t, uint8(2), buf.Bytes()[0])
	assert.Equal(t, uint8(3), buf.Bytes()[1])
}

func TestEncodeRowMajorBigEndian(t *testing.T) {
	m := nrgba(2, 2,
		color.NRGBA{R: 255, A: 255}, // (0,0) red
		color.NRGBA{G: 255, A: 255}, // (1,0) green
		color.NRGBA{B: 255, A: 255}, // (0,1) blue
		color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // (1,1) white
	)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))

	want := []byte{
		0x02, 0x02,
		0xf8, 0x00, // red, high byte first
		0x07, 0xe0, // green
		0x00, 0x1f, // blue
		0xff, 0xff, // white
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestEncodeDropsAlpha(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, nrgba(1, 1, color.NRGBA{R: 255, A: 0}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0xf8, 0x00}, buf.Bytes())
}

func TestEncodeTooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 256, 1)))
	require.Error(t, err)

	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 256, sizeErr.Width)
	assert.Equal(t, 1, sizeErr.Height)
	assert.Equal(t, 0, buf.Len())
}

func TestEncodeSubImage(t *testing.T) {
	m := nrgba(2, 2,
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{G: 255, A: 255},
		color.NRGBA{B: 255, A: 255},
		color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	)
	sub := m.SubImage(image.Rect(1, 1, 2, 2))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sub))
	assert.Equal(t, []byte{0x01, 0x01, 0xff, 0xff}, buf.Bytes())
}

// A wrapper hiding the concrete type forces the generic encode path.
type opaque struct{ image.Image }

func TestPixelsFastPathMatchesGeneric(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 50), G: uint8(y * 80), B: uint8(x*y + 17), A: 255,
			})
		}
	}

	assert.Equal(t, Pixels(opaque{m}), Pixels(m))
}

func TestPixelsRGB565Copy(t *testing.T) {
	p := NewRGB565(image.Rect(0, 0, 2, 1))
	p.SetRGB565(0, 0, 0xbeef)
	p.SetRGB565(1, 0, 0x1234)

	assert.Equal(t, []byte{0xbe, 0xef, 0x12, 0x34}, Pixels(p))
}

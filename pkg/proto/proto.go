package proto

import (
	"image"
)

// Screen is anything that can show a bitmap: a panel on the end of a serial
// link, an rpc proxy in front of one, or an in-memory canvas.
type Screen interface {
	Draw(x int, y int, img image.Image) error
	Clear() error

	Close() error
}

package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/rpc"

	"picopack/pkg/proto"
)

func New(addr string) (proto.Screen, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

// Draw ships the image as PNG so the wire stays lossless and small.
func (c *Client) Draw(x int, y int, image image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image); err != nil {
		return err
	}

	return c.rpc.Call("Service.Draw", &DrawRequest{
		X:     x,
		Y:     y,
		Image: buf.Bytes(),
	}, nil)
}

func (c *Client) Clear() error {
	return c.rpc.Call("Service.Command", "clear", nil)
}

func (c *Client) Close() error {
	return c.rpc.Close()
}

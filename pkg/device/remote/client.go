package remote

import (
	"image"
	"net/rpc"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"framefx/pkg/proto"
)

func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial display relay %s", addr)
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) call(method string, args interface{}) error {
	return c.rpc.Call(serviceName+"."+method, args, &EmptyResponse{})
}

func (c *Client) Startup() error {
	return c.call("Command", "startup")
}

func (c *Client) Shutdown() error {
	return c.call("Command", "shutdown")
}

func (c *Client) Restart() error {
	return c.call("Command", "restart")
}

func (c *Client) SetLight(light uint8) error {
	return c.call("SetLight", light)
}

func (c *Client) SetMirror(mirror bool) error {
	return c.call("SetMirror", mirror)
}

func (c *Client) SetRotate(landscape bool, invert bool) error {
	return c.call("SetRotate", SetRotateRequest{
		Landscape: landscape,
		Invert:    invert,
	})
}

func (c *Client) DrawBitmap(posX uint16, posY uint16, image image.Image) error {
	n := imaging.Clone(image)

	return c.call("DrawBitmap", &DrawBitmapRequest{
		PosX:   posX,
		PosY:   posY,
		Width:  n.Rect.Dx(),
		Height: n.Rect.Dy(),
		Pix:    n.Pix,
	})
}

func (c *Client) Close() error {
	return c.rpc.Close()
}

package source

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodeFrames decodes a still image, or every frame of an animated GIF
// composed the way a viewer would show it.
func decodeFrames(bs []byte) ([]image.Image, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}

	if format == "gif" {
		g, err := gif.DecodeAll(bytes.NewReader(bs))
		if err != nil {
			return nil, errors.Wrap(err, "decode gif")
		}
		return composeGIF(g), nil
	}

	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", format)
	}
	return []image.Image{img}, nil
}

func composeGIF(g *gif.GIF) []image.Image {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewNRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))

	for i, p := range g.Image {
		var restore *image.NRGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			restore = image.NewNRGBA(bounds)
			copy(restore.Pix, canvas.Pix)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)

		frame := image.NewNRGBA(bounds)
		copy(frame.Pix, canvas.Pix)
		frames = append(frames, frame)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = restore
		}
	}

	return frames
}

package mixer

import "image"

type Write struct {
	At  image.Point
	Img image.Image
}

type Image interface {
	image.Image
	SubImage(image.Rectangle) image.Image
}

// Transfer decides how a finished frame reaches the display: in one bitmap
// or as a stream of partial writes.
type Transfer interface {
	Name() string
	Process(img Image) (<-chan Write, error)
}

// Presenter is implemented by displays that want to know when a whole frame
// has been written.
type Presenter interface {
	Present() error
}

func Full() Transfer {
	return full{}
}

type full struct{}

func (full) Name() string {
	return "full"
}

func (full) Process(img Image) (<-chan Write, error) {
	wc := make(chan Write, 1)
	wc <- Write{At: img.Bounds().Min, Img: img}
	close(wc)
	return wc, nil
}

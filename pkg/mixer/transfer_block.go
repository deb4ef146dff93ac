package mixer

import (
	"image"
	"math/rand"

	"github.com/samber/lo"
)

// Blocks splits the frame into size x size writes sent in random order, so
// the panel repaints in a scattered mosaic. A size below 1 picks a random
// size in [8,40) per frame.
func Blocks(size int) Transfer {
	return &block{
		size: size,
		rand: size < 1,
	}
}

type block struct {
	size int
	rand bool
}

func (e *block) Name() string {
	return "block"
}

func (e *block) Process(img Image) (<-chan Write, error) {
	r := img.Bounds()

	size := e.size
	if e.rand {
		size = rand.Intn(32) + 8
	}

	var ws []Write
	for y := r.Min.Y; y < r.Max.Y; y += size {
		for x := r.Min.X; x < r.Max.X; x += size {
			rect := image.Rect(x, y, x+size, y+size).Intersect(r)
			ws = append(ws, Write{
				At:  rect.Min,
				Img: img.SubImage(rect),
			})
		}
	}

	ws = lo.Shuffle(ws)

	wc := make(chan Write)
	go func() {
		defer close(wc)
		for _, w := range ws {
			wc <- w
		}
	}()

	return wc, nil
}

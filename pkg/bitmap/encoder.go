package bitmap

import (
	"image"
)

// Encode converts src to the panel's RGB565 little-endian layout, row-major
// from the top-left of its bounds. Transparent pixels are composed over black.
func Encode(src image.Image) []byte {
	b := src.Bounds()
	dst := make([]byte, 2*b.Dx()*b.Dy())

	switch img := src.(type) {
	case *image.NRGBA:
		encodeBytes(dst, img.Pix, img.Stride, b.Dx(), b.Dy(), img.PixOffset(b.Min.X, b.Min.Y), false)
	case *image.RGBA:
		encodeBytes(dst, img.Pix, img.Stride, b.Dx(), b.Dy(), img.PixOffset(b.Min.X, b.Min.Y), true)
	default:
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := src.At(x, y).RGBA()
				put(dst[i:], pack(uint8(r>>8), uint8(g>>8), uint8(bl>>8)))
				i += 2
			}
		}
	}

	return dst
}

func encodeBytes(dst, pix []byte, stride, w, h, start int, premultiplied bool) {
	i := 0
	for y := 0; y < h; y++ {
		row := pix[start+y*stride : start+y*stride+4*w]
		for x := 0; x < len(row); x += 4 {
			r, g, b, a := row[x], row[x+1], row[x+2], row[x+3]
			if !premultiplied && a != 0xff {
				r, g, b = over(r, a), over(g, a), over(b, a)
			}
			put(dst[i:], pack(r, g, b))
			i += 2
		}
	}
}

// over composes a straight-alpha channel onto black.
func over(c, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 0xff)
}

// put stores the low byte first, the order the panel firmware reads.
func put(dst []byte, c RGB565) {
	dst[0] = byte(c)
	dst[1] = byte(c >> 8)
}

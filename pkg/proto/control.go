package proto

import (
	"image"
)

// Control is a display that frames are pushed to.
type Control interface {
	Startup() error
	Shutdown() error
	Restart() error

	SetLight(light uint8) error
	SetMirror(mirror bool) error
	SetRotate(landscape bool, invert bool) error

	// DrawBitmap writes img with its top-left corner at (posX, posY).
	DrawBitmap(posX uint16, posY uint16, image image.Image) error
}

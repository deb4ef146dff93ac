package inch35

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"framefx/pkg/bitmap"
	"framefx/pkg/proto"
)

const (
	Restart    = 101
	Shutdown   = 108
	Startup    = 109
	SetLight   = 110
	SetRotate  = 121
	SetMirror  = 122
	DrawPixels = 195
	DrawBitmap = 197
	TESTING    = 255
)

const (
	Width  = 320
	Height = 480
)

var ErrOverflow = errors.New("bitmap outside the panel")

func New(serial *proto.Serial, logger *zap.Logger) (proto.Control, error) {
	if err := serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    115200,
		ReadTimeout: time.Millisecond,
	}); err != nil {
		return nil, errors.Wrap(err, "open panel")
	}

	return newPanel(serial, logger), nil
}

func newPanel(conn io.Writer, logger *zap.Logger) *Inch35 {
	return &Inch35{
		conn:   conn,
		logger: logger.With(zap.String("device", "inch35")),
		width:  Width,
		height: Height,
	}
}

// Inch35 drives the 3.5" 320x480 USB serial panel.
type Inch35 struct {
	conn   io.Writer
	logger *zap.Logger
	width  int
	height int
}

func (i *Inch35) Startup() error {
	return i.sendCMD(Startup)
}

func (i *Inch35) Shutdown() error {
	return i.sendCMD(Shutdown)
}

func (i *Inch35) Restart() error {
	return i.sendCMD(Restart)
}

func (i *Inch35) SetLight(light uint8) error {
	return i.sendCMD(SetLight, int(light))
}

// SetRotate switches orientation. Landscape swaps the logical width and
// height used to bound later bitmaps.
func (i *Inch35) SetRotate(landscape bool, invert bool) error {
	w, h := Width, Height

	ov := 100
	if landscape {
		ov++
		w, h = h, w
	}
	if invert {
		ov++
	}

	var bs bytes.Buffer
	bs.WriteByte(uint8(ov))
	_ = binary.Write(&bs, binary.BigEndian, uint16(w))
	_ = binary.Write(&bs, binary.BigEndian, uint16(h))

	if err := i.sendOpt(SetRotate, 16, bs.Bytes()); err != nil {
		return err
	}

	i.width, i.height = w, h
	return nil
}

func (i *Inch35) SetMirror(mirror bool) error {
	var b byte
	if mirror {
		b = 1
	}

	return i.sendOpt(SetMirror, 16, []byte{b})
}

func (i *Inch35) DrawBitmap(posX uint16, posY uint16, image image.Image) error {
	size := image.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return nil
	}

	if size.X+int(posX) > i.width || size.Y+int(posY) > i.height {
		return errors.Wrapf(ErrOverflow, "%dx%d at (%d,%d) on %dx%d",
			size.X, size.Y, posX, posY, i.width, i.height)
	}

	if err := i.sendCMD(DrawBitmap, int(posX), int(posY), int(posX)+size.X-1, int(posY)+size.Y-1); err != nil {
		return err
	}

	return i.sendBytes(bitmap.Encode(image))
}

package remote

import (
	"image"
	"image/color"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"framefx/pkg/device/virtual"
)

func TestRoundTrip(t *testing.T) {
	dev := virtual.New(4, 4, zap.NewNop())
	h, err := Handler(dev)
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	defer srv.Close()

	c, err := New(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	defer c.(*Client).Close()

	require.NoError(t, c.Startup())
	require.NoError(t, c.SetLight(42))
	require.NoError(t, c.SetMirror(true))

	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.SetNRGBA(5, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(6, 5, color.NRGBA{R: 40, G: 50, B: 60, A: 255})
	require.NoError(t, c.DrawBitmap(2, 3, img))

	canvas := dev.Canvas()
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, canvas.NRGBAAt(2, 3))
	assert.Equal(t, color.NRGBA{R: 40, G: 50, B: 60, A: 255}, canvas.NRGBAAt(3, 3))

	require.NoError(t, c.SetRotate(true, false))
	assert.Equal(t, image.Rect(0, 0, 4, 4), dev.Canvas().Rect)
}

func TestServiceRejectsBadInput(t *testing.T) {
	s := &Service{dev: virtual.New(2, 2, zap.NewNop())}

	assert.ErrorIs(t, s.Command("reboot", nil), ErrUnknownCommand)
	assert.Error(t, s.DrawBitmap(&DrawBitmapRequest{Width: 2, Height: 2, Pix: make([]byte, 3)}, nil))
}

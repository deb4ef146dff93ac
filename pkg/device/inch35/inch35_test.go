package inch35

import (
	"bytes"
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPackCommand(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, Startup}, packCommand(Startup, [4]int{}, nil))

	// 10-bit fields: 1, 2, 319, 479
	got := packCommand(DrawBitmap, [4]int{1, 2, 319, 479}, nil)
	assert.Equal(t, []byte{0x00, 0x40, 0x24, 0xfd, 0xdf, DrawBitmap}, got)
}

func TestDrawBitmap(t *testing.T) {
	var wire bytes.Buffer
	p := newPanel(&wire, zap.NewNop())

	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	require.NoError(t, p.DrawBitmap(10, 20, img))

	assert.Equal(t, 6+4*2*2, wire.Len())
	assert.Equal(t, packCommand(DrawBitmap, [4]int{10, 20, 13, 21}, nil), wire.Bytes()[:6])
}

func TestDrawBitmapOverflow(t *testing.T) {
	p := newPanel(&bytes.Buffer{}, zap.NewNop())

	err := p.DrawBitmap(0, 0, image.NewNRGBA(image.Rect(0, 0, Height, Width)))
	assert.True(t, errors.Is(err, ErrOverflow))

	require.NoError(t, p.SetRotate(true, false))
	assert.NoError(t, p.DrawBitmap(0, 0, image.NewNRGBA(image.Rect(0, 0, Height, Width))))
}

func TestSetRotatePayload(t *testing.T) {
	var wire bytes.Buffer
	p := newPanel(&wire, zap.NewNop())

	require.NoError(t, p.SetRotate(true, true))
	bs := wire.Bytes()
	require.Len(t, bs, 16)
	assert.Equal(t, byte(SetRotate), bs[5])
	assert.Equal(t, []byte{102, 0x01, 0xe0, 0x01, 0x40}, bs[6:11])
}

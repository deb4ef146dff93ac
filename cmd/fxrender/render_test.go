package main

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"framefx/pkg/effect"
	"framefx/pkg/playlist"
	"framefx/pkg/source"
)

func writePNG(t *testing.T, fs afero.Fs, name string, v byte) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, name, buf.Bytes(), 0644))
}

func TestRenderWritesEveryFrame(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "/in/clip/0.png", 100)
	writePNG(t, fs, "/in/clip/1.png", 200)
	writePNG(t, fs, "/in/still.png", 50)

	r := &renderer{
		fs:       fs,
		opener:   source.NewLoader(fs, zap.NewNop()),
		eng:      effect.New(),
		out:      "/out",
		progress: io.Discard,
		log:      zap.NewNop(),
	}

	sum, err := r.render([]playlist.Entry{
		{Source: "/in/clip", Effect: "threshold", Params: effect.Params{"t": 150}},
		{Source: "/in/still.png", Effect: "posterize", Params: effect.Params{"levels": 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.files)
	assert.Positive(t, sum.bytes)

	check := func(name string, want byte) {
		bs, err := afero.ReadFile(fs, name)
		require.NoError(t, err, name)
		img, err := png.Decode(bytes.NewReader(bs))
		require.NoError(t, err)
		r, _, _, a := img.At(2, 2).RGBA()
		assert.Equal(t, uint32(want)*0x101, r, name)
		assert.Equal(t, uint32(0xffff), a)
	}
	check("/out/000-0000.png", 0)
	check("/out/000-0001.png", 255)
	check("/out/001-0000.png", 0)
}

func TestRenderUnknownEffectFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "/a.png", 1)

	r := &renderer{fs: fs, opener: source.NewLoader(fs, zap.NewNop()), eng: effect.New(), out: "/out", progress: io.Discard, log: zap.NewNop()}
	_, err := r.render([]playlist.Entry{{Source: "/a.png", Effect: "blur"}})

	var unknown *effect.UnknownEffectError
	assert.ErrorAs(t, err, &unknown)
}

func TestRenderMissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := &renderer{fs: fs, opener: source.NewLoader(fs, zap.NewNop()), eng: effect.New(), out: "/out", progress: io.Discard, log: zap.NewNop()}

	_, err := r.render([]playlist.Entry{{Source: "/nope.png", Effect: "sobel"}})
	assert.ErrorIs(t, err, source.ErrNoFrames)

	exists, _ := afero.DirExists(fs, "/out")
	assert.False(t, exists, "nothing is written before every source opens")
}

func TestParseParams(t *testing.T) {
	p, err := parseParams(map[string]string{"cols": "4", "lens": "0.25"})
	require.NoError(t, err)
	assert.Equal(t, effect.Params{"cols": 4, "lens": 0.25}, p)

	_, err = parseParams(map[string]string{"cols": "many"})
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("320x480")
	require.NoError(t, err)
	assert.Equal(t, [2]int{320, 480}, [2]int{w, h})

	w, h, err = parseSize("")
	require.NoError(t, err)
	assert.Zero(t, w+h)

	for _, bad := range []string{"320", "0x10", "axb"} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}

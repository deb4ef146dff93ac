package proto

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialMatch(t *testing.T) {
	s := NewSerial("usbmodemUSB35")
	s.list = func() ([]string, error) {
		return []string{"/dev/ttyS0", "/dev/cu.usbmodemUSB35INCHIPSV21"}, nil
	}

	name, err := s.Match()
	require.NoError(t, err)
	assert.Equal(t, "/dev/cu.usbmodemUSB35INCHIPSV21", name)

	s.name = "ttyACM0"
	_, err = s.Match()
	assert.True(t, errors.Is(err, ErrPortNotFound))
}

func TestSerialCloseUnopened(t *testing.T) {
	assert.NoError(t, NewSerial("x").Close())
}

package effect

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidFrame = errors.New("invalid frame")

// UnknownEffectError is returned by Engine.Run for a name outside the effect table.
type UnknownEffectError struct {
	Name string
}

func (e *UnknownEffectError) Error() string {
	return fmt.Sprintf("unknown effect %q", e.Name)
}

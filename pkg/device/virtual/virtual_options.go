package virtual

import (
	"github.com/spf13/afero"
)

type Option func(d *Display)

// WithDump saves every presented frame as a PNG into fs.
func WithDump(fs afero.Fs) Option {
	return func(d *Display) {
		d.fs = fs
	}
}

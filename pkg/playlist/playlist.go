package playlist

import (
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"framefx/pkg/effect"
)

var ErrEmpty = errors.New("playlist has no entries")

// Entry is one clip of the show: where the frames come from and which
// effect runs over them.
type Entry struct {
	Source string        `yaml:"source" json:"source"`
	Effect string        `yaml:"effect" json:"effect"`
	Params effect.Params `yaml:"params,omitempty" json:"params,omitempty"`
}

type Canvas struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

type Playlist struct {
	Canvas  Canvas  `yaml:"canvas" json:"canvas"`
	FPS     float64 `yaml:"fps" json:"fps"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Load reads a YAML or JSON playlist from fs. Relative sources are resolved
// against the playlist's directory.
func Load(fs afero.Fs, file string) (*Playlist, error) {
	bs, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, errors.Wrap(err, "read playlist")
	}

	p, err := Parse(bs)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", file)
	}

	dir := path.Dir(file)
	for i, e := range p.Entries {
		if isLocal(e.Source) && !path.IsAbs(e.Source) {
			p.Entries[i].Source = path.Join(dir, e.Source)
		}
	}

	return p, nil
}

// Parse decodes a playlist document. JSON is accepted as YAML.
func Parse(bs []byte) (*Playlist, error) {
	var p Playlist
	if err := yaml.Unmarshal(bs, &p); err != nil {
		return nil, err
	}

	if len(p.Entries) == 0 {
		return nil, ErrEmpty
	}

	return &p, nil
}

// Validate reports every entry that would not render as written: unknown
// effects, unknown parameter names and missing sources.
func (p *Playlist) Validate() error {
	var err error

	if len(p.Entries) == 0 {
		err = multierr.Append(err, ErrEmpty)
	}

	for i, e := range p.Entries {
		if e.Source == "" {
			err = multierr.Append(err, errors.Errorf("entry %d: no source", i))
		}

		d, ok := effect.Describe(e.Effect)
		if !ok {
			err = multierr.Append(err, errors.Wrapf(&effect.UnknownEffectError{Name: e.Effect}, "entry %d", i))
			continue
		}

		for name := range e.Params {
			if _, known := d.Defaults[name]; !known {
				err = multierr.Append(err, errors.Errorf("entry %d: %s has no parameter %q", i, e.Effect, name))
			}
		}
	}

	return err
}

func isLocal(source string) bool {
	return !strings.Contains(source, ":")
}

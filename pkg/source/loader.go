package source

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"framefx/pkg/effect"
)

var (
	ErrUnsupported = errors.New("unsupported source")
	ErrNoFrames    = errors.New("no frames")
)

var frameExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

func NewLoader(fs afero.Fs, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:  fs,
		log: logger.With(zap.String("via", "source-loader")),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader turns playlist source references into clips sized to the canvas.
type Loader struct {
	fs     afero.Fs
	http   *HTTPFetcher
	wh     *WallhavenFetcher
	cache  *Cache
	log    *zap.Logger
	width  int
	height int
}

func (l *Loader) Size() (w, h int) {
	return l.width, l.height
}

func (l *Loader) Open(ref string) (Clip, error) {
	log := l.log.With(zap.String("source", ref))

	var clip Clip
	var err error

	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		clip, err = l.openRemote(ref)
	case strings.HasPrefix(ref, wallhavenScheme):
		clip, err = l.openWallhaven(strings.TrimPrefix(ref, wallhavenScheme))
	case strings.Contains(ref, ":") && !strings.HasPrefix(ref, "/"):
		err = errors.Wrapf(ErrUnsupported, "scheme of %q", ref)
	default:
		clip, err = l.openLocal(ref)
	}

	if err != nil {
		return nil, err
	}
	if clip.Len() == 0 {
		return nil, errors.Wrap(ErrNoFrames, ref)
	}

	log.With(zap.Int("frames", clip.Len())).Debug("clip loaded")
	return clip, nil
}

func (l *Loader) openRemote(url string) (Clip, error) {
	if l.http == nil {
		return nil, errors.Wrap(ErrUnsupported, "no http fetcher")
	}

	bs, hit, err := l.cache.Load(url)
	if err != nil {
		l.log.With(zap.Error(err)).Info("cache read failed")
	}
	if !hit {
		if bs, err = l.http.Get(url); err != nil {
			return nil, err
		}
		if err := l.cache.Save(url, bs); err != nil {
			l.log.With(zap.Error(err)).Info("cache write failed")
		}
	}

	frames, err := decodeFrames(bs)
	if err != nil {
		return nil, errors.Wrap(err, url)
	}
	return newMemClip(url, frames, l.width, l.height), nil
}

func (l *Loader) openWallhaven(query string) (Clip, error) {
	if l.wh == nil {
		return nil, errors.Wrap(ErrUnsupported, "no wallhaven fetcher")
	}

	bs, name, err := l.wh.Get(query)
	if err != nil {
		return nil, err
	}

	frames, err := decodeFrames(bs)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return newMemClip(name, frames, l.width, l.height), nil
}

func (l *Loader) openLocal(file string) (Clip, error) {
	info, err := l.fs.Stat(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoFrames, "%s does not exist", file)
		}
		return nil, err
	}

	if info.IsDir() {
		return l.openDir(file)
	}

	bs, err := afero.ReadFile(l.fs, file)
	if err != nil {
		return nil, err
	}

	frames, err := decodeFrames(bs)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	return newMemClip(file, frames, l.width, l.height), nil
}

func (l *Loader) openDir(dir string) (Clip, error) {
	infos, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, info := range infos {
		if !info.IsDir() && frameExts[strings.ToLower(path.Ext(info.Name()))] {
			files = append(files, path.Join(dir, info.Name()))
		}
	}
	sort.Strings(files)

	return &dirClip{l: l, name: dir, files: files}, nil
}

// dirClip is an image sequence decoded frame by frame on demand.
type dirClip struct {
	l     *Loader
	name  string
	files []string
}

func (c *dirClip) Name() string {
	return c.name
}

func (c *dirClip) Len() int {
	return len(c.files)
}

func (c *dirClip) Frame(i int) (*effect.Frame, error) {
	if i < 0 || i >= len(c.files) {
		return nil, ErrNoFrames
	}

	bs, err := afero.ReadFile(c.l.fs, c.files[i])
	if err != nil {
		return nil, err
	}

	frames, err := decodeFrames(bs)
	if err != nil {
		return nil, errors.Wrap(err, c.files[i])
	}

	return effect.FromImage(Fit(frames[0], c.l.width, c.l.height)), nil
}

package source

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path"

	"github.com/spf13/afero"
)

func NewCache(fs afero.Fs) *Cache {
	return &Cache{fs: fs}
}

// Cache keeps downloaded media so a looping playlist fetches each URL once.
// A nil Cache or one without a filesystem stores nothing.
type Cache struct {
	fs afero.Fs
}

func (c *Cache) filename(ref string) string {
	sum := sha1.Sum([]byte(ref))
	name := hex.EncodeToString(sum[:])
	return path.Join(name[:2], name+path.Ext(ref))
}

func (c *Cache) Load(ref string) ([]byte, bool, error) {
	if c == nil || c.fs == nil {
		return nil, false, nil
	}

	bs, err := afero.ReadFile(c.fs, c.filename(ref))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return bs, true, nil
}

func (c *Cache) Save(ref string, bs []byte) error {
	if c == nil || c.fs == nil {
		return nil
	}

	file := c.filename(ref)
	if exists, err := afero.DirExists(c.fs, path.Dir(file)); err != nil {
		return err
	} else if !exists {
		if err := c.fs.MkdirAll(path.Dir(file), 0755); err != nil {
			return err
		}
	}

	return afero.WriteFile(c.fs, file, bs, 0644)
}

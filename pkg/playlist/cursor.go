package playlist

import (
	"sync"
)

func NewCursor(p *Playlist) *Cursor {
	return &Cursor{entries: p.Entries}
}

// Cursor walks a playlist in both directions, wrapping at either end.
type Cursor struct {
	l       sync.RWMutex
	entries []Entry
	idx     int
}

func (c *Cursor) Index() int {
	c.l.RLock()
	defer c.l.RUnlock()
	return c.idx
}

func (c *Cursor) Len() int {
	return len(c.entries)
}

func (c *Cursor) Curr() Entry {
	c.l.RLock()
	defer c.l.RUnlock()
	return c.entries[c.idx]
}

func (c *Cursor) Next() Entry {
	return c.move(1)
}

func (c *Cursor) Prev() Entry {
	return c.move(-1)
}

// Seek jumps to entry i, wrapped into range.
func (c *Cursor) Seek(i int) Entry {
	c.l.Lock()
	defer c.l.Unlock()
	c.idx = wrap(i, len(c.entries))
	return c.entries[c.idx]
}

func (c *Cursor) move(delta int) Entry {
	c.l.Lock()
	defer c.l.Unlock()
	c.idx = wrap(c.idx+delta, len(c.entries))
	return c.entries[c.idx]
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

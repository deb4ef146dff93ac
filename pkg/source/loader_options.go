package source

type Option func(l *Loader)

// WithCanvas sets the size every frame is fitted to.
func WithCanvas(w, h int) Option {
	return func(l *Loader) {
		l.width, l.height = w, h
	}
}

func WithHTTP(f *HTTPFetcher) Option {
	return func(l *Loader) {
		l.http = f
	}
}

func WithWallhaven(f *WallhavenFetcher) Option {
	return func(l *Loader) {
		l.wh = f
	}
}

// WithCache keeps downloaded URLs in c.
func WithCache(c *Cache) Option {
	return func(l *Loader) {
		l.cache = c
	}
}

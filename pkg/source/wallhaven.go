package source

import (
	"sync"

	"github.com/moolex/wallhaven-go/api"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const wallhavenScheme = "wallhaven:"

func NewWallhavenFetcher(key string, http *HTTPFetcher, logger *zap.Logger, thumb bool) *WallhavenFetcher {
	wh := api.New(key)
	wh.SetLogger(logger)

	return &WallhavenFetcher{
		api:     wh,
		http:    http,
		thumb:   thumb,
		results: map[string]*api.QueryResult{},
	}
}

// WallhavenFetcher resolves "wallhaven:<query>" sources to the next
// wallpaper of that search, looping over the result page.
type WallhavenFetcher struct {
	sync.Mutex
	api     *api.API
	http    *HTTPFetcher
	thumb   bool
	results map[string]*api.QueryResult
}

// Get downloads the next wallpaper for query and returns it with its page URL.
func (w *WallhavenFetcher) Get(query string) ([]byte, string, error) {
	wp, err := w.pick(query)
	if err != nil {
		return nil, "", err
	}

	bs, err := w.http.Get(lo.Ternary(w.thumb, wp.Thumbs.Original, wp.Path))
	if err != nil {
		return nil, "", err
	}

	return bs, wp.Url, nil
}

func (w *WallhavenFetcher) pick(query string) (*api.Wallpaper, error) {
	w.Lock()
	defer w.Unlock()

	r, ok := w.results[query]
	if !ok {
		var err error
		r, err = w.api.Query(api.NewQuery(query))
		if err != nil {
			return nil, errors.Wrapf(err, "wallhaven query %q", query)
		}
		w.results[query] = r
	}

	wp, err := r.Pick(api.PickLoop)
	if err != nil {
		if errors.Is(err, api.ErrNoMoreItems) {
			delete(w.results, query)
		}
		return nil, errors.Wrapf(err, "wallhaven pick %q", query)
	}

	return wp, nil
}

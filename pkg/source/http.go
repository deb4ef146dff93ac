package source

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func NewHTTPFetcher(logger *zap.Logger, progress bool) *HTTPFetcher {
	return &HTTPFetcher{
		cli:      resty.New().SetDoNotParseResponse(true),
		log:      logger.With(zap.String("via", "http-fetcher")),
		progress: progress,
	}
}

// HTTPFetcher downloads remote media, drawing a progress bar on the
// terminal when asked to.
type HTTPFetcher struct {
	cli      *resty.Client
	log      *zap.Logger
	progress bool
}

func (f *HTTPFetcher) Get(url string) ([]byte, error) {
	resp, err := f.cli.R().Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("fetch %s: %s", url, resp.Status())
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	if f.progress {
		bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))
		dst = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(dst, resp.RawBody()); err != nil {
		return nil, errors.Wrapf(err, "read %s", url)
	}

	f.log.With(
		zap.String("url", url),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
	).Debug("downloaded")

	return buf.Bytes(), nil
}

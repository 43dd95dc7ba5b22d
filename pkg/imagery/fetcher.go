// Package imagery retrieves the rendered map image for a built URL. It is a
// thin convenience over an injected HTTP client: URL construction stays
// side-effect free and timeouts, retries, and cancellation remain the
// caller's responsibility through the client and context they provide.
package imagery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/time/rate"

	"github.com/mbehan/go-staticmap/pkg/urlbuilder"
)

// HTTPDoer is the slice of *http.Client the fetcher needs. Tests and callers
// with custom transports inject their own implementation.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProgressFunc observes download progress. total is -1 when the server did
// not announce a content length.
type ProgressFunc func(read, total int64)

// Option configures a Fetcher before construction.
type Option func(*Fetcher)

// WithHTTPClient injects the HTTP client used for the image request.
func WithHTTPClient(client HTTPDoer) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithRateLimiter throttles fetches through a shared limiter. Useful when a
// caller renders many maps against a rate-limited API key.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = limiter
	}
}

// WithResize scales the decoded image to w x h pixels before returning it.
func WithResize(w, h int) Option {
	return func(f *Fetcher) {
		f.resizeW = w
		f.resizeH = h
	}
}

// WithProgress registers a callback invoked as response bytes arrive.
func WithProgress(fn ProgressFunc) Option {
	return func(f *Fetcher) {
		f.progress = fn
	}
}

// Fetcher downloads and decodes static map images.
type Fetcher struct {
	client   HTTPDoer
	limiter  *rate.Limiter
	progress ProgressFunc
	resizeW  int
	resizeH  int
}

// NewFetcher builds a Fetcher. Without options it uses a plain client with a
// 30 second timeout and no rate limiting.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// FetchMap builds the URL from the given builder and fetches the rendered
// image. Build failures surface before any I/O is attempted.
func (f *Fetcher) FetchMap(ctx context.Context, b *urlbuilder.Builder) (image.Image, error) {
	if b == nil {
		return nil, errors.New("imagery: builder is nil")
	}
	mapURL, err := b.URL()
	if err != nil {
		return nil, err
	}
	return f.Fetch(ctx, mapURL)
}

// Fetch downloads the image at rawURL and decodes it as png or jpeg.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (image.Image, error) {
	rawURL = strings.TrimSpace(rawURL)
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("imagery: invalid url: %w", err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("imagery: rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("imagery: build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagery: fetch map: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("imagery: map HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	var body io.Reader = resp.Body
	if f.progress != nil {
		body = &countingReader{r: resp.Body, total: resp.ContentLength, fn: f.progress}
	}

	buf, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("imagery: read body: %w", err)
	}

	img, err := decode(buf)
	if err != nil {
		return nil, err
	}
	if f.resizeW > 0 && f.resizeH > 0 {
		img = resize(img, f.resizeW, f.resizeH)
	}
	return img, nil
}

func decode(buf []byte) (image.Image, error) {
	if img, err := png.Decode(bytes.NewReader(buf)); err == nil {
		return img, nil
	}
	img, err := jpeg.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("imagery: decode image: %w", err)
	}
	return img, nil
}

func resize(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

type countingReader struct {
	r     io.Reader
	read  int64
	total int64
	fn    ProgressFunc
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.read += int64(n)
		c.fn(c.read, c.total)
	}
	return n, err
}

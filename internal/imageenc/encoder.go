// Package imageenc turns image references into self-contained data URIs.
package imageenc

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"VCARD_BACK-END/internal/config"
	"VCARD_BACK-END/internal/metrics"
	"VCARD_BACK-END/internal/models"
)

// FetchError reports an image that could not be fetched or read.
type FetchError struct {
	Ref string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch image %q: %v", e.Ref, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

var (
	ErrNotImage = errors.New("resource is not an image")
	ErrTooLarge = errors.New("image exceeds size limit")
)

// Encoder fetches images from disk or over HTTP and returns base64 data URIs.
type Encoder struct {
	cfg    config.ImageConfig
	client *http.Client
	logger *zap.Logger
}

func New(cfg config.ImageConfig, client *http.Client, logger *zap.Logger) *Encoder {
	if client == nil {
		client = &http.Client{Timeout: cfg.FetchTimeout}
	}
	return &Encoder{cfg: cfg, client: client, logger: logger}
}

// Encode returns the data URI for ref. References that are already data URIs
// are returned unchanged. Every failure is a *FetchError.
func (e *Encoder) Encode(ctx context.Context, ref string) (string, error) {
	if models.IsEncodedImage(ref) {
		return ref, nil
	}

	data, err := e.fetch(ctx, ref)
	if err != nil {
		metrics.ImageEncodeTotal.WithLabelValues("error").Inc()
		return "", &FetchError{Ref: ref, Err: err}
	}

	uri, err := e.toDataURI(data, ref)
	if err != nil {
		metrics.ImageEncodeTotal.WithLabelValues("error").Inc()
		return "", &FetchError{Ref: ref, Err: err}
	}

	metrics.ImageEncodeTotal.WithLabelValues("ok").Inc()
	e.logger.Debug("image encoded", zap.String("ref", ref), zap.Int("bytes", len(data)))
	return uri, nil
}

// FromUpload builds a data URI from uploaded bytes, the way the settings
// screen turns a picked file into the profile photo.
func (e *Encoder) FromUpload(data []byte, filename string) (string, error) {
	if int64(len(data)) > e.maxBytes() {
		return "", ErrTooLarge
	}
	return e.toDataURI(data, filename)
}

func (e *Encoder) toDataURI(data []byte, name string) (string, error) {
	mimeType := detectImageType(data, name)
	if mimeType == "" {
		return "", ErrNotImage
	}

	if e.cfg.MaxDimension > 0 {
		if out, outType, ok := downscale(data, mimeType, e.cfg.MaxDimension, e.cfg.JPEGQuality); ok {
			data, mimeType = out, outType
		}
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (e *Encoder) fetch(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, errors.New("empty reference")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return e.fetchHTTP(ctx, ref)
	}
	return e.readFile(ctx, ref)
}

func (e *Encoder) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	if e.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.FetchTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return e.readLimited(resp.Body)
}

func (e *Encoder) readFile(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := strings.TrimPrefix(ref, "file://")
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.cfg.AssetsDir, strings.TrimPrefix(path, "assets/"))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return e.readLimited(f)
}

func (e *Encoder) readLimited(r io.Reader) ([]byte, error) {
	limit := e.maxBytes()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}

func (e *Encoder) maxBytes() int64 {
	if e.cfg.MaxBytes > 0 {
		return e.cfg.MaxBytes
	}
	return 8 << 20
}

// detectImageType sniffs the payload and falls back to the file extension.
// It returns "" when neither says image.
func detectImageType(data []byte, name string) string {
	sniffed := http.DetectContentType(data)
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}

	ext := strings.ToLower(filepath.Ext(name))
	if i := strings.IndexAny(ext, "?#"); i >= 0 {
		ext = ext[:i]
	}
	byExt := mime.TypeByExtension(ext)
	if i := strings.Index(byExt, ";"); i >= 0 {
		byExt = byExt[:i]
	}
	if strings.HasPrefix(byExt, "image/") {
		return byExt
	}
	return ""
}

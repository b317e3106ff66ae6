// Package imaging persists screenshot variants using image resampling.
package imaging

import (
	"bytes"
	"image"
	"os"
	"path"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fwojciec/showscout"
)

// Variant width caps. The high-density variant serves 2x displays; the
// standard variant is half its width and is the one entry records point at.
const (
	HighDensityWidth = 1600
	StandardWidth    = 800
)

// DefaultQuality is the JPEG quality used for both variants.
const DefaultQuality = 80

// Ensure Encoder implements showscout.ImageEncoder at compile time.
var _ showscout.ImageEncoder = (*Encoder)(nil)

// Encoder writes two width-capped JPEG re-encodings of a screenshot under
// an image directory, keyed by hostname.
type Encoder struct {
	dir       string
	webPrefix string
	quality   int
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithWebPrefix sets the site-relative path prefix recorded in entries.
// Defaults to "/" + the image directory's base name.
func WithWebPrefix(prefix string) Option {
	return func(e *Encoder) {
		e.webPrefix = prefix
	}
}

// WithQuality sets the JPEG quality. Defaults to DefaultQuality.
func WithQuality(q int) Option {
	return func(e *Encoder) {
		e.quality = q
	}
}

// NewEncoder creates an Encoder writing into dir.
func NewEncoder(dir string, opts ...Option) *Encoder {
	e := &Encoder{
		dir:       dir,
		webPrefix: "/" + filepath.Base(dir),
		quality:   DefaultQuality,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WriteVariants decodes the raw screenshot and writes the high-density and
// standard-density variants. It returns the web path of the standard
// variant only once both files are on disk, so a caller can never record a
// path whose image is missing.
func (e *Encoder) WriteVariants(screenshot []byte, hostname string) (string, error) {
	src, err := imaging.Decode(bytes.NewReader(screenshot))
	if err != nil {
		return "", showscout.Errorf(showscout.EINVALID, "decoding screenshot for %s: %v", hostname, err)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", err
	}

	high := capWidth(src, HighDensityWidth)
	if err := imaging.Save(high, filepath.Join(e.dir, hostname+"@2x.jpg"), imaging.JPEGQuality(e.quality)); err != nil {
		return "", err
	}

	standard := capWidth(src, StandardWidth)
	name := hostname + ".jpg"
	if err := imaging.Save(standard, filepath.Join(e.dir, name), imaging.JPEGQuality(e.quality)); err != nil {
		return "", err
	}

	return path.Join(e.webPrefix, name), nil
}

// capWidth scales the image down to at most max pixels wide, preserving
// aspect ratio. Images already within the cap are returned as-is.
func capWidth(img image.Image, max int) image.Image {
	if img.Bounds().Dx() <= max {
		return img
	}
	return imaging.Resize(img, max, 0, imaging.Lanczos)
}

package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	disimaging "github.com/disintegration/imaging"
	"github.com/fwojciec/showscout"
	"github.com/fwojciec/showscout/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Encoder implements showscout.ImageEncoder at compile time.
var _ showscout.ImageEncoder = (*imaging.Encoder)(nil)

func screenshotPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncoder_WriteVariants(t *testing.T) {
	t.Parallel()

	t.Run("writes both width-capped variants", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		e := imaging.NewEncoder(dir, imaging.WithWebPrefix("/images/showcase"))

		webPath, err := e.WriteVariants(screenshotPNG(t, 1792, 1008), "example.com")
		require.NoError(t, err)
		assert.Equal(t, "/images/showcase/example.com.jpg", webPath)

		high, err := disimaging.Open(filepath.Join(dir, "example.com@2x.jpg"))
		require.NoError(t, err)
		assert.Equal(t, 1600, high.Bounds().Dx())

		standard, err := disimaging.Open(filepath.Join(dir, "example.com.jpg"))
		require.NoError(t, err)
		assert.Equal(t, 800, standard.Bounds().Dx())
	})

	t.Run("keeps images already within the cap", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		e := imaging.NewEncoder(dir)

		_, err := e.WriteVariants(screenshotPNG(t, 640, 480), "small.example.com")
		require.NoError(t, err)

		high, err := disimaging.Open(filepath.Join(dir, "small.example.com@2x.jpg"))
		require.NoError(t, err)
		assert.Equal(t, 640, high.Bounds().Dx())
	})

	t.Run("rejects an undecodable buffer without writing files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		e := imaging.NewEncoder(dir)

		_, err := e.WriteVariants([]byte("not an image"), "bad.example.com")
		require.Error(t, err)
		assert.Equal(t, showscout.EINVALID, showscout.ErrorCode(err))

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("default web prefix derives from the directory name", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "showcase")
		e := imaging.NewEncoder(dir)

		webPath, err := e.WriteVariants(screenshotPNG(t, 100, 100), "example.org")
		require.NoError(t, err)
		assert.Equal(t, "/showcase/example.org.jpg", webPath)
	})
}

package window

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 250e6, time.UTC)
	assert.Equal(t, filepath.Join("shots", "particles-20240309-140507.250.png"), SnapshotPath("shots", now))
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 251, G: 98, B: 63, A: 255})

	path := filepath.Join(t.TempDir(), "nested", "shot.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, g, b, a := got.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{251 * 0x101, 98 * 0x101, 63 * 0x101, 0xffff}, [4]uint32{r, g, b, a})
}

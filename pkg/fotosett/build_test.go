package fotosett

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sunset-over-lake.jpg", "sunset over lake"},
		{"family_photo_2021.jpeg", "family photo 2021"},
		{"mixed-sep_name.png", "mixed sep name"},
		{"NoSeparators.webp", "NoSeparators"},
		{"  spaced .jpg", "  spaced "},
		{"UPPER-Case_Kept.tiff", "UPPER Case Kept"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, altText(tt.in))
		})
	}
}

func writePNG(t *testing.T, path string, w int, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestBuildListing(t *testing.T) {
	in := t.TempDir()
	writePNG(t, filepath.Join(in, "a-first_shot.png"), 64, 32)
	writePNG(t, filepath.Join(in, "c-last.png"), 10, 20)
	// A corrupt file between two valid ones is skipped without
	// stopping the batch.
	require.NoError(t, os.WriteFile(filepath.Join(in, "b-corrupt.jpg"), []byte("not an image"), 0o600))

	c := DefaultConfig()
	c.InDir = in

	entries, st, err := BuildListing(c)
	require.NoError(t, err)

	assert.Equal(t, 2, st.Processed)
	assert.Equal(t, 1, st.Skipped)
	require.Len(t, entries, 2)

	// No EXIF in a PNG, so both records are undated and sort by src.
	assert.Equal(t, "/photos/a-first_shot.png", entries[0].Src)
	assert.Equal(t, "a first shot", entries[0].Alt)
	assert.Equal(t, "", entries[0].Caption)
	assert.Equal(t, "", entries[0].Date)
	assert.Equal(t, "", entries[0].Camera)
	assert.Equal(t, []string{}, entries[0].Tags)
	assert.Equal(t, 64, entries[0].Exif.Width)
	assert.Equal(t, 32, entries[0].Exif.Height)
	assert.Nil(t, entries[0].Exif.ISO)

	assert.Equal(t, "/photos/c-last.png", entries[1].Src)
	assert.Equal(t, 10, entries[1].Exif.Width)
	assert.Equal(t, 20, entries[1].Exif.Height)
}

func TestBuildListingMissingDir(t *testing.T) {
	c := DefaultConfig()
	c.InDir = filepath.Join(t.TempDir(), "nope")

	entries, st, err := BuildListing(c)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0, st.Processed)

	// The listing is still a valid empty collection on disk.
	p := filepath.Join(t.TempDir(), "photos.json")
	require.NoError(t, WriteCollection(p, entries))
	bs, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(bs))
}

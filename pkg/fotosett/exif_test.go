package fotosett

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanExifDate(t *testing.T) {
	raw := []byte("garbage\x00\x012021:06:15 10:30:00\x00more")
	s := scanExif(raw)
	assert.Equal(t, "2021-06-15", s.Date)
}

func TestScanExifDateAbsent(t *testing.T) {
	s := scanExif([]byte("no dates here, not even 2021:06:15"))
	assert.Equal(t, "", s.Date)
}

func TestScanExifCamera(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"canon", "Canon\x00EOS R5\x00", "Canon EOS R5"},
		{"nikon corporation", "NIKON CORPORATION\x00NIKON Z 6\x00", "NIKON CORPORATION NIKON Z 6"},
		{"sony", "junk\x01SONY\x00ILCE-7M4\x00junk", "SONY ILCE-7M4"},
		{"fujifilm", "FUJIFILM\x00X-T5\x00", "FUJIFILM X-T5"},
		{"apple case folded", "APPLE\x00iPhone 15 Pro\x00", "APPLE iPhone 15 Pro"},
		{"samsung case folded", "Samsung\x00SM-G998B\x00", "Samsung SM-G998B"},
		{"model whitespace trimmed", "Canon\x00 EOS 5D Mark IV \x00", "Canon EOS 5D Mark IV"},
		{"lowercase canon not matched", "canon\x00EOS R5\x00", ""},
		{"no token", "some random metadata with no makers", ""},
		{"token without nul model", "Canon EOS R5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scanExif([]byte(tt.raw))
			assert.Equal(t, tt.want, s.Camera)
		})
	}
}

// Canon is first in the maker list, so it wins even when another maker
// token appears earlier in the buffer.
func TestScanExifCameraPriority(t *testing.T) {
	raw := []byte("SONY\x00ILCE-7M4\x00 and later Canon\x00EOS R5\x00")
	s := scanExif(raw)
	assert.Equal(t, "Canon EOS R5", s.Camera)
}

func TestScanExifEmpty(t *testing.T) {
	s := scanExif(nil)
	assert.Equal(t, "", s.Date)
	assert.Equal(t, "", s.Camera)
}

func TestScanExifGarbage(t *testing.T) {
	raw := make([]byte, 4096)
	for i := range raw {
		raw[i] = byte(i * 7)
	}

	assert.NotPanics(t, func() {
		s := scanExif(raw)
		assert.Equal(t, "", s.Camera)
	})
}

func TestScanExifBoth(t *testing.T) {
	raw := []byte("Exif\x00\x00II*\x00Canon\x00EOS R5\x00...2021:06:15 10:30:00\x00")
	s := scanExif(raw)
	assert.Equal(t, "2021-06-15", s.Date)
	assert.Equal(t, "Canon EOS R5", s.Camera)
}

package fotosett

import (
	"fmt"
	"image"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/rwcarlsen/goexif/exif"
	"k8s.io/klog/v2"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SourceMeta describes a decoded source image.
type SourceMeta struct {
	Image   image.Image
	Width   int
	Height  int
	RawExif []byte
}

// readSource decodes a source image and grabs its raw EXIF block, if any.
func readSource(path string) (*SourceMeta, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio.Open: %w", err)
	}

	return &SourceMeta{
		Image:   img,
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
		RawExif: rawExif(path),
	}, nil
}

// rawExif returns the raw EXIF bytes embedded in path, or nil. The blob
// is not interpreted here: exif.Decode only locates it, and the heuristic
// scan in exif.go does the rest.
func rawExif(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		klog.V(1).Infof("open for exif %s: %v", path, err)
		return nil
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		klog.V(1).Infof("no exif in %s: %v", path, err)
		return nil
	}

	return x.Raw
}

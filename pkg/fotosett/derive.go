package fotosett

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"k8s.io/klog/v2"
)

// targetSize computes derivative dimensions for a target width,
// preserving aspect ratio and never upscaling beyond the source width.
func targetSize(srcW, srcH, want int) (int, int) {
	w := want
	if srcW < w {
		w = srcW
	}

	scale := float64(srcW) / float64(w)
	return w, int(float64(srcH) / scale)
}

// derive resizes img for t and writes it as lossy WebP to destPath,
// returning the encoded byte size. Each derivative is produced from the
// decoded original, not from another derivative.
func derive(img image.Image, destPath string, t Target) (int64, error) {
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		return 0, fmt.Errorf("no pixels in %v", img.Bounds())
	}

	w, h := targetSize(img.Bounds().Dx(), img.Bounds().Dy(), t.Width)
	klog.V(1).Infof("deriving %dx%d q%d: %s", w, h, t.Quality, destPath)

	// The encoder wants RGBA; clone when no resize happens.
	var rimg *image.RGBA
	if w != img.Bounds().Dx() {
		rimg = transform.Resize(img, w, h, transform.Lanczos)
	} else {
		rimg = clone.AsRGBA(img)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(t.Quality))
	if err != nil {
		return 0, fmt.Errorf("encoder options: %w", err)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("create: %w", err)
	}

	if err := webp.Encode(f, rimg, opts); err != nil {
		f.Close()
		return 0, fmt.Errorf("webp encode: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close: %w", err)
	}

	st, err := os.Stat(destPath)
	if err != nil {
		return 0, fmt.Errorf("stat: %w", err)
	}

	return st.Size(), nil
}

package fotosett

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"
)

// altText derives alt text from a filename: extension stripped, every
// "-" and "_" replaced with a space. No trimming, no casing changes.
func altText(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.NewReplacer("-", " ", "_", " ").Replace(base)
}

// Build runs the derivative pipeline: for each source image under
// c.InDir, write a thumbnail and a display WebP under c.OutDir and
// collect one Photo record per file. A file failing anywhere in
// decode/resize/encode is logged, skipped, and does not stop the batch.
func Build(c *Config) ([]*Photo, *Stats, error) {
	klog.Infof("build: %s -> %s", c.InDir, c.OutDir)

	paths, err := Find(c.InDir)
	if err != nil {
		return nil, nil, fmt.Errorf("find: %w", err)
	}

	photos := []*Photo{}
	st := &Stats{}

	for _, p := range paths {
		photo, err := buildOne(c, p, st)
		if err != nil {
			klog.Errorf("skipping %s: %v", filepath.Base(p), err)
			st.Skipped++
			continue
		}
		photos = append(photos, photo)
		st.Processed++
	}

	sortPhotos(photos)
	return photos, st, nil
}

func buildOne(c *Config, srcPath string, st *Stats) (photo *Photo, err error) {
	defer func() {
		if r := recover(); r != nil {
			photo, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	m, err := readSource(srcPath)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	base := filepath.Base(srcPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".webp"

	tb, err := derive(m.Image, filepath.Join(c.OutDir, c.Thumb.Dir, name), c.Thumb)
	if err != nil {
		return nil, fmt.Errorf("thumb: %w", err)
	}

	db, err := derive(m.Image, filepath.Join(c.OutDir, c.Display.Dir, name), c.Display)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	var srcSize int64
	if fi, err := os.Stat(srcPath); err == nil {
		srcSize = fi.Size()
	}
	st.SourceBytes += srcSize
	st.DerivedBytes += tb + db

	s := scanExif(m.RawExif)

	klog.Infof("%s: %dx%d camera=%q saved %d bytes", base, m.Width, m.Height, s.Camera, srcSize-(tb+db))

	return &Photo{
		Thumb:   path.Join(c.WebRoot, c.Thumb.Dir, name),
		Display: path.Join(c.WebRoot, c.Display.Dir, name),
		Alt:     altText(base),
		Date:    s.Date,
		Camera:  s.Camera,
		Tags:    []string{},
		Exif:    Exposure{Width: m.Width, Height: m.Height},
	}, nil
}

// BuildListing runs the listing pipeline: no derivative images are
// written, each source maps straight onto one Entry whose src is the
// filename joined to c.WebRoot.
func BuildListing(c *Config) ([]*Entry, *Stats, error) {
	klog.Infof("listing: %s", c.InDir)

	paths, err := Find(c.InDir)
	if err != nil {
		return nil, nil, fmt.Errorf("find: %w", err)
	}

	entries := []*Entry{}
	st := &Stats{}

	for _, p := range paths {
		e, err := listOne(c, p)
		if err != nil {
			klog.Errorf("skipping %s: %v", filepath.Base(p), err)
			st.Skipped++
			continue
		}
		entries = append(entries, e)
		st.Processed++

		if fi, err := os.Stat(p); err == nil {
			st.SourceBytes += fi.Size()
		}
	}

	sortEntries(entries)
	return entries, st, nil
}

func listOne(c *Config, srcPath string) (e *Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	m, err := readSource(srcPath)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	base := filepath.Base(srcPath)
	s := scanExif(m.RawExif)

	klog.Infof("%s: %dx%d camera=%q", base, m.Width, m.Height, s.Camera)

	return &Entry{
		Src:    path.Join(c.WebRoot, base),
		Alt:    altText(base),
		Date:   s.Date,
		Camera: s.Camera,
		Tags:   []string{},
		Exif:   Exposure{Width: m.Width, Height: m.Height},
	}, nil
}

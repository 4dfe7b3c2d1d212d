package fotosett

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// imageExts are the source extensions the scanner accepts.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".tiff": true,
}

// Find lists eligible image files at the top level of root, sorted by
// name. Subdirectories are not descended into. A missing root is created
// and yields an empty list: a first-run bootstrap, not an error.
func Find(root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		klog.Infof("creating %s: does not exist", root)
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
		return nil, nil
	}

	des, err := godirwalk.ReadDirents(root, nil)
	if err != nil {
		return nil, fmt.Errorf("read dirents: %w", err)
	}

	found := []string{}
	for _, de := range des {
		if !de.IsRegular() {
			continue
		}
		if !imageExts[strings.ToLower(filepath.Ext(de.Name()))] {
			continue
		}
		found = append(found, filepath.Join(root, de.Name()))
	}

	sort.Strings(found)
	return found, nil
}

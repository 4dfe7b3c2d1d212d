package fotosett

import (
	"fmt"
	"regexp"
	"strings"

	"k8s.io/klog/v2"
)

// exifDateRe matches EXIF's native date-time form, e.g. "2021:06:15 10:30:00".
var exifDateRe = regexp.MustCompile(`(\d{4}):(\d{2}):(\d{2}) \d{2}:\d{2}:\d{2}`)

// makerRes are tried in order and the first match wins. Each pattern is a
// manufacturer token immediately followed by a NUL-terminated model
// string. Apple and samsung vary their casing in the wild; everyone else
// is matched exactly.
var makerRes = []*regexp.Regexp{
	makerRe("Canon", false),
	makerRe("NIKON CORPORATION", false),
	makerRe("NIKON", false),
	makerRe("SONY", false),
	makerRe("FUJIFILM", false),
	makerRe("OLYMPUS", false),
	makerRe("Panasonic", false),
	makerRe("RICOH", false),
	makerRe("Apple", true),
	makerRe("samsung", true),
}

func makerRe(token string, fold bool) *regexp.Regexp {
	p := `(` + regexp.QuoteMeta(token) + `)\x00([^\x00]+)\x00`
	if fold {
		p = `(?i)` + p
	}
	return regexp.MustCompile(p)
}

// Scanned holds the fields the heuristic scan can produce.
type Scanned struct {
	Date   string
	Camera string
}

// scanExif pulls a capture date and camera name out of a raw EXIF blob.
// This is a text-pattern pass over the bytes, not an IFD decode; its
// misses and mismatches are part of the tool's observable behavior, and
// nothing that happens in here may fail the batch.
func scanExif(raw []byte) (s Scanned) {
	if len(raw) == 0 {
		return s
	}

	defer func() {
		if r := recover(); r != nil {
			klog.V(1).Infof("exif scan panic: %v", r)
		}
	}()

	if m := exifDateRe.FindSubmatch(raw); m != nil {
		s.Date = fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	}

	for _, re := range makerRes {
		m := re.FindSubmatch(raw)
		if m == nil {
			continue
		}
		s.Camera = strings.TrimSpace(string(m[1])) + " " + strings.TrimSpace(string(m[2]))
		break
	}

	return s
}

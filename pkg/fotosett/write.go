package fotosett

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// recordLess implements the collection order: dated records first,
// newest capture date first (a plain string compare, valid because dates
// are zero-padded ISO), undated records last in ascending order of their
// primary reference.
func recordLess(aDate, aRef, bDate, bRef string) bool {
	if aDate != "" && bDate != "" {
		return aDate > bDate
	}
	if aDate != "" || bDate != "" {
		return aDate != ""
	}
	return aRef < bRef
}

func sortPhotos(ps []*Photo) {
	sort.SliceStable(ps, func(i, j int) bool {
		return recordLess(ps[i].Date, ps[i].Thumb, ps[j].Date, ps[j].Thumb)
	})
}

func sortEntries(es []*Entry) {
	sort.SliceStable(es, func(i, j int) bool {
		return recordLess(es[i].Date, es[i].Src, es[j].Date, es[j].Src)
	})
}

// WriteCollection serializes the full ordered collection as
// pretty-printed JSON, creating the output directory if needed. Any
// previous file is replaced in full; manual edits to it do not survive
// a rerun.
func WriteCollection(path string, collection any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	bs, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	bs = append(bs, '\n')

	if err := os.WriteFile(path, bs, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

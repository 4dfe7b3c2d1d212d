// Package fotosett turns a folder of source photographs into resized WebP
// derivatives and a JSON sidecar describing each photo.
package fotosett

import "path/filepath"

// Config holds configuration for a fotosett run.
type Config struct {
	InDir    string `yaml:"in_dir"`
	OutDir   string `yaml:"out_dir"`
	DataFile string `yaml:"data_file"`
	WebRoot  string `yaml:"web_root"`
	Thumb    Target `yaml:"thumb"`
	Display  Target `yaml:"display"`
}

// Target describes one derivative: the width to resize to, the WebP
// quality to encode at, and the subdirectory it lands in.
type Target struct {
	Width   int    `yaml:"width"`
	Quality int    `yaml:"quality"`
	Dir     string `yaml:"dir"`
}

// DataPath returns the JSON sidecar path, resolving DataFile against OutDir.
func (c *Config) DataPath() string {
	if filepath.IsAbs(c.DataFile) {
		return c.DataFile
	}
	return filepath.Join(c.OutDir, c.DataFile)
}

// Exposure mirrors the exif block of a sidecar record. Width and Height
// always come from the decoded source image, never from a derivative.
type Exposure struct {
	FocalLength string `json:"focalLength"`
	Aperture    string `json:"aperture"`
	ISO         *int64 `json:"iso"`
	Shutter     string `json:"shutter"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Photo is one record of the derivative pipeline: a thumbnail and a
// display copy per source image. Caption and Tags are curation
// placeholders and are never filled in by this tool.
type Photo struct {
	Thumb   string   `json:"thumb"`
	Display string   `json:"display"`
	Alt     string   `json:"alt"`
	Caption string   `json:"caption"`
	Date    string   `json:"date"`
	Camera  string   `json:"camera"`
	Tags    []string `json:"tags"`
	Exif    Exposure `json:"exif"`
}

// Entry is one record of the listing pipeline, which references the
// source image directly instead of producing derivatives.
type Entry struct {
	Src     string   `json:"src"`
	Alt     string   `json:"alt"`
	Caption string   `json:"caption"`
	Date    string   `json:"date"`
	Camera  string   `json:"camera"`
	Tags    []string `json:"tags"`
	Exif    Exposure `json:"exif"`
}

// Stats aggregates a run for the final summary line.
type Stats struct {
	Processed    int
	Skipped      int
	SourceBytes  int64
	DerivedBytes int64
}

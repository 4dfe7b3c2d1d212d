// fotoliste writes the JSON sidecar for a photo directory without
// producing any derivative images: each record points at the source
// file's own web path.
package main

import (
	"flag"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"k8s.io/klog/v2"

	"github.com/joho/godotenv"

	fotosett "fotosett/pkg/fotosett"
)

var (
	inDir      = flag.String("in", "", "Location of the source photo directory")
	dataFile   = flag.String("data", "", "Path of the JSON sidecar to write")
	webRoot    = flag.String("web-root", "", "Web path prefix used for src references")
	configFile = flag.String("config", "", "Optional YAML config file (or $FOTOSETT_CONFIG)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		klog.V(1).Infof("no .env file: %v", err)
	}

	path := *configFile
	if path == "" {
		path = os.Getenv("FOTOSETT_CONFIG")
	}

	c := fotosett.DefaultConfig()
	if path != "" {
		var err error
		c, err = fotosett.LoadConfig(path)
		if err != nil {
			klog.Exitf("config failed: %v", err)
		}
	}

	if *inDir != "" {
		c.InDir = *inDir
	}
	if *dataFile != "" {
		c.DataFile = *dataFile
	}
	if *webRoot != "" {
		c.WebRoot = *webRoot
	}

	if c.InDir == "" {
		klog.Exitf("--in is a required flag")
	}

	entries, st, err := fotosett.BuildListing(c)
	if err != nil {
		klog.Exitf("listing failed: %v", err)
	}

	if err := fotosett.WriteCollection(c.DataPath(), entries); err != nil {
		klog.Exitf("write failed: %v", err)
	}

	klog.Infof("wrote %d records to %s (%d skipped): %d source bytes",
		st.Processed, c.DataPath(), st.Skipped, st.SourceBytes)
}

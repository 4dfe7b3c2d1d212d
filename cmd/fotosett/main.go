package main

import (
	"flag"
	"fmt"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"k8s.io/klog/v2"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	fotosett "fotosett/pkg/fotosett"
)

var (
	inDir      = flag.String("in", "", "Location of the source photo directory")
	outDir     = flag.String("out", "", "Location of the output directory")
	dataFile   = flag.String("data", "", "Path of the JSON sidecar (default: photos.json under --out)")
	webRoot    = flag.String("web-root", "", "Web path prefix used for references in the sidecar")
	configFile = flag.String("config", "", "Optional YAML config file (or $FOTOSETT_CONFIG)")
	watchFlag  = flag.Bool("watch", false, "watch the source directory and rebuild on changes")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		klog.V(1).Infof("no .env file: %v", err)
	}

	c, err := loadConfig()
	if err != nil {
		klog.Exitf("config failed: %v", err)
	}

	if err := run(c); err != nil {
		klog.Exitf("build failed: %v", err)
	}

	if *watchFlag {
		if err := watch(c); err != nil {
			klog.Exitf("watch failed: %v", err)
		}
	}
}

func loadConfig() (*fotosett.Config, error) {
	path := *configFile
	if path == "" {
		path = os.Getenv("FOTOSETT_CONFIG")
	}

	c := fotosett.DefaultConfig()
	if path != "" {
		var err error
		c, err = fotosett.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if *inDir != "" {
		c.InDir = *inDir
	}
	if *outDir != "" {
		c.OutDir = *outDir
	}
	if *dataFile != "" {
		c.DataFile = *dataFile
	}
	if *webRoot != "" {
		c.WebRoot = *webRoot
	}

	if c.InDir == "" {
		return nil, fmt.Errorf("--in is a required flag")
	}
	if c.OutDir == "" {
		return nil, fmt.Errorf("--out is a required flag")
	}

	return c, nil
}

func run(c *fotosett.Config) error {
	photos, st, err := fotosett.Build(c)
	if err != nil {
		return err
	}

	if err := fotosett.WriteCollection(c.DataPath(), photos); err != nil {
		return err
	}

	klog.Infof("wrote %d records to %s (%d skipped): %d source bytes -> %d derivative bytes",
		st.Processed, c.DataPath(), st.Skipped, st.SourceBytes, st.DerivedBytes)
	return nil
}

// watch rebuilds whenever the source directory changes.
func watch(c *fotosett.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(c.InDir); err != nil {
		return fmt.Errorf("watch %s: %w", c.InDir, err)
	}

	klog.Infof("watching %s ...", c.InDir)
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				klog.Infof("event: %s", event)
				if err := run(c); err != nil {
					klog.Errorf("rebuild failed: %v", err)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", err)
		}
	}
}

package main

import (
	"flag"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"

	"k8s.io/klog/v2"

	"github.com/fsnotify/fsnotify"
	"github.com/rutenett/rutenett/pkg/rutenett"
)

var (
	inDir      = flag.String("in", ".", "directory containing input images")
	outPath    = flag.String("out", "collage_output.jpg", "output path for the collage")
	columns    = flag.Int("columns", 5, "number of columns in the grid")
	width      = flag.Int("width", 350, "cell width in pixels")
	height     = flag.Int("height", 600, "cell height in pixels")
	padding    = flag.Int("padding", 10, "gap between cells in pixels")
	background = flag.String("background", "white", "canvas background (color name or #RRGGBB)")
	watchFlag  = flag.Bool("watch", false, "watch for changes to the input directory and rebuild")
	listen     = flag.Bool("listen", false, "serve the output directory via HTTP")
	addr       = flag.String("addr", "localhost:12801", "host:port to bind to in listen mode")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	c := &rutenett.Config{
		InDir:      *inDir,
		OutPath:    *outPath,
		Columns:    *columns,
		CellWidth:  *width,
		CellHeight: *height,
		Padding:    *padding,
		Background: *background,
	}

	if err := c.Validate(); err != nil {
		klog.Exitf("invalid flags: %v", err)
	}

	r, err := rutenett.Build(c)
	if err != nil {
		klog.Exitf("build failed: %v", err)
	}

	if r.Total == 0 {
		klog.Infof("nothing to do")
	}

	var wg sync.WaitGroup
	if *watchFlag {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := watch(c); err != nil {
				klog.Exitf("watch failed: %v", err)
			}
		}()
	}

	if *listen {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serve(filepath.Dir(*outPath), *addr)
		}()
	}

	wg.Wait()
}

// serve serves a static directory via HTTP
func serve(path string, addr string) {
	fs := http.FileServer(http.Dir(path))
	http.Handle("/", fs)

	klog.Infof("Listening on %s...", addr)
	err := http.ListenAndServe(addr, nil)
	if err != nil {
		klog.Exitf("listen failed: %v", err)
	}
}

// watch rebuilds the collage whenever the input directory changes.
// Events for the output file itself are ignored so writing the collage
// into the watched directory does not retrigger a build.
func watch(c *rutenett.Config) error {
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
			if samePath(event.Name, c.OutPath) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				klog.Infof("event: %s", event)
				if _, err := rutenett.Build(c); err != nil {
					klog.Exitf("build failed: %v", err)
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

func samePath(a string, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return a == b
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return a == b
	}
	return aa == bb
}

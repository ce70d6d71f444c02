package rutenett

import (
	"fmt"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"k8s.io/klog/v2"
)

// Build runs the collage pipeline: scan the input directory, fit each
// image to its cell, composite everything onto one canvas, and write
// the result. Images that fail to decode are logged and skipped; their
// cells are left showing background. Any error returned here is fatal
// and nothing has been written.
//
// An empty directory is not an error: Build logs the fact and returns
// without creating an output file.
func Build(c *Config) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Resolved before any image is read so a bad color fails fast.
	bg, err := ParseColor(c.Background)
	if err != nil {
		return nil, err
	}

	files, err := Find(c.InDir)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	res := &Result{Total: len(files), OutPath: c.OutPath}
	if len(files) == 0 {
		klog.Infof("no supported images found in %s (supported: jpg, jpeg, png, bmp, gif, webp)", c.InDir)
		return res, nil
	}

	grid := NewGrid(len(files), c.Columns, c.CellWidth, c.CellHeight, c.Padding)
	canvas := NewCanvas(grid, bg)
	res.Width = grid.Width()
	res.Height = grid.Height()

	klog.Infof("creating collage with %d images on a %dx%d canvas", len(files), grid.Width(), grid.Height())

	for i, path := range files {
		klog.Infof("[%d/%d] %s", i+1, len(files), filepath.Base(path))

		img, err := imgio.Open(path)
		if err != nil {
			klog.Errorf("skipping %s: %v", filepath.Base(path), err)
			res.Skipped++
			continue
		}

		Paste(canvas, Fit(img, c.CellWidth, c.CellHeight), grid, i)
		res.Placed++
	}

	if err := Write(canvas, c.OutPath); err != nil {
		return nil, fmt.Errorf("write %s: %w", c.OutPath, err)
	}

	klog.Infof("collage saved to %s", c.OutPath)
	return res, nil
}

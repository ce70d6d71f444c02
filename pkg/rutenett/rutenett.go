// Package rutenett arranges the images in a directory into a fixed-grid
// photo collage. Each image is shrunk and center-cropped to a uniform
// cell, cells are laid out row by row across a padded canvas, and the
// canvas is written out as a single JPEG.
package rutenett

import "fmt"

// Config holds the collage parameters.
type Config struct {
	InDir      string // directory scanned for input images
	OutPath    string // where the collage JPEG is written
	Columns    int
	CellWidth  int
	CellHeight int
	Padding    int    // gap between adjacent cells, in pixels
	Background string // color name or #RGB/#RRGGBB hex
}

// Validate rejects parameter combinations that could never produce a
// collage. It runs before any file is touched.
func (c *Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1 (got %d)", c.Columns)
	}
	if c.CellWidth < 1 || c.CellHeight < 1 {
		return fmt.Errorf("cell size must be positive (got %dx%d)", c.CellWidth, c.CellHeight)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding cannot be negative (got %d)", c.Padding)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// Result summarizes one collage build.
type Result struct {
	Total   int // images discovered in the input directory
	Placed  int // images composited onto the canvas
	Skipped int // images that failed to decode
	Width   int // canvas width in pixels (0 when Total is 0)
	Height  int
	OutPath string
}

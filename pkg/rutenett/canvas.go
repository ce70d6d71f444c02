package rutenett

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Grid describes the collage layout: a fixed-size cell repeated over a
// rows×columns lattice with uniform padding between adjacent cells.
type Grid struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
	Padding    int
}

// NewGrid computes the layout for n images across the given number of
// columns. The final row may be partially filled.
func NewGrid(n int, columns int, cellWidth int, cellHeight int, padding int) Grid {
	return Grid{
		Columns:    columns,
		Rows:       (n + columns - 1) / columns,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Padding:    padding,
	}
}

// Width returns the canvas width in pixels. Padding sits between
// cells only, not along the canvas edges.
func (g Grid) Width() int {
	return g.Columns*(g.CellWidth+g.Padding) - g.Padding
}

// Height returns the canvas height in pixels.
func (g Grid) Height() int {
	return g.Rows*(g.CellHeight+g.Padding) - g.Padding
}

// Offset returns the top-left pixel position of cell i, counted in
// scan order: left to right, then top to bottom.
func (g Grid) Offset(i int) image.Point {
	col := i % g.Columns
	row := i / g.Columns
	return image.Pt(col*(g.CellWidth+g.Padding), row*(g.CellHeight+g.Padding))
}

// NewCanvas allocates the collage canvas, filled with the background
// color.
func NewCanvas(g Grid, bg color.Color) *image.RGBA {
	c := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	draw.Draw(c, c.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return c
}

// Paste copies a fitted cell onto the canvas at cell index i. Cells
// never overlap, so paste order does not matter.
func Paste(canvas *image.RGBA, cell image.Image, g Grid, i int) {
	off := g.Offset(i)
	r := image.Rectangle{Min: off, Max: off.Add(cell.Bounds().Size())}
	draw.Draw(canvas, r, cell, cell.Bounds().Min, draw.Src)
}

// ParseColor interprets s as an SVG 1.1 color name ("white",
// "steelblue", ...) or a #RGB/#RRGGBB hex triplet.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	if hex, ok := strings.CutPrefix(name, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
			}
		}
	}

	return color.RGBA{}, fmt.Errorf("unrecognized background color %q (use a color name or #RRGGBB)", s)
}

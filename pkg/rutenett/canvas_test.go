package rutenett

import (
	"image"
	"image/color"
	"testing"
)

func TestGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		columns  int
		cellW    int
		cellH    int
		padding  int
		wantW    int
		wantH    int
		wantRows int
	}{
		{"defaults, 12 images", 12, 5, 350, 600, 10, 1790, 1820, 3},
		{"single image still spans all columns", 1, 5, 350, 600, 10, 1790, 600, 1},
		{"exactly one row", 5, 5, 350, 600, 10, 1790, 600, 1},
		{"one spills to second row", 6, 5, 350, 600, 10, 1790, 1210, 2},
		{"zero padding", 4, 2, 10, 20, 0, 20, 40, 2},
		{"single column", 3, 1, 100, 50, 5, 100, 160, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.n, tc.columns, tc.cellW, tc.cellH, tc.padding)
			if g.Rows != tc.wantRows {
				t.Errorf("rows: got %d, want %d", g.Rows, tc.wantRows)
			}
			if g.Width() != tc.wantW {
				t.Errorf("width: got %d, want %d", g.Width(), tc.wantW)
			}
			if g.Height() != tc.wantH {
				t.Errorf("height: got %d, want %d", g.Height(), tc.wantH)
			}
		})
	}
}

func TestGrid_Offset(t *testing.T) {
	g := NewGrid(6, 3, 10, 10, 5)

	tests := []struct {
		i    int
		want image.Point
	}{
		{0, image.Pt(0, 0)},
		{1, image.Pt(15, 0)},
		{2, image.Pt(30, 0)},
		{3, image.Pt(0, 15)},
		{4, image.Pt(15, 15)},
	}

	for _, tc := range tests {
		if got := g.Offset(tc.i); got != tc.want {
			t.Errorf("Offset(%d): got %v, want %v", tc.i, got, tc.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"white", color.RGBA{255, 255, 255, 255}},
		{"Black", color.RGBA{0, 0, 0, 255}},
		{" red ", color.RGBA{255, 0, 0, 255}},
		{"steelblue", color.RGBA{70, 130, 180, 255}},
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"#1a2b3c", color.RGBA{26, 43, 60, 255}},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12345", "#gggggg", "123456", "#"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}

func TestNewCanvas_BackgroundFill(t *testing.T) {
	g := NewGrid(2, 2, 4, 4, 2)
	bg := color.RGBA{255, 0, 0, 255}
	c := NewCanvas(g, bg)

	if c.Bounds().Dx() != 10 || c.Bounds().Dy() != 4 {
		t.Fatalf("canvas is %dx%d, want 10x4", c.Bounds().Dx(), c.Bounds().Dy())
	}
	for _, p := range []image.Point{{0, 0}, {9, 3}, {5, 2}} {
		if got := c.RGBAAt(p.X, p.Y); got != bg {
			t.Errorf("pixel %v: got %v, want %v", p, got, bg)
		}
	}
}

func TestPaste_PlacesCellAndPreservesPadding(t *testing.T) {
	g := NewGrid(4, 2, 4, 4, 2)
	bg := color.RGBA{255, 255, 255, 255}
	canvas := NewCanvas(g, bg)

	blue := color.RGBA{0, 0, 255, 255}
	cell := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell.SetRGBA(x, y, blue)
		}
	}

	Paste(canvas, cell, g, 3) // col 1, row 1 -> offset (6,6)

	if got := canvas.RGBAAt(6, 6); got != blue {
		t.Errorf("cell pixel: got %v, want %v", got, blue)
	}
	if got := canvas.RGBAAt(9, 9); got != blue {
		t.Errorf("cell far corner: got %v, want %v", got, blue)
	}
	if got := canvas.RGBAAt(5, 6); got != bg {
		t.Errorf("padding pixel: got %v, want background %v", got, bg)
	}
	if got := canvas.RGBAAt(0, 0); got != bg {
		t.Errorf("untouched cell: got %v, want background %v", got, bg)
	}
}

func TestPaste_UndersizedCellLeavesBackground(t *testing.T) {
	g := NewGrid(1, 1, 8, 8, 0)
	bg := color.RGBA{255, 255, 255, 255}
	canvas := NewCanvas(g, bg)

	green := color.RGBA{0, 255, 0, 255}
	small := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			small.SetRGBA(x, y, green)
		}
	}

	Paste(canvas, small, g, 0)

	if got := canvas.RGBAAt(1, 1); got != green {
		t.Errorf("pasted pixel: got %v, want %v", got, green)
	}
	if got := canvas.RGBAAt(6, 6); got != bg {
		t.Errorf("cell remainder: got %v, want background %v", got, bg)
	}
}

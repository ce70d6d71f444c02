package rutenett

import (
	"image"
	"image/color"
	"math"

	// imgio registers jpeg and png; the remaining supported formats
	// need their decoders pulled in here.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/transform"
	"k8s.io/klog/v2"
)

// Fit produces the cell raster for one source image: flatten to opaque
// RGB, shrink to fit within w×h preserving aspect ratio, then
// center-crop to the cell bounds.
//
// Sources are never enlarged: an image smaller than the cell comes
// back at its own size and the compositor leaves the remainder of the
// cell showing background.
func Fit(src image.Image, w int, h int) *image.RGBA {
	img := flatten(src)

	sw := img.Bounds().Dx()
	sh := img.Bounds().Dy()

	scale := math.Min(float64(w)/float64(sw), float64(h)/float64(sh))
	if scale < 1 {
		nw := max(1, int(math.Round(float64(sw)*scale)))
		nh := max(1, int(math.Round(float64(sh)*scale)))
		klog.V(1).Infof("resizing %dx%d -> %dx%d", sw, sh, nw, nh)
		img = transform.Resize(img, nw, nh, transform.Lanczos)
	}

	cw := img.Bounds().Dx()
	ch := img.Bounds().Dy()
	if cw == w && ch == h {
		return img
	}

	left := max(0, (cw-w)/2)
	top := max(0, (ch-h)/2)
	rect := image.Rect(left, top, min(left+w, cw), min(top+h, ch))
	return transform.Crop(img, rect)
}

// flatten copies src into an opaque RGBA raster. Alpha is dropped, not
// composited: a translucent pixel keeps its straight color channels
// and becomes fully opaque.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}

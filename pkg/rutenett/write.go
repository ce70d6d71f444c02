package rutenett

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
)

// jpegQuality is the fixed encode quality for the output collage.
const jpegQuality = 95

// Write encodes the canvas as a JPEG and persists it to path, creating
// parent directories as needed. The output is JPEG regardless of the
// path's extension.
func Write(canvas image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	if err := imgio.Save(path, canvas, imgio.JPEGEncoder(jpegQuality)); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}

package rutenett

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// imageExtensions are the file suffixes picked up by Find (lowercase,
// with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".webp": true,
}

// Find lists the supported image files directly inside dir, sorted
// lexicographically so processing order is stable across runs.
// Dotfiles and subdirectories are ignored. A missing directory is
// created rather than treated as an error; the listing is then empty.
func Find(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		klog.Infof("creating missing input directory: %s", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
		return nil, nil
	}

	names, err := godirwalk.ReadDirnames(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var found []string
	for _, name := range names {
		if name[0] == '.' {
			continue
		}

		if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			continue
		}

		klog.V(1).Infof("found %s", path)
		found = append(found, path)
	}

	sort.Strings(found)
	return found, nil
}

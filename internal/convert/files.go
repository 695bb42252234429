package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// SupportedExtensions lists the input types the converter accepts.
var SupportedExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tiff", ".mp4",
}

// IsSupported reports whether the file name has a supported extension,
// case-insensitively.
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.Contains(SupportedExtensions, ext)
}

// FindSupportedFiles returns every regular file in dir whose extension
// case-insensitively matches a supported type. os.ReadDir sorts by file
// name, which gives batch runs a stable order.
func FindSupportedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

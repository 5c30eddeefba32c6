// Package output handles file naming and writing for rendered posts.
// Filenames are derived from the document location: remote documents are
// named after host and path (example_com_blog_post), local files after
// their base name without extension.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write writes data for the document at location and returns the path.
func (w *Writer) Write(location string, data []byte, ext string) (string, error) {
	name := Filename(location)
	fullPath := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// Filename converts a document location into a flat filename without
// extension.
// Example: https://example.com/blog/post.md → example_com_blog_post
// Example: ./posts/URL_ Los Algodones.md → URL__Los_Algodones
func Filename(location string) string {
	parsed, err := url.Parse(location)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != "" {
		parts := []string{sanitize(parsed.Host)}
		p := strings.Trim(parsed.Path, "/")
		p = strings.TrimSuffix(p, path.Ext(p))
		if p != "" {
			for _, seg := range strings.Split(p, "/") {
				parts = append(parts, sanitize(seg))
			}
		}
		return strings.Join(parts, "_")
	}

	base := filepath.Base(strings.TrimPrefix(location, "file://"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "post"
	}
	return sanitize(base)
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

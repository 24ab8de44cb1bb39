// Package domain provides core models and ports for the presentation-to-images converter.
package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	pdfExtension = ".pdf"
	pageImageFmt = "page_%03d.png"
)

// Layout is the filesystem layout derived from a presentation path.
type Layout struct {
	Presentation string
	Dir          string
	BaseName     string
	PDFPath      string // Intermediate PDF written by the external converter
	OutputDir    string // Directory holding page_NNN.png files
}

// NewLayout derives the intermediate PDF path and the output directory for a presentation.
// Both are siblings of the input file and share its base name.
func NewLayout(presentationPath string) Layout {
	dir := filepath.Dir(presentationPath)
	file := filepath.Base(presentationPath)
	base := strings.TrimSuffix(file, filepath.Ext(file))

	return Layout{
		Presentation: presentationPath,
		Dir:          dir,
		BaseName:     base,
		PDFPath:      filepath.Join(dir, base+pdfExtension),
		OutputDir:    filepath.Join(dir, base),
	}
}

// PageImageName returns the file name for a 1-based page index.
func PageImageName(index int) string {
	return fmt.Sprintf(pageImageFmt, index)
}

// PageImagePath returns the full path of a page image inside outputDir.
func PageImagePath(outputDir string, index int) string {
	return filepath.Join(outputDir, PageImageName(index))
}

// PageImage describes one rendered page written to disk.
type PageImage struct {
	Index  int
	Path   string
	Width  int
	Height int
	Bytes  int64
}

// Result is the outcome of converting a single presentation.
type Result struct {
	Layout Layout
	Pages  []PageImage
}

// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes an A4 PDF with one titled slide per page to path.
func WritePDF(t testing.TB, path string, pages int) {
	t.Helper()

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 24)

	for i := 1; i <= pages; i++ {
		pdf.AddPage()
		pdf.Cell(0, 20, fmt.Sprintf("Slide %d", i))
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing PDF fixture %s: %v", path, err)
	}
}

// PageFiles lists the file names in dir, failing the test if dir is unreadable.
func PageFiles(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}

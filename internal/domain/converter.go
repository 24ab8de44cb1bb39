package domain

import "context"

// PDFConverter defines the interface for tools that turn a presentation into a PDF.
type PDFConverter interface {
	// ConvertToPDF writes <dir>/<base>.pdf next to the presentation.
	ConvertToPDF(ctx context.Context, presentationPath string) error

	// Name returns the converter name (e.g., "unoconv", "soffice").
	Name() string
}

// Rasterizer defines the interface for rendering PDF pages to image files.
type Rasterizer interface {
	// Rasterize renders every page of pdfPath into outputDir, creating it if needed.
	Rasterize(ctx context.Context, pdfPath, outputDir string) ([]PageImage, error)
}

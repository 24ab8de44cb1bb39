// Package pipeline ties the PDF converter and the rasterizer together for one presentation.
package pipeline

import (
	"context"
	"fmt"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/ppt2images/internal/domain"
)

// Pipeline converts a presentation to PDF and then to page images.
type Pipeline struct {
	converter  domain.PDFConverter
	rasterizer domain.Rasterizer
	log        logger.ILogger
}

// New creates a new pipeline.
func New(converter domain.PDFConverter, rasterizer domain.Rasterizer, log logger.ILogger) *Pipeline {
	return &Pipeline{
		converter:  converter,
		rasterizer: rasterizer,
		log:        log,
	}
}

// Run converts presentationPath into <dir>/<base>/page_NNN.png via <dir>/<base>.pdf.
// The intermediate PDF is left in place and nothing is cleaned up on failure.
func (p *Pipeline) Run(ctx context.Context, presentationPath string) (*domain.Result, error) {
	layout := domain.NewLayout(presentationPath)

	p.log.Infof("Converting %s to PDF with %s...", presentationPath, p.converter.Name())

	if err := p.converter.ConvertToPDF(ctx, presentationPath); err != nil {
		return nil, fmt.Errorf("failed to convert %s to PDF: %w", presentationPath, err)
	}

	p.log.Infof("Rasterizing %s into %s", layout.PDFPath, layout.OutputDir)

	pages, err := p.rasterizer.Rasterize(ctx, layout.PDFPath, layout.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %s: %w", layout.PDFPath, err)
	}

	return &domain.Result{
		Layout: layout,
		Pages:  pages,
	}, nil
}

package converters

import (
	"context"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/ppt2images/internal/domain"
)

// SofficeConverter converts presentations to PDF with a headless LibreOffice.
type SofficeConverter struct {
	binary string
	runner CommandRunner
	log    logger.ILogger
}

// NewSofficeConverter creates a new LibreOffice converter.
func NewSofficeConverter(binary string, runner CommandRunner, log logger.ILogger) *SofficeConverter {
	return &SofficeConverter{
		binary: binary,
		runner: runner,
		log:    log,
	}
}

// Name returns the converter name.
func (c *SofficeConverter) Name() string {
	return ToolSoffice
}

// ConvertToPDF runs soffice with --outdir pinned to the input's directory so the
// PDF lands where unoconv would put it.
func (c *SofficeConverter) ConvertToPDF(ctx context.Context, presentationPath string) error {
	layout := domain.NewLayout(presentationPath)

	return runTool(ctx, c.runner, c.log, layout.PDFPath, c.binary,
		"--headless", "--convert-to", "pdf", "--outdir", layout.Dir, presentationPath)
}

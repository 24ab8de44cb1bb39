package converters

import (
	"context"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/ppt2images/internal/domain"
)

// UnoconvConverter converts presentations to PDF with unoconv.
type UnoconvConverter struct {
	binary string
	runner CommandRunner
	log    logger.ILogger
}

// NewUnoconvConverter creates a new unoconv converter.
func NewUnoconvConverter(binary string, runner CommandRunner, log logger.ILogger) *UnoconvConverter {
	return &UnoconvConverter{
		binary: binary,
		runner: runner,
		log:    log,
	}
}

// Name returns the converter name.
func (c *UnoconvConverter) Name() string {
	return ToolUnoconv
}

// ConvertToPDF runs `unoconv -f pdf <input>`. unoconv writes the PDF next to the input.
func (c *UnoconvConverter) ConvertToPDF(ctx context.Context, presentationPath string) error {
	pdfPath := domain.NewLayout(presentationPath).PDFPath

	return runTool(ctx, c.runner, c.log, pdfPath, c.binary, "-f", "pdf", presentationPath)
}

// Package converters provides implementations that turn presentations into PDFs with external tools.
package converters

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/ppt2images/internal/domain"
)

// Supported converter tools.
const (
	ToolUnoconv = "unoconv"
	ToolSoffice = "soffice"

	toolLibreOffice = "libreoffice"
)

// CommandRunner runs an external command and returns its combined output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run blocks until the command exits. A non-zero exit is returned as *exec.ExitError.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// NormalizeTool trims and lowercases a tool name and folds the libreoffice alias into soffice.
func NormalizeTool(tool string) string {
	name := strings.ToLower(strings.TrimSpace(tool))
	if name == toolLibreOffice {
		return ToolSoffice
	}

	return name
}

// IsSupported reports whether tool names a converter New can build.
func IsSupported(tool string) bool {
	switch NormalizeTool(tool) {
	case ToolUnoconv, ToolSoffice:
		return true
	default:
		return false
	}
}

// New returns the converter for the named tool. An empty binary defaults to the normalized tool name.
func New(tool, binary string, log logger.ILogger) (domain.PDFConverter, error) {
	name := NormalizeTool(tool)
	if binary == "" {
		binary = name
	}

	switch name {
	case ToolUnoconv:
		return NewUnoconvConverter(binary, ExecRunner{}, log), nil
	case ToolSoffice:
		return NewSofficeConverter(binary, ExecRunner{}, log), nil
	default:
		return nil, domain.ConfigError(
			fmt.Sprintf("unsupported converter: %s (supported: %s, %s)", tool, ToolUnoconv, ToolSoffice), nil)
	}
}

// runTool executes the converter and checks that it left a PDF at pdfPath.
func runTool(ctx context.Context, runner CommandRunner, log logger.ILogger, pdfPath, binary string, args ...string) error {
	log.Infof("Running %s %s", binary, strings.Join(args, " "))

	output, err := runner.Run(ctx, binary, args...)
	logOutput(log, binary, output)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.ProcessError(
				fmt.Sprintf("%s exited with status %d: %s", binary, exitErr.ExitCode(), strings.TrimSpace(string(output))), err)
		}

		return domain.ProcessError(fmt.Sprintf("failed to run %s", binary), err)
	}

	// A zero exit does not guarantee the PDF landed where we expect it.
	if _, err := os.Stat(pdfPath); err != nil {
		return domain.ProcessError(fmt.Sprintf("%s produced no PDF at %s", binary, pdfPath), err)
	}

	return nil
}

func logOutput(log logger.ILogger, binary string, output []byte) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			log.Infof("%s: %s", binary, line)
		}
	}
}

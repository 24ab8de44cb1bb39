// Package cli provides the command-line interface for the presentation converter.
package cli

import (
	"context"
	"fmt"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/ppt2images/internal/adapters/converters"
	"github.com/GabrielNunesIT/ppt2images/internal/adapters/rasterizers"
	"github.com/GabrielNunesIT/ppt2images/internal/config"
	"github.com/GabrielNunesIT/ppt2images/internal/domain"
	"github.com/GabrielNunesIT/ppt2images/internal/pipeline"
	"github.com/spf13/cobra"
)

// Runner converts one presentation into page images.
type Runner interface {
	Run(ctx context.Context, presentationPath string) (*domain.Result, error)
}

// RunnerFactory builds a Runner from the effective configuration.
type RunnerFactory func(cfg *config.Config, log logger.ILogger) (Runner, error)

// CLI holds the command-line interface configuration.
type CLI struct {
	log          logger.ILogger
	cfg          *config.Config
	newRunner    RunnerFactory
	rootCmd      *cobra.Command
	converter    string
	converterBin string
}

// New creates a new CLI instance.
func New(log logger.ILogger, cfg *config.Config) *CLI {
	cli := &CLI{
		log:       log,
		cfg:       cfg,
		newRunner: NewPipeline,
	}

	cli.rootCmd = &cobra.Command{
		Use:   "ppt2images <presentation>",
		Short: "Convert a presentation into one PNG per slide",
		Long: "A CLI tool that converts a presentation (.ppt, .pptx, .odp, ...) to PDF with an external " +
			"converter and renders every page to <dir>/<name>/page_NNN.png.",
		Args:          cobra.ExactArgs(1),
		RunE:          cli.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.setupFlags()

	return cli
}

// NewPipeline wires the configured converter and the MuPDF rasterizer.
func NewPipeline(cfg *config.Config, log logger.ILogger) (Runner, error) {
	converter, err := converters.New(cfg.Converter.Tool, cfg.ConverterBinary(), log)
	if err != nil {
		return nil, err
	}

	return pipeline.New(converter, rasterizers.NewFitzRasterizer(log), log), nil
}

func (c *CLI) setupFlags() {
	c.rootCmd.Flags().StringVarP(&c.converter, "converter", "c", "", "Converter tool: unoconv, soffice (default from config)")
	c.rootCmd.Flags().StringVarP(&c.converterBin, "converter-bin", "b", "", "Path to the converter binary")
}

// Execute runs the CLI.
func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	cfg := c.effectiveConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner, err := c.newRunner(&cfg, c.log)
	if err != nil {
		return err
	}

	result, err := runner.Run(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	c.log.Infof("Successfully rendered %d page(s) into: %s", len(result.Pages), result.Layout.OutputDir)

	return nil
}

// effectiveConfig applies flag overrides on top of the loaded configuration.
func (c *CLI) effectiveConfig() config.Config {
	cfg := *c.cfg

	if c.converter != "" {
		cfg.Converter.Tool = c.converter
		// A different tool should not inherit the configured binary.
		if c.converterBin == "" {
			cfg.Converter.Binary = ""
		}
	}

	if c.converterBin != "" {
		cfg.Converter.Binary = c.converterBin
	}

	cfg.Normalize()

	return cfg
}

package config

import (
	"testing"

	"github.com/GabrielNunesIT/ppt2images/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "unoconv", cfg.Converter.Tool)
	assert.Equal(t, "unoconv", cfg.ConverterBinary())
}

func TestLoad_Env(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		binary     string
		wantTool   string
		wantBinary string
		wantErr    bool
	}{
		{
			name:       "tool and binary",
			tool:       "soffice",
			binary:     "/opt/lo/soffice",
			wantTool:   "soffice",
			wantBinary: "/opt/lo/soffice",
		},
		{
			name:       "padded tool is normalized",
			tool:       " SOFFICE ",
			wantTool:   "soffice",
			wantBinary: "soffice",
		},
		{
			name:       "libreoffice alias resolves to soffice binary",
			tool:       "LibreOffice",
			wantTool:   "soffice",
			wantBinary: "soffice",
		},
		{
			name:    "unknown tool",
			tool:    "pandoc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPrefix+"CONVERTER_TOOL", tt.tool)
			if tt.binary != "" {
				t.Setenv(EnvPrefix+"CONVERTER_BINARY", tt.binary)
			}

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsType(err, domain.ErrorTypeConfig))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTool, cfg.Converter.Tool)
			assert.Equal(t, tt.wantBinary, cfg.ConverterBinary())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tool    string
		wantErr bool
	}{
		{name: "unoconv", tool: "unoconv"},
		{name: "soffice", tool: "soffice"},
		{name: "libreoffice mixed case", tool: "LibreOffice"},
		{name: "padded", tool: " soffice "},
		{name: "empty", tool: "  ", wantErr: true},
		{name: "unknown", tool: "pandoc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Converter: ConverterConfig{Tool: tt.tool}}

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsType(err, domain.ErrorTypeConfig))
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{Converter: ConverterConfig{Tool: " LibreOffice ", Binary: " /usr/bin/soffice "}}
	cfg.Normalize()

	assert.Equal(t, "soffice", cfg.Converter.Tool)
	assert.Equal(t, "/usr/bin/soffice", cfg.Converter.Binary)
}

func TestConverterBinary(t *testing.T) {
	cfg := Config{Converter: ConverterConfig{Tool: "soffice", Binary: "/opt/libreoffice/program/soffice"}}
	assert.Equal(t, "/opt/libreoffice/program/soffice", cfg.ConverterBinary())

	cfg.Converter.Binary = ""
	assert.Equal(t, "soffice", cfg.ConverterBinary())

	// An un-normalized alias still resolves to a binary name found on PATH.
	cfg.Converter.Tool = "LibreOffice"
	assert.Equal(t, "soffice", cfg.ConverterBinary())
}

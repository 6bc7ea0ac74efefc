package breakout

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yacobolo/breakout/internal/grid"
)

// Generate is the main entry point. It builds the grid stylesheet and writes
// it to config.Output, or to standard output.
func Generate(config Config) (*GenerateResult, error) {
	if config.toStdout() {
		return GenerateTo(os.Stdout, config)
	}

	var buf bytes.Buffer
	result, err := GenerateTo(&buf, config)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(config.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(config.Output, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	result.OutputPath = config.Output

	config.Logger.With("path", config.Output).Info(fmt.Sprintf("wrote %d bytes", result.Bytes))
	return result, nil
}

// GenerateTo builds the grid and writes it to w in config.Format.
func GenerateTo(w io.Writer, config Config) (*GenerateResult, error) {
	if config.Format == "" {
		config.Format = FormatCSS
	}
	if err := validateStruct(config); err != nil {
		return nil, err
	}

	if config.Standalone {
		return generateStandalone(w, config)
	}

	// 1. Resolve and build; failures degrade inside Run
	out := grid.Run(grid.Options{
		Config:      config.Grid,
		Breakpoints: config.Breakpoints,
		Logger:      config.Logger,
	})

	result := &GenerateResult{
		Classes:           out.Utilities.Len(),
		Templates:         out.Templates.Len(),
		MediaBlocks:       len(out.Base.Media),
		ClassesByCategory: categorizeClasses(out.Utilities.Classes()),
		Degraded:          out.Degraded.String(),
	}
	result.Warnings = grid.Messages(out.Warnings)

	// 2. Serialize
	var buf bytes.Buffer
	switch config.Format {
	case FormatCSS:
		buf.WriteString(grid.RenderCSS(out))
	case FormatJSON:
		if err := WriteExportJSON(&buf, buildExport(out)); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		if err := WriteExportYAML(&buf, buildExport(out)); err != nil {
			return nil, err
		}
	}

	// 3. Write
	n, err := w.Write(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	result.Bytes = n

	if config.Verbose {
		config.Logger.WithFields(map[string]any{
			"classes":   result.Classes,
			"templates": result.Templates,
			"media":     result.MediaBlocks,
			"degraded":  result.Degraded,
		}).Info("generated breakout grid")
	}

	return result, nil
}

// generateStandalone writes the fixed stylesheet. It is only available as CSS.
func generateStandalone(w io.Writer, config Config) (*GenerateResult, error) {
	if config.Format != FormatCSS {
		return nil, fmt.Errorf("standalone output is css only, got %q", config.Format)
	}

	sheet, err := grid.BuildStandalone()
	if err != nil {
		return nil, fmt.Errorf("standalone: %w", err)
	}

	n, err := io.WriteString(w, sheet.CSS)
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return &GenerateResult{
		Classes:           len(sheet.Classes),
		Templates:         sheet.Templates.Len(),
		MediaBlocks:       len(sheet.Media),
		ClassesByCategory: categorizeClasses(sheet.Classes),
		Degraded:          grid.DegradedNone.String(),
		Bytes:             n,
	}, nil
}

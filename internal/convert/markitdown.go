package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the markitdown executable resolved from PATH when the
// configuration does not name one explicitly.
const DefaultBinary = "markitdown"

// CLIEngine converts documents by invoking the markitdown command line tool.
// The tool is treated as a black box: the staged file path goes in, markdown
// comes out on stdout, and any non-zero exit is surfaced as a conversion
// error with stderr folded into the message.
type CLIEngine struct {
	binary string
}

// NewCLIEngine creates an engine backed by the given markitdown binary.
// An empty path falls back to DefaultBinary.
func NewCLIEngine(binary string) *CLIEngine {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CLIEngine{binary: binary}
}

// Available reports whether the configured binary can be resolved. Purely
// advisory; Convert reports its own error when the binary is missing.
func (e *CLIEngine) Available() bool {
	_, err := exec.LookPath(e.binary)
	return err == nil
}

// Convert runs the tool against the staged file and returns its stdout as a
// markdown result.
func (e *CLIEngine) Convert(ctx context.Context, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, e.binary, path)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w", msg, err)
		}
		return nil, fmt.Errorf("running %s: %w", e.binary, err)
	}

	return MarkdownText(stdout.String()), nil
}

// Handlers enumerates the format converters the markitdown tool registers
// internally, as marker types whose names mirror the tool's converter
// classes. Discovery maps these names to file extensions.
func (e *CLIEngine) Handlers() []any {
	return []any{
		pdfConverter{},
		docxConverter{},
		xlsxConverter{},
		xlsConverter{},
		pptxConverter{},
		csvConverter{},
		htmlConverter{},
		epubConverter{},
		ipynbConverter{},
		imageConverter{},
		audioConverter{},
		outlookMsgConverter{},
		plainTextConverter{},
		zipConverter{},
		rssConverter{},
	}
}

// Marker types for the tool's registered converters. Only the type names
// matter; discovery lowercases them and scans for format markers.
type (
	pdfConverter        struct{}
	docxConverter       struct{}
	xlsxConverter       struct{}
	xlsConverter        struct{}
	pptxConverter       struct{}
	csvConverter        struct{}
	htmlConverter       struct{}
	epubConverter       struct{}
	ipynbConverter      struct{}
	imageConverter      struct{}
	audioConverter      struct{}
	outlookMsgConverter struct{}
	plainTextConverter  struct{}
	zipConverter        struct{}
	rssConverter        struct{}
)

package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

// Format is an output format of the CLI render command.
type Format string

const (
	FormatSVG    Format = "svg"
	FormatDOT    Format = "dot"
	FormatDOTSVG Format = "dot-svg"
	FormatPDF    Format = "pdf"
	FormatPNG    Format = "png"
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatDOT, FormatDOTSVG, FormatPDF, FormatPNG}

// ParseFormat parses a format name. The empty string is FormatSVG.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatSVG, nil
	}
	for _, f := range Formats {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be svg, dot, dot-svg, pdf, or png)", s)
}

// Ext returns the file extension for f. Graphviz-drawn SVG gets its own
// double extension so it never collides with FormatSVG output.
func (f Format) Ext() string {
	switch f {
	case FormatDOTSVG:
		return ".dot.svg"
	case FormatDOT:
		return ".dot"
	case FormatPDF:
		return ".pdf"
	case FormatPNG:
		return ".png"
	}
	return ".svg"
}

// Binary reports whether f produces non-text output.
func (f Format) Binary() bool { return f == FormatPDF || f == FormatPNG }

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}

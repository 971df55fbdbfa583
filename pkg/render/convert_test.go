package render

import (
	"testing"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatSVG, false},
		{"svg", FormatSVG, false},
		{"dot", FormatDOT, false},
		{"dot-svg", FormatDOTSVG, false},
		{"pdf", FormatPDF, false},
		{"png", FormatPNG, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %s, want INVALID_FORMAT", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExt(t *testing.T) {
	for f, want := range map[Format]string{
		FormatSVG:    ".svg",
		FormatDOTSVG: ".dot.svg",
		FormatDOT:    ".dot",
		FormatPDF:    ".pdf",
		FormatPNG:    ".png",
	} {
		if got := f.Ext(); got != want {
			t.Errorf("%s.Ext() = %q, want %q", f, got, want)
		}
	}
	if FormatSVG.Binary() || !FormatPNG.Binary() {
		t.Error("Binary() mismatch")
	}
}

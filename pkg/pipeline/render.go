package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/graphsvg/pkg/errors"
	"github.com/matzehuels/graphsvg/pkg/graph"
	"github.com/matzehuels/graphsvg/pkg/render"
	"github.com/matzehuels/graphsvg/pkg/render/dot"
	"github.com/matzehuels/graphsvg/pkg/render/svg"
)

// Render generates output artifacts in the requested formats. g must be
// valid; see [graph.Validate].
func Render(ctx context.Context, g *graph.Graph, opts Options) (map[render.Format][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	artifacts := make(map[render.Format][]byte, len(opts.Formats))
	var markup []byte
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case render.FormatSVG:
			data = staticSVG(&markup, g, opts)
		case render.FormatDOT:
			data = []byte(dot.ToDOT(g, opts.Settings))
		case render.FormatDOTSVG:
			data, err = dot.RenderSVG(ctx, dot.ToDOT(g, opts.Settings))
		case render.FormatPDF:
			data, err = render.ToPDF(ctx, staticSVG(&markup, g, opts))
		case render.FormatPNG:
			data, err = render.ToPNG(ctx, staticSVG(&markup, g, opts), opts.Scale)
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// staticSVG renders the static markup once per Render call.
func staticSVG(cached *[]byte, g *graph.Graph, opts Options) []byte {
	if *cached == nil {
		*cached = []byte(svg.Render(opts.ElementID, g, opts.Settings))
	}
	return *cached
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsvg/pkg/graph"
	"github.com/matzehuels/graphsvg/pkg/io"
	"github.com/matzehuels/graphsvg/pkg/pipeline"
)

// settingsFlags binds the drawing settings shared by render and update.
// Explicit flags override values from the --settings file, which override
// the pipeline defaults.
type settingsFlags struct {
	file     string
	mode     string
	settings graph.Settings
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	f.settings = pipeline.DefaultSettings()
	s := &f.settings

	flags := cmd.Flags()
	flags.StringVar(&f.file, "settings", "", "TOML settings file")
	flags.Float64Var(&s.Width, "width", s.Width, "canvas width")
	flags.Float64Var(&s.Height, "height", s.Height, "canvas height")
	flags.Float64Var(&s.VertexRadius, "radius", s.VertexRadius, "vertex radius")
	flags.Float64Var(&s.VertexStrokeWidth, "vertex-stroke", s.VertexStrokeWidth, "vertex outline width")
	flags.Float64Var(&s.EdgeWidth, "edge-width", s.EdgeWidth, "edge line width")
	flags.StringVar(&s.ViewBox, "viewbox", "", "viewBox attribute of the root element")
	flags.StringVar(&s.EdgeColor, "edge-color", "", "edge color (default "+graph.DefaultEdgeColor+")")
	flags.StringVar(&s.VertexFillColor, "fill-color", "", "vertex fill color (default "+graph.DefaultVertexFillColor+")")
	flags.StringVar(&s.VertexStrokeColor, "stroke-color", "", "vertex outline color (default "+graph.DefaultVertexStrokeColor+")")
	flags.StringVar(&s.LabelColor, "label-color", "", "label color (default "+graph.DefaultLabelColor+")")
	flags.StringVar(&f.mode, "mode", string(graph.ModeAuto), "vertex decoration: auto, images, labels, none")
}

// resolve merges defaults, the settings file and the flags the user set.
func (f *settingsFlags) resolve(cmd *cobra.Command) (graph.Settings, error) {
	mode, err := graph.ParseMode(f.mode)
	if err != nil {
		return graph.Settings{}, err
	}
	if f.file == "" {
		s := f.settings
		s.Mode = mode
		return s, nil
	}

	merged := pipeline.DefaultSettings()
	if err := io.LoadSettings(f.file, &merged); err != nil {
		return graph.Settings{}, err
	}

	flags := cmd.Flags()
	overrides := []struct {
		name  string
		apply func()
	}{
		{"width", func() { merged.Width = f.settings.Width }},
		{"height", func() { merged.Height = f.settings.Height }},
		{"radius", func() { merged.VertexRadius = f.settings.VertexRadius }},
		{"vertex-stroke", func() { merged.VertexStrokeWidth = f.settings.VertexStrokeWidth }},
		{"edge-width", func() { merged.EdgeWidth = f.settings.EdgeWidth }},
		{"viewbox", func() { merged.ViewBox = f.settings.ViewBox }},
		{"edge-color", func() { merged.EdgeColor = f.settings.EdgeColor }},
		{"fill-color", func() { merged.VertexFillColor = f.settings.VertexFillColor }},
		{"stroke-color", func() { merged.VertexStrokeColor = f.settings.VertexStrokeColor }},
		{"label-color", func() { merged.LabelColor = f.settings.LabelColor }},
		{"mode", func() { merged.Mode = mode }},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			o.apply()
		}
	}
	return merged, nil
}

package io

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/graphsvg/pkg/errors"
	"github.com/matzehuels/graphsvg/pkg/graph"
)

func TestReadJSONCanonical(t *testing.T) {
	in := `{
		"vertices": [
			{"id": "a", "x": 0, "y": 0, "label": "a", "weight": 2},
			{"x": 10, "y": 5, "imageUrl": "b.png", "hoverLabel": "bee", "class": "hub"}
		],
		"edges": [{"v1": 0, "v2": 1, "weight": 3, "class": "bridge"}]
	}`
	g, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if len(g.Vertices) != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d vertices, %d edges", len(g.Vertices), len(g.Edges))
	}
	a, b := g.Vertices[0], g.Vertices[1]
	if a.ID != "a" || a.Label != "a" || a.Weight == nil || *a.Weight != 2 {
		t.Errorf("vertex 0 = %+v", a)
	}
	if b.X != 10 || b.Y != 5 || b.ImageURL != "b.png" || b.HoverLabel != "bee" || b.Class != "hub" || b.Weight != nil {
		t.Errorf("vertex 1 = %+v", b)
	}
	if e := g.Edges[0]; e.V2 != 1 || e.Weight == nil || *e.Weight != 3 || e.Class != "bridge" {
		t.Errorf("edge = %+v", e)
	}
}

func TestReadJSONParallelArrays(t *testing.T) {
	in := `{
		"vertices": [{"x": 0, "y": 0}, {"x": 10, "y": 0}],
		"edges": [[0, 1]],
		"verticesLabel": ["a", "b"],
		"edgesWeight": [2]
	}`
	g, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if g.Vertices[1].Label != "b" || g.Vertices[1].X != 10 {
		t.Errorf("vertex 1 = %+v", g.Vertices[1])
	}
	if e := g.Edges[0]; e.V1 != 0 || e.V2 != 1 || e.Weight == nil || *e.Weight != 2 {
		t.Errorf("edge = %+v", e)
	}
}

func TestReadJSONIndexPairsOnly(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(`{"vertices": [{"x": 1, "y": 2}, {"x": 3, "y": 4}], "edges": [[1, 0]]}`))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if e := g.Edges[0]; e.V1 != 1 || e.V2 != 0 || e.Weight != nil {
		t.Errorf("edge = %+v", e)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `{"vertices": [`, errors.ErrCodeInvalidFormat},
		{"not an object", `[1, 2]`, errors.ErrCodeInvalidFormat},
		{"wrong field type", `{"vertices": [{"x": "zero"}]}`, errors.ErrCodeInvalidFormat},
		{"misaligned arrays", `{"vertices": [{"x": 0, "y": 0}], "edges": [], "verticesLabel": ["a", "b"]}`, errors.ErrCodeInvalidGraph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadJSON() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	in := `
[[vertices]]
id = "a"
x = 1.5
y = 2.0
label = "a"
hover_label = "first"

[[vertices]]
x = 10.0
y = 0.0
image_url = "b.png"
weight = 2.0

[[edges]]
v1 = 0
v2 = 1
weight = 0.5
`
	g, err := ReadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTOML() error = %v", err)
	}
	if len(g.Vertices) != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d vertices, %d edges", len(g.Vertices), len(g.Edges))
	}
	if v := g.Vertices[0]; v.ID != "a" || v.X != 1.5 || v.HoverLabel != "first" {
		t.Errorf("vertex 0 = %+v", v)
	}
	if v := g.Vertices[1]; v.ImageURL != "b.png" || v.Weight == nil || *v.Weight != 2 {
		t.Errorf("vertex 1 = %+v", v)
	}
	if e := g.Edges[0]; e.V2 != 1 || e.Weight == nil || *e.Weight != 0.5 {
		t.Errorf("edge = %+v", e)
	}
}

func TestReadTOMLUnknownKey(t *testing.T) {
	_, err := ReadTOML(strings.NewReader("[[vertices]]\nx = 1.0\ncolour = \"red\"\n"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadTOML() error = %v, want INVALID_FORMAT", err)
	}
}

func TestImportGraph(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "g.json")
	if err := os.WriteFile(jsonPath, []byte(`{"vertices": [{"x": 1, "y": 1}], "edges": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := ImportGraph(jsonPath)
	if err != nil || len(g.Vertices) != 1 {
		t.Errorf("ImportGraph(json) = %v, %v", g, err)
	}

	tomlPath := filepath.Join(dir, "g.toml")
	if err := os.WriteFile(tomlPath, []byte("[[vertices]]\nx = 1.0\ny = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err = ImportGraph(tomlPath)
	if err != nil || len(g.Vertices) != 1 {
		t.Errorf("ImportGraph(toml) = %v, %v", g, err)
	}

	_, err = ImportGraph(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadGraphURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".toml") {
			w.Write([]byte("[[vertices]]\nx = 1.0\ny = 2.0\n"))
			return
		}
		w.Write([]byte(`{"vertices": [{"x": 1, "y": 2}, {"x": 3, "y": 4}], "edges": [[0, 1]]}`))
	}))
	defer srv.Close()

	g, err := LoadGraph(context.Background(), srv.URL+"/g.json")
	if err != nil {
		t.Fatalf("LoadGraph(json) error = %v", err)
	}
	if len(g.Vertices) != 2 || len(g.Edges) != 1 {
		t.Errorf("LoadGraph(json) = %+v", g)
	}

	g, err = LoadGraph(context.Background(), srv.URL+"/g.toml?rev=2")
	if err != nil {
		t.Fatalf("LoadGraph(toml) error = %v", err)
	}
	if len(g.Vertices) != 1 || g.Vertices[0].Y != 2 {
		t.Errorf("LoadGraph(toml) = %+v", g)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	g := &graph.Graph{
		Vertices: []graph.Vertex{{ID: "a", X: 1, Y: 2, Label: "a", Weight: graph.W(1.5)}, {X: 3, Y: 4}},
		Edges:    []graph.Edge{{V1: 0, V2: 1, HoverLabel: "link"}},
	}
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.Vertices[0].ID != "a" || *got.Vertices[0].Weight != 1.5 || got.Edges[0].HoverLabel != "link" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&graph.Graph{}, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"vertices": []`) || !strings.Contains(buf.String(), `"edges": []`) {
		t.Errorf("empty graph = %s", buf.String())
	}
}

func TestReadSettings(t *testing.T) {
	s := graph.Settings{Width: 100, Height: 100, VertexRadius: 5}
	in := `
width = 640.0
edge_width = 2.0
edge_color = "#333"
mode = "labels"
`
	if err := ReadSettings(strings.NewReader(in), &s); err != nil {
		t.Fatalf("ReadSettings() error = %v", err)
	}
	if s.Width != 640 || s.Height != 100 || s.VertexRadius != 5 || s.EdgeWidth != 2 {
		t.Errorf("sizes = %+v", s)
	}
	if s.EdgeColor != "#333" || s.Mode != graph.ModeLabels {
		t.Errorf("colors/mode = %+v", s)
	}

	err := ReadSettings(strings.NewReader("radius = 3.0\n"), &s)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown key error = %v, want INVALID_FORMAT", err)
	}
	err = ReadSettings(strings.NewReader("width = \n"), &s)
	if !errors.Is(err, errors.ErrCodeInvalidSettings) {
		t.Errorf("malformed error = %v, want INVALID_SETTINGS", err)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(`<html><body><div id="chart"></div></body></html>`), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if err := SaveDocument(doc, path); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `<div id="chart"></div>`) {
		t.Errorf("saved document = %s", data)
	}

	if _, err := LoadDocument(filepath.Join(t.TempDir(), "nope.html")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing document error = %v, want FILE_NOT_FOUND", err)
	}
}

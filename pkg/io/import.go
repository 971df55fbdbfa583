package io

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphsvg/pkg/errors"
	"github.com/matzehuels/graphsvg/pkg/graph"
	"github.com/matzehuels/graphsvg/pkg/httputil"
)

// arrayKeys only occur in the parallel-array shape.
var arrayKeys = []string{"verticesImagesUrl", "verticesLabel", "verticesHoverLabel", "edgesWeight"}

// ReadJSON decodes a graph in either JSON shape from r.
//
// A parallel-array graph is converted with [graph.ArrayGraph.ToGraph] after
// its optional arrays are checked for alignment. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	return readJSON(r, "graph")
}

func readJSON(r io.Reader, src string) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", src)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", src)
	}

	if isArrayShape(fields) {
		var a graph.ArrayGraph
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s as parallel arrays", src)
		}
		if err := a.Validate(); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "%s: %s", src, errors.UserMessage(err))
		}
		return a.ToGraph(), nil
	}

	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", src)
	}
	return &g, nil
}

func isArrayShape(fields map[string]json.RawMessage) bool {
	for _, k := range arrayKeys {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	var edges []json.RawMessage
	if err := json.Unmarshal(fields["edges"], &edges); err != nil || len(edges) == 0 {
		return false
	}
	return bytes.HasPrefix(bytes.TrimSpace(edges[0]), []byte("["))
}

// ReadTOML decodes a canonical graph from TOML. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*graph.Graph, error) {
	return readTOML(r, "graph")
}

func readTOML(r io.Reader, src string) (*graph.Graph, error) {
	var g graph.Graph
	md, err := toml.NewDecoder(r).Decode(&g)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", src)
	}
	if err := checkUndecoded(md, src); err != nil {
		return nil, err
	}
	return &g, nil
}

// ImportGraph reads the graph file at path, choosing TOML for a .toml
// extension and JSON otherwise. The path "-" reads JSON from stdin.
func ImportGraph(path string) (*graph.Graph, error) {
	if path == "-" {
		return readJSON(os.Stdin, "stdin")
	}
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if isTOML(path) {
		return readTOML(f, path)
	}
	return readJSON(f, path)
}

// LoadGraph is [ImportGraph] extended to http and https URLs, which are
// downloaded with retries. The URL path's extension picks the decoder.
func LoadGraph(ctx context.Context, path string) (*graph.Graph, error) {
	if !httputil.IsURL(path) {
		return ImportGraph(path)
	}
	data, err := httputil.NewClient().Get(ctx, path)
	if err != nil {
		return nil, err
	}
	if isTOML(path) {
		return readTOML(bytes.NewReader(data), path)
	}
	return readJSON(bytes.NewReader(data), path)
}

func isTOML(path string) bool {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}

func checkUndecoded(md toml.MetaData, src string) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidFormat, "%s: unknown keys: %s", src, strings.Join(names, ", "))
	}
	return nil
}

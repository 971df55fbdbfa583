package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

// ReadDocument parses an HTML document from r.
func ReadDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse document")
	}
	return doc, nil
}

// LoadDocument parses the HTML file at path.
func LoadDocument(path string) (*html.Node, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDocument(f)
}

// WriteDocument renders doc to w.
func WriteDocument(doc *html.Node, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := html.Render(bw, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return bw.Flush()
}

// SaveDocument writes doc to path, replacing the file only once the whole
// document has been written.
func SaveDocument(doc *html.Node, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".graphsvg-*.html")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteDocument(doc, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

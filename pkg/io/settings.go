package io

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphsvg/pkg/errors"
	"github.com/matzehuels/graphsvg/pkg/graph"
)

// ReadSettings decodes TOML settings from r over s.
func ReadSettings(r io.Reader, s *graph.Settings) error {
	return readSettings(r, "settings", s)
}

// LoadSettings decodes the TOML settings file at path over s.
func LoadSettings(path string, s *graph.Settings) error {
	f, err := open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return readSettings(f, path, s)
}

func readSettings(r io.Reader, src string, s *graph.Settings) error {
	md, err := toml.NewDecoder(r).Decode(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSettings, err, "decode %s", src)
	}
	return checkUndecoded(md, src)
}

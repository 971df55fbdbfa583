package cache

import "github.com/matzehuels/graphsvg/pkg/graph"

// ArtifactKeyOpts are the render inputs besides the graph itself.
type ArtifactKeyOpts struct {
	ElementID string         `json:"element_id"`
	Format    string         `json:"format"`
	Settings  graph.Settings `json:"settings"`
}

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:{hash}" over the graph hash and every option.
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// ScopedKeyer prefixes every key of another keyer. The CLI scopes keys by
// build version so an upgrade never serves markup from an older renderer.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, which defaults to [DefaultKeyer] when nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey returns the prefixed key of the wrapped keyer.
func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}

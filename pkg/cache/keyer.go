package cache

// ArtifactKeyOpts are the settings that change the bytes of an extrusion
// artifact. Anything added here changes every key.
type ArtifactKeyOpts struct {
	Depth       int     `json:"depth"`
	DX          float64 `json:"dx"`
	DY          float64 `json:"dy"`
	FarFactor   float64 `json:"far"`
	NearFactor  float64 `json:"near"`
	SkipAlphaLE float64 `json:"skip_alpha_le"`
	Indent      int     `json:"indent"`
	Declaration bool    `json:"declaration"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for the artifacts of the input whose
	// content hash is inputHash.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the input hash together with opts.
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by build
// version so that a new release never serves artifacts from an older one.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, opts)
}

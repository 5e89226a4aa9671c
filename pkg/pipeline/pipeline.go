// Package pipeline runs the extrusion end to end: read an input document,
// extract its pixels, compose the back layer once, assemble the front, body
// and combined outputs from it, and write them out.
//
// The same Runner backs the CLI (files on disk, file cache) and the HTTP API
// (bytes in, bytes out, no cache).
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Split = true
//	results, err := runner.RunBatch(ctx, []string{"hat.svg", "cap.svg"}, opts)
//
// Bytes only:
//
//	res, err := runner.Extrude(ctx, "hat.svg", data, opts)
//	combined := res.Artifacts[document.ModeCombined]
package pipeline

import (
	"math"

	"github.com/matzehuels/pixelextrude/pkg/cache"
	"github.com/matzehuels/pixelextrude/pkg/core/document"
	"github.com/matzehuels/pixelextrude/pkg/core/extrude"
	"github.com/matzehuels/pixelextrude/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutputDir is where outputs go when no directory is given.
	DefaultOutputDir = "out_extruded"

	// DefaultSkipAlphaLE skips only fully transparent pixels.
	DefaultSkipAlphaLE = 0.0

	// DefaultParallel is the number of files processed at once.
	DefaultParallel = 4

	// DefaultExt is used for outputs whose input has no extension.
	DefaultExt = ".svg"

	// MaxDepth bounds the number of back layers.
	MaxDepth = 1024

	// DefaultMaxBackRects bounds depth × visible pixels for one input.
	DefaultMaxBackRects = 1_000_000
)

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for an extrusion run. It decodes from
// TOML config files and from JSON.
type Options struct {
	OutputDir   string  `toml:"output_dir" json:"output_dir,omitempty"`
	Depth       int     `toml:"depth" json:"depth"`
	DX          float64 `toml:"dx" json:"dx"`
	DY          float64 `toml:"dy" json:"dy"`
	FarFactor   float64 `toml:"far" json:"far"`
	NearFactor  float64 `toml:"near" json:"near"`
	SkipAlphaLE float64 `toml:"skip_alpha_le" json:"skip_alpha_le"`
	Split       bool    `toml:"split" json:"split,omitempty"`

	// MaxBackRects caps the size of the back layer; inputs that would
	// exceed it fail with errors.ErrCodeInvalidInput.
	MaxBackRects int `toml:"max_back_rects" json:"max_back_rects,omitempty"`

	// Output formatting
	Indent      int  `toml:"indent" json:"indent,omitempty"`
	Declaration bool `toml:"xml_declaration" json:"xml_declaration,omitempty"`

	// Runtime options (not serialized)
	Parallel int  `toml:"parallel" json:"-"`
	Refresh  bool `toml:"-" json:"-"` // ignore cached artifacts
}

// DefaultOptions returns the stock settings.
func DefaultOptions() Options {
	p := extrude.DefaultParams()
	return Options{
		OutputDir:    DefaultOutputDir,
		Depth:        p.Depth,
		DX:           p.DX,
		DY:           p.DY,
		FarFactor:    p.FarFactor,
		NearFactor:   p.NearFactor,
		SkipAlphaLE:  DefaultSkipAlphaLE,
		MaxBackRects: DefaultMaxBackRects,
		Parallel:     DefaultParallel,
	}
}

// Validate checks the settings needed to build artifacts. Darkening factors
// are deliberately not range-checked; only non-finite numbers are rejected.
func (o *Options) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"dx", o.DX}, {"dy", o.DY},
		{"far", o.FarFactor}, {"near", o.NearFactor},
		{"skip_alpha_le", o.SkipAlphaLE},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.New(errors.ErrCodeInvalidOption, "%s must be a finite number", f.name)
		}
	}
	if o.Depth > MaxDepth {
		return errors.New(errors.ErrCodeInvalidOption, "depth must be at most %d, got %d", MaxDepth, o.Depth)
	}
	if o.MaxBackRects < 1 {
		return errors.New(errors.ErrCodeInvalidOption, "max_back_rects must be at least 1")
	}
	if o.Indent < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "indent cannot be negative")
	}
	return nil
}

// ValidateForWrite additionally checks the settings needed to write files.
func (o *Options) ValidateForWrite() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidOption, "output directory is required")
	}
	if o.Parallel < 1 {
		return errors.New(errors.ErrCodeInvalidOption, "parallel must be at least 1")
	}
	return nil
}

// Params returns the extrusion parameters.
func (o *Options) Params() extrude.Params {
	return extrude.Params{
		Depth:      o.Depth,
		DX:         o.DX,
		DY:         o.DY,
		FarFactor:  o.FarFactor,
		NearFactor: o.NearFactor,
	}
}

// Modes returns the outputs written per input: the combined document only,
// or front, body and combined in split mode.
func (o *Options) Modes() []document.Mode {
	if o.Split {
		return document.AllModes
	}
	return []document.Mode{document.ModeCombined}
}

// Encoder returns the serializer configured by the formatting options.
func (o *Options) Encoder() *document.Encoder {
	var opts []document.EncoderOption
	if o.Indent > 0 {
		opts = append(opts, document.WithIndent(o.Indent))
	}
	if o.Declaration {
		opts = append(opts, document.WithDeclaration())
	}
	return document.NewEncoder(opts...)
}

// ArtifactKeyOpts returns the cache key options for this configuration.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Depth:       o.Depth,
		DX:          o.DX,
		DY:          o.DY,
		FarFactor:   o.FarFactor,
		NearFactor:  o.NearFactor,
		SkipAlphaLE: o.SkipAlphaLE,
		Indent:      o.Indent,
		Declaration: o.Declaration,
	}
}

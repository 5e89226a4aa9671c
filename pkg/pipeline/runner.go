package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pixelextrude/pkg/cache"
	"github.com/matzehuels/pixelextrude/pkg/core/document"
	"github.com/matzehuels/pixelextrude/pkg/core/pixel"
	"github.com/matzehuels/pixelextrude/pkg/errors"
	"github.com/matzehuels/pixelextrude/pkg/observability"
)

// Runner encapsulates extrusion with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Stats describes one extrusion.
type Stats struct {
	Pixels    int           `json:"pixels"`
	Visible   int           `json:"visible"`
	Layers    int           `json:"layers"`
	BackRects int           `json:"back_rects"`
	Duration  time.Duration `json:"duration"`
}

// Result holds the serialized outputs of one input. Artifacts always has
// an entry for every mode in document.AllModes, regardless of Split.
type Result struct {
	Name      string
	Artifacts map[document.Mode][]byte
	Stats     Stats
	CacheHit  bool
}

// bundle is the cached form of a Result.
type bundle struct {
	Artifacts map[document.Mode][]byte `json:"artifacts"`
	Stats     Stats                    `json:"stats"`
}

// Extrude builds all artifacts for src. name is only used for logging and
// hooks.
func (r *Runner) Extrude(ctx context.Context, name string, src []byte, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnExtrudeStart(ctx, name)
	start := time.Now()

	key := r.Keyer.ArtifactKey(cache.Hash(src), opts.ArtifactKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if b, ok := r.cached(ctx, key); ok {
			observability.Cache().OnCacheHit(ctx, "artifact")
			hooks.OnExtrudeComplete(ctx, name, b.Stats.BackRects, time.Since(start), nil)
			r.Logger.Debug("cache hit", "input", name)
			return &Result{Name: name, Artifacts: b.Artifacts, Stats: b.Stats, CacheHit: true}, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	b, err := build(src, opts)
	if err != nil {
		hooks.OnExtrudeComplete(ctx, name, 0, time.Since(start), err)
		return nil, err
	}
	b.Stats.Duration = time.Since(start)

	// Cache the result
	if data, err := json.Marshal(b); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "input", name, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	hooks.OnExtrudeComplete(ctx, name, b.Stats.BackRects, b.Stats.Duration, nil)
	r.Logger.Debug("extruded",
		"input", name,
		"pixels", b.Stats.Pixels,
		"visible", b.Stats.Visible,
		"back_rects", b.Stats.BackRects,
		"duration", b.Stats.Duration)

	return &Result{Name: name, Artifacts: b.Artifacts, Stats: b.Stats}, nil
}

func (r *Runner) cached(ctx context.Context, key string) (*bundle, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return nil, false
	}
	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		// Corrupt entry; fall through to recompute.
		return nil, false
	}
	for _, m := range document.AllModes {
		if _, ok := b.Artifacts[m]; !ok {
			return nil, false
		}
	}
	return &b, true
}

// build parses src once and serializes every output mode from a single
// back layer.
func build(src []byte, opts Options) (*bundle, error) {
	source, err := document.Parse(src)
	if err != nil {
		return nil, err
	}
	params := opts.Params()
	visible := len(pixel.Visible(source.Pixels(), opts.SkipAlphaLE))
	if n := params.EffectiveDepth() * visible; n > opts.MaxBackRects {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"back layer too large: %d layers × %d pixels = %d rects (limit %d)",
			params.EffectiveDepth(), visible, n, opts.MaxBackRects)
	}
	asm := document.Assemble(source, params, opts.SkipAlphaLE)
	enc := opts.Encoder()

	artifacts := make(map[document.Mode][]byte, len(document.AllModes))
	for _, m := range document.AllModes {
		doc, err := asm.Document(m)
		if err != nil {
			return nil, err
		}
		data, err := enc.Encode(doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize %s document", m)
		}
		artifacts[m] = data
	}

	return &bundle{
		Artifacts: artifacts,
		Stats: Stats{
			Pixels:    asm.Pixels(),
			Visible:   asm.Visible(),
			Layers:    params.EffectiveDepth(),
			BackRects: asm.Back().Len(),
		},
	}, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// Package pkg provides the core libraries for pixelextrude.
//
// # Overview
//
// pixelextrude turns flat pixel-art SVGs (one rect per pixel) into slabs:
// behind the art it stacks darkened copies of every visible pixel, each
// shifted a little further down and to the right. The pkg directory is
// organized into these areas:
//
//  1. [core] - Domain logic (fill colors, pixel extraction, back layer, documents)
//  2. [pipeline] - Orchestration (read → extrude → write, batching, config)
//  3. [cache] - Artifact cache keyed by input content and settings
//  4. [observability] - Hooks for logging and metrics
//  5. [errors] - Coded errors shared by the CLI and the HTTP API
//
// # Architecture
//
// The data flow for one input:
//
//	SVG bytes
//	    ↓
//	[core/document] Parse (immutable source tree)
//	    ↓
//	[core/pixel] Scan + Visible (rects in document order)
//	    ↓
//	[core/extrude] Compose (far-to-near layers of darkened copies)
//	    ↓         uses [core/fill] to parse and darken fills
//	[core/document] Assemble (front, body, combined) + Encoder
//	    ↓
//	SVG bytes
//
// # Quick Start
//
//	src, err := document.Parse(data)
//	if err != nil {
//	    return err
//	}
//	asm := document.Assemble(src, extrude.DefaultParams(), 0)
//	out, err := document.NewEncoder().Encode(asm.Combined())
//
// Or, with caching and file output:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	results, err := runner.RunBatch(ctx, []string{"hat.svg"}, pipeline.DefaultOptions())
package pkg

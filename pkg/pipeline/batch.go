package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pixelextrude/pkg/errors"
	"github.com/matzehuels/pixelextrude/pkg/observability"
)

// FileResult is the outcome for one input file of a batch.
type FileResult struct {
	Input   string
	Outputs []string // paths written, in Options.Modes order
	Result  *Result
	Err     error
}

// ExtrudeFile reads path, extrudes it and writes the outputs selected by
// opts into opts.OutputDir.
func (r *Runner) ExtrudeFile(ctx context.Context, path string, opts Options) FileResult {
	fr := FileResult{Input: path}
	if err := opts.ValidateForWrite(); err != nil {
		fr.Err = err
		return fr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fr.Err = errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		} else {
			fr.Err = errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
		}
		return fr
	}

	res, err := r.Extrude(ctx, path, data, opts)
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.Result = res

	if err := ensureDir(opts.OutputDir); err != nil {
		fr.Err = err
		return fr
	}
	for _, m := range opts.Modes() {
		out := filepath.Join(opts.OutputDir, OutputName(path, m))
		artifact := res.Artifacts[m]
		if err := writeFile(out, artifact); err != nil {
			fr.Err = err
			return fr
		}
		observability.Pipeline().OnWrite(ctx, out, len(artifact))
		fr.Outputs = append(fr.Outputs, out)
	}
	return fr
}

// RunBatch extrudes every path with at most opts.Parallel files in flight.
// A failing file does not stop the others; its error is reported in its
// FileResult. Results are returned in input order. The returned error is
// non-nil only if ctx was cancelled.
func (r *Runner) RunBatch(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	if err := opts.ValidateForWrite(); err != nil {
		return nil, err
	}

	results := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)

	for i, path := range paths {
		if gctx.Err() != nil {
			results[i] = FileResult{Input: path, Err: gctx.Err()}
			continue
		}
		i, path := i, path // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			results[i] = r.ExtrudeFile(gctx, path, opts)
			return nil
		})
	}
	_ = g.Wait()

	return results, ctx.Err()
}

// Failed counts the results that carry an error.
func Failed(results []FileResult) int {
	n := 0
	for _, fr := range results {
		if fr.Err != nil {
			n++
		}
	}
	return n
}

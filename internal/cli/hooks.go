package cli

import (
	"context"
	"time"

	"github.com/matzehuels/pixelextrude/pkg/observability"
)

// logHooks writes every pipeline, cache and HTTP event at debug level to
// the logger carried by the event's context.
type logHooks struct{}

func (c *CLI) registerHooks() {
	h := logHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (logHooks) OnExtrudeStart(ctx context.Context, name string) {
	loggerFromContext(ctx).Debug("extrude start", "input", name)
}

func (logHooks) OnExtrudeComplete(ctx context.Context, name string, rects int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("extrude failed", "input", name, "error", err, "duration", d)
		return
	}
	l.Debug("extrude done", "input", name, "back_rects", rects, "duration", d)
}

func (logHooks) OnWrite(ctx context.Context, path string, size int) {
	loggerFromContext(ctx).Debug("wrote", "path", path, "bytes", size)
}

func (logHooks) OnCacheHit(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache hit", "type", keyType)
}

func (logHooks) OnCacheMiss(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache miss", "type", keyType)
}

func (logHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	loggerFromContext(ctx).Debug("cache set", "type", keyType, "bytes", size)
}

func (logHooks) OnRequest(ctx context.Context, method, path string) {
	loggerFromContext(ctx).Debug("request start", "method", method, "path", path)
}

func (logHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	loggerFromContext(ctx).Debug("request done", "method", method, "path", path, "status", status, "duration", d)
}

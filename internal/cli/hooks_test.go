package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pixelextrude/pkg/observability"
)

func TestRegisterHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	c.registerHooks()

	ctx := withLogger(context.Background(), c.Logger)
	observability.Pipeline().OnExtrudeStart(ctx, "hat.svg")
	observability.Pipeline().OnExtrudeComplete(ctx, "hat.svg", 0, time.Millisecond, errors.New("boom"))
	observability.Cache().OnCacheHit(ctx, "artifact")
	observability.HTTP().OnResponse(ctx, "POST", "/v1/extrude", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"extrude start", "extrude failed", "boom", "cache hit", "request done"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestHooksQuietAtInfo(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	c.registerHooks()

	ctx := withLogger(context.Background(), c.Logger)
	observability.Pipeline().OnWrite(ctx, "out/hat_extruded.svg", 10)
	if buf.Len() != 0 {
		t.Errorf("debug hook logged at info level: %s", buf.String())
	}
}

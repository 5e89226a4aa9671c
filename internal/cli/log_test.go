package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pixelextrude/pkg/pipeline"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		wantDbg bool
	}{
		{"info drops debug", log.InfoLevel, false},
		{"debug keeps debug", log.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.level)
			l.Debug("cache miss")
			if got := strings.Contains(buf.String(), "cache miss"); got != tt.wantDbg {
				t.Errorf("debug record written = %v, want %v (output %q)", got, tt.wantDbg, buf.String())
			}
		})
	}
}

func TestBatchProgressDone(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		failed    int
		wantMsg   string
		wantLevel string
		wantFail  bool
	}{
		{"all succeeded", 3, 0, "Extruded 3 of 3 files", "INFO", false},
		{"some failed", 3, 1, "Extruded 2 of 3 files", "WARN", true},
		{"all failed", 2, 2, "Extruded 0 of 2 files", "WARN", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newBatchProgress(newLogger(&buf, log.InfoLevel), tt.total).done(tt.failed)
			out := buf.String()
			if !strings.Contains(out, tt.wantMsg) {
				t.Errorf("output %q missing %q", out, tt.wantMsg)
			}
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("output %q not at level %s", out, tt.wantLevel)
			}
			if got := strings.Contains(out, "failed="); got != tt.wantFail {
				t.Errorf("failed key present = %v, want %v", got, tt.wantFail)
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext() did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without a logger should fall back to log.Default()")
	}
}

func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = prev })
	return &buf
}

func TestPrintFileResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out := captureUI(t)
		printFileResult(pipeline.FileResult{
			Input:   "heart.svg",
			Outputs: []string{"out/heart.svg"},
			Result:  &pipeline.Result{Stats: pipeline.Stats{Visible: 7, BackRects: 21}, CacheHit: true},
		})
		for _, want := range []string{"heart.svg", "out/heart.svg", "7 visible pixels", "21"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("output %q missing %q", out.String(), want)
			}
		}
	})

	t.Run("failure", func(t *testing.T) {
		out := captureUI(t)
		printFileResult(pipeline.FileResult{Input: "broken.svg", Err: errors.New("unexpected EOF")})
		if !strings.Contains(out.String(), "broken.svg: unexpected EOF") {
			t.Errorf("output %q missing failure line", out.String())
		}
		if strings.Contains(out.String(), "visible pixels") {
			t.Error("failure should not print stats")
		}
	})
}

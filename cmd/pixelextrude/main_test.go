package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/pixelextrude/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    int
		wantOut string
	}{
		{"success", nil, 0, ""},
		{"interrupted", fmt.Errorf("batch: %w", context.Canceled), 130, ""},
		{"coded error", errors.New(errors.ErrCodeInvalidOption, "depth must be at most 1024"), 1, "pixelextrude: depth must be at most 1024\n"},
		{"plain error", fmt.Errorf("2 of 3 files failed"), 1, "pixelextrude: 2 of 3 files failed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := exitCode(&buf, tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
			if buf.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", buf.String(), tt.wantOut)
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	if err := run(context.Background(), []string{"--version"}); err != nil {
		t.Fatalf("run(--version) error: %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	err := run(context.Background(), []string{"flatten"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("run(flatten) error = %v, want unknown command", err)
	}
}

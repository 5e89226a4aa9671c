package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/pixelextrude/pkg/core/document"
	"github.com/matzehuels/pixelextrude/pkg/errors"
)

// OutputName returns the file name written for input in the given mode:
// the input's stem, the mode suffix, and the input's extension (".svg"
// when the input has none).
//
//	OutputName("art/hat.svg", ModeCombined) // "hat_extruded.svg"
//	OutputName("art/hat.svg", ModeBody)     // "hat_body.svg"
func OutputName(input string, mode document.Mode) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = DefaultExt
	}
	return stem + mode.Suffix() + ext
}

// ensureDir creates dir and its parents. It succeeds if dir already exists.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", dir)
	}
	return nil
}

// writeFile writes data to path through a temporary file in the same
// directory so that readers never observe a partial output.
func writeFile(path string, data []byte) error {
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

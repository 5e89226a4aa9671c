package pipeline

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pixelextrude/pkg/errors"
)

// LoadConfig reads a TOML config file on top of DefaultOptions.
//
//	output_dir    = "displacement"
//	depth         = 12
//	far           = 0.5
//	near          = 0.85
//	split         = true
func LoadConfig(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeIO, err, "open config %s", path)
	}
	defer f.Close()
	return DecodeConfig(f, DefaultOptions())
}

// DecodeConfig decodes TOML from r over base. Unknown keys are an error so
// that typos do not silently fall back to defaults.
func DecodeConfig(r io.Reader, base Options) (Options, error) {
	opts := base
	md, err := toml.NewDecoder(r).Decode(&opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidOption, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Options{}, errors.New(errors.ErrCodeInvalidOption, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}

package fill

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind identifies the encoding family of a fill value.
type Kind int

const (
	KindOpaque Kind = iota // unrecognized, passed through as-is
	KindNone               // the literal "none"
	KindRGBA               // rgba(r,g,b,a)
	KindHex                // #rrggbb
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRGBA:
		return "rgba"
	case KindHex:
		return "hex"
	default:
		return "opaque"
	}
}

// The rgba pattern is anchored at the start only; trailing text after the
// closing parenthesis does not disqualify a value.
var (
	rgbaPattern = regexp.MustCompile(`(?i)^rgba\(\s*([0-9.]+)\s*,\s*([0-9.]+)\s*,\s*([0-9.]+)\s*,\s*([0-9.]+)\s*\)`)
	hexPattern  = regexp.MustCompile(`(?i)^#([0-9a-f]{6})$`)
)

// Fill is a parsed fill value. Channels are kept as float64 because the rgba
// form accepts fractional channel text.
type Fill struct {
	Kind    Kind
	R, G, B float64
	A       float64

	raw string
}

// Parse classifies s and decodes its channels. It never fails: values that
// match no known encoding (including rgba text with unparsable numbers) come
// back as KindOpaque and format to s without surrounding whitespace.
func Parse(s string) Fill {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return Fill{Kind: KindNone, A: 1, raw: s}
	}
	if f, ok := parseRGBA(s); ok {
		return f
	}
	if f, ok := parseHex(s); ok {
		return f
	}
	return Fill{Kind: KindOpaque, A: 1, raw: s}
}

// Alpha returns the effective opacity. Only the rgba form carries an explicit
// alpha; every other kind reports 1.0.
func (f Fill) Alpha() float64 {
	if f.Kind == KindRGBA {
		return f.A
	}
	return 1
}

// Darken returns f with each color channel multiplied by factor, rounded to
// the nearest integer (ties to even) and clamped to [0,255]. The factor itself
// is not range-checked. None and opaque fills are returned unchanged.
func (f Fill) Darken(factor float64) Fill {
	switch f.Kind {
	case KindRGBA, KindHex:
		out := f
		out.R = scaleChannel(f.R, factor)
		out.G = scaleChannel(f.G, factor)
		out.B = scaleChannel(f.B, factor)
		out.raw = ""
		return out
	default:
		return f
	}
}

// String formats the fill in its own encoding. None and opaque fills return
// the trimmed text they were parsed from.
func (f Fill) String() string {
	switch f.Kind {
	case KindRGBA:
		return formatRGBA(f)
	case KindHex:
		return formatHex(f)
	default:
		return f.raw
	}
}

// Alpha is shorthand for Parse(s).Alpha(). Empty input counts as fully opaque.
func Alpha(s string) float64 {
	return Parse(s).Alpha()
}

// Darken is shorthand for Parse(s).Darken(factor).String().
func Darken(s string, factor float64) string {
	return Parse(s).Darken(factor).String()
}

func parseRGBA(s string) (Fill, bool) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return Fill{}, false
	}
	var v [4]float64
	for i := range v {
		n, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Fill{}, false
		}
		v[i] = n
	}
	return Fill{Kind: KindRGBA, R: v[0], G: v[1], B: v[2], A: v[3]}, true
}

func formatRGBA(f Fill) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)",
		channelByte(f.R), channelByte(f.G), channelByte(f.B), f.A)
}

func parseHex(s string) (Fill, bool) {
	if !hexPattern.MatchString(s) {
		return Fill{}, false
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Fill{}, false
	}
	r, g, b := c.RGB255()
	return Fill{Kind: KindHex, R: float64(r), G: float64(g), B: float64(b), A: 1}, true
}

func formatHex(f Fill) string {
	c := colorful.Color{
		R: float64(channelByte(f.R)) / 255,
		G: float64(channelByte(f.G)) / 255,
		B: float64(channelByte(f.B)) / 255,
	}
	return c.Hex()
}

// scaleChannel clamps only the final product, never the factor.
func scaleChannel(c, factor float64) float64 {
	v := math.RoundToEven(c * factor)
	if math.IsNaN(v) {
		return 0
	}
	return min(255, max(0, v))
}

func channelByte(c float64) int {
	return int(scaleChannel(c, 1))
}

// Package pixel collects the rect elements of a vector document that stand
// for image pixels.
//
// Extraction walks the whole element tree in document order, descending into
// groups, so the resulting slice is stable for a given input. Each Pixel is a
// detached snapshot of its element: later changes to the tree do not affect
// it, and nothing here ever writes to the tree.
package pixel

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/pixelextrude/pkg/core/fill"
)

// RectTag is the local element name treated as a pixel.
const RectTag = "rect"

// Attr is one attribute of a pixel element. Key includes the namespace
// prefix when the source attribute had one.
type Attr struct {
	Key   string
	Value string
}

// Pixel is a snapshot of one rect element.
type Pixel struct {
	Space string // namespace prefix of the element, usually empty
	Tag   string
	Attrs []Attr // all attributes in source order

	X, Y    float64 // 0 when absent or unparsable
	Fill    string
	HasFill bool
}

// Alpha returns the effective opacity of the pixel's fill.
func (p Pixel) Alpha() float64 {
	return fill.Alpha(p.Fill)
}

// Scan returns every rect element under root (root included), in document
// order.
func Scan(root *etree.Element) []Pixel {
	if root == nil {
		return nil
	}
	var out []Pixel
	walk(root, func(e *etree.Element) {
		if e.Tag == RectTag {
			out = append(out, snapshot(e))
		}
	})
	return out
}

// Visible drops pixels whose alpha is at or below skipAlphaLE. Order is kept.
func Visible(pixels []Pixel, skipAlphaLE float64) []Pixel {
	out := make([]Pixel, 0, len(pixels))
	for _, p := range pixels {
		if p.Alpha() <= skipAlphaLE {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Extract is Visible(Scan(root), skipAlphaLE).
func Extract(root *etree.Element, skipAlphaLE float64) []Pixel {
	return Visible(Scan(root), skipAlphaLE)
}

func walk(e *etree.Element, fn func(*etree.Element)) {
	fn(e)
	for _, child := range e.ChildElements() {
		walk(child, fn)
	}
}

func snapshot(e *etree.Element) Pixel {
	p := Pixel{
		Space: e.Space,
		Tag:   e.Tag,
		Attrs: make([]Attr, len(e.Attr)),
	}
	for i := range e.Attr {
		p.Attrs[i] = Attr{Key: e.Attr[i].FullKey(), Value: e.Attr[i].Value}
	}
	x, _ := PlainAttr(e, "x")
	y, _ := PlainAttr(e, "y")
	p.X = parseCoord(x)
	p.Y = parseCoord(y)
	p.Fill, p.HasFill = PlainAttr(e, "fill")
	return p
}

// PlainAttr returns the value of the attribute named key that has no
// namespace prefix. Prefixed attributes with the same local name, such as
// an editor's own "inkscape:x", are ignored.
func PlainAttr(e *etree.Element, key string) (string, bool) {
	for _, a := range e.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

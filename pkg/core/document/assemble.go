package document

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/pixelextrude/pkg/core/extrude"
	"github.com/matzehuels/pixelextrude/pkg/core/pixel"
	"github.com/matzehuels/pixelextrude/pkg/errors"
)

// FrontGroupID is the id attribute of the container holding the original
// content in the combined output.
const FrontGroupID = "extrude_front"

// Mode selects one of the assembled outputs.
type Mode string

const (
	ModeFront    Mode = "front"
	ModeBody     Mode = "body"
	ModeCombined Mode = "combined"
)

// AllModes lists the modes in the order split outputs are written.
var AllModes = []Mode{ModeFront, ModeBody, ModeCombined}

// Suffix returns the file-name suffix for the mode.
func (m Mode) Suffix() string {
	if m == ModeCombined {
		return "_extruded"
	}
	return "_" + string(m)
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range AllModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidOption, "invalid mode: %q (must be one of: front, body, combined)", s)
}

// Assembly holds everything the three outputs are derived from.
type Assembly struct {
	src     *Source
	pixels  []pixel.Pixel
	visible []pixel.Pixel
	back    extrude.Back
}

// Assemble extracts the visible pixels of src once and composes the back
// layer from them.
func Assemble(src *Source, p extrude.Params, skipAlphaLE float64) *Assembly {
	all := src.Pixels()
	visible := pixel.Visible(all, skipAlphaLE)
	return &Assembly{
		src:     src,
		pixels:  all,
		visible: visible,
		back:    extrude.Compose(visible, p),
	}
}

// Pixels returns the number of rects found in the source.
func (a *Assembly) Pixels() int { return len(a.pixels) }

// Visible returns the number of rects above the alpha threshold.
func (a *Assembly) Visible() int { return len(a.visible) }

// Back returns the composed back layer.
func (a *Assembly) Back() extrude.Back { return a.back }

// Document builds the output for mode.
func (a *Assembly) Document(mode Mode) (*etree.Document, error) {
	switch mode {
	case ModeCombined:
		return a.Combined(), nil
	case ModeFront:
		return a.Front(), nil
	case ModeBody:
		return a.Body(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidOption, "unknown mode %q", mode)
	}
}

// Combined returns the canvas with the back group followed by a front group
// holding the original content.
func (a *Assembly) Combined() *etree.Document {
	doc := a.src.copy()
	root := doc.Root()

	front := etree.NewElement("g")
	front.Space = root.Space
	front.CreateAttr("id", FrontGroupID)
	for _, tok := range detachChildren(root) {
		front.AddChild(tok)
	}

	root.AddChild(a.back.Group(root.Space))
	root.AddChild(front)
	EnsureCrisp(root)
	return doc
}

// Front returns the original document with rendering hints.
func (a *Assembly) Front() *etree.Document {
	doc := a.src.copy()
	EnsureCrisp(doc.Root())
	return doc
}

// Body returns the canvas attributes with the back group as the only content.
func (a *Assembly) Body() *etree.Document {
	doc := a.src.copy()
	root := doc.Root()
	EnsureCrisp(root)
	detachChildren(root)
	root.AddChild(a.back.Group(root.Space))
	return doc
}

// detachChildren removes the child tokens of e and returns them in order.
// Character data ahead of the first other token is the element's own text
// and stays on e.
func detachChildren(e *etree.Element) []etree.Token {
	lead := 0
	for lead < len(e.Child) {
		if _, ok := e.Child[lead].(*etree.CharData); !ok {
			break
		}
		lead++
	}
	children := append([]etree.Token(nil), e.Child[lead:]...)
	for _, tok := range children {
		e.RemoveChild(tok)
	}
	return children
}

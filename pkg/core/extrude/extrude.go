package extrude

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/matzehuels/pixelextrude/pkg/core/fill"
	"github.com/matzehuels/pixelextrude/pkg/core/pixel"
)

// GroupID is the id attribute of the container holding the back layer.
const GroupID = "extrude_back"

// Default parameters.
const (
	DefaultDepth      = 10
	DefaultShift      = 1.0
	DefaultFarFactor  = 0.55
	DefaultNearFactor = 0.80
)

// Params controls the shape and shading of the extrusion. Factors are
// expected in (0,1] but are not validated.
type Params struct {
	Depth      int
	DX, DY     float64
	FarFactor  float64
	NearFactor float64
}

// DefaultParams returns the stock extrusion settings.
func DefaultParams() Params {
	return Params{
		Depth:      DefaultDepth,
		DX:         DefaultShift,
		DY:         DefaultShift,
		FarFactor:  DefaultFarFactor,
		NearFactor: DefaultNearFactor,
	}
}

// EffectiveDepth is Depth floored at one layer.
func (p Params) EffectiveDepth() int {
	return max(1, p.Depth)
}

// Layer is one depth step of the extrusion.
type Layer struct {
	Index  int     // 1 is nearest the front, EffectiveDepth is farthest
	T      float64 // 0 at the far end, 1 at the near end
	Factor float64 // darkening applied to every copy in this layer
}

// Layers returns the depth steps farthest first.
func (p Params) Layers() []Layer {
	depth := p.EffectiveDepth()
	denom := float64(max(1, depth-1))

	layers := make([]Layer, 0, depth)
	for i := depth; i >= 1; i-- {
		t := float64(depth-i) / denom
		layers = append(layers, Layer{
			Index:  i,
			T:      t,
			Factor: p.FarFactor*(1-t) + p.NearFactor*t,
		})
	}
	return layers
}

// Back is the composed back layer: one shifted, darkened copy of every
// pixel for every layer, in paint order.
type Back struct {
	Layers []Layer
	Rects  []*etree.Element
}

// Len returns the number of copies, EffectiveDepth × len(pixels).
func (b Back) Len() int { return len(b.Rects) }

// Compose builds the back layer for pixels. Only x, y and fill differ from
// the source attributes; a pixel without a fill attribute stays without one.
func Compose(pixels []pixel.Pixel, p Params) Back {
	layers := p.Layers()
	back := Back{
		Layers: layers,
		Rects:  make([]*etree.Element, 0, len(layers)*len(pixels)),
	}
	for _, l := range layers {
		shiftX := float64(l.Index) * p.DX
		shiftY := float64(l.Index) * p.DY
		for _, px := range pixels {
			back.Rects = append(back.Rects, copyPixel(px, l.Factor, shiftX, shiftY))
		}
	}
	return back
}

// Group returns a new container element, with the given namespace prefix,
// holding fresh copies of every rect. Each call returns an independent tree
// so the same back layer can be placed in several documents.
func (b Back) Group(space string) *etree.Element {
	g := etree.NewElement("g")
	g.Space = space
	g.CreateAttr("id", GroupID)
	for _, r := range b.Rects {
		g.AddChild(r.Copy())
	}
	return g
}

func copyPixel(px pixel.Pixel, factor, shiftX, shiftY float64) *etree.Element {
	e := etree.NewElement(px.Tag)
	e.Space = px.Space
	for _, a := range px.Attrs {
		e.CreateAttr(a.Key, a.Value)
	}
	e.CreateAttr("x", FormatCoord(px.X+shiftX))
	e.CreateAttr("y", FormatCoord(px.Y+shiftY))
	if px.HasFill {
		e.CreateAttr("fill", fill.Darken(px.Fill, factor))
	}
	return e
}

// FormatCoord renders a coordinate with up to six significant digits and no
// trailing zeros, so integral values print without a decimal point.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

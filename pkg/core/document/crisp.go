package document

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/pixelextrude/pkg/core/pixel"
)

const (
	shapeRenderingAttr  = "shape-rendering"
	shapeRenderingCrisp = "crispEdges"
	imageRenderingProp  = "image-rendering"
	pixelatedDecl       = "image-rendering:pixelated"
)

// EnsureCrisp marks root for crisp, non-interpolated pixel rendering. The
// style attribute is extended, never replaced, and left alone when it already
// sets image-rendering, so calling EnsureCrisp repeatedly is a no-op.
func EnsureCrisp(root *etree.Element) {
	root.CreateAttr(shapeRenderingAttr, shapeRenderingCrisp)

	style, _ := pixel.PlainAttr(root, "style")
	if strings.Contains(style, imageRenderingProp) {
		return
	}
	if style != "" && !strings.HasSuffix(strings.TrimSpace(style), ";") {
		style += ";"
	}
	root.CreateAttr("style", style+pixelatedDecl)
}

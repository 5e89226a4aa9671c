package document

import (
	"testing"

	"github.com/beevik/etree"

	"github.com/matzehuels/pixelextrude/pkg/core/pixel"
)

func TestEnsureCrisp(t *testing.T) {
	tests := []struct {
		name  string
		style *string
		want  string
	}{
		{"no style", nil, "image-rendering:pixelated"},
		{"empty style", ptr(""), "image-rendering:pixelated"},
		{"terminated", ptr("fill:red;"), "fill:red;image-rendering:pixelated"},
		{"unterminated", ptr("fill:red"), "fill:red;image-rendering:pixelated"},
		{"trailing space after separator", ptr("fill:red; "), "fill:red; image-rendering:pixelated"},
		{"already set", ptr("image-rendering: auto"), "image-rendering: auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := etree.NewElement("svg")
			if tt.style != nil {
				root.CreateAttr("style", *tt.style)
			}
			EnsureCrisp(root)

			if got := root.SelectAttrValue("style", ""); got != tt.want {
				t.Errorf("style = %q, want %q", got, tt.want)
			}
			if got := root.SelectAttrValue("shape-rendering", ""); got != "crispEdges" {
				t.Errorf("shape-rendering = %q", got)
			}
		})
	}
}

func TestEnsureCrispIdempotent(t *testing.T) {
	for _, style := range []string{"", "opacity:0.5", "opacity:0.5;"} {
		root := etree.NewElement("svg")
		root.CreateAttr("shape-rendering", "geometricPrecision")
		if style != "" {
			root.CreateAttr("style", style)
		}

		EnsureCrisp(root)
		once := root.SelectAttrValue("style", "")
		EnsureCrisp(root)
		twice := root.SelectAttrValue("style", "")

		if once != twice {
			t.Errorf("style %q: once = %q, twice = %q", style, once, twice)
		}
		if n := len(root.Attr); n != 2 {
			t.Errorf("style %q: root has %d attributes, want 2", style, n)
		}
	}
}

func ptr(s string) *string { return &s }

func TestEnsureCrispIgnoresPrefixedStyle(t *testing.T) {
	root := etree.NewElement("svg")
	root.CreateAttr("ed:style", "image-rendering:auto")
	root.CreateAttr("style", "fill:red")
	EnsureCrisp(root)

	if got, _ := pixel.PlainAttr(root, "style"); got != "fill:red;image-rendering:pixelated" {
		t.Errorf("style = %q, want the hint appended to the plain style", got)
	}
	if got := root.SelectAttrValue("ed:style", ""); got != "image-rendering:auto" {
		t.Errorf("ed:style = %q, want it untouched", got)
	}
}

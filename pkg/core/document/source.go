package document

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/pixelextrude/pkg/core/pixel"
	"github.com/matzehuels/pixelextrude/pkg/errors"
)

// Source is a parsed input document. It is never mutated after Parse; every
// output is built from a copy.
type Source struct {
	doc *etree.Document
}

// Parse reads an XML document. It fails with errors.ErrCodeInvalidDocument
// when the bytes are not well-formed or contain no root element.
func Parse(data []byte) (*Source, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse document")
	}
	if doc.Root() == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document has no root element")
	}
	return &Source{doc: doc}, nil
}

// Pixels returns every rect in the source, in document order.
func (s *Source) Pixels() []pixel.Pixel {
	return pixel.Scan(s.doc.Root())
}

// RootSpace returns the namespace prefix of the root element.
func (s *Source) RootSpace() string {
	return s.doc.Root().Space
}

// copy returns a deep copy that callers may mutate freely.
func (s *Source) copy() *etree.Document {
	return s.doc.Copy()
}

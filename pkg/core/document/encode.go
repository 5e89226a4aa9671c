package document

import (
	"github.com/beevik/etree"
)

// Encoder serializes output documents. Its settings are fixed at
// construction; the zero configuration writes the tree as-is without an XML
// declaration.
type Encoder struct {
	indent      int
	declaration bool
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithIndent re-indents the whole document with n spaces per level.
// Zero keeps the input's own whitespace.
func WithIndent(n int) EncoderOption { return func(e *Encoder) { e.indent = n } }

// WithDeclaration makes the encoder emit an <?xml ...?> declaration.
func WithDeclaration() EncoderOption { return func(e *Encoder) { e.declaration = true } }

// NewEncoder returns an encoder with the given options applied.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode serializes doc. doc itself is left untouched.
func (e *Encoder) Encode(doc *etree.Document) ([]byte, error) {
	out := doc.Copy()
	stripDeclaration(out)
	if e.declaration {
		out.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`))
	}
	if e.indent > 0 {
		out.Indent(e.indent)
	}
	return out.WriteToBytes()
}

// stripDeclaration drops the <?xml ...?> processing instruction and the
// whitespace directly after it.
func stripDeclaration(doc *etree.Document) {
	for i, tok := range doc.Child {
		pi, ok := tok.(*etree.ProcInst)
		if !ok || pi.Target != "xml" {
			continue
		}
		doc.RemoveChildAt(i)
		if i < len(doc.Child) {
			if cd, ok := doc.Child[i].(*etree.CharData); ok && cd.IsWhitespace() {
				doc.RemoveChildAt(i)
			}
		}
		return
	}
}

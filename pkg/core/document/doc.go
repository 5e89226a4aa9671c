// Package document parses pixel-art vector documents and assembles the three
// extrusion outputs from one parsed source.
//
// # Outputs
//
//   - Combined: the canvas with two groups, extrude_back (the composed back
//     layer) followed by extrude_front (the original content, moved as-is).
//   - Front: the original document unchanged apart from rendering hints.
//   - Body: the canvas attributes with the back layer as its only content.
//
// All three are built from a single [Assembly], which holds the immutable
// [Source] and the back layer computed once from it. The back group in the
// combined output therefore serializes identically to the body output's
// content for the same input and parameters.
//
// # Rendering hints
//
// Every output root gets shape-rendering="crispEdges" and an
// image-rendering:pixelated declaration appended to its style attribute
// (see [EnsureCrisp]).
//
// # Serialization
//
// An [Encoder] writes documents without touching namespace declarations or
// prefixes: whatever the input declared is written back. New container
// elements take the root element's prefix.
package document

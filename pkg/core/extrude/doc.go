// Package extrude composes the back layer of a voxel extrusion.
//
// Given the visible pixels of a document, Compose produces depth shifted
// copies of every pixel. Layer i (1..depth) moves each copy by (i·dx, i·dy)
// and darkens its fill by a factor interpolated between the far and near
// factors:
//
//	t      = (depth - i) / max(1, depth - 1)
//	factor = far·(1 - t) + near·t
//
// Layers are emitted farthest first (i = depth down to 1), so a renderer that
// paints in document order draws the nearest copies on top without sorting.
package extrude

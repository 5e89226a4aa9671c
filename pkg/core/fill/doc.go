// Package fill classifies and rewrites the paint values carried by pixel rects.
//
// Four encodings are recognized, dispatched by a single classification step:
//
//   - rgba(r,g,b,a) with channels in 0–255 and alpha in [0,1]
//   - #rrggbb (implicit alpha 1.0, case-insensitive on input)
//   - the literal "none"
//   - anything else, which is carried through untouched
//
// Darkening scales the color channels only. Alpha and the encoding family are
// never changed, so a darkened value always parses back into the same kind.
//
//	f := fill.Parse("rgba(200,100,50,1)")
//	f.Darken(0.5).String() // "rgba(100,50,25,1.000)"
//
//	fill.Darken("#ff0000", 0.5) // "#800000"
package fill

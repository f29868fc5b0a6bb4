// Package canvas rasterises a laid-out graph.Graph into a flat grid of
// box-drawing glyphs.
//
// Every cell holds a 4-bit direction mask (N=1, S=2, E=4, W=8) recording
// which cardinal neighbours an edge stroke touches at that cell. Edges are
// never drawn glyph-by-glyph with compositing order in mind; instead every
// segment ORs its direction bits into the mask grid, and the mask grid is
// mapped to glyphs in a single final pass through a fixed 16-entry lookup
// table. This avoids the need to reason about draw order at intersections
// entirely — two strokes that cross always resolve to the same glyph no
// matter which was traced first.
package canvas

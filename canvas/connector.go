package canvas

// connector maps a 4-bit N|S|E|W direction mask to its box-drawing glyph.
// The vertical end masks (1, 2) and mask 10 use doubled-stroke glyphs
// rather than plain stubs — a deliberate visual cue that the stroke
// terminates at a node rather than continuing through empty space; the
// horizontal end masks (4, 8) are plain light half-lines.
var connector = [16]rune{
	0:  ' ',
	1:  '╥',
	2:  '╨',
	3:  '│',
	4:  '╶',
	5:  '└',
	6:  '┌',
	7:  '├',
	8:  '╴',
	9:  '┘',
	10: '╖',
	11: '┤',
	12: '─',
	13: '┴',
	14: '┬',
	15: '┼',
}

package core

// Image is a sprite in pixel space. Its on-screen look is described in
// terminal cells: Art holds rows of runes (spaces are transparent), and when
// Art is empty the covered cells are filled with Glyph.
type Image struct {
	W, H  int // Size in pixels
	Art   []string
	Glyph rune
	Color Color
}

// mirrored maps runes to their horizontal mirror image.
var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'▌': '▐', '▐': '▌',
	'▛': '▜', '▜': '▛',
	'▙': '▟', '▟': '▙',
	'◀': '▶', '▶': '◀',
	'◂': '▸', '▸': '◂',
	'◃': '▹', '▹': '◃',
	'╾': '╼', '╼': '╾',
	'◢': '◣', '◣': '◢',
	'◥': '◤', '◤': '◥',
	'┌': '┐', '┐': '┌',
	'└': '┘', '┘': '└',
	'╱': '╲', '╲': '╱',
}

// Flipped returns the image mirrored horizontally.
func (img Image) Flipped() Image {
	if len(img.Art) == 0 {
		if m, ok := mirrored[img.Glyph]; ok {
			img.Glyph = m
		}
		return img
	}

	art := make([]string, len(img.Art))
	for i, row := range img.Art {
		runes := []rune(row)
		out := make([]rune, len(runes))
		for j, r := range runes {
			if m, ok := mirrored[r]; ok {
				r = m
			}
			out[len(runes)-1-j] = r
		}
		art[i] = string(out)
	}
	img.Art = art
	return img
}

// Rect returns the pixel rectangle covered by the image placed at (x, y).
func (img Image) Rect(x, y int) Rect {
	return NewRect(x, y, img.W, img.H)
}

package render

import (
	"image/color"

	"leaffall/internal/particle"
)

// SpriteSize is the edge length of every leaf sprite in pixels. Sprites are
// scaled to the leaf's font size when drawn.
const SpriteSize = 15

// Leaf masks: '.' is transparent, '#' is the blade and 'x' the vein.
var leafMasks = map[particle.Glyph][SpriteSize]string{
	particle.GlyphFallenLeaf: {
		"...............",
		"..........####.",
		"........###xx#.",
		"......####x###.",
		".....####x####.",
		"....####x#####.",
		"...####x#####..",
		"...###x#####...",
		"..###x#####....",
		"..##x#####.....",
		"..#x#####......",
		"..x#####.......",
		".x.............",
		"x..............",
		"...............",
	},
	particle.GlyphMapleLeaf: {
		".......#.......",
		"......###......",
		"..#...###...#..",
		"..##.#####.##..",
		"..###########..",
		"#.####x#x####.#",
		".#####x#x#####.",
		"..#####x#####..",
		"...####x####...",
		"..#####x#####..",
		"....#..x..#....",
		".......x.......",
		".......x.......",
		".......x.......",
		"...............",
	},
	particle.GlyphFlutteringLeaf: {
		"...............",
		"...............",
		"....######.....",
		"..####xx####...",
		".##xxx##xx####.",
		"x#######xxx###.",
		".x#########xx#.",
		"..x###########.",
		"...xx########..",
		".....xx####....",
		".......xx......",
		".........x.....",
		"..........x....",
		"...............",
		"...............",
	},
}

// Sprite is a rasterized leaf in straight RGBA, row-major.
type Sprite struct {
	W, H int
	Pix  []byte
}

// LeafPalette returns the palette leaf masks index into: transparent, blade
// and vein.
func LeafPalette(body color.RGBA) []color.RGBA {
	return []color.RGBA{{}, body, shade(body, 0.65)}
}

// NewSprite rasterizes the mask for g in the given colour.
func NewSprite(g particle.Glyph, body color.RGBA) Sprite {
	mask, ok := leafMasks[g]
	if !ok {
		mask = leafMasks[particle.GlyphFallenLeaf]
	}
	cells := make([]uint8, SpriteSize*SpriteSize)
	for y, row := range mask {
		for x := 0; x < SpriteSize && x < len(row); x++ {
			switch row[x] {
			case '#':
				cells[y*SpriteSize+x] = 1
			case 'x':
				cells[y*SpriteSize+x] = 2
			}
		}
	}
	s := Sprite{W: SpriteSize, H: SpriteSize, Pix: make([]byte, 4*len(cells))}
	fillPaletteRGBA(s.Pix, cells, LeafPalette(body))
	return s
}

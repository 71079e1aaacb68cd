package particle

// Glyph is one of the fixed leaf symbols a particle can show.
type Glyph uint8

const (
	GlyphFallenLeaf Glyph = iota
	GlyphMapleLeaf
	GlyphFlutteringLeaf

	glyphCount
)

var glyphRunes = [glyphCount]rune{'🍂', '🍁', '🍃'}

var glyphNames = [glyphCount]string{"fallen", "maple", "fluttering"}

// Glyphs lists every glyph in draw order.
func Glyphs() []Glyph {
	return []Glyph{GlyphFallenLeaf, GlyphMapleLeaf, GlyphFlutteringLeaf}
}

// Rune returns the symbol drawn for g.
func (g Glyph) Rune() rune {
	if g >= glyphCount {
		return glyphRunes[GlyphFallenLeaf]
	}
	return glyphRunes[g]
}

func (g Glyph) String() string {
	if g >= glyphCount {
		return "unknown"
	}
	return glyphNames[g]
}

// MarshalText lets glyphs appear by name in YAML dumps.
func (g Glyph) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

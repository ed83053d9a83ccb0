package render

import (
	"io"
	"strings"

	"lifegrid/pkg/life"
)

const (
	// LiveGlyph is drawn for each live cell.
	LiveGlyph = "██"
	// DeadGlyph is drawn for each dead cell.
	DeadGlyph = "░░"
)

// Text renders g as one line per row, two glyph characters per cell.
func Text(g *life.Grid) string {
	var b strings.Builder
	b.Grow(g.Len()*len(LiveGlyph) + g.Height())
	w := g.Width()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < w; x++ {
			if g.At(x, y) == life.Live {
				b.WriteString(LiveGlyph)
			} else {
				b.WriteString(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteText writes Text(g) to w.
func WriteText(w io.Writer, g *life.Grid) error {
	_, err := io.WriteString(w, Text(g))
	return err
}

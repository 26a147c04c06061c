package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/pawnstorm/position"
)

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.GetAt(x, y).String()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board with unicode pieces. Colored output is forced regardless of
// the terminal when colored is set.
func (b *Board) Draw(colored bool) string {
	cellLight := color.New(color.FgBlack, color.BgHiWhite)
	cellDark := color.New(color.FgBlack, color.BgGreen)
	label := color.New(color.Bold)
	paint := func(c *color.Color, s string) string {
		if !colored {
			return s
		}
		c.EnableColor()
		return c.Sprint(s)
	}

	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(paint(label, fmt.Sprintf(" %d ", y+1)))
		for x := position.Pos(0); x < Width; x++ {
			f := b.GetAt(x, y)
			sym := f.Piece().SymbolUnicode(f.Side())
			if f.IsEmpty() {
				sym = " "
			}
			cell := cellDark
			if (x+y)%2 == 1 {
				cell = cellLight
			}
			_, _ = builder.WriteString(paint(cell, fmt.Sprintf(" %s ", sym)))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(paint(label, fmt.Sprintf(" %s ", x.NotationComponentX())))
	}
	return builder.String()
}

package board

// Figure is the content of a single cell: the side in the high nibble and the piece
// in the low nibble. The zero value is an empty cell.
type Figure uint8

const FigureEmpty Figure = 0

func NewFigure(s Side, p Piece) Figure {
	return Figure(s)<<4 | Figure(p)
}

func (f Figure) Side() Side {
	return Side(f >> 4)
}

func (f Figure) Piece() Piece {
	return Piece(f & 0x0F)
}

func (f Figure) IsEmpty() bool {
	return f == FigureEmpty
}

func (f Figure) String() string {
	if f.IsEmpty() {
		return ""
	}
	return f.Piece().SymbolFEN(f.Side())
}

package board

import (
	"github.com/daystram/pawnstorm/position"
)

// Move is a pure value describing a single ply. It carries everything Apply needs,
// and can be compared with ==.
type Move struct {
	From, To position.Pos
	Piece    Piece

	IsTurn    Side
	IsCapture bool
	IsPromote Piece
}

// IsNull reports whether the move is the zero value.
func (m Move) IsNull() bool {
	return m.Piece == PieceUnknown
}

// Result returns the figure occupying the destination once the move is applied.
func (m Move) Result() Figure {
	if m.IsPromote != PieceUnknown {
		return NewFigure(m.IsTurn, m.IsPromote)
	}
	return NewFigure(m.IsTurn, m.Piece)
}

// IsCastle reports whether the move is a King moving two files.
func (m Move) IsCastle() bool {
	if m.Piece != PieceKing {
		return false
	}
	dx := m.To.X() - m.From.X()
	return dx >= 2 || dx <= -2
}

// IsDoublePush reports whether the move is a Pawn advancing two ranks.
func (m Move) IsDoublePush() bool {
	if m.Piece != PiecePawn {
		return false
	}
	dy := m.To.Y() - m.From.Y()
	return dy == 2 || dy == -2
}

func (m Move) String() string {
	return m.Algebra()
}

// Algebra returns the long algebraic display form, e.g. "e2-e4", "Ng1xf3", "e7-e8Q".
func (m Move) Algebra() string {
	if m.IsNull() {
		return "-"
	}
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	nt += m.From.Notation()
	if m.IsCapture {
		nt += "x"
	} else {
		nt += "-"
	}
	nt += m.To.Notation()
	if m.IsPromote != PieceUnknown {
		nt += m.IsPromote.SymbolAlgebra(SideWhite)
	}
	return nt
}

func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolAlgebra(SideBlack)
}

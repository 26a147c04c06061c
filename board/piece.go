package board

import (
	"fmt"

	"github.com/daystram/pawnstorm/position"
)

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion, in generation order.
var PawnPromoteCandidates = [4]Piece{PieceQueen, PieceRook, PieceKnight, PieceBishop}

// direction is a (file, rank) step.
type direction [2]position.Pos

var (
	directionsDiagonal = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	directionsLateral  = []direction{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	directionsAll      = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	directionsKnight   = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

	pieceDirections = [PieceKing + 1][]direction{
		PieceBishop: directionsDiagonal,
		PieceKnight: directionsKnight,
		PieceRook:   directionsLateral,
		PieceQueen:  directionsAll,
		PieceKing:   directionsAll,
	}

	// pieceSlides marks pieces that repeat their step until blocked.
	pieceSlides = [PieceKing + 1]bool{
		PieceBishop: true,
		PieceRook:   true,
		PieceQueen:  true,
	}

	// pieceValue is in tenths of a Pawn so sums stay exact.
	pieceValue = [PieceKing + 1]int64{
		PiecePawn:   10,
		PieceKnight: 33,
		PieceBishop: 33,
		PieceRook:   50,
		PieceQueen:  90,
		PieceKing:   10_000_000,
	}
)

// directions returns the step set of a non-pawn piece. Pawns and unknown pieces have
// no direction set; asking for one means the cell encoding is corrupted.
func (p Piece) directions() []direction {
	if p > PieceKing || pieceDirections[p] == nil {
		panic(fmt.Sprintf("board: no move directions for piece %d", p))
	}
	return pieceDirections[p]
}

// Value returns the material value of the piece. The King is worth far more than
// everything else combined.
func (p Piece) Value() float64 {
	return float64(p.value()) / 10
}

func (p Piece) value() int64 {
	if p == PieceUnknown || p > PieceKing {
		panic(fmt.Sprintf("board: no material value for piece %d", p))
	}
	return pieceValue[p]
}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

func pieceFromSymbol(r rune) (Side, Piece) {
	s := SideWhite
	if r >= 'a' && r <= 'z' {
		s = SideBlack
		r &^= 0x20
	}
	switch r {
	case 'P':
		return s, PiecePawn
	case 'B':
		return s, PieceBishop
	case 'N':
		return s, PieceKnight
	case 'R':
		return s, PieceRook
	case 'Q':
		return s, PieceQueen
	case 'K':
		return s, PieceKing
	default:
		return SideUnknown, PieceUnknown
	}
}

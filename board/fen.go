package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/pawnstorm/position"
)

// UnmarshalFEN loads the position into b. An en passant target is imported as the
// opponent's double Pawn push that produced it.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var cells [TotalCells]Figure
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		ptrX, ptrY := -1, Height-y-1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(rows[ptrY][ptrX])
			if s, p := pieceFromSymbol(cell); p != PieceUnknown {
				cells[position.NewPos(x, y)] = NewFigure(s, p)
				continue
			}
			if cell != '0' && unicode.IsDigit(cell) {
				skip := position.Pos(cell - '0')
				if x+skip-1 < Width {
					x += skip - 1
					continue
				}
				return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
			}
			return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
		}
		if ptrX != len(rows[ptrY])-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}
	b.cells = cells
	for _, s := range Sides {
		if b.kingPos(s) == position.Invalid {
			return fmt.Errorf("%w: %s king missing", ErrInvalidFEN, s)
		}
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	b.castleRights = 0
	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			b.castleRights.Set(CastleDirectionWhiteRight, true)
		case 'k':
			b.castleRights.Set(CastleDirectionBlackRight, true)
		case 'Q':
			b.castleRights.Set(CastleDirectionWhiteLeft, true)
		case 'q':
			b.castleRights.Set(CastleDirectionBlackLeft, true)
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	b.lastMove = Move{}
	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		opponent := b.turn.Opposite()
		if pos.Y() != homeRank[opponent]+2*pawnForward[opponent] {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		b.lastMove = Move{
			IsTurn: opponent,
			Piece:  PiecePawn,
			From:   position.NewPos(pos.X(), pawnRank[opponent]),
			To:     position.NewPos(pos.X(), pos.Y()+pawnForward[opponent]),
		}
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	b.halfMoveClock = uint16(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil || fullMoveClock == 0 {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	b.fullMoveClock = uint16(fullMoveClock)

	b.history = nil
	return nil
}

func MarshalFEN(b *Board) string {
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && b.GetAt(x, y).IsEmpty(); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				_, _ = builder.WriteString(b.GetAt(x, y).String())
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
			_, _ = builder.WriteRune('K')
		}
		if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
			_, _ = builder.WriteRune('Q')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
			_, _ = builder.WriteRune('k')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
			_, _ = builder.WriteRune('q')
		}
	}
	_, _ = builder.WriteRune(' ')

	if last := b.lastMove; last.IsDoublePush() {
		_, _ = builder.WriteString(position.NewPos(last.To.X(), last.To.Y()-pawnForward[last.IsTurn]).Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}

func (b *Board) FEN() string {
	return MarshalFEN(b)
}

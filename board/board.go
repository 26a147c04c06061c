package board

import (
	"errors"
	"fmt"

	"github.com/daystram/pawnstorm/position"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrIllegalMove = errors.New("illegal move")
)

// Board is a chess position on an 8x8 grid of figures, indexed by position.Pos.
type Board struct {
	cells [TotalCells]Figure

	castleRights  CastleRights
	halfMoveClock uint16
	fullMoveClock uint16
	turn          Side

	// lastMove is always kept since en passant legality depends on it. history is
	// only kept by complete boards.
	lastMove     Move
	history      []Move
	keepsHistory bool
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard creates a complete board, set up in the standard starting position unless
// WithFEN is given.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{keepsHistory: true}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns an incomplete copy: board, rights, counters, turn and only the last
// move. This is all move generation and search need.
func (b *Board) Clone() *Board {
	bb := b.clone()
	return &bb
}

// CloneComplete returns a copy that also carries the full move history.
func (b *Board) CloneComplete() *Board {
	bb := b.clone()
	bb.keepsHistory = b.keepsHistory
	if b.keepsHistory {
		bb.history = make([]Move, len(b.history), len(b.history)+1)
		copy(bb.history, b.history)
	}
	return &bb
}

func (b *Board) clone() Board {
	bb := *b
	bb.history = nil
	bb.keepsHistory = false
	return bb
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) LastMove() Move {
	return b.lastMove
}

// History returns the executed moves. Incomplete clones only know their last move.
func (b *Board) History() []Move {
	if !b.keepsHistory {
		if b.lastMove.IsNull() {
			return nil
		}
		return []Move{b.lastMove}
	}
	return b.history
}

func (b *Board) Get(pos position.Pos) Figure {
	return b.cells[pos]
}

// GetAt returns the figure at the given file (x) and rank (y).
func (b *Board) GetAt(x, y position.Pos) Figure {
	return b.cells[position.NewPos(x, y)]
}

// Apply executes the move unconditionally. Legality must be established beforehand.
func (b *Board) Apply(mv Move) {
	if b.IsEnPassant(mv) {
		// the captured Pawn sits one rank behind the destination
		b.cells[position.NewPos(mv.To.X(), mv.To.Y()-pawnForward[mv.IsTurn])] = FigureEmpty
	}
	b.cells[mv.From] = FigureEmpty
	b.cells[mv.To] = mv.Result()

	if mv.Piece == PieceKing {
		if mv.IsCastle() {
			for _, d := range castleDirections[mv.IsTurn] {
				if c := castles[d]; c.kingTo == mv.To {
					b.cells[c.rookTo] = b.cells[c.rookFrom]
					b.cells[c.rookFrom] = FigureEmpty
				}
			}
		}
		for _, d := range castleDirections[mv.IsTurn] {
			b.castleRights.Set(d, false)
		}
	}
	b.castleRights.revokeTouched(mv.From)
	b.castleRights.revokeTouched(mv.To)

	if mv.IsCapture || mv.Piece == PiecePawn {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if mv.IsTurn == SideBlack {
		b.fullMoveClock++
	}

	b.lastMove = mv
	if b.keepsHistory {
		b.history = append(b.history, mv)
	}
	b.turn = mv.IsTurn.Opposite()
}

// IsEnPassant reports whether mv, played on b, captures en passant.
func (b *Board) IsEnPassant(mv Move) bool {
	return mv.IsCapture && mv.Piece == PiecePawn && b.cells[mv.To].IsEmpty()
}

// IsLegal reports whether mv is one of the legal moves of its side.
func (b *Board) IsLegal(mv Move) bool {
	if mv.IsTurn != b.turn {
		return false
	}
	for _, legal := range b.GenerateMoves(mv.IsTurn) {
		if legal == mv {
			return true
		}
	}
	return false
}

// ApplyLegal validates the move before executing it.
func (b *Board) ApplyLegal(mv Move) error {
	if !b.IsLegal(mv) {
		return fmt.Errorf("%w: %s by %s", ErrIllegalMove, mv, mv.IsTurn)
	}
	b.Apply(mv)
	return nil
}

// IsCheck reports whether the King of s is attacked by the other side.
func (b *Board) IsCheck(s Side) bool {
	king := b.kingPos(s)
	if king == position.Invalid {
		return false
	}
	return b.isAttacked(king, s.Opposite())
}

// IsMate reports whether s is in check and has no legal move left.
func (b *Board) IsMate(s Side) bool {
	return b.IsCheck(s) && len(b.GenerateMoves(s)) == 0
}

// IsDraw reports whether the half-move counter reached its limit, or s is stalemated.
func (b *Board) IsDraw(s Side) bool {
	if b.halfMoveClock >= FiftyMoveLimit {
		return true
	}
	return !b.IsCheck(s) && len(b.GenerateMoves(s)) == 0
}

func (b *Board) IsGameover() bool {
	return b.IsDraw(b.turn) || b.IsMate(b.turn)
}

// State summarises the game from the point of view of the side to move.
func (b *Board) State() State {
	s := b.turn
	isCheck := b.IsCheck(s)
	if len(b.GenerateMoves(s)) == 0 {
		switch {
		case isCheck && s == SideWhite:
			return StateCheckmateWhite
		case isCheck:
			return StateCheckmateBlack
		default:
			return StateStalemate
		}
	}
	// checkmate takes precedence over the 50 move rule
	if b.halfMoveClock >= FiftyMoveLimit {
		return StateFiftyMoveViolated
	}
	switch {
	case isCheck && s == SideWhite:
		return StateCheckWhite
	case isCheck:
		return StateCheckBlack
	default:
		return StateRunning
	}
}

// MaterialBalance returns the value of every piece of s minus the value of every
// piece of the other side, Kings included.
func (b *Board) MaterialBalance(s Side) float64 {
	var balance int64
	for _, f := range b.cells {
		if f.IsEmpty() {
			continue
		}
		if f.Side() == s {
			balance += f.Piece().value()
		} else {
			balance -= f.Piece().value()
		}
	}
	return float64(balance) / 10
}

func (b *Board) kingPos(s Side) position.Pos {
	king := NewFigure(s, PieceKing)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.cells[pos] == king {
			return pos
		}
	}
	return position.Invalid
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nhalf: %4d\nfull: %4d\nstat: %s", b.castleRights, b.halfMoveClock, b.fullMoveClock, b.State())
}

package board

import (
	"sort"

	"github.com/daystram/pawnstorm/position"
)

var leapers = [2]Piece{PieceKnight, PieceKing}

// GeneratePseudoLegalMoves generates the moves of s following piece movement and
// occupancy rules only. The mover's King may be left in check, and castling is never
// generated since its safety checks need the legal generator.
func (b *Board) GeneratePseudoLegalMoves(s Side) []Move {
	mvs := make([]Move, 0, 64)
	for from := position.Pos(0); from < TotalCells; from++ {
		f := b.cells[from]
		if f.IsEmpty() || f.Side() != s {
			continue
		}
		switch p := f.Piece(); p {
		case PiecePawn:
			mvs = b.appendPawnMoves(mvs, s, from)
		default:
			for _, dir := range p.directions() {
				for to := from.Offset(dir[0], dir[1]); to != position.Invalid; to = to.Offset(dir[0], dir[1]) {
					mvs = b.appendStep(mvs, s, p, from, to)
					if !pieceSlides[p] || !b.cells[to].IsEmpty() {
						break
					}
				}
			}
		}
	}
	return mvs
}

// GenerateMoves generates the legal moves of s, ordered captures first and then by
// descending value of the captured piece (captures) or of the moving piece (others).
func (b *Board) GenerateMoves(s Side) []Move {
	candidates := b.appendCastleMoves(b.GeneratePseudoLegalMoves(s), s)

	// filter moves that leaves our King in check
	mvs := candidates[:0]
	for _, mv := range candidates {
		bb := b.clone()
		bb.Apply(mv)
		if bb.IsCheck(s) {
			continue
		}
		mvs = append(mvs, mv)
	}

	b.sortMoves(mvs)
	return mvs
}

// appendStep adds the move to an empty or enemy-occupied cell.
func (b *Board) appendStep(mvs []Move, s Side, p Piece, from, to position.Pos) []Move {
	target := b.cells[to]
	if !target.IsEmpty() && target.Side() == s {
		return mvs
	}
	return append(mvs, Move{
		IsTurn:    s,
		Piece:     p,
		From:      from,
		To:        to,
		IsCapture: !target.IsEmpty(),
	})
}

func (b *Board) appendPawnMoves(mvs []Move, s Side, from position.Pos) []Move {
	forward := pawnForward[s]
	ahead := from.Offset(0, forward)
	if ahead == position.Invalid {
		return mvs
	}

	// en passant
	if last := b.lastMove; last.IsDoublePush() && last.IsTurn == s.Opposite() &&
		last.To.Y() == from.Y() && abs(last.To.X()-from.X()) == 1 &&
		b.cells[last.To] == NewFigure(s.Opposite(), PiecePawn) {
		if to := position.NewPos(last.To.X(), from.Y()+forward); b.cells[to].IsEmpty() {
			mvs = append(mvs, Move{
				IsTurn:    s,
				Piece:     PiecePawn,
				From:      from,
				To:        to,
				IsCapture: true,
			})
		}
	}

	for _, dx := range pawnCaptureFiles {
		to := from.Offset(dx, forward)
		if to == position.Invalid {
			continue
		}
		if target := b.cells[to]; !target.IsEmpty() && target.Side() != s {
			mvs = appendPawnMove(mvs, s, from, to, true)
		}
	}

	if b.cells[ahead].IsEmpty() {
		mvs = appendPawnMove(mvs, s, from, ahead, false)
		if from.Y() == pawnRank[s] {
			if double := ahead.Offset(0, forward); b.cells[double].IsEmpty() {
				mvs = appendPawnMove(mvs, s, from, double, false)
			}
		}
	}
	return mvs
}

// appendPawnMove adds the move, expanded into the four promotions when the Pawn
// reaches the opponent's home rank.
func appendPawnMove(mvs []Move, s Side, from, to position.Pos, capture bool) []Move {
	mv := Move{
		IsTurn:    s,
		Piece:     PiecePawn,
		From:      from,
		To:        to,
		IsCapture: capture,
	}
	if to.Y() != homeRank[s.Opposite()] {
		return append(mvs, mv)
	}
	for _, prom := range PawnPromoteCandidates {
		mv.IsPromote = prom
		mvs = append(mvs, mv)
	}
	return mvs
}

// appendCastleMoves adds the castling moves of s. The King may not be in check, the
// cells between King and Rook must be empty, and the cell the King crosses (where the
// Rook lands) may not be attacked. The landing cell is checked by the legality filter.
func (b *Board) appendCastleMoves(mvs []Move, s Side) []Move {
	if !b.castleRights.IsSideAllowed(s) {
		return mvs
	}
	king := NewFigure(s, PieceKing)
	rook := NewFigure(s, PieceRook)
	checked := false
	for _, d := range castleDirections[s] {
		c := castles[d]
		if !b.castleRights.IsAllowed(d) || b.cells[c.kingFrom] != king || b.cells[c.rookFrom] != rook {
			continue
		}
		if !b.isEmpty(c.between...) {
			continue
		}
		if !checked {
			if b.isAttacked(c.kingFrom, s.Opposite()) {
				return mvs
			}
			checked = true
		}
		if b.isAttacked(c.rookTo, s.Opposite()) {
			continue
		}
		mvs = append(mvs, Move{
			IsTurn: s,
			Piece:  PieceKing,
			From:   c.kingFrom,
			To:     c.kingTo,
		})
	}
	return mvs
}

func (b *Board) isEmpty(cells ...position.Pos) bool {
	for _, pos := range cells {
		if !b.cells[pos].IsEmpty() {
			return false
		}
	}
	return true
}

// isAttacked reports whether any piece of by attacks pos, looking outwards from pos
// with each piece's movement pattern.
func (b *Board) isAttacked(pos position.Pos, by Side) bool {
	// a Pawn of by attacks pos from one rank behind, as seen from by
	for _, dx := range pawnCaptureFiles {
		if from := pos.Offset(dx, -pawnForward[by]); from != position.Invalid && b.cells[from] == NewFigure(by, PiecePawn) {
			return true
		}
	}
	for _, p := range leapers {
		attacker := NewFigure(by, p)
		for _, dir := range p.directions() {
			if from := pos.Offset(dir[0], dir[1]); from != position.Invalid && b.cells[from] == attacker {
				return true
			}
		}
	}
	for _, dir := range directionsAll {
		diagonal := dir[0] != 0 && dir[1] != 0
		for from := pos.Offset(dir[0], dir[1]); from != position.Invalid; from = from.Offset(dir[0], dir[1]) {
			f := b.cells[from]
			if f.IsEmpty() {
				continue
			}
			if f.Side() == by {
				switch f.Piece() {
				case PieceQueen:
					return true
				case PieceBishop:
					if diagonal {
						return true
					}
				case PieceRook:
					if !diagonal {
						return true
					}
				}
			}
			break
		}
	}
	return false
}

// sortMoves orders captures before quiet moves; within each group by descending value
// of the captured piece, or of the resulting piece for quiet moves. Ties keep their
// generation order.
func (b *Board) sortMoves(mvs []Move) {
	orderValue := func(mv Move) int64 {
		if !mv.IsCapture {
			return mv.Result().Piece().value()
		}
		if b.IsEnPassant(mv) {
			return PiecePawn.value()
		}
		return b.cells[mv.To].Piece().value()
	}
	sort.SliceStable(mvs, func(i, j int) bool {
		if mvs[i].IsCapture != mvs[j].IsCapture {
			return mvs[i].IsCapture
		}
		return orderValue(mvs[i]) > orderValue(mvs[j])
	})
}

func abs(x position.Pos) position.Pos {
	if x < 0 {
		return -x
	}
	return x
}

package board

import "github.com/daystram/pawnstorm/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

var (
	maskCastleRights = [5]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}

	// castleDirections lists the kingside then queenside direction of each side.
	castleDirections = [3][2]CastleDirection{
		SideWhite: {CastleDirectionWhiteRight, CastleDirectionWhiteLeft},
		SideBlack: {CastleDirectionBlackRight, CastleDirectionBlackLeft},
	}

	castles = [5]castle{
		CastleDirectionWhiteRight: newCastle(position.Rank1, true),
		CastleDirectionWhiteLeft:  newCastle(position.Rank1, false),
		CastleDirectionBlackRight: newCastle(position.Rank8, true),
		CastleDirectionBlackLeft:  newCastle(position.Rank8, false),
	}
)

// castle holds the squares involved in one castling direction.
type castle struct {
	kingFrom, kingTo position.Pos
	rookFrom, rookTo position.Pos
	between          []position.Pos // must be empty
}

func newCastle(rank position.Pos, right bool) castle {
	if right {
		return castle{
			kingFrom: position.NewPos(position.FileE, rank),
			kingTo:   position.NewPos(position.FileG, rank),
			rookFrom: position.NewPos(position.FileH, rank),
			rookTo:   position.NewPos(position.FileF, rank),
			between: []position.Pos{
				position.NewPos(position.FileF, rank),
				position.NewPos(position.FileG, rank),
			},
		}
	}
	return castle{
		kingFrom: position.NewPos(position.FileE, rank),
		kingTo:   position.NewPos(position.FileC, rank),
		rookFrom: position.NewPos(position.FileA, rank),
		rookTo:   position.NewPos(position.FileD, rank),
		between: []position.Pos{
			position.NewPos(position.FileB, rank),
			position.NewPos(position.FileC, rank),
			position.NewPos(position.FileD, rank),
		},
	}
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

// CastleRights holds the four castling availabilities. Rights are only ever revoked.
type CastleRights uint8

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

// revokeTouched clears every right whose original rook square is touched by pos.
// A single move can revoke rights of both sides, e.g. a rook capturing a rook.
func (c *CastleRights) revokeTouched(pos position.Pos) {
	for d := CastleDirectionWhiteRight; d <= CastleDirectionBlackLeft; d++ {
		if castles[d].rookFrom == pos {
			c.Set(d, false)
		}
	}
}

package board

import (
	"github.com/daystram/pawnstorm/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	// FiftyMoveLimit is the half-move counter value at which the game is drawn.
	FiftyMoveLimit = 100
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	homeRank = [3]position.Pos{
		SideWhite: position.Rank1,
		SideBlack: position.Rank8,
	}
	pawnRank = [3]position.Pos{
		SideWhite: position.Rank2,
		SideBlack: position.Rank7,
	}
	pawnForward = [3]position.Pos{
		SideWhite: 1,
		SideBlack: -1,
	}
	pawnCaptureFiles = [2]position.Pos{-1, 1}
)

package engine

import (
	"math/rand"
	"sort"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

// playout plays the position to a terminal state with a randomized but
// biased policy and returns the winning mark. A full board is settled
// by a coin flip, so the rollout signal never reports a true draw;
// that slightly overstates decided endgames and is accepted noise.
func (that *Engine) playout(board entity.Board, mover string, rng *rand.Rand) string {
	for {
		if winner := board.WinningMark(); winner != entity.EmptyCell {
			return winner
		}

		moves := board.EmptyCells()
		if len(moves) == 0 {
			if rng.Intn(2) == 0 {
				return entity.PlayerX
			}
			return entity.PlayerO
		}

		cell := that.pickPlayoutMove(board, moves, mover, rng)
		board.Set(cell, mover)
		mover = entity.OpponentMark(mover)
	}
}

// pickPlayoutMove mirrors the top-level priority inside a playout:
// win if possible, block if necessary, otherwise mostly grab a strong
// cell with some random moves mixed in for variety.
func (that *Engine) pickPlayoutMove(board entity.Board, moves []entity.Coord, mover string, rng *rand.Rand) entity.Coord {
	if cell, ok := findWinningMove(board, moves, mover); ok {
		return cell
	}

	if cell, ok := findWinningMove(board, moves, entity.OpponentMark(mover)); ok {
		return cell
	}

	if rng.Float64() < that.conf.SmartMoveProb {
		return pickTopPlacement(moves, rng)
	}

	return moves[rng.Intn(len(moves))]
}

// pickTopPlacement ranks the free cells by center closeness and corner
// value, then picks uniformly among the best three.
func pickTopPlacement(moves []entity.Coord, rng *rand.Rand) entity.Coord {
	ranked := make([]entity.Coord, len(moves))
	copy(ranked, moves)

	sort.SliceStable(ranked, func(i, j int) bool {
		return placementScore(ranked[i]) > placementScore(ranked[j])
	})

	top := 3
	if len(ranked) < top {
		top = len(ranked)
	}

	return ranked[rng.Intn(top)]
}

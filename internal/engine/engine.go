package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

const (
	DefaultRollouts      = 2000
	DefaultSmartMoveProb = 0.7
)

// Config bounds the bot's per-move computation.
type Config struct {
	Rollouts      int     // total rollout budget, split evenly across candidate cells
	SmartMoveProb float64 // chance a playout ply prefers a heuristic move over a random one
	Workers       int     // candidate cells evaluated concurrently
	Seed          int64   // fixed seed for reproducible play; 0 picks a time-based seed
}

// Engine picks moves for the bot. It never mutates the board it is
// given: all lookahead happens on copies.
type Engine struct {
	conf Config
	rng  *rand.Rand
}

func New(conf Config) *Engine {
	if conf.Rollouts <= 0 {
		conf.Rollouts = DefaultRollouts
	}
	if conf.SmartMoveProb <= 0 {
		conf.SmartMoveProb = DefaultSmartMoveProb
	}
	if conf.Workers <= 0 {
		conf.Workers = 1
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		conf: conf,
		rng:  rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

// SelectMove returns the bot's move for the given position, or false
// when the position is already decided or no cell is free. Priority is
// strict: take an immediate win, block the opponent's immediate win,
// otherwise score every free cell with rollouts plus the static
// position value and take the best.
func (that *Engine) SelectMove(board entity.Board, mark string) (entity.Coord, bool) {
	if board.WinningMark() != entity.EmptyCell {
		return entity.Coord{}, false
	}

	candidates := board.EmptyCells()
	if len(candidates) == 0 {
		return entity.Coord{}, false
	}

	if cell, ok := findWinningMove(board, candidates, mark); ok {
		return cell, true
	}

	if cell, ok := findWinningMove(board, candidates, entity.OpponentMark(mark)); ok {
		return cell, true
	}

	return that.bestScoredMove(board, candidates, mark), true
}

// bestScoredMove runs the rollout budget over the candidate cells.
// Every candidate gets its own RNG seeded up front from the engine's
// RNG, so evaluations are independent and the result is reproducible
// for a fixed seed regardless of worker scheduling.
func (that *Engine) bestScoredMove(board entity.Board, candidates []entity.Coord, mark string) entity.Coord {
	simsPerMove := that.conf.Rollouts / len(candidates)
	if simsPerMove == 0 {
		simsPerMove = 1
	}

	seeds := make([]int64, len(candidates))
	for i := range seeds {
		seeds[i] = that.rng.Int63()
	}

	scores := make([]float64, len(candidates))

	var wg sync.WaitGroup
	slots := make(chan struct{}, that.conf.Workers)

	for i, cell := range candidates {
		wg.Add(1)

		go func(i int, cell entity.Coord) {
			defer wg.Done()

			slots <- struct{}{}
			defer func() { <-slots }()

			rng := rand.New(rand.NewSource(seeds[i])) //nolint: gosec // it's ok

			next := board
			next.Set(cell, mark)

			var total float64
			for s := 0; s < simsPerMove; s++ {
				if that.playout(next, entity.OpponentMark(mark), rng) == mark {
					total++
				} else {
					total--
				}
			}

			scores[i] = total/float64(simsPerMove) + positionValue(board, cell, mark)
		}(i, cell)
	}

	wg.Wait()

	// strict comparison keeps the first candidate on ties
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return candidates[best]
}

// findWinningMove returns the first free cell, in enumeration order,
// that completes a line for the given mark.
func findWinningMove(board entity.Board, candidates []entity.Coord, mark string) (entity.Coord, bool) {
	for _, cell := range candidates {
		next := board
		next.Set(cell, mark)

		if next.WinningMark() == mark {
			return cell, true
		}
	}

	return entity.Coord{}, false
}

package engine

import (
	"testing"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestCenterCloseness(t *testing.T) {
	t.Run("Center scores 1, corners score 0", func(t *testing.T) {
		assert.InDelta(t, 1.0, centerCloseness(entity.Coord{X: 1, Y: 1, Z: 1}), 1e-9)
		assert.InDelta(t, 0.0, centerCloseness(entity.Coord{X: 0, Y: 0, Z: 0}), 1e-9)
		assert.InDelta(t, 0.0, centerCloseness(entity.Coord{X: 2, Y: 2, Z: 2}), 1e-9)
	})

	t.Run("Falls off linearly with distance", func(t *testing.T) {
		// face center: one step out
		assert.InDelta(t, 2.0/3.0, centerCloseness(entity.Coord{X: 1, Y: 1, Z: 0}), 1e-9)
		// edge center: two steps out
		assert.InDelta(t, 1.0/3.0, centerCloseness(entity.Coord{X: 1, Y: 0, Z: 0}), 1e-9)
	})
}

func TestPositionValue(t *testing.T) {
	t.Run("Center on an empty board", func(t *testing.T) {
		// Then: full center term plus 13 open lines of weight 1
		// 0.1*1 + 0 + 0.02*13
		value := positionValue(entity.Board{}, entity.Coord{X: 1, Y: 1, Z: 1}, entity.PlayerO)
		assert.InDelta(t, 0.36, value, 1e-9)
	})

	t.Run("Corner on an empty board", func(t *testing.T) {
		// Then: corner bonus plus 7 open lines
		// 0 + 0.05 + 0.02*7
		value := positionValue(entity.Board{}, entity.Coord{X: 0, Y: 0, Z: 0}, entity.PlayerO)
		assert.InDelta(t, 0.19, value, 1e-9)
	})

	t.Run("Opponent marks block line potential", func(t *testing.T) {
		// Given: X on the center kills the corner's space diagonal
		board := entity.Board{}
		board.Set(entity.Coord{X: 1, Y: 1, Z: 1}, entity.PlayerX)

		// Then: 6 open lines remain: 0 + 0.05 + 0.02*6
		value := positionValue(board, entity.Coord{X: 0, Y: 0, Z: 0}, entity.PlayerO)
		assert.InDelta(t, 0.17, value, 1e-9)
	})

	t.Run("Own marks raise line potential", func(t *testing.T) {
		// Given: O already on the corner's Z-axis line
		board := entity.Board{}
		board.Set(entity.Coord{X: 0, Y: 0, Z: 1}, entity.PlayerO)

		// Then: that line counts double: 0 + 0.05 + 0.02*(6*1 + 2)
		value := positionValue(board, entity.Coord{X: 0, Y: 0, Z: 0}, entity.PlayerO)
		assert.InDelta(t, 0.21, value, 1e-9)
	})
}

func TestPlacementScore(t *testing.T) {
	t.Run("Center outranks corners, corners outrank edge centers", func(t *testing.T) {
		center := placementScore(entity.Coord{X: 1, Y: 1, Z: 1})
		corner := placementScore(entity.Coord{X: 0, Y: 0, Z: 0})
		edge := placementScore(entity.Coord{X: 1, Y: 0, Z: 0})

		assert.Greater(t, center, corner)
		assert.Greater(t, corner, edge)
	})
}

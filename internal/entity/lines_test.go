package entity

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_Geometry(t *testing.T) {
	t.Run("Contains exactly 49 lines", func(t *testing.T) {
		// Then: 27 axis-aligned + 18 face diagonals + 4 space diagonals
		assert.Len(t, Lines, 49)
	})

	t.Run("Every line holds 3 distinct in-bounds cells", func(t *testing.T) {
		for _, line := range Lines {
			for _, cell := range line {
				require.True(t, cell.InBounds(), "cell %v out of bounds in line %v", cell, line)
			}

			require.NotEqual(t, line[0], line[1], "duplicate cell in line %v", line)
			require.NotEqual(t, line[1], line[2], "duplicate cell in line %v", line)
			require.NotEqual(t, line[0], line[2], "duplicate cell in line %v", line)
		}
	})

	t.Run("Contains no duplicate lines", func(t *testing.T) {
		// Given: a canonical key per line, independent of cell order
		seen := make(map[string]struct{}, len(Lines))

		for _, line := range Lines {
			cells := []Coord{line[0], line[1], line[2]}
			sort.Slice(cells, func(i, j int) bool {
				if cells[i].X != cells[j].X {
					return cells[i].X < cells[j].X
				}
				if cells[i].Y != cells[j].Y {
					return cells[i].Y < cells[j].Y
				}
				return cells[i].Z < cells[j].Z
			})

			key := fmt.Sprintf("%v", cells)

			// Then: each canonical key appears once
			_, exists := seen[key]
			require.False(t, exists, "duplicate line %v", line)
			seen[key] = struct{}{}
		}
	})
}

func TestLinesThrough(t *testing.T) {
	t.Run("Line counts match cube geometry", func(t *testing.T) {
		// Then: 13 through the center, 7 through corners,
		// 5 through face centers, 4 through edge centers
		assert.Len(t, LinesThrough(Coord{1, 1, 1}), 13)
		assert.Len(t, LinesThrough(Coord{0, 0, 0}), 7)
		assert.Len(t, LinesThrough(Coord{2, 2, 2}), 7)
		assert.Len(t, LinesThrough(Coord{1, 1, 0}), 5)
		assert.Len(t, LinesThrough(Coord{1, 0, 0}), 4)
	})

	t.Run("Per-cell counts sum to three cells per line", func(t *testing.T) {
		// Given: every cell of the cube
		total := 0
		for x := 0; x < BoardSize; x++ {
			for y := 0; y < BoardSize; y++ {
				for z := 0; z < BoardSize; z++ {
					total += len(LinesThrough(Coord{x, y, z}))
				}
			}
		}

		// Then: each of the 49 lines is counted once per cell it holds
		assert.Equal(t, 49*3, total)
	})

	t.Run("Every returned line passes through the cell", func(t *testing.T) {
		cell := Coord{2, 1, 0}
		for _, line := range LinesThrough(cell) {
			assert.True(t, lineContains(line, cell), "line %v does not contain %v", line, cell)
		}
	})
}

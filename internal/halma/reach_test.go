package halma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachable(t *testing.T) {
	t.Run("lone piece reaches its eight neighbors", func(t *testing.T) {
		// Given: a single piece in the middle of an otherwise empty board
		board := &Board{}
		board.cells[5][5] = Player1

		// When: computing its reachable cells
		reachable := Reachable(board, Position{Row: 5, Col: 5})

		// Then: exactly the eight adjacent cells come back
		require.Len(t, reachable, 8)
		assert.Contains(t, reachable, Position{Row: 4, Col: 4})
		assert.Contains(t, reachable, Position{Row: 6, Col: 6})
		assert.Contains(t, reachable, Position{Row: 5, Col: 4})
		assert.NotContains(t, reachable, Position{Row: 5, Col: 5})
	})

	t.Run("chained jumps are discovered transitively", func(t *testing.T) {
		// Given: a mover at (4,4) with stepping stones at (4,5) and (4,7)
		board := &Board{}
		board.cells[4][4] = Player1
		board.cells[4][5] = Player2
		board.cells[4][7] = Player1

		// When: computing the reachable cells
		reachable := Reachable(board, Position{Row: 4, Col: 4})

		// Then: both the first landing and the chained landing are included
		assert.Contains(t, reachable, Position{Row: 4, Col: 6})
		assert.Contains(t, reachable, Position{Row: 4, Col: 8})
	})

	t.Run("a chain never revisits a landing cell", func(t *testing.T) {
		// Given: a jump loop around the mover at (0,0)
		board := &Board{}
		board.cells[0][0] = Player1
		board.cells[0][1] = Player2
		board.cells[1][2] = Player2
		board.cells[2][1] = Player2

		// When: computing the reachable cells
		reachable := Reachable(board, Position{Row: 0, Col: 0})

		// Then: the search terminates with exactly the step and jump landings
		assert.ElementsMatch(t, []Position{
			{Row: 1, Col: 0},
			{Row: 1, Col: 1},
			{Row: 0, Col: 2},
			{Row: 2, Col: 2},
			{Row: 2, Col: 0},
		}, reachable)
	})

	t.Run("jumps off the board are ignored", func(t *testing.T) {
		// Given: a mover in the corner with a neighbor toward the edge
		board := &Board{}
		board.cells[0][0] = Player1
		board.cells[1][0] = Player1

		// When: computing the reachable cells
		reachable := Reachable(board, Position{Row: 0, Col: 0})

		// Then: the jump over (1,0) lands on (2,0); nothing off-board appears
		assert.Contains(t, reachable, Position{Row: 2, Col: 0})
		assert.NotContains(t, reachable, Position{Row: -2, Col: 0})
		assert.NotContains(t, reachable, Position{Row: 1, Col: 0})
	})
}

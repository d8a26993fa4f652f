// Package halma implements the rules and state of a two-player Halma
// match on a 10x10 board: the board itself, single-hop move legality,
// turn tracking and win detection. The package does no I/O; the arbiter
// drives it and serializes access.
package halma

// Size is the board dimension. The game is always played on a 10x10 grid.
const Size = 10

// Cell owners. Empty cells hold zero.
const (
	Empty   = 0
	Player1 = 1
	Player2 = 2
)

// Position addresses one board cell by row and column.
type Position struct {
	Row int
	Col int
}

// startingCorner is player 1's triangular camp in the top-left corner.
// Player 2's camp and both goal zones derive from it by 180° rotation.
var startingCorner = []Position{
	{0, 0}, {1, 0}, {2, 0}, {3, 0},
	{0, 1}, {1, 1}, {2, 1},
	{0, 2}, {1, 2},
	{0, 3},
}

// Board is the grid of cell owners.
type Board struct {
	cells [Size][Size]int
}

// NewBoard returns a board with both camps populated, ten pieces each.
func NewBoard() *Board {
	board := &Board{}
	for _, pos := range startingCorner {
		board.cells[pos.Row][pos.Col] = Player1
		board.cells[Size-1-pos.Row][Size-1-pos.Col] = Player2
	}
	return board
}

// OnBoard reports whether pos addresses a real cell.
func OnBoard(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

// Owner returns the player occupying pos, or Empty. pos must be on the board.
func (that *Board) Owner(pos Position) int {
	return that.cells[pos.Row][pos.Col]
}

// Count returns how many pieces player has on the board.
func (that *Board) Count(player int) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.cells[row][col] == player {
				count++
			}
		}
	}
	return count
}

// GoalZone returns the ten cells player must fully occupy to win: the
// corner camp opposite their own starting corner.
func GoalZone(player int) []Position {
	zone := make([]Position, 0, len(startingCorner))
	for _, pos := range startingCorner {
		if player == Player1 {
			pos = Position{Row: Size - 1 - pos.Row, Col: Size - 1 - pos.Col}
		}
		zone = append(zone, pos)
	}
	return zone
}

// Opponent returns the other player's id.
func Opponent(player int) int {
	return 3 - player
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

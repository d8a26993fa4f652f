package halma

import (
	"github.com/juniorcastro1/HalmaPPD/internal/apperror"
)

// Game is the authoritative state of one match: the board, whose turn it
// is, and the winner once the match is decided. It is not safe for
// concurrent use on its own; the arbiter serializes all access.
type Game struct {
	board  *Board
	turn   int
	winner int
}

// NewGame starts a fresh match. Player 1 always opens.
func NewGame() *Game {
	return &Game{
		board: NewBoard(),
		turn:  Player1,
	}
}

func (that *Game) Board() *Board { return that.board }

func (that *Game) Turn() int { return that.turn }

// Winner returns the winning player, or Empty while the match is running.
func (that *Game) Winner() int { return that.winner }

// ValidateMove reports whether moving player's piece from from to to is a
// legal single hop. visited holds the destinations already landed on in
// the current jump chain; a non-empty visited list means this hop
// continues a chain, which rules out plain steps.
func (that *Game) ValidateMove(player int, from, to Position, visited []Position) bool {
	if !OnBoard(from) || !OnBoard(to) {
		return false
	}
	if that.board.Owner(to) != Empty {
		return false
	}
	if that.board.Owner(from) != player {
		return false
	}

	deltaRow := to.Row - from.Row
	deltaCol := to.Col - from.Col
	if deltaRow == 0 && deltaCol == 0 {
		return false
	}

	// A step to an adjacent cell is only allowed as the first hop of a turn.
	if abs(deltaRow) <= 1 && abs(deltaCol) <= 1 && len(visited) == 0 {
		return true
	}

	// A jump crosses exactly two cells along a rank, file or diagonal over
	// an occupied midpoint. Anything else, knight shapes included, is out.
	isJump := (deltaRow == 0 || abs(deltaRow) == 2) && (deltaCol == 0 || abs(deltaCol) == 2)
	if !isJump {
		return false
	}

	midpoint := Position{Row: from.Row + deltaRow/2, Col: from.Col + deltaCol/2}
	if that.board.Owner(midpoint) == Empty {
		return false
	}

	// Within one chain a cell may not be landed on twice.
	for _, seen := range visited {
		if seen == to {
			return false
		}
	}
	return true
}

// CommitMove applies a hop that already passed ValidateMove. It fails
// without touching the board when the match is over or player is not on
// turn. On success it clears from, occupies to, re-evaluates the win
// condition and, if the match is still open, hands the turn over.
func (that *Game) CommitMove(player int, from, to Position) error {
	if that.winner != Empty {
		return apperror.ErrGameFinished
	}
	if that.turn != player {
		return apperror.ErrNotYourTurn
	}

	that.board.cells[from.Row][from.Col] = Empty
	that.board.cells[to.Row][to.Col] = player

	that.checkWin()
	if that.winner == Empty {
		that.turn = Opponent(player)
	}
	return nil
}

// Forfeit ends the match in favor of player's opponent. It ignores turn
// order: a player may resign at any time, even before their first move.
func (that *Game) Forfeit(player int) (int, error) {
	if that.winner != Empty {
		return that.winner, apperror.ErrGameFinished
	}
	that.winner = Opponent(player)
	return that.winner, nil
}

// checkWin marks a player as winner once every cell of their goal zone is
// theirs. Player 1 is checked first; under the fixed piece count both
// conditions can never hold at once.
func (that *Game) checkWin() {
	for _, player := range []int{Player1, Player2} {
		if that.occupiesGoal(player) {
			that.winner = player
			return
		}
	}
}

func (that *Game) occupiesGoal(player int) bool {
	for _, pos := range GoalZone(player) {
		if that.board.Owner(pos) != player {
			return false
		}
	}
	return true
}

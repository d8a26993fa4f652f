package halma

// Reachable returns every cell a piece standing on from could be moved to
// within one turn: the adjacent empty cells plus every landing cell of a
// chained jump sequence. Clients use it to highlight candidate squares;
// the server itself only ever commits single hops, so a chain shows up on
// the wire as one MOVE per hop.
func Reachable(board *Board, from Position) []Position {
	moves := make(map[Position]struct{})

	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			step := Position{Row: from.Row + deltaRow, Col: from.Col + deltaCol}
			if OnBoard(step) && board.Owner(step) == Empty {
				moves[step] = struct{}{}
			}
		}
	}

	findJumps(board, from, moves, make(map[Position]struct{}))

	reachable := make([]Position, 0, len(moves))
	for pos := range moves {
		reachable = append(reachable, pos)
	}
	return reachable
}

// findJumps walks the jump graph depth-first, recording each landing cell.
// visited keeps one chain from hopping back and forth forever.
func findJumps(board *Board, from Position, moves, visited map[Position]struct{}) {
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}

			over := Position{Row: from.Row + deltaRow, Col: from.Col + deltaCol}
			dest := Position{Row: from.Row + 2*deltaRow, Col: from.Col + 2*deltaCol}
			if !OnBoard(dest) || board.Owner(dest) != Empty || board.Owner(over) == Empty {
				continue
			}
			if _, seen := visited[dest]; seen {
				continue
			}

			moves[dest] = struct{}{}
			visited[dest] = struct{}{}
			findJumps(board, dest, moves, visited)
			delete(visited, dest)
		}
	}
}

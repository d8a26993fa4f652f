// Package protocol implements the textual wire protocol spoken between
// the server and its players: colon-delimited UTF-8 commands in, events
// out. Commands are parsed once at the boundary into typed values, so the
// arbiter never touches raw token slices.
package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juniorcastro1/HalmaPPD/internal/apperror"
	"github.com/juniorcastro1/HalmaPPD/internal/halma"
)

// Command is one parsed client instruction. The concrete type tells the
// arbiter what to do.
type Command interface {
	isCommand()
}

// MoveCommand asks for a single hop.
type MoveCommand struct {
	From halma.Position
	To   halma.Position
}

// ChatCommand carries free text for the other player.
type ChatCommand struct {
	Text string
}

// ForfeitCommand resigns the match.
type ForfeitCommand struct{}

func (MoveCommand) isCommand()    {}
func (ChatCommand) isCommand()    {}
func (ForfeitCommand) isCommand() {}

// Parse turns one raw wire message into a Command. Anything that does not
// match the protocol is rejected with ErrMalformedCommand.
func Parse(raw string) (Command, error) {
	parts := strings.Split(raw, ":")

	switch parts[0] {
	case "MOVE":
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: MOVE wants 2 positions, got %d fields", apperror.ErrMalformedCommand, len(parts)-1)
		}
		from, err := parsePosition(parts[1])
		if err != nil {
			return nil, err
		}
		to, err := parsePosition(parts[2])
		if err != nil {
			return nil, err
		}
		return MoveCommand{From: from, To: to}, nil
	case "CHAT":
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: CHAT without text", apperror.ErrMalformedCommand)
		}
		// Chat text may itself contain colons.
		return ChatCommand{Text: strings.Join(parts[1:], ":")}, nil
	case "DESISTENCIA":
		return ForfeitCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown command %q", apperror.ErrMalformedCommand, parts[0])
	}
}

func parsePosition(field string) (halma.Position, error) {
	rowCol := strings.Split(field, ",")
	if len(rowCol) != 2 {
		return halma.Position{}, fmt.Errorf("%w: position %q", apperror.ErrMalformedCommand, field)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowCol[0]))
	if err != nil {
		return halma.Position{}, fmt.Errorf("%w: position %q", apperror.ErrMalformedCommand, field)
	}

	col, err := strconv.Atoi(strings.TrimSpace(rowCol[1]))
	if err != nil {
		return halma.Position{}, fmt.Errorf("%w: position %q", apperror.ErrMalformedCommand, field)
	}

	return halma.Position{Row: row, Col: col}, nil
}

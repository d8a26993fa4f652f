package protocol

import (
	"fmt"

	"github.com/juniorcastro1/HalmaPPD/internal/halma"
)

// Fixed server events.
const (
	EventStartGame    = "INICIAR_JOGO"
	EventYourTurn     = "SEU_TURNO"
	EventOpponentLeft = "OPONENTE_DESCONECTOU"

	// RoomFullNotice is the free-text reply to a third connection attempt.
	RoomFullNotice = "Poxa, a sala está cheia."
)

// Welcome announces the seat assigned to a freshly connected player.
func Welcome(player int) string {
	return fmt.Sprintf("BEMVINDO:%d", player)
}

// Update broadcasts one committed hop as a board delta.
func Update(from, to halma.Position) string {
	return fmt.Sprintf("UPDATE:%d,%d:%d,%d", from.Row, from.Col, to.Row, to.Col)
}

// Chat relays text on behalf of player.
func Chat(player int, text string) string {
	return fmt.Sprintf("CHAT:%d:%s", player, text)
}

// Winner announces the end of the match. Forfeit wins carry an explicit
// qualifier so clients can tell a resignation from a played-out win.
func Winner(player int, byForfeit bool) string {
	if byForfeit {
		return fmt.Sprintf("VENCEDOR:%d:DESISTENCIA", player)
	}
	return fmt.Sprintf("VENCEDOR:%d", player)
}

// Error wraps an advisory rejection. The connection stays usable.
func Error(message string) string {
	return "ERRO:" + message
}

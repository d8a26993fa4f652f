package arbiter

import (
	"log/slog"
	"sync"

	"github.com/juniorcastro1/HalmaPPD/internal/apperror"
	"github.com/juniorcastro1/HalmaPPD/internal/halma"
	"github.com/juniorcastro1/HalmaPPD/internal/protocol"
)

const seats = 2

// Room holds one match between exactly two players. A single mutex guards
// the whole validate-commit-broadcast sequence as well as the seat list,
// so commands arriving concurrently from both connections are always
// applied in some strict order.
type Room struct {
	logger *slog.Logger

	mu         sync.Mutex
	game       *halma.Game
	sessions   []*Session
	nextSeat   int
	terminated bool
}

// NewRoom creates a room with a fresh match waiting for its two players.
func NewRoom(logger *slog.Logger) *Room {
	return &Room{
		logger:   logger.With("component", "room"),
		game:     halma.NewGame(),
		nextSeat: halma.Player1,
	}
}

// Join seats a new connection. The first two callers get seats 1 and 2
// and a BEMVINDO event; once both are in, the match starts and player 1
// is told to move. Any later caller is refused with ErrRoomFull, and a
// seat freed by a disconnect is never refilled: that match is over.
func (that *Room) Join(peer Peer) (*Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.nextSeat > seats {
		return nil, apperror.ErrRoomFull
	}

	session := newSession(that.nextSeat, peer)
	that.nextSeat++
	that.sessions = append(that.sessions, session)

	that.logger.Info("player seated", "session_id", session.ID, "player", session.Player)

	that.send(session, protocol.Welcome(session.Player))

	if len(that.sessions) == seats {
		that.logger.Info("both players connected, starting match")
		that.broadcast(protocol.EventStartGame)
		that.send(that.sessionFor(that.game.Turn()), protocol.EventYourTurn)
	}

	return session, nil
}

// Leave removes a dropped connection from the room. If the match was
// still undecided, whoever stayed behind is notified and the match is
// over for good.
func (that *Room) Leave(session *Session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	removed := false
	for i, seated := range that.sessions {
		if seated == session {
			that.sessions = append(that.sessions[:i], that.sessions[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return
	}

	that.logger.Info("player disconnected", "session_id", session.ID, "player", session.Player)

	if that.game.Winner() == halma.Empty && !that.terminated {
		that.terminated = true
		that.broadcast(protocol.EventOpponentLeft)
	}
}

// HandleRaw parses one wire message from session and dispatches it.
func (that *Room) HandleRaw(session *Session, raw string) {
	command, err := protocol.Parse(raw)
	if err != nil {
		that.logger.Warn("rejected malformed command", "session_id", session.ID, "error", err)
		that.send(session, protocol.Error("comando malformado"))
		return
	}
	that.Handle(session, command)
}

// Handle runs one parsed command through the match.
func (that *Room) Handle(session *Session, command protocol.Command) {
	switch cmd := command.(type) {
	case protocol.MoveCommand:
		that.handleMove(session, cmd)
	case protocol.ChatCommand:
		that.handleChat(session, cmd)
	case protocol.ForfeitCommand:
		that.handleForfeit(session)
	}
}

func (that *Room) handleMove(session *Session, cmd protocol.MoveCommand) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.terminated || that.game.Winner() != halma.Empty {
		that.send(session, protocol.Error("a partida já terminou"))
		return
	}
	if that.game.Turn() != session.Player {
		that.logger.Warn("rejected move", "player", session.Player, "error", apperror.ErrNotYourTurn)
		that.send(session, protocol.Error("ainda não é o seu turno"))
		return
	}
	if !that.game.ValidateMove(session.Player, cmd.From, cmd.To, nil) {
		that.logger.Warn("rejected move", "player", session.Player, "error", apperror.ErrInvalidMove)
		that.send(session, protocol.Error("movimento inválido"))
		return
	}
	if err := that.game.CommitMove(session.Player, cmd.From, cmd.To); err != nil {
		that.send(session, protocol.Error("movimento inválido"))
		return
	}

	that.logger.Info("move committed", "player", session.Player,
		"from_row", cmd.From.Row, "from_col", cmd.From.Col,
		"to_row", cmd.To.Row, "to_col", cmd.To.Col)

	that.broadcast(protocol.Update(cmd.From, cmd.To))

	if winner := that.game.Winner(); winner != halma.Empty {
		that.logger.Info("match decided", "winner", winner)
		that.broadcast(protocol.Winner(winner, false))
		return
	}

	that.send(that.sessionFor(that.game.Turn()), protocol.EventYourTurn)
}

func (that *Room) handleChat(session *Session, cmd protocol.ChatCommand) {
	that.mu.Lock()
	defer that.mu.Unlock()

	// Chat flows regardless of turn order or match state; the lock only
	// keeps the seat list stable against concurrent disconnects.
	event := protocol.Chat(session.Player, cmd.Text)
	for _, other := range that.sessions {
		if other == session {
			continue
		}
		that.send(other, event)
	}
}

func (that *Room) handleForfeit(session *Session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.terminated {
		that.send(session, protocol.Error("a partida já terminou"))
		return
	}

	winner, err := that.game.Forfeit(session.Player)
	if err != nil {
		that.send(session, protocol.Error("a partida já terminou"))
		return
	}

	that.logger.Info("player forfeited", "player", session.Player, "winner", winner)
	that.broadcast(protocol.Winner(winner, true))
}

// send delivers one event to one player. Delivery is best effort: a dead
// connection is logged and skipped, never allowed to disturb the match.
func (that *Room) send(session *Session, event string) {
	if session == nil {
		return
	}
	if err := session.peer.Send(event); err != nil {
		that.logger.Error("failed to send event",
			"session_id", session.ID, "player", session.Player, "error", err)
	}
}

// broadcast delivers one event to every seated player.
func (that *Room) broadcast(event string) {
	for _, session := range that.sessions {
		that.send(session, event)
	}
}

// sessionFor returns the session seated as player, or nil.
func (that *Room) sessionFor(player int) *Session {
	for _, session := range that.sessions {
		if session.Player == player {
			return session
		}
	}
	return nil
}

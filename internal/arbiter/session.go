// Package arbiter owns the two-seat match room: it admits players,
// serializes every state-changing command through the board engine and
// fans the resulting events back out to the connected peers.
package arbiter

import "github.com/segmentio/ksuid"

// Peer is the transport-side half of a connection. Both the TCP and the
// websocket transports adapt their connections to it, so the room never
// cares which transport a seat arrived through.
type Peer interface {
	Send(message string) error
}

// Session is one seated player.
type Session struct {
	// ID identifies the connection in logs; it is not part of the protocol.
	ID string
	// Player is the seat number, 1 or 2, assigned by arrival order.
	Player int

	peer Peer
}

func newSession(player int, peer Peer) *Session {
	return &Session{
		ID:     ksuid.New().String(),
		Player: player,
		peer:   peer,
	}
}

// Package tcpserver exposes the match room over plain TCP: one persistent
// connection per player carrying textual commands and events. There is no
// message framing beyond the transport's delivery boundary; each client
// send is expected to arrive as one read.
package tcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/juniorcastro1/HalmaPPD/internal/apperror"
	"github.com/juniorcastro1/HalmaPPD/internal/arbiter"
	"github.com/juniorcastro1/HalmaPPD/internal/protocol"
)

// readBufferSize bounds one inbound command.
const readBufferSize = 1024

type Server struct {
	logger *slog.Logger
	room   *arbiter.Room
}

func New(logger *slog.Logger, room *arbiter.Room) *Server {
	return &Server{
		logger: logger.With("component", "tcp-server"),
		room:   room,
	}
}

// Start listens on addr and serves connections until ctx is canceled.
// Failing to bind is fatal to the caller.
func (that *Server) Start(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return that.Serve(ctx, listener)
}

// Serve runs the accept loop on an existing listener. Each accepted
// connection gets its own goroutine running a blocking read loop.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	defer listener.Close()

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	that.logger.Info("listening", "addr", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to accept connection: %w", err)
		}

		go that.handleConnection(conn)
	}
}

// handleConnection seats the connection and pumps its read loop until the
// peer goes away. Disconnect shows up only as a failed or empty read.
func (that *Server) handleConnection(conn net.Conn) {
	log := that.logger.With("remote_addr", conn.RemoteAddr().String())

	session, err := that.room.Join(&tcpPeer{conn: conn})
	if err != nil {
		if errors.Is(err, apperror.ErrRoomFull) {
			log.Info("refusing connection, room is full")
			if _, writeErr := conn.Write([]byte(protocol.RoomFullNotice)); writeErr != nil {
				log.Error("failed to send room-full notice", "error", writeErr)
			}
		} else {
			log.Error("failed to seat connection", "error", err)
		}
		conn.Close()
		return
	}

	defer func() {
		that.room.Leave(session)
		conn.Close()
	}()

	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		if err != nil || n == 0 {
			log.Info("connection closed", "session_id", session.ID)
			return
		}

		raw := strings.TrimRight(string(buf[:n]), "\r\n")
		log.Debug("received command", "session_id", session.ID, "command", raw)
		that.room.HandleRaw(session, raw)
	}
}

// tcpPeer adapts a net.Conn to the arbiter's Peer interface. Concurrent
// event deliveries are already serialized by the room's lock.
type tcpPeer struct {
	conn net.Conn
}

func (that *tcpPeer) Send(message string) error {
	if _, err := that.conn.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write to connection: %w", err)
	}
	return nil
}

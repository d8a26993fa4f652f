// Package websocket exposes the match room to browser clients. Each
// websocket text message carries exactly one protocol command or event;
// the payloads are identical to the plain-TCP transport, so a websocket
// seat can face a TCP seat in the same room.
package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/juniorcastro1/HalmaPPD/internal/apperror"
	"github.com/juniorcastro1/HalmaPPD/internal/arbiter"
	"github.com/juniorcastro1/HalmaPPD/internal/protocol"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger   *slog.Logger
	room     *arbiter.Room
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, room *arbiter.Room) *Server {
	return &Server{
		logger: logger.With("component", "websocket-server"),
		room:   room,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Start serves the /ws endpoint until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.HandleConnection)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// HandleConnection upgrades one HTTP request, seats the connection and
// runs its read loop.
func (that *Server) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		that.logger.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log := that.logger.With("remote_addr", conn.RemoteAddr().String())

	session, err := that.room.Join(&wsPeer{conn: conn})
	if err != nil {
		if errors.Is(err, apperror.ErrRoomFull) {
			log.Info("refusing connection, room is full")
			if writeErr := conn.WriteMessage(websocket.TextMessage, []byte(protocol.RoomFullNotice)); writeErr != nil {
				log.Error("failed to send room-full notice", "error", writeErr)
			}
		} else {
			log.Error("failed to seat connection", "error", err)
		}
		return
	}

	defer that.room.Leave(session)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err) {
				log.Info("connection closed unexpectedly", "session_id", session.ID, "error", err)
			} else {
				log.Info("connection closed", "session_id", session.ID)
			}
			return
		}

		log.Debug("received command", "session_id", session.ID, "command", string(message))
		that.room.HandleRaw(session, string(message))
	}
}

// wsPeer adapts a gorilla connection to the arbiter's Peer interface. The
// room's lock serializes writes, which gorilla requires.
type wsPeer struct {
	conn *websocket.Conn
}

func (that *wsPeer) Send(message string) error {
	if err := that.conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

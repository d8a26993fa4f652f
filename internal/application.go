package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/juniorcastro1/HalmaPPD/internal/arbiter"
	"github.com/juniorcastro1/HalmaPPD/internal/config"
	"github.com/juniorcastro1/HalmaPPD/internal/transport/tcpserver"
	"github.com/juniorcastro1/HalmaPPD/internal/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	// One room per process: a fixed two-seat match shared by both transports.
	room := arbiter.NewRoom(logger)

	// run TCP server
	tcpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting TCP server", "addr", conf.TCP.GetAddr())
		tcpServer := tcpserver.New(logger, room)
		if tcpErr := tcpServer.Start(ctx, conf.TCP.GetAddr()); tcpErr != nil {
			log.Error("TCP server error", "error", tcpErr)
			tcpErrCh <- tcpErr
		}
	}()

	// run WebSocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.WebSocket.Port)
		wsServer := websocket.New(logger, room)
		if wsErr := wsServer.Start(ctx, conf.WebSocket.Port); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-tcpErrCh:
		return fmt.Errorf("TCP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

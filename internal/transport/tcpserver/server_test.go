package tcpserver

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniorcastro1/HalmaPPD/internal/arbiter"
)

const readTimeout = 2 * time.Second

// residue holds, per connection, bytes read past the token a previous
// waitFor call was looking for, so coalesced events are not lost.
var residue = make(map[net.Conn]string)

// waitFor reads from conn until the accumulated stream contains token.
// Events on the raw TCP transport carry no framing, so consecutive sends
// may coalesce into one read or split across several.
func waitFor(t *testing.T, conn net.Conn, token string) string {
	t.Helper()

	deadline := time.Now().Add(readTimeout)
	var received strings.Builder
	received.WriteString(residue[conn])
	buf := make([]byte, 1024)

	for {
		if idx := strings.Index(received.String(), token); idx >= 0 {
			residue[conn] = received.String()[idx+len(token):]
			return received.String()
		}

		require.NoError(t, conn.SetReadDeadline(deadline))

		n, err := conn.Read(buf)
		if n > 0 {
			received.Write(buf[:n])
		}
		if err != nil && !strings.Contains(received.String(), token) {
			t.Fatalf("waiting for %q: got %q, read error: %v", token, received.String(), err)
		}
	}
}

func startTestServer(t *testing.T) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	room := arbiter.NewRoom(logger)
	server := New(logger, room)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		_ = server.Serve(ctx, listener)
	}()

	return listener.Addr().String()
}

func dial(t *testing.T, addr string) net.Conn {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServer_Match(t *testing.T) {
	addr := startTestServer(t)

	// Given: the first player connects and is seated
	client1 := dial(t, addr)
	waitFor(t, client1, "BEMVINDO:1")

	// When: the second player connects
	client2 := dial(t, addr)

	// Then: both seats fill and the match starts with player 1 on turn
	waitFor(t, client2, "BEMVINDO:2")
	waitFor(t, client2, "INICIAR_JOGO")
	waitFor(t, client1, "INICIAR_JOGO")
	waitFor(t, client1, "SEU_TURNO")

	// When: a third connection arrives while both seats are taken
	client3 := dial(t, addr)

	// Then: it gets the room-full notice and the connection is closed
	waitFor(t, client3, "sala está cheia")
	require.NoError(t, client3.SetReadDeadline(time.Now().Add(readTimeout)))
	_, err := client3.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)

	// When: player 1 plays the opening step
	_, err = client1.Write([]byte("MOVE:0,3:1,3"))
	require.NoError(t, err)

	// Then: the delta is broadcast to both and player 2 is put on turn
	waitFor(t, client1, "UPDATE:0,3:1,3")
	waitFor(t, client2, "UPDATE:0,3:1,3")
	waitFor(t, client2, "SEU_TURNO")

	// When: player 2 tries a knight-shaped move
	_, err = client2.Write([]byte("MOVE:9,6:7,5"))
	require.NoError(t, err)

	// Then: only player 2 hears the rejection
	waitFor(t, client2, "ERRO:movimento inválido")

	// When: player 2 chats
	_, err = client2.Write([]byte("CHAT:boa jogada"))
	require.NoError(t, err)

	// Then: the text reaches player 1, tagged with the sender's seat
	waitFor(t, client1, "CHAT:2:boa jogada")

	// When: player 1 forfeits
	_, err = client1.Write([]byte("DESISTENCIA"))
	require.NoError(t, err)

	// Then: both players learn player 2 won by forfeit
	waitFor(t, client1, "VENCEDOR:2:DESISTENCIA")
	waitFor(t, client2, "VENCEDOR:2:DESISTENCIA")
}

func TestServer_Disconnect(t *testing.T) {
	addr := startTestServer(t)

	// Given: a started match
	client1 := dial(t, addr)
	waitFor(t, client1, "BEMVINDO:1")
	client2 := dial(t, addr)
	waitFor(t, client2, "INICIAR_JOGO")
	waitFor(t, client1, "SEU_TURNO")

	// When: player 2 drops mid-match
	require.NoError(t, client2.Close())

	// Then: player 1 is told the opponent disconnected
	waitFor(t, client1, "OPONENTE_DESCONECTOU")
}

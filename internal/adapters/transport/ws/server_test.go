package ws

import (
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	worldyaml "github.com/bnema/netrun/internal/adapters/world/yaml"
	"github.com/bnema/netrun/internal/session"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, start string) *httptest.Server {
	t.Helper()

	factory := func(opts session.Options) (*session.Game, error) {
		world, err := worldyaml.Default()
		if err != nil {
			return nil, err
		}
		if start != "" {
			world.Player.Hostname = start
		}
		opts.Version = "test"
		return session.NewGame(world, opts)
	}
	srv := httptest.NewServer(NewServer(factory, 5*time.Millisecond, log.New(io.Discard, "", 0)).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, b))
}

// waitFor reads messages until match accepts one.
func waitFor(t *testing.T, conn *websocket.Conn, match func(typ string, raw []byte) bool) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)
		base, err := decodeBase(raw)
		require.NoError(t, err)
		if match(base.Type, raw) {
			return
		}
	}
}

func recordText(text string) func(string, []byte) bool {
	return func(typ string, raw []byte) bool {
		if typ != TypeRecord {
			return false
		}
		var msg RecordMsg
		return json.Unmarshal(raw, &msg) == nil && msg.Record.Text == text
	}
}

func handshake(t *testing.T, conn *websocket.Conn) WelcomeMsg {
	t.Helper()
	send(t, conn, HelloMsg{Type: TypeHello, ProtocolVersion: ProtocolVersion})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var welcome WelcomeMsg
	require.NoError(t, json.Unmarshal(raw, &welcome))
	return welcome
}

func TestWelcomeCarriesBanner(t *testing.T) {
	conn := dial(t, newTestServer(t, ""))

	welcome := handshake(t, conn)

	assert.Equal(t, TypeWelcome, welcome.Type)
	assert.Equal(t, "test", welcome.Version)
	assert.NotEmpty(t, welcome.Session)
	require.Len(t, welcome.Records, 1)
	assert.Equal(t, "netrun vtest", welcome.Records[0].Text)
}

func TestCommandsStreamRecords(t *testing.T) {
	conn := dial(t, newTestServer(t, ""))
	handshake(t, conn)

	send(t, conn, CommandMsg{Type: TypeCommand, Line: "hostname"})

	waitFor(t, conn, recordText("home"))
}

func TestActionsCompleteOnTheServerClock(t *testing.T) {
	conn := dial(t, newTestServer(t, ""))
	handshake(t, conn)

	send(t, conn, CommandMsg{Type: TypeCommand, Line: "analyze"})

	waitFor(t, conn, func(typ string, raw []byte) bool {
		var state StateMsg
		return typ == TypeState && json.Unmarshal(raw, &state) == nil && state.Action != nil && state.Action.Kind == "analyze"
	})
	waitFor(t, conn, recordText("home: "))
}

func TestContractPromptRoundTrip(t *testing.T) {
	conn := dial(t, newTestServer(t, "foodnstuff"))
	handshake(t, conn)

	send(t, conn, CommandMsg{Type: TypeCommand, Line: "run contract-21342.cct"})
	waitFor(t, conn, func(typ string, raw []byte) bool {
		var prompt PromptMsg
		return typ == TypePrompt && json.Unmarshal(raw, &prompt) == nil && prompt.TriesRemaining == 10
	})

	send(t, conn, AnswerMsg{Type: TypeAnswer, Answer: "41"})
	waitFor(t, conn, func(typ string, raw []byte) bool {
		var msg RecordMsg
		return typ == TypeRecord && json.Unmarshal(raw, &msg) == nil && strings.HasPrefix(msg.Record.Text, "Contract SUCCESS")
	})
}

func TestHandshakeRejectsWrongVersion(t *testing.T) {
	conn := dial(t, newTestServer(t, ""))

	send(t, conn, HelloMsg{Type: TypeHello, ProtocolVersion: 99})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.ClosePolicyViolation, closeErr.Code)
}

// Package ws serves the terminal over websocket connections, one game per
// connection.
package ws

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/bnema/netrun/internal/adapters/recordjson"
	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/ports"
	"github.com/bnema/netrun/internal/session"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// GameFactory builds a fresh game wired to the given connection-level
// collaborators.
type GameFactory func(opts session.Options) (*session.Game, error)

type Server struct {
	newGame GameFactory
	cycle   time.Duration
	log     *log.Logger

	upgrader websocket.Upgrader
}

func NewServer(newGame GameFactory, cycle time.Duration, logger *log.Logger) *Server {
	return &Server{
		newGame: newGame,
		cycle:   cycle,
		log:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if !s.handshake(conn) {
			return
		}

		c := newClient(uuid.NewString(), s.log, 256)
		loop := session.NewLoop(s.cycle)
		game, err := s.newGame(session.Options{
			Prompter:  c,
			Scheduler: loop,
			Sinks:     []ports.OutputSink{c},
		})
		if err != nil {
			s.log.Printf("ws %s: new game: %v", c.id, err)
			closeWith(conn, websocket.CloseInternalServerErr, "cannot start game")
			return
		}
		term := game.Terminal
		s.log.Printf("ws %s: connected from %s", c.id, r.RemoteAddr)

		if err := writeJSON(conn, WelcomeMsg{
			Type:            TypeWelcome,
			ProtocolVersion: ProtocolVersion,
			Session:         c.id,
			Version:         term.Version(),
			Records:         recordjson.FromAll(term.Records()),
		}); err != nil {
			return
		}
		term.Subscribe(func() { c.send(stateOf(term)) })

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go loop.Run(ctx, term)

		// Writer goroutine.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-c.out:
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		s.read(conn, c, loop, term)

		cancel()
		close(c.done)
		<-loop.Done()
		s.log.Printf("ws %s: disconnected", c.id)
	}
}

func (s *Server) read(conn *websocket.Conn, c *client, loop *session.Loop, term *application.Terminal) {
	for {
		_ = conn.SetReadDeadline(time.Now().Add(10 * time.Minute))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		base, err := decodeBase(msg)
		if err != nil {
			continue
		}

		switch base.Type {
		case TypeCommand:
			var cmd CommandMsg
			if err := json.Unmarshal(msg, &cmd); err != nil {
				continue
			}
			if err := loop.Submit(cmd.Line); err != nil {
				return
			}
		case TypeAnswer:
			var ans AnswerMsg
			if err := json.Unmarshal(msg, &ans); err != nil {
				continue
			}
			c.answer(ans.Answer)
		case TypeCancel:
			loop.Schedule(term.CancelAction)
		}
	}
}

func (s *Server) handshake(conn *websocket.Conn) bool {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return false
	}

	var hello HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil || hello.Type != TypeHello {
		closeWith(conn, websocket.ClosePolicyViolation, "expected hello")
		return false
	}
	if hello.ProtocolVersion != ProtocolVersion {
		closeWith(conn, websocket.ClosePolicyViolation, "bad protocol_version")
		return false
	}
	return true
}

func stateOf(term *application.Terminal) StateMsg {
	state := StateMsg{
		Type:         TypeState,
		Hostname:     term.Player().CurrentServer().Hostname,
		Cwd:          term.Cwd().Absolute(),
		ContractOpen: term.ContractOpen(),
	}
	if action, running := term.Action(); running {
		state.Action = &ActionState{
			Kind:     action.Kind.String(),
			Hostname: action.Server.Hostname,
			Progress: action.Progress(),
		}
	}
	return state
}

func closeWith(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(time.Second))
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	}
	return nil
}

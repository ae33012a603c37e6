// Package session assembles a playable terminal and drives it from a single
// goroutine.
package session

import (
	"fmt"

	"github.com/bnema/netrun/internal/adapters/formulas"
	"github.com/bnema/netrun/internal/adapters/player"
	"github.com/bnema/netrun/internal/adapters/world/memory"
	worldyaml "github.com/bnema/netrun/internal/adapters/world/yaml"
	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/application/commands"
	"github.com/bnema/netrun/internal/ports"
)

type Options struct {
	Version       string
	MaxCapacity   int
	MilliPerCycle int

	Prompter  ports.ContractPrompter
	Scheduler ports.Scheduler
	Journal   ports.ActionJournal
	Tutorial  ports.Tutorial
	Sinks     []ports.OutputSink
}

// Game is one player's terminal together with the world it plays in.
type Game struct {
	Terminal *application.Terminal
	Player   *player.Player
	Events   *player.Events
	Servers  *memory.Registry
}

func NewGame(world *worldyaml.World, opts Options) (*Game, error) {
	p, err := player.New(world.Servers, world.Player)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	events := player.NewEvents(p, world.Servers)

	term := application.NewTerminal(application.Config{
		Version:       opts.Version,
		MaxCapacity:   opts.MaxCapacity,
		MilliPerCycle: opts.MilliPerCycle,
	}, application.Deps{
		Player:    p,
		Formulas:  formulas.NewClassic(),
		Servers:   world.Servers,
		Events:    events,
		Tutorial:  opts.Tutorial,
		Prompter:  opts.Prompter,
		Scheduler: opts.Scheduler,
		Journal:   opts.Journal,
		Sinks:     opts.Sinks,
	}, commands.Table())
	events.Notify = term.Success

	return &Game{
		Terminal: term,
		Player:   p,
		Events:   events,
		Servers:  world.Servers,
	}, nil
}

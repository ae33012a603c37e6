package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/parser"
	"github.com/bnema/netrun/internal/paths"
	"github.com/bnema/netrun/internal/ports"
)

// Handler runs one terminal command. args excludes the command name, except
// for run-by-path where args[0] is the file to run.
type Handler func(t *Terminal, args []parser.Arg, server *domain.Server)

type CommandTable map[string]Handler

type Config struct {
	Version         string
	MaxCapacity     int
	MilliPerCycle   int
	ManualHackMoney float64
}

type Deps struct {
	Player    ports.Player
	Formulas  ports.Formulas
	Servers   ports.ServerRegistry
	Events    ports.GameEvents
	Tutorial  ports.Tutorial
	Prompter  ports.ContractPrompter
	Scheduler ports.Scheduler
	Random    ports.Random
	Journal   ports.ActionJournal
	Clock     ports.Clock
	Sinks     []ports.OutputSink
}

// Terminal is the command dispatcher and action engine. It is not safe for
// concurrent use: a single goroutine must own it.
type Terminal struct {
	cfg      Config
	deps     Deps
	commands CommandTable

	ctx          context.Context
	output       *domain.OutputLog
	history      *domain.CommandHistory
	action       *domain.ActionTimer
	contractOpen bool
	cwd          paths.Directory

	subscribers map[int]func()
	nextSubID   int
}

func NewTerminal(cfg Config, deps Deps, commands CommandTable) *Terminal {
	if cfg.MaxCapacity <= 0 {
		cfg.MaxCapacity = domain.DefaultMaxTerminalCapacity
	}
	if cfg.MilliPerCycle <= 0 {
		cfg.MilliPerCycle = domain.MilliPerCycle
	}
	if cfg.ManualHackMoney <= 0 {
		cfg.ManualHackMoney = 1
	}
	if deps.Random == nil {
		deps.Random = ports.SystemRandom{}
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Events == nil {
		deps.Events = noopEvents{}
	}
	if commands == nil {
		commands = CommandTable{}
	}

	t := &Terminal{
		cfg:         cfg,
		deps:        deps,
		commands:    commands,
		ctx:         context.Background(),
		output:      domain.NewOutputLog(cfg.MaxCapacity),
		history:     domain.NewCommandHistory(nil),
		subscribers: make(map[int]func()),
	}
	t.output.Reset(t.banner())
	return t
}

// SetContext bounds the lifetime of asynchronous prompts started by the
// terminal.
func (t *Terminal) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	t.ctx = ctx
}

func (t *Terminal) banner() domain.Record {
	return domain.TextLine{Text: fmt.Sprintf("netrun v%s", t.cfg.Version), Style: domain.StylePrimary}
}

// Subscribe registers fn to be called after every output, directory or action
// change. The returned func removes the subscription.
func (t *Terminal) Subscribe(fn func()) func() {
	id := t.nextSubID
	t.nextSubID++
	t.subscribers[id] = fn
	return func() {
		delete(t.subscribers, id)
	}
}

func (t *Terminal) notify() {
	ids := make([]int, 0, len(t.subscribers))
	for id := range t.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := t.subscribers[id]; ok {
			fn()
		}
	}
}

func (t *Terminal) Append(record domain.Record) {
	t.output.Append(record)
	for _, sink := range t.deps.Sinks {
		sink.Write(record)
	}
	t.notify()
}

func (t *Terminal) Print(s string) {
	t.Append(domain.TextLine{Text: s, Style: domain.StylePrimary})
}

func (t *Terminal) Error(s string) {
	t.Append(domain.TextLine{Text: s, Style: domain.StyleError})
}

func (t *Terminal) Success(s string) {
	t.Append(domain.TextLine{Text: s, Style: domain.StyleSuccess})
}

func (t *Terminal) Info(s string) {
	t.Append(domain.TextLine{Text: s, Style: domain.StyleInfo})
}

func (t *Terminal) Warn(s string) {
	t.Append(domain.TextLine{Text: s, Style: domain.StyleWarn})
}

func (t *Terminal) PrintRaw(value any) {
	t.Append(domain.RawContent{Value: value})
}

func (t *Terminal) Records() []domain.Record {
	return t.output.Records()
}

// Clear resets the output to the version banner.
func (t *Terminal) Clear() {
	t.output.Reset(t.banner())
	t.notify()
}

// Prestige drops any running action without resolving it and clears the output.
func (t *Terminal) Prestige() {
	t.action = nil
	t.Clear()
}

func (t *Terminal) Cwd() paths.Directory {
	return t.cwd
}

func (t *Terminal) SetCwd(dir paths.Directory) {
	t.cwd = dir
	t.notify()
}

// Action returns a copy of the running action, if any.
func (t *Terminal) Action() (domain.ActionTimer, bool) {
	if t.action == nil {
		return domain.ActionTimer{}, false
	}
	return *t.action, true
}

func (t *Terminal) ContractOpen() bool {
	return t.contractOpen
}

func (t *Terminal) Version() string {
	return t.cfg.Version
}

func (t *Terminal) Player() ports.Player {
	return t.deps.Player
}

func (t *Terminal) Servers() ports.ServerRegistry {
	return t.deps.Servers
}

func (t *Terminal) Formulas() ports.Formulas {
	return t.deps.Formulas
}

// CommandNames lists the registered commands, sorted.
func (t *Terminal) CommandNames() []string {
	names := make([]string, 0, len(t.commands))
	for name := range t.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Terminal) HistoryEntries() []string {
	return t.history.Entries()
}

func (t *Terminal) ClearHistory() {
	t.history.Clear()
}

func (t *Terminal) PreviousCommand() (string, bool) {
	return t.history.Previous()
}

func (t *Terminal) NextCommand() (string, bool) {
	return t.history.Next()
}

// Snapshot returns the fields that survive a save/load cycle.
func (t *Terminal) Snapshot() domain.TerminalState {
	return domain.TerminalState{
		History:          t.history.Entries(),
		CurrentDirectory: string(t.cwd),
	}
}

// Restore loads persisted fields. The action and the output are never restored.
func (t *Terminal) Restore(state domain.TerminalState) {
	t.history = domain.NewCommandHistory(state.History)
	dir, ok := paths.ResolveDirectory(state.CurrentDirectory, paths.Root)
	if !ok {
		dir = paths.Root
	}
	t.cwd = dir
	t.notify()
}

type noopEvents struct{}

func (noopEvents) CheckFactionInvitations() {}
func (noopEvents) EnterEndGame()            {}

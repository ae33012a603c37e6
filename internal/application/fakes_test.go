package application

import (
	"fmt"
	"testing"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/parser"
	"github.com/bnema/netrun/internal/ports"
	"github.com/bnema/netrun/internal/ports/mocks"
)

type fakeRegistry struct {
	order   []string
	servers map[string]*domain.Server
}

func newFakeRegistry(servers ...*domain.Server) *fakeRegistry {
	r := &fakeRegistry{servers: make(map[string]*domain.Server)}
	for _, s := range servers {
		r.order = append(r.order, s.Hostname)
		r.servers[s.Hostname] = s
	}
	return r
}

func (r *fakeRegistry) Get(hostOrIP string) (*domain.Server, bool) {
	if s, ok := r.servers[hostOrIP]; ok {
		return s, true
	}
	for _, s := range r.servers {
		if s.IP != "" && s.IP == hostOrIP {
			return s, true
		}
	}
	return nil, false
}

func (r *fakeRegistry) All() []*domain.Server {
	out := make([]*domain.Server, 0, len(r.order))
	for _, host := range r.order {
		out = append(out, r.servers[host])
	}
	return out
}

type fakePlayer struct {
	registry *fakeRegistry
	current  string
	stats    domain.PlayerStats
	programs map[string]bool
	bitNode  int

	money          float64
	hackingExp     float64
	intelligenceXP float64
	rewards        []domain.ContractReward
}

func (p *fakePlayer) CurrentServer() *domain.Server {
	s, _ := p.registry.Get(p.current)
	return s
}

func (p *fakePlayer) SetCurrentServer(hostname string) error {
	if _, ok := p.registry.Get(hostname); !ok {
		return fmt.Errorf("set current server %q: %w", hostname, domain.ErrServerNotFound)
	}
	p.current = hostname
	return nil
}

func (p *fakePlayer) Stats() domain.PlayerStats { return p.stats }
func (p *fakePlayer) GainMoney(amount float64, _ string) { p.money += amount }
func (p *fakePlayer) GainHackingExp(exp float64) { p.hackingExp += exp }
func (p *fakePlayer) GainIntelligenceExp(exp float64) { p.intelligenceXP += exp }
func (p *fakePlayer) HasProgram(name string) bool { return p.programs[name] }
func (p *fakePlayer) BitNode() int { return p.bitNode }
func (p *fakePlayer) SetBitNode(n int) { p.bitNode = n }
func (p *fakePlayer) GainCodingContractReward(reward *domain.ContractReward, _ float64) string {
	p.rewards = append(p.rewards, *reward)
	return "Gained $1.000m"
}

type fakeFormulas struct {
	chance     float64
	exp        float64
	percent    float64
	hackTime   float64
	growTime   float64
	weakenTime float64
	growth     float64
}

func (f fakeFormulas) HackingChance(*domain.Server, domain.PlayerStats) float64 { return f.chance }
func (f fakeFormulas) HackingExpGain(*domain.Server, domain.PlayerStats) float64 { return f.exp }
func (f fakeFormulas) PercentMoneyHacked(*domain.Server, domain.PlayerStats) float64 { return f.percent }
func (f fakeFormulas) HackingTime(*domain.Server, domain.PlayerStats) float64 { return f.hackTime }
func (f fakeFormulas) GrowTime(*domain.Server, domain.PlayerStats) float64 { return f.growTime }
func (f fakeFormulas) WeakenTime(*domain.Server, domain.PlayerStats) float64 { return f.weakenTime }
func (f fakeFormulas) GrowthMultiplier(*domain.Server, int, domain.PlayerStats, int) float64 {
	return f.growth
}

// queueScheduler collects scheduled continuations so tests decide when they run.
type queueScheduler struct {
	jobs chan func()
}

func newQueueScheduler() *queueScheduler {
	return &queueScheduler{jobs: make(chan func(), 8)}
}

func (s *queueScheduler) Schedule(fn func()) {
	s.jobs <- fn
}

var (
	_ ports.Player         = (*fakePlayer)(nil)
	_ ports.Formulas       = fakeFormulas{}
	_ ports.ServerRegistry = (*fakeRegistry)(nil)
	_ ports.Scheduler      = (*queueScheduler)(nil)
)

type fixture struct {
	term     *Terminal
	player   *fakePlayer
	registry *fakeRegistry
	random   *mocks.MockRandom
	events   *mocks.MockGameEvents
	journal  *mocks.MockActionJournal
}

func defaultFormulas() fakeFormulas {
	return fakeFormulas{
		chance:     0.5,
		exp:        8,
		percent:    0.1,
		hackTime:   4,
		growTime:   16,
		weakenTime: 16,
		growth:     1.5,
	}
}

func newFixture(t *testing.T, formulas fakeFormulas, commands CommandTable, servers ...*domain.Server) *fixture {
	t.Helper()

	if len(servers) == 0 {
		servers = []*domain.Server{{Hostname: domain.HomeHostname, HasAdminRights: true, MaxRAM: 8, MinDifficulty: 1, HackDifficulty: 1}}
	}
	registry := newFakeRegistry(servers...)
	player := &fakePlayer{
		registry: registry,
		current:  servers[0].Hostname,
		stats:    domain.PlayerStats{HackingSkill: 1, Mults: domain.DefaultHackingMultipliers()},
		programs: make(map[string]bool),
	}

	f := &fixture{
		player:   player,
		registry: registry,
		random:   mocks.NewMockRandom(t),
		events:   mocks.NewMockGameEvents(t),
		journal:  mocks.NewMockActionJournal(t),
	}
	f.term = NewTerminal(Config{Version: "test"}, Deps{
		Player:   player,
		Formulas: formulas,
		Servers:  registry,
		Events:   f.events,
		Random:   f.random,
		Journal:  f.journal,
	}, commands)

	return f
}

func lines(records []domain.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		switch rec := r.(type) {
		case domain.TextLine:
			out = append(out, rec.Text)
		case domain.Link:
			out = append(out, rec.Dashes+"<"+rec.Hostname+">")
		}
	}
	return out
}

func lastLine(t *testing.T, term *Terminal) domain.TextLine {
	t.Helper()
	records := term.Records()
	line, ok := records[len(records)-1].(domain.TextLine)
	if !ok {
		t.Fatalf("last record is %T, want TextLine", records[len(records)-1])
	}
	return line
}

func recordingHandler(calls *[][]string) Handler {
	return func(_ *Terminal, args []parser.Arg, _ *domain.Server) {
		*calls = append(*calls, parser.Strings(args))
	}
}

package player

import (
	"fmt"
	"math"
	"sort"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
)

// Seed is the starting state of a player.
type Seed struct {
	Hostname        string
	Money           float64
	HackingExp      float64
	IntelligenceExp float64
	BitNode         int
	Mults           domain.HackingMultipliers
}

// Player is the in-memory player consumed by the terminal. Programs are the
// ones installed on the home server.
type Player struct {
	servers ports.ServerRegistry

	current         string
	money           float64
	hackingExp      float64
	intelligenceExp float64
	bitNode         int
	mults           domain.HackingMultipliers

	moneySources map[string]float64
	factionRep   map[string]float64
	companyRep   map[string]float64

	// CodingContractMoney scales money rewards of coding contracts.
	CodingContractMoney float64
}

func New(servers ports.ServerRegistry, seed Seed) (*Player, error) {
	if seed.Hostname == "" {
		seed.Hostname = domain.HomeHostname
	}
	server, ok := servers.Get(seed.Hostname)
	if !ok {
		return nil, fmt.Errorf("new player at %q: %w", seed.Hostname, domain.ErrServerNotFound)
	}
	if seed.BitNode <= 0 {
		seed.BitNode = 1
	}
	if seed.Mults == (domain.HackingMultipliers{}) {
		seed.Mults = domain.DefaultHackingMultipliers()
	}

	for _, s := range servers.All() {
		s.IsConnectedTo = false
	}
	server.IsConnectedTo = true

	return &Player{
		servers:             servers,
		current:             server.Hostname,
		money:               seed.Money,
		hackingExp:          seed.HackingExp,
		intelligenceExp:     seed.IntelligenceExp,
		bitNode:             seed.BitNode,
		mults:               seed.Mults,
		moneySources:        make(map[string]float64),
		factionRep:          make(map[string]float64),
		companyRep:          make(map[string]float64),
		CodingContractMoney: 1,
	}, nil
}

// SkillLevel converts experience into a skill level.
func SkillLevel(exp, mult float64) int {
	level := math.Floor(mult * (32*math.Log(exp+534.6) - 200))
	return int(math.Max(level, 1))
}

func (p *Player) CurrentServer() *domain.Server {
	server, _ := p.servers.Get(p.current)
	return server
}

func (p *Player) SetCurrentServer(hostname string) error {
	server, ok := p.servers.Get(hostname)
	if !ok {
		return fmt.Errorf("set current server %q: %w", hostname, domain.ErrServerNotFound)
	}
	p.current = server.Hostname
	return nil
}

func (p *Player) Stats() domain.PlayerStats {
	intelligence := 0
	if p.intelligenceExp > 0 {
		intelligence = SkillLevel(p.intelligenceExp, 1)
	}
	return domain.PlayerStats{
		HackingSkill: SkillLevel(p.hackingExp, 1),
		Intelligence: intelligence,
		Mults:        p.mults,
	}
}

func (p *Player) Money() float64 { return p.money }
func (p *Player) HackingExp() float64 { return p.hackingExp }

func (p *Player) GainMoney(amount float64, source string) {
	if math.IsNaN(amount) {
		return
	}
	p.money += amount
	p.moneySources[source] += amount
}

// MoneySources returns the money gained per source.
func (p *Player) MoneySources() map[string]float64 {
	out := make(map[string]float64, len(p.moneySources))
	for k, v := range p.moneySources {
		out[k] = v
	}
	return out
}

func (p *Player) GainHackingExp(exp float64) {
	if math.IsNaN(exp) {
		return
	}
	p.hackingExp = math.Max(p.hackingExp+exp, 0)
}

func (p *Player) GainIntelligenceExp(exp float64) {
	if math.IsNaN(exp) {
		return
	}
	p.intelligenceExp += exp
}

func (p *Player) HasProgram(name string) bool {
	home, ok := p.servers.Get(domain.HomeHostname)
	return ok && home.HasProgram(name)
}

func (p *Player) BitNode() int { return p.bitNode }
func (p *Player) SetBitNode(n int) { p.bitNode = n }

func (p *Player) FactionReputation(name string) float64 { return p.factionRep[name] }
func (p *Player) CompanyReputation(name string) float64 { return p.companyRep[name] }

func (p *Player) GainCodingContractReward(reward *domain.ContractReward, difficulty float64) string {
	if reward == nil {
		reward = &domain.ContractReward{Kind: domain.RewardMoney}
	}
	if difficulty <= 0 {
		difficulty = 1
	}

	switch reward.Kind {
	case domain.RewardFactionReputation:
		gain := domain.CodingContractBaseFactionRepGain * difficulty
		name := reward.Name
		if name == "" {
			name = p.anyFaction()
		}
		if name != "" {
			p.factionRep[name] += gain
			return fmt.Sprintf("Gained %s faction reputation for %s", domain.FormatExp(gain), name)
		}
	case domain.RewardCompanyReputation:
		if reward.Name != "" {
			gain := domain.CodingContractBaseCompanyRepGain * difficulty
			p.companyRep[reward.Name] += gain
			return fmt.Sprintf("Gained %s company reputation for %s", domain.FormatExp(gain), reward.Name)
		}
	}

	gain := domain.CodingContractBaseMoneyGain * difficulty * p.CodingContractMoney
	p.GainMoney(gain, "codingcontract")
	return "Gained " + domain.FormatMoney(gain)
}

// JoinFaction makes a faction eligible for reputation rewards.
func (p *Player) JoinFaction(name string) {
	if _, ok := p.factionRep[name]; !ok {
		p.factionRep[name] = 0
	}
}

func (p *Player) Factions() []string {
	out := make([]string, 0, len(p.factionRep))
	for name := range p.factionRep {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (p *Player) anyFaction() string {
	factions := p.Factions()
	if len(factions) == 0 {
		return ""
	}
	return factions[0]
}

var _ ports.Player = (*Player)(nil)

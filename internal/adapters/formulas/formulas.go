package formulas

import (
	"math"

	"github.com/bnema/netrun/internal/domain"
)

const (
	hackChanceFactor   = 1.75
	hackBaseExpGain    = 3
	hackExpDiffFactor  = 0.3
	moneyBalanceFactor = 240

	hackTimeBaseDiff   = 500
	hackTimeBaseSkill  = 50
	hackTimeDiffFactor = 2.5
	hackTimeMultiplier = 5

	growTimeFactor   = 3.2
	weakenTimeFactor = 4

	serverBaseGrowthRate = 1.03
	serverMaxGrowthRate  = 1.0035
)

// NodeMultipliers scales formulas per BitNode.
type NodeMultipliers struct {
	HackExpGain      float64
	ScriptHackMoney  float64
	ServerGrowthRate float64
}

func DefaultNodeMultipliers() NodeMultipliers {
	return NodeMultipliers{HackExpGain: 1, ScriptHackMoney: 1, ServerGrowthRate: 1}
}

// Classic implements the stock hacking formulas.
type Classic struct {
	Node NodeMultipliers
}

func NewClassic() *Classic {
	return &Classic{Node: DefaultNodeMultipliers()}
}

func IntelligenceBonus(intelligence int, weight float64) float64 {
	return 1 + (weight*math.Pow(float64(intelligence), 0.8))/600
}

func (c *Classic) HackingChance(server *domain.Server, player domain.PlayerStats) float64 {
	if player.HackingSkill <= 0 {
		return 0
	}
	difficultyMult := (100 - server.HackDifficulty) / 100
	skillMult := hackChanceFactor * float64(player.HackingSkill)
	skillChance := (skillMult - float64(server.RequiredHackingSkill)) / skillMult
	chance := skillChance * difficultyMult * player.Mults.Chance * IntelligenceBonus(player.Intelligence, 1)
	return clamp(chance, 0, 1)
}

func (c *Classic) HackingExpGain(server *domain.Server, player domain.PlayerStats) float64 {
	base := server.BaseDifficulty
	if base == 0 {
		base = server.MinDifficulty
	}
	exp := hackBaseExpGain + base*hackExpDiffFactor
	return exp * player.Mults.Exp * c.Node.HackExpGain
}

func (c *Classic) PercentMoneyHacked(server *domain.Server, player domain.PlayerStats) float64 {
	if player.HackingSkill <= 0 {
		return 0
	}
	difficultyMult := (100 - server.HackDifficulty) / 100
	skill := float64(player.HackingSkill)
	skillMult := (skill - float64(server.RequiredHackingSkill-1)) / skill
	percent := (difficultyMult * skillMult * player.Mults.Money * c.Node.ScriptHackMoney) / moneyBalanceFactor
	return clamp(percent, 0, 1)
}

func (c *Classic) HackingTime(server *domain.Server, player domain.PlayerStats) float64 {
	difficultyMult := float64(server.RequiredHackingSkill) * server.HackDifficulty
	skillFactor := hackTimeDiffFactor*difficultyMult + hackTimeBaseDiff
	skillFactor /= float64(player.HackingSkill) + hackTimeBaseSkill

	speed := player.Mults.Speed
	if speed <= 0 {
		speed = 1
	}
	return (hackTimeMultiplier * skillFactor) / (speed * IntelligenceBonus(player.Intelligence, 1))
}

func (c *Classic) GrowTime(server *domain.Server, player domain.PlayerStats) float64 {
	return growTimeFactor * c.HackingTime(server, player)
}

func (c *Classic) WeakenTime(server *domain.Server, player domain.PlayerStats) float64 {
	return weakenTimeFactor * c.HackingTime(server, player)
}

func (c *Classic) GrowthMultiplier(server *domain.Server, threads int, player domain.PlayerStats, cores int) float64 {
	if server.HackDifficulty <= 0 {
		return 1
	}
	cycles := math.Max(float64(threads), 0)

	rate := 1 + (serverBaseGrowthRate-1)/server.HackDifficulty
	if rate > serverMaxGrowthRate {
		rate = serverMaxGrowthRate
	}

	adjustedCycles := cycles * (server.ServerGrowth / 100) * c.Node.ServerGrowthRate
	if cores < 1 {
		cores = 1
	}
	coreBonus := 1 + float64(cores-1)/16
	return math.Pow(rate, adjustedCycles*player.Mults.Grow*coreBonus)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(v, lo))
}

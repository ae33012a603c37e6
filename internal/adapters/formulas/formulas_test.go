package formulas

import (
	"testing"

	"github.com/bnema/netrun/internal/domain"
	"github.com/stretchr/testify/assert"
)

func noodles() *domain.Server {
	return &domain.Server{
		Hostname:             "n00dles",
		HackDifficulty:       1,
		MinDifficulty:        1,
		BaseDifficulty:       1,
		RequiredHackingSkill: 1,
		ServerGrowth:         3000,
		MoneyAvailable:       70000,
		MoneyMax:             1750000,
	}
}

func stats(skill int) domain.PlayerStats {
	return domain.PlayerStats{HackingSkill: skill, Mults: domain.DefaultHackingMultipliers()}
}

func TestHackingChance(t *testing.T) {
	c := NewClassic()

	got := c.HackingChance(noodles(), stats(10))
	assert.InDelta(t, (17.5-1)/17.5*0.99, got, 1e-9)

	hard := noodles()
	hard.RequiredHackingSkill = 500
	assert.Zero(t, c.HackingChance(hard, stats(10)))

	assert.Zero(t, c.HackingChance(noodles(), stats(0)))
}

func TestHackingExpGain(t *testing.T) {
	c := NewClassic()
	assert.InDelta(t, 3.3, c.HackingExpGain(noodles(), stats(1)), 1e-9)

	c.Node.HackExpGain = 2
	assert.InDelta(t, 6.6, c.HackingExpGain(noodles(), stats(1)), 1e-9)
}

func TestPercentMoneyHacked(t *testing.T) {
	c := NewClassic()
	got := c.PercentMoneyHacked(noodles(), stats(1))
	assert.InDelta(t, 0.99/240, got, 1e-12)
}

func TestTimes(t *testing.T) {
	c := NewClassic()
	server := noodles()

	hack := c.HackingTime(server, stats(1))
	assert.InDelta(t, 5*(2.5*1+500)/51.0, hack, 1e-9)
	assert.InDelta(t, 3.2*hack, c.GrowTime(server, stats(1)), 1e-9)
	assert.InDelta(t, 4*hack, c.WeakenTime(server, stats(1)), 1e-9)

	assert.Less(t, c.HackingTime(server, stats(100)), hack)
}

func TestGrowthMultiplier(t *testing.T) {
	c := NewClassic()
	server := noodles()

	assert.InDelta(t, 1.0, c.GrowthMultiplier(server, 0, stats(1), 1), 1e-12)

	one := c.GrowthMultiplier(server, 1, stats(1), 1)
	assert.InDelta(t, 1.1105, one, 0.001)
	assert.Greater(t, c.GrowthMultiplier(server, 1, stats(1), 4), one)
}

func TestIntelligenceBonus(t *testing.T) {
	assert.Equal(t, 1.0, IntelligenceBonus(0, 1))
	assert.Greater(t, IntelligenceBonus(100, 1), 1.0)
}

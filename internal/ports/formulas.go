package ports

import "github.com/bnema/netrun/internal/domain"

// Formulas exposes the game's stat functions. Times are in seconds.
type Formulas interface {
	HackingChance(server *domain.Server, player domain.PlayerStats) float64
	HackingExpGain(server *domain.Server, player domain.PlayerStats) float64
	PercentMoneyHacked(server *domain.Server, player domain.PlayerStats) float64
	HackingTime(server *domain.Server, player domain.PlayerStats) float64
	GrowTime(server *domain.Server, player domain.PlayerStats) float64
	WeakenTime(server *domain.Server, player domain.PlayerStats) float64
	GrowthMultiplier(server *domain.Server, threads int, player domain.PlayerStats, cores int) float64
}

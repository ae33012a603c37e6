package ports

import "github.com/bnema/netrun/internal/domain"

type Player interface {
	CurrentServer() *domain.Server
	SetCurrentServer(hostname string) error
	Stats() domain.PlayerStats
	GainMoney(amount float64, source string)
	GainHackingExp(exp float64)
	GainIntelligenceExp(exp float64)
	HasProgram(name string) bool
	BitNode() int
	SetBitNode(n int)
	// GainCodingContractReward applies the reward and returns a description
	// of what was gained.
	GainCodingContractReward(reward *domain.ContractReward, difficulty float64) string
}

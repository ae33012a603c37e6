package domain

import (
	"strings"

	"github.com/bnema/netrun/internal/paths"
)

type ContractResult int

const (
	ContractCancelled ContractResult = iota
	ContractSuccess
	ContractFailure
)

func (r ContractResult) String() string {
	switch r {
	case ContractSuccess:
		return "success"
	case ContractFailure:
		return "failure"
	default:
		return "cancelled"
	}
}

type RewardKind string

const (
	RewardMoney             RewardKind = "money"
	RewardFactionReputation RewardKind = "faction_reputation"
	RewardCompanyReputation RewardKind = "company_reputation"
)

type ContractReward struct {
	Kind RewardKind
	Name string
}

// Contract is a coding contract file living on a server.
type Contract struct {
	Path        paths.FilePath
	Type        string
	Description string
	Answer      string
	Difficulty  float64
	Tries       int
	MaxTries    int
	Reward      *ContractReward
}

func (c *Contract) MaxNumTries() int {
	if c.MaxTries <= 0 {
		return 1
	}
	return c.MaxTries
}

// Check compares a submitted answer with the expected one, ignoring
// surrounding whitespace and blanks after commas.
func (c Contract) Check(answer string) bool {
	return normalizeAnswer(answer) == normalizeAnswer(c.Answer)
}

func normalizeAnswer(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ", ", ",")
}

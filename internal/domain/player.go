package domain

type HackingMultipliers struct {
	Chance float64
	Speed  float64
	Money  float64
	Grow   float64
	Exp    float64
}

func DefaultHackingMultipliers() HackingMultipliers {
	return HackingMultipliers{Chance: 1, Speed: 1, Money: 1, Grow: 1, Exp: 1}
}

// PlayerStats is the snapshot of the player consumed by formulas.
type PlayerStats struct {
	HackingSkill int
	Intelligence int
	Mults        HackingMultipliers
}

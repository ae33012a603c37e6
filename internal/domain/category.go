package domain

type ServerCategory int

const (
	CategoryStandard ServerCategory = iota
	CategoryHacknet
)

func (c ServerCategory) String() string {
	switch c {
	case CategoryStandard:
		return "standard"
	case CategoryHacknet:
		return "hacknet"
	default:
		return "unknown"
	}
}

func ParseServerCategory(raw string) (ServerCategory, bool) {
	switch raw {
	case "", "standard":
		return CategoryStandard, true
	case "hacknet":
		return CategoryHacknet, true
	default:
		return 0, false
	}
}

// Allows is the single capability check used by every action: hacknet
// servers can only be analyzed.
func (c ServerCategory) Allows(kind ActionKind) bool {
	if c == CategoryStandard {
		return true
	}
	return kind == ActionAnalyze
}

// HasHackingDetails reports whether security, money and ports are meaningful.
func (c ServerCategory) HasHackingDetails() bool {
	return c == CategoryStandard
}

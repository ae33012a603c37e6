package domain

import "time"

type ActionKind int

const (
	ActionHack ActionKind = iota + 1
	ActionGrow
	ActionWeaken
	ActionBackdoor
	ActionAnalyze
)

func (k ActionKind) String() string {
	switch k {
	case ActionHack:
		return "hack"
	case ActionGrow:
		return "grow"
	case ActionWeaken:
		return "weaken"
	case ActionBackdoor:
		return "backdoor"
	case ActionAnalyze:
		return "analyze"
	default:
		return "unknown"
	}
}

func ParseActionKind(raw string) (ActionKind, bool) {
	for k := ActionHack; k <= ActionAnalyze; k++ {
		if k.String() == raw {
			return k, true
		}
	}
	return 0, false
}

// ActionTimer is the single in-flight terminal action.
type ActionTimer struct {
	Kind      ActionKind
	Total     float64
	Remaining float64
	Server    *Server
}

func NewActionTimer(kind ActionKind, seconds float64, server *Server) *ActionTimer {
	return &ActionTimer{
		Kind:      kind,
		Total:     seconds,
		Remaining: seconds,
		Server:    server,
	}
}

// Progress is the completed fraction of the action.
func (a ActionTimer) Progress() float64 {
	if a.Total <= 0 {
		return 1
	}
	return (a.Total - a.Remaining) / a.Total
}

// Expired reports whether the remaining time dropped under the epsilon.
func (a ActionTimer) Expired() bool {
	return a.Remaining < ActionEpsilon
}

// ActionOutcome summarises a finished action for journaling.
type ActionOutcome struct {
	Kind           ActionKind
	Hostname       string
	Cancelled      bool
	Rejected       bool
	Success        bool
	MoneyGained    float64
	ExpGained      float64
	SecurityBefore float64
	SecurityAfter  float64
	GrowthPercent  float64
	Duration       float64
	FinishedAt     time.Time
}

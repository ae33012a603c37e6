package application

import (
	"fmt"

	"github.com/bnema/netrun/internal/domain"
)

// Process advances the running action by the given number of clock cycles
// and finalises it once it expires.
func (t *Terminal) Process(cycles int) {
	if t.action == nil || cycles <= 0 {
		return
	}

	t.action.Remaining -= float64(t.cfg.MilliPerCycle*cycles) / 1000
	if t.action.Expired() {
		t.finishAction(false)
	}
}

// StartAction arms the action timer. It fails when an action is already
// running and leaves that action untouched.
func (t *Terminal) StartAction(seconds float64, kind domain.ActionKind, server *domain.Server) error {
	if t.action != nil {
		return fmt.Errorf("start %s: %w", kind, domain.ErrActionInProgress)
	}

	t.action = domain.NewActionTimer(kind, seconds, server)
	t.notify()
	return nil
}

// CancelAction finalises the running action without resolving its effects.
func (t *Terminal) CancelAction() {
	t.finishAction(true)
}

func (t *Terminal) StartHack() {
	t.startTimed(domain.ActionHack, "hack", func(server *domain.Server) float64 {
		return t.deps.Formulas.HackingTime(server, t.deps.Player.Stats()) / 4
	})
}

func (t *Terminal) StartGrow() {
	t.startTimed(domain.ActionGrow, "grow", func(server *domain.Server) float64 {
		return t.deps.Formulas.GrowTime(server, t.deps.Player.Stats()) / 16
	})
}

func (t *Terminal) StartWeaken() {
	t.startTimed(domain.ActionWeaken, "weaken", func(server *domain.Server) float64 {
		return t.deps.Formulas.WeakenTime(server, t.deps.Player.Stats()) / 16
	})
}

// StartBackdoor takes as long as a terminal hack.
func (t *Terminal) StartBackdoor() {
	t.startTimed(domain.ActionBackdoor, "backdoor", func(server *domain.Server) float64 {
		return t.deps.Formulas.HackingTime(server, t.deps.Player.Stats()) / 4
	})
}

func (t *Terminal) StartAnalyze() {
	t.Print("Analyzing system...")
	t.startTimed(domain.ActionAnalyze, "analyze", func(*domain.Server) float64 {
		return 1
	})
}

func (t *Terminal) startTimed(kind domain.ActionKind, verb string, duration func(*domain.Server) float64) {
	server := t.deps.Player.CurrentServer()
	if !server.Category.Allows(kind) {
		t.Error(fmt.Sprintf("Cannot %s this kind of server", verb))
		return
	}

	if err := t.StartAction(duration(server), kind, server); err != nil {
		t.Error(err.Error())
	}
}

func (t *Terminal) progressText() string {
	if t.action == nil {
		panic("progress text requested with no action in progress")
	}
	return domain.ProgressBarText(t.action.Progress(), domain.ProgressBarTicks)
}

func (t *Terminal) finishAction(cancelled bool) {
	if t.action == nil {
		if !cancelled {
			panic("finish action called when there was no action")
		}
		return
	}

	action := t.action
	if action.Server == nil {
		panic(fmt.Sprintf("%s action is missing its target server", action.Kind))
	}

	t.Print(t.progressText())

	var outcome domain.ActionOutcome
	switch action.Kind {
	case domain.ActionHack:
		if !cancelled {
			outcome = t.finishHack(action.Server)
		}
	case domain.ActionGrow:
		if !cancelled {
			outcome = t.finishGrow(action.Server)
		}
	case domain.ActionWeaken:
		if !cancelled {
			outcome = t.finishWeaken(action.Server)
		}
	case domain.ActionBackdoor:
		outcome = t.finishBackdoor(action.Server, cancelled)
	case domain.ActionAnalyze:
		outcome = t.finishAnalyze(action.Server, cancelled)
	default:
		panic(fmt.Sprintf("unknown action kind %d", action.Kind))
	}

	if cancelled {
		t.Print("Cancelled")
	}

	outcome.Kind = action.Kind
	outcome.Hostname = action.Server.Hostname
	outcome.Cancelled = cancelled
	outcome.Duration = action.Total
	outcome.FinishedAt = t.deps.Clock.Now()
	if t.deps.Journal != nil {
		t.deps.Journal.Record(outcome)
	}

	t.action = nil
	t.notify()
}

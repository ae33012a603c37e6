package application

import (
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/parser"
	"github.com/bnema/netrun/internal/ports"
)

const (
	tutorialBadCommand   = "Bad command. Please follow the tutorial"
	tutorialWrongCommand = "Wrong command! Try again!"
	tutorialSkipHint     = "Please follow the tutorial, or click 'EXIT' if you'd like to skip it"
)

type tutorialRule struct {
	accepts func(args []parser.Arg) bool
	// reject picks the message for a refused command. Nil means the bad
	// command message.
	reject func(args []parser.Arg) string
	// stay keeps the tutorial on the same step after an accepted command.
	stay bool
}

var tutorialRules = map[domain.TutorialStep]tutorialRule{
	domain.TutorialTerminalHelp:         {accepts: exactly("help")},
	domain.TutorialTerminalLs:           {accepts: exactly("ls")},
	domain.TutorialTerminalScan:         {accepts: exactly("scan")},
	domain.TutorialTerminalScanAnalyze1: {accepts: exactly("scan-analyze")},
	domain.TutorialTerminalScanAnalyze2: {accepts: func(args []parser.Arg) bool {
		return len(args) == 2 && args[0].Is("scan-analyze") && args[1].IsNumber(2)
	}},
	domain.TutorialTerminalConnect: {
		accepts: exactly("connect", domain.TutorialHostname),
		reject: func(args []parser.Arg) string {
			if len(args) == 2 {
				return tutorialWrongCommand
			}
			return tutorialBadCommand
		},
	},
	domain.TutorialTerminalAnalyze:    {accepts: exactly("analyze")},
	domain.TutorialTerminalNuke:       {accepts: exactly("run", domain.ProgramNuke)},
	domain.TutorialTerminalManualHack: {accepts: exactly("hack")},
	domain.TutorialTerminalHackingMechanics: {
		accepts: func(args []parser.Arg) bool {
			return len(args) == 1 && (args[0].Is("grow") || args[0].Is("weaken") || args[0].Is("hack"))
		},
		stay: true,
	},
	domain.TutorialTerminalGoHome:          {accepts: exactly("home")},
	domain.TutorialTerminalCreateScript:    {accepts: withTutorialScript("nano")},
	domain.TutorialTerminalFree:            {accepts: exactly("free")},
	domain.TutorialTerminalRunScript:       {accepts: withTutorialScript("run")},
	domain.TutorialActiveScriptsToTerminal: {accepts: withTutorialScript("tail")},
}

func exactly(tokens ...string) func([]parser.Arg) bool {
	return func(args []parser.Arg) bool {
		if len(args) != len(tokens) {
			return false
		}
		for i, token := range tokens {
			if !args[i].Is(token) {
				return false
			}
		}
		return true
	}
}

func withTutorialScript(command string) func([]parser.Arg) bool {
	return func(args []parser.Arg) bool {
		return len(args) == 2 && args[0].Is(command) &&
			(args[1].Is("n00dles.script") || args[1].Is("n00dles.js"))
	}
}

// checkTutorial validates args against the current tutorial step. It returns
// the rejection message when the command must not run.
func (t *Terminal) checkTutorial(args []parser.Arg) (string, bool) {
	rule, ok := tutorialRules[t.deps.Tutorial.Step()]
	if !ok {
		return tutorialSkipHint, false
	}

	if !rule.accepts(args) {
		if rule.reject != nil {
			return rule.reject(args), false
		}
		return tutorialBadCommand, false
	}

	if !rule.stay {
		t.deps.Tutorial.Advance()
	}
	return "", true
}

// TutorialProgress is an in-memory tutorial tracker.
type TutorialProgress struct {
	running bool
	step    domain.TutorialStep
}

var _ ports.Tutorial = (*TutorialProgress)(nil)

func NewTutorialProgress(start domain.TutorialStep) *TutorialProgress {
	return &TutorialProgress{running: start < domain.TutorialEnd, step: start}
}

func (p *TutorialProgress) Running() bool {
	return p.running
}

func (p *TutorialProgress) Step() domain.TutorialStep {
	return p.step
}

func (p *TutorialProgress) Advance() {
	if p.step < domain.TutorialEnd {
		p.step++
	}
	if p.step == domain.TutorialEnd {
		p.running = false
	}
}

// Stop ends the tutorial immediately.
func (p *TutorialProgress) Stop() {
	p.running = false
	p.step = domain.TutorialEnd
}

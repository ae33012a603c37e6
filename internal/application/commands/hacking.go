package commands

import (
	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/parser"
)

const ownMachineSuffix = " your own machines! You are currently connected to your home PC or one of your purchased servers"

func analyze(t *application.Terminal, args []parser.Arg, _ *domain.Server) {
	if len(args) != 0 {
		usageError(t, "analyze")
		return
	}
	t.StartAnalyze()
}

func hack(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 0 {
		usageError(t, "hack")
		return
	}
	if !canTarget(t, server, "Cannot hack", "You do not have admin rights for this machine! Cannot hack",
		"Your hacking skill is not high enough to attempt hacking this machine. Try analyzing the machine to determine the required hacking skill") {
		return
	}
	t.StartHack()
}

func grow(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 0 {
		usageError(t, "grow")
		return
	}
	if !canTarget(t, server, "Cannot grow", "You do not have admin rights for this machine! Cannot grow", "") {
		return
	}
	t.StartGrow()
}

func weaken(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 0 {
		usageError(t, "weaken")
		return
	}
	if !canTarget(t, server, "Cannot weaken", "You do not have admin rights for this machine! Cannot weaken", "") {
		return
	}
	t.StartWeaken()
}

func backdoor(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 0 {
		usageError(t, "backdoor")
		return
	}
	if !server.Category.HasHackingDetails() {
		t.Error("Can only backdoor normal servers")
		return
	}
	if !canTarget(t, server, "Cannot use backdoor on", "You do not have admin rights for this machine",
		"Your hacking skill is not high enough to use backdoor on this machine. Try analyzing the machine to determine the required hacking skill") {
		return
	}
	if server.BackdoorInstalled {
		t.Warn("Backdoor is already installed on this server")
	}
	t.StartBackdoor()
}

// canTarget runs the ownership, admin and skill checks shared by the
// targeted actions. An empty skillMsg skips the skill check.
func canTarget(t *application.Terminal, server *domain.Server, ownPrefix, adminMsg, skillMsg string) bool {
	if server.PurchasedByPlayer {
		t.Error(ownPrefix + ownMachineSuffix)
		return false
	}
	if !server.HasAdminRights {
		t.Error(adminMsg)
		return false
	}
	if skillMsg != "" && server.RequiredHackingSkill > t.Player().Stats().HackingSkill {
		t.Error(skillMsg)
		return false
	}
	return true
}

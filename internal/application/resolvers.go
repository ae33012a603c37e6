package application

import (
	"fmt"
	"math"

	"github.com/bnema/netrun/internal/domain"
)

// rejects prints the category error and reports whether kind is not allowed
// on server.
func (t *Terminal) rejects(server *domain.Server, kind domain.ActionKind, verb string) bool {
	if server.Category.Allows(kind) {
		return false
	}
	t.Error(fmt.Sprintf("Cannot %s this kind of server", verb))
	return true
}

func (t *Terminal) finishHack(server *domain.Server) domain.ActionOutcome {
	if t.rejects(server, domain.ActionHack, "hack") {
		return domain.ActionOutcome{Rejected: true}
	}

	stats := t.deps.Player.Stats()
	chance := t.deps.Formulas.HackingChance(server, stats)
	sample := t.deps.Random.Float64()
	expOnSuccess := t.deps.Formulas.HackingExpGain(server, stats)
	expOnFailure := expOnSuccess / 4

	if sample >= chance {
		t.deps.Player.GainHackingExp(expOnFailure)
		t.Print(fmt.Sprintf("Failed to hack '%s'. Gained %s hacking exp", server.Hostname, domain.FormatExp(expOnFailure)))
		return domain.ActionOutcome{ExpGained: expOnFailure}
	}

	server.BackdoorInstalled = true
	if server.Hostname == domain.WorldDaemonHostname {
		t.deps.Events.EnterEndGame()
		return domain.ActionOutcome{Success: true}
	}
	t.deps.Events.CheckFactionInvitations()

	percent := t.deps.Formulas.PercentMoneyHacked(server, stats) * t.cfg.ManualHackMoney
	moneyGained := math.Floor(server.MoneyAvailable * percent)
	if moneyGained <= 0 || math.IsNaN(moneyGained) {
		moneyGained = 0
	}

	server.MoneyAvailable -= moneyGained
	t.deps.Player.GainMoney(moneyGained, "hacking")
	t.deps.Player.GainHackingExp(expOnSuccess)
	t.deps.Player.GainIntelligenceExp(expOnSuccess / domain.IntelligenceTerminalHackBaseExpGain)

	oldSec := server.HackDifficulty
	server.Fortify(domain.ServerFortifyAmount)
	newSec := server.HackDifficulty

	t.Print(fmt.Sprintf("Hack successful on '%s'! Gained %s and %s hacking exp",
		server.Hostname, domain.FormatMoney(moneyGained), domain.FormatExp(expOnSuccess)))
	t.Print(fmt.Sprintf("Security increased on '%s' from %s to %s",
		server.Hostname, domain.FormatSecurity(oldSec), domain.FormatSecurity(newSec)))

	return domain.ActionOutcome{
		Success:        true,
		MoneyGained:    moneyGained,
		ExpGained:      expOnSuccess,
		SecurityBefore: oldSec,
		SecurityAfter:  newSec,
	}
}

func (t *Terminal) finishGrow(server *domain.Server) domain.ActionOutcome {
	if t.rejects(server, domain.ActionGrow, "grow") {
		return domain.ActionOutcome{Rejected: true}
	}

	stats := t.deps.Player.Stats()
	expGain := t.deps.Formulas.HackingExpGain(server, stats)
	oldSec := server.HackDifficulty
	multiplier := t.deps.Formulas.GrowthMultiplier(server, domain.ManualGrowThreads, stats, server.CPUCores)
	growth := server.ApplyGrowth(multiplier, domain.ManualGrowThreads) - 1
	newSec := server.HackDifficulty

	t.deps.Player.GainHackingExp(expGain)
	t.Print(fmt.Sprintf("Available money on '%s' grown by %s. Gained %s hacking exp.",
		server.Hostname, domain.FormatPercent(growth, 6), domain.FormatExp(expGain)))
	t.Print(fmt.Sprintf("Security increased on '%s' from %s to %s",
		server.Hostname, domain.FormatSecurity(oldSec), domain.FormatSecurity(newSec)))

	return domain.ActionOutcome{
		Success:        true,
		ExpGained:      expGain,
		SecurityBefore: oldSec,
		SecurityAfter:  newSec,
		GrowthPercent:  growth,
	}
}

func (t *Terminal) finishWeaken(server *domain.Server) domain.ActionOutcome {
	if t.rejects(server, domain.ActionWeaken, "weaken") {
		return domain.ActionOutcome{Rejected: true}
	}

	expGain := t.deps.Formulas.HackingExpGain(server, t.deps.Player.Stats())
	oldSec := server.HackDifficulty
	server.Weaken(domain.ServerWeakenAmount)
	newSec := server.HackDifficulty

	t.deps.Player.GainHackingExp(expGain)
	t.Print(fmt.Sprintf("Security decreased on '%s' from %s to %s (min: %s) and Gained %s hacking exp.",
		server.Hostname, domain.FormatSecurity(oldSec), domain.FormatSecurity(newSec),
		domain.FormatSecurity(server.MinDifficulty), domain.FormatExp(expGain)))

	return domain.ActionOutcome{
		Success:        true,
		ExpGained:      expGain,
		SecurityBefore: oldSec,
		SecurityAfter:  newSec,
	}
}

func (t *Terminal) finishBackdoor(server *domain.Server, cancelled bool) domain.ActionOutcome {
	if cancelled {
		return domain.ActionOutcome{}
	}
	if t.rejects(server, domain.ActionBackdoor, "backdoor") {
		return domain.ActionOutcome{Rejected: true}
	}

	server.BackdoorInstalled = true
	if server.Hostname == domain.WorldDaemonHostname {
		if t.deps.Player.BitNode() == 0 {
			t.deps.Player.SetBitNode(1)
		}
		t.deps.Events.EnterEndGame()
		return domain.ActionOutcome{Success: true}
	}
	t.deps.Events.CheckFactionInvitations()

	t.Print(fmt.Sprintf("Backdoor on '%s' successful!", server.Hostname))
	return domain.ActionOutcome{Success: true}
}

func (t *Terminal) finishAnalyze(server *domain.Server, cancelled bool) domain.ActionOutcome {
	if cancelled {
		return domain.ActionOutcome{}
	}

	standard := server.Category.HasHackingDetails()
	notApplicable := func(value string) string {
		if !standard {
			return "N/A"
		}
		return value
	}

	org := "player"
	if standard {
		org = server.OrganizationName
	}
	rootAccess := server.HasAdminRights || !standard
	canRunScripts := rootAccess && server.MaxRAM > 0

	t.Print(server.Hostname + ": ")
	t.Print("Organization name: " + org)
	t.Print("Root Access: " + yesNo(rootAccess))
	t.Print("Can run scripts on this host: " + yesNo(canRunScripts))
	t.Print("RAM: " + domain.FormatRAM(server.MaxRAM))

	stats := t.deps.Player.Stats()
	if standard {
		chance := t.deps.Formulas.HackingChance(server, stats)
		hackTime := t.deps.Formulas.HackingTime(server, stats) * 1000

		t.Print("Backdoor: " + yesNo(server.BackdoorInstalled))
		t.Print(fmt.Sprintf("Required hacking skill for hack() and backdoor: %d", server.RequiredHackingSkill))
		t.Print("Server security level: " + domain.FormatSecurity(server.HackDifficulty))
		t.Print("Chance to hack: " + domain.FormatPercent(chance, 2))
		t.Print("Time to hack: " + domain.FormatDuration(hackTime, true))
	} else {
		t.Print("Backdoor: N/A")
		t.Print("Required hacking skill for hack() and backdoor: N/A")
		t.Print("Server security level: N/A")
		t.Print("Chance to hack: N/A")
		t.Print("Time to hack: N/A")
	}

	t.Print("Total money available on server: " + notApplicable(domain.FormatMoney(server.MoneyAvailable)))
	t.Print("Required number of open ports for NUKE: " + notApplicable(fmt.Sprint(server.NumOpenPortsRequired)))
	t.Print("SSH port: " + notApplicable(openClosed(server.Ports.SSH)))
	t.Print("FTP port: " + notApplicable(openClosed(server.Ports.FTP)))
	t.Print("SMTP port: " + notApplicable(openClosed(server.Ports.SMTP)))
	t.Print("HTTP port: " + notApplicable(openClosed(server.Ports.HTTP)))
	t.Print("SQL port: " + notApplicable(openClosed(server.Ports.SQL)))

	return domain.ActionOutcome{Success: true}
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

func openClosed(open bool) string {
	if open {
		return "Open"
	}
	return "Closed"
}

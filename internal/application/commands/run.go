package commands

import (
	"fmt"

	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/parser"
	"github.com/bnema/netrun/internal/paths"
)

const runUsage = "Incorrect usage of run command. Usage: run [program or script] [-t] [num threads] [arg1] [arg2]..."

type program func(t *application.Terminal, server *domain.Server)

func programs() map[string]program {
	return map[string]program{
		domain.ProgramNuke:      nuke,
		domain.ProgramBruteSSH:  portOpener(domain.ProgramBruteSSH, "SSH Port (22)", func(p *domain.Ports) *bool { return &p.SSH }),
		domain.ProgramFTPCrack:  portOpener(domain.ProgramFTPCrack, "FTP Port (21)", func(p *domain.Ports) *bool { return &p.FTP }),
		domain.ProgramRelaySMTP: portOpener(domain.ProgramRelaySMTP, "SMTP Port (25)", func(p *domain.Ports) *bool { return &p.SMTP }),
		domain.ProgramHTTPWorm:  portOpener(domain.ProgramHTTPWorm, "HTTP Port (80)", func(p *domain.Ports) *bool { return &p.HTTP }),
		domain.ProgramSQLInject: portOpener(domain.ProgramSQLInject, "SQL Port (1433)", func(p *domain.Ports) *bool { return &p.SQL }),
		domain.ProgramAutoLink: describe(
			"AutoLink.exe lets you automatically connect to other servers when using 'scan-analyze'.",
			"When using scan-analyze, click on a server's hostname to connect to it.",
		),
		domain.ProgramDeepscanV1: describe("DeepscanV1.exe lets you run 'scan-analyze' with a depth up to 5."),
		domain.ProgramDeepscanV2: describe("DeepscanV2.exe lets you run 'scan-analyze' with a depth up to 10."),
	}
}

func run(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) < 1 || args[0].Raw == "" {
		t.Error(runUsage)
		return
	}

	name := args[0].Raw
	path, ok := t.GetFilepath(name)
	if !ok {
		t.Error(fmt.Sprintf("%s is not a valid filepath.", name))
		return
	}

	switch {
	case path.IsContract():
		t.RunContract(path)
	case path.IsProgram():
		runProgram(t, path, server)
	case path.HasScriptExtension():
		if _, _, ok := t.GetScript(name); !ok {
			t.Error(fmt.Sprintf("No such script '%s' on '%s'", path.Absolute(), server.Hostname))
			return
		}
		t.Error("Scripts cannot be run from this terminal")
	default:
		t.Error("Invalid file extension. Only .exe, .script, .js, .jsx, .ts, .tsx and .cct files can be ran")
	}
}

func runProgram(t *application.Terminal, path paths.FilePath, server *domain.Server) {
	if !t.Player().HasProgram(string(path)) {
		t.Error(fmt.Sprintf("No such (exe, script, js, ns, or cct) file! (Only programs that exist on your home computer or scripts on %s can be run)", server.Hostname))
		return
	}

	prog, ok := programs()[string(path)]
	if !ok {
		t.Error("Invalid executable. Cannot be run.")
		return
	}
	prog(t, server)
}

func nuke(t *application.Terminal, server *domain.Server) {
	if !server.Category.HasHackingDetails() {
		t.Error("Cannot nuke this kind of server.")
		return
	}
	if server.HasAdminRights {
		t.Print("You already have root access to this computer. There is no reason to run NUKE.exe")
		t.Print("You can now run scripts on this server.")
		return
	}
	if server.Ports.OpenCount() >= server.NumOpenPortsRequired {
		server.HasAdminRights = true
		t.Print("NUKE successful! Gained root access to " + server.Hostname)
		t.Print("You can now run scripts on this server.")
		return
	}
	t.Print("NUKE unsuccessful. Not enough ports have been opened")
}

func portOpener(name, label string, port func(*domain.Ports) *bool) program {
	return func(t *application.Terminal, server *domain.Server) {
		if !server.Category.HasHackingDetails() {
			t.Error(fmt.Sprintf("Cannot run %s on this kind of server.", name))
			return
		}
		open := port(&server.Ports)
		if *open {
			t.Print(label + " is already open!")
			return
		}
		*open = true
		t.Print("Opened " + label + "!")
	}
}

func describe(lines ...string) program {
	return func(t *application.Terminal, _ *domain.Server) {
		t.Print("This executable cannot be run.")
		for _, line := range lines {
			t.Print(line)
		}
	}
}

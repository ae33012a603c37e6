// Package commands holds the built-in terminal command table.
package commands

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/parser"
	"github.com/rodaine/table"
)

type command struct {
	name        string
	usage       string
	description string
	run         application.Handler
}

func builtins() []command {
	return []command{
		{"analyze", "analyze", "Get information about the current machine", analyze},
		{"backdoor", "backdoor", "Install a backdoor on the current machine", backdoor},
		{"cat", "cat [file]", "Display a .msg, .lit, or text file", cat},
		{"cd", "cd [dir]", "Change to a new directory", cd},
		{"clear", "clear", "Clear all text on the terminal", clearScreen},
		{"connect", "connect [hostname]", "Connects to a remote server", connect},
		{"free", "free", "Check the machine's memory (RAM) usage", free},
		{"grow", "grow", "Spoof money in a servers bank account, increasing the amount available", grow},
		{"hack", "hack", "Hack the current machine", hack},
		{"help", "help [command]", "Display this help text, or the help text for a command", help},
		{"history", "history [-c]", "Display the terminal history", history},
		{"home", "home", "Connect to home computer", home},
		{"hostname", "hostname", "Displays the hostname of the machine", hostname},
		{"ls", "ls [dir] [--grep pattern]", "Displays all files on the machine", ls},
		{"run", "run [program]", "Execute a program or coding contract", run},
		{"scan", "scan", "Prints all immediately-available network connections", scan},
		{"scan-analyze", "scan-analyze [depth] [-a]", "Prints info for all servers up to depth nodes away", scanAnalyze},
		{"weaken", "weaken", "Reduce the security of the current machine", weaken},
	}
}

// Table returns the built-in commands keyed by name.
func Table() application.CommandTable {
	out := application.CommandTable{}
	for _, c := range builtins() {
		out[c.name] = c.run
	}
	out["cls"] = clearScreen
	return out
}

func usageError(t *application.Terminal, usage string) {
	t.Error(fmt.Sprintf("Incorrect usage of %s command. Usage: %s", strings.Fields(usage)[0], usage))
}

func printTable(t *application.Terminal, headers []any, rows [][]any) {
	var buf bytes.Buffer
	tbl := table.New(headers...).WithWriter(&buf)
	for _, row := range rows {
		tbl.AddRow(row...)
	}
	tbl.Print()

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		t.Print(strings.TrimRight(line, " "))
	}
}

func help(t *application.Terminal, args []parser.Arg, _ *domain.Server) {
	if len(args) > 1 {
		usageError(t, "help [command]")
		return
	}

	all := builtins()
	if len(args) == 1 {
		topic := strings.ToLower(args[0].Raw)
		for _, c := range all {
			if c.name == topic {
				t.Print("Usage: " + c.usage)
				t.Print(" ")
				t.Print(c.description)
				return
			}
		}
		t.Error(fmt.Sprintf("No help topics match '%s'", args[0].Raw))
		return
	}

	rows := make([][]any, 0, len(all))
	for _, c := range all {
		rows = append(rows, []any{c.usage, c.description})
	}
	printTable(t, []any{"Command", "Description"}, rows)
}

func clearScreen(t *application.Terminal, args []parser.Arg, _ *domain.Server) {
	if len(args) != 0 {
		usageError(t, "clear")
		return
	}
	t.Clear()
}

func history(t *application.Terminal, args []parser.Arg, _ *domain.Server) {
	if len(args) == 0 {
		entries := t.HistoryEntries()
		rows := make([][]any, 0, len(entries))
		for i, entry := range entries {
			rows = append(rows, []any{i, entry})
		}
		printTable(t, []any{"#", "Command"}, rows)
		return
	}

	if len(args) == 1 && args[0].Is("-c") {
		t.ClearHistory()
		return
	}
	t.Error("Incorrect usage of history command. usage: history [-c]")
}

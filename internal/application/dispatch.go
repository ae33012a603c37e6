package application

import (
	"fmt"
	"strings"

	"github.com/bnema/netrun/internal/parser"
	"github.com/bnema/netrun/internal/paths"
)

// Submit records line in the history and executes each of its
// semicolon-separated commands in order.
func (t *Terminal) Submit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	t.history.Record(line)
	t.history.ResetCursor()

	for _, command := range parser.ParseCommands(line) {
		t.executeCommand(command)
	}
}

func (t *Terminal) executeCommand(command string) {
	if t.action != nil {
		t.Error(fmt.Sprintf("Cannot execute command (%s) while an action is in progress", command))
		return
	}

	args, err := parser.ParseCommand(command)
	if err != nil {
		t.Error(err.Error())
		return
	}
	if len(args) == 0 {
		return
	}

	server := t.deps.Player.CurrentServer()

	if t.deps.Tutorial != nil && t.deps.Tutorial.Running() {
		if msg, ok := t.checkTutorial(args); !ok {
			t.Error(msg)
			return
		}
	}

	name := args[0]
	if !name.IsString() {
		t.Error(fmt.Sprintf("%s is not a valid command.", name.Raw))
		return
	}

	if paths.IsFilePath(name.Raw) {
		t.runByPath(args)
		return
	}

	handler, ok := t.commands[strings.ToLower(name.Raw)]
	if !ok {
		t.Error(fmt.Sprintf("Command %s not found", name.Raw))
		return
	}

	handler(t, args[1:], server)
}

func (t *Terminal) runByPath(args []parser.Arg) {
	run, ok := t.commands["run"]
	if !ok {
		t.Error("Command run not found")
		return
	}
	run(t, args, t.deps.Player.CurrentServer())
}

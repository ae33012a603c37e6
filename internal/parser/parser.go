// Package parser turns raw terminal input into commands and typed arguments.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"
)

type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
)

// Arg is a single token of a command. Raw always holds the token text.
type Arg struct {
	Kind Kind
	Raw  string
	Num  float64
	Flag bool
}

func (a Arg) String() string {
	return a.Raw
}

func (a Arg) IsString() bool {
	return a.Kind == KindString
}

// IsNumber reports whether the token parsed as the number n.
func (a Arg) IsNumber(n float64) bool {
	return a.Kind == KindNumber && a.Num == n
}

// Is compares the token text, regardless of how it was typed.
func (a Arg) Is(s string) bool {
	return a.Raw == s
}

func Strings(args []Arg) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		out = append(out, arg.Raw)
	}
	return out
}

// ParseCommands splits a line on semicolons that are not inside quotes.
// Blank commands are dropped.
func ParseCommands(line string) []string {
	var (
		commands []string
		current  strings.Builder
		quote    rune
		escaped  bool
	)

	flush := func() {
		if cmd := strings.TrimSpace(current.String()); cmd != "" {
			commands = append(commands, cmd)
		}
		current.Reset()
	}

	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ';':
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return commands
}

// ParseCommand tokenizes one command using POSIX shell quoting rules.
func ParseCommand(command string) ([]Arg, error) {
	words, err := shellwords.SplitPosix(command)
	if err != nil {
		return nil, fmt.Errorf("parse command %q: %w", command, err)
	}

	args := make([]Arg, 0, len(words))
	for _, word := range words {
		args = append(args, parseArg(word))
	}

	return args, nil
}

func parseArg(word string) Arg {
	switch word {
	case "true":
		return Arg{Kind: KindBool, Raw: word, Flag: true}
	case "false":
		return Arg{Kind: KindBool, Raw: word, Flag: false}
	}

	if n, err := strconv.ParseFloat(word, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return Arg{Kind: KindNumber, Raw: word, Num: n}
	}

	return Arg{Kind: KindString, Raw: word}
}

package domain

// TerminalState holds the only terminal fields that survive a save/load cycle.
type TerminalState struct {
	History          []string
	CurrentDirectory string
}

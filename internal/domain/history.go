package domain

// CommandHistory keeps submitted command lines, newest last.
type CommandHistory struct {
	entries []string
	cursor  int
}

func NewCommandHistory(entries []string) *CommandHistory {
	h := &CommandHistory{}
	for _, entry := range entries {
		h.Record(entry)
	}
	h.ResetCursor()
	return h
}

// Record appends line unless it repeats the previous entry. It reports
// whether the history changed.
func (h *CommandHistory) Record(line string) bool {
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return false
	}

	h.entries = append(h.entries, line)
	if over := len(h.entries) - MaxHistoryEntries; over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
	}
	return true
}

func (h *CommandHistory) ResetCursor() {
	h.cursor = len(h.entries)
}

func (h *CommandHistory) Cursor() int {
	return h.cursor
}

func (h *CommandHistory) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *CommandHistory) Len() int {
	return len(h.entries)
}

func (h *CommandHistory) Clear() {
	h.entries = nil
	h.cursor = 0
}

// Previous moves the cursor back and returns the entry under it.
func (h *CommandHistory) Previous() (string, bool) {
	if h.cursor <= 0 || len(h.entries) == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves the cursor forward. Moving past the newest entry yields "".
func (h *CommandHistory) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return "", true
	}
	return h.entries[h.cursor], true
}

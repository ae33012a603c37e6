package domain

type Style string

const (
	StylePrimary Style = "primary"
	StyleError   Style = "error"
	StyleSuccess Style = "success"
	StyleInfo    Style = "info"
	StyleWarn    Style = "warn"
)

// Record is one entry of the terminal output.
type Record interface {
	record()
}

type TextLine struct {
	Text  string
	Style Style
}

// Link is a clickable hostname; Dashes is the scan-analyze indentation.
type Link struct {
	Dashes   string
	Hostname string
}

// RawContent carries an opaque renderable value.
type RawContent struct {
	Value any
}

func (TextLine) record()   {}
func (Link) record()       {}
func (RawContent) record() {}

// OutputLog is an append-only buffer that drops its oldest records once it
// grows past its capacity.
type OutputLog struct {
	records  []Record
	capacity int
}

func NewOutputLog(capacity int) *OutputLog {
	if capacity <= 0 {
		capacity = DefaultMaxTerminalCapacity
	}
	return &OutputLog{capacity: capacity}
}

func (l *OutputLog) Append(r Record) {
	l.records = append(l.records, r)
	if over := len(l.records) - l.capacity; over > 0 {
		l.records = append(l.records[:0:0], l.records[over:]...)
	}
}

// Reset replaces every record with initial.
func (l *OutputLog) Reset(initial ...Record) {
	l.records = append([]Record(nil), initial...)
}

func (l *OutputLog) Records() []Record {
	return append([]Record(nil), l.records...)
}

func (l *OutputLog) Len() int {
	return len(l.records)
}

func (l *OutputLog) Capacity() int {
	return l.capacity
}

// Last returns the most recent record, if any.
func (l *OutputLog) Last() (Record, bool) {
	if len(l.records) == 0 {
		return nil, false
	}
	return l.records[len(l.records)-1], true
}

package ports

// Scheduler runs fn on the goroutine that owns the terminal.
type Scheduler interface {
	Schedule(fn func())
}

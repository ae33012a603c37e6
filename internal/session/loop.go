package session

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
)

var ErrStopped = errors.New("session loop stopped")

// Loop owns a Terminal. Ticks, submitted lines and scheduled continuations
// are all applied on the goroutine running Run.
type Loop struct {
	cycle time.Duration
	lines chan string
	jobs  chan func()
	done  chan struct{}
}

var _ ports.Scheduler = (*Loop)(nil)

func NewLoop(cycle time.Duration) *Loop {
	if cycle <= 0 {
		cycle = time.Duration(domain.MilliPerCycle) * time.Millisecond
	}
	return &Loop{
		cycle: cycle,
		lines: make(chan string, 16),
		jobs:  make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Schedule queues fn for the loop goroutine. It is dropped once the loop
// has stopped.
func (l *Loop) Schedule(fn func()) {
	if l.stopped() {
		return
	}
	select {
	case l.jobs <- fn:
	case <-l.done:
	}
}

func (l *Loop) Submit(line string) error {
	if l.stopped() {
		return ErrStopped
	}
	select {
	case l.lines <- line:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Do runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	if l.stopped() {
		return ErrStopped
	}
	finished := make(chan struct{})
	select {
	case l.jobs <- func() { fn(); close(finished) }:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run drives term until ctx is cancelled. It must be called once.
func (l *Loop) Run(ctx context.Context, term *application.Terminal) {
	defer close(l.done)
	term.SetContext(ctx)

	ticker := time.NewTicker(l.cycle)
	defer ticker.Stop()

	last := time.Now()
	var carry time.Duration
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last) + carry
			last = now
			cycles := int(elapsed / l.cycle)
			carry = elapsed - time.Duration(cycles)*l.cycle
			term.Process(cycles)
		case line := <-l.lines:
			term.Submit(line)
		case fn := <-l.jobs:
			fn()
		}
	}
}

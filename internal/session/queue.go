package session

import (
	"context"
	"math"
	"time"

	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
)

// Queue collects continuations for a terminal driven without a clock.
type Queue struct {
	jobs chan func()

	// Pace, when set, makes Settle advance a running action one cycle per
	// Pace instead of skipping to its end.
	Pace time.Duration
}

var _ ports.Scheduler = (*Queue)(nil)

func NewQueue() *Queue {
	return &Queue{jobs: make(chan func(), 16)}
}

func (q *Queue) Schedule(fn func()) {
	q.jobs <- fn
}

func (q *Queue) drain() {
	for {
		select {
		case fn := <-q.jobs:
			fn()
		default:
			return
		}
	}
}

// Settle runs term until it is idle. Pending continuations are applied, an
// open contract is waited for and a running action is fast-forwarded to its
// end.
func (q *Queue) Settle(ctx context.Context, term *application.Terminal, milliPerCycle int) error {
	if milliPerCycle <= 0 {
		milliPerCycle = domain.MilliPerCycle
	}
	for {
		q.drain()

		if term.ContractOpen() {
			select {
			case fn := <-q.jobs:
				fn()
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		action, running := term.Action()
		if !running {
			return nil
		}
		if q.Pace > 0 {
			select {
			case <-time.After(q.Pace):
			case <-ctx.Done():
				return ctx.Err()
			}
			term.Process(1)
			continue
		}
		cycles := int(math.Ceil(action.Remaining * 1000 / float64(milliPerCycle)))
		term.Process(max(cycles, 1))
	}
}

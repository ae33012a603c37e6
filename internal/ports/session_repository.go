package ports

import (
	"context"

	"github.com/bnema/netrun/internal/domain"
)

type SessionRepository interface {
	Load(ctx context.Context) (domain.TerminalState, error)
	Save(ctx context.Context, state domain.TerminalState) error
}

package ports

import (
	"context"

	"github.com/bnema/netrun/internal/domain"
)

type ActionJournal interface {
	Record(outcome domain.ActionOutcome)
}

type ActionJournalReader interface {
	Recent(ctx context.Context, limit int) ([]domain.ActionOutcome, error)
}

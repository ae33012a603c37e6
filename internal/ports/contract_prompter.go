package ports

import (
	"context"

	"github.com/bnema/netrun/internal/domain"
)

// ContractPrompter asks the user for a contract answer. It blocks until the
// user answers or cancels, and must return ContractCancelled once ctx is done.
type ContractPrompter interface {
	Prompt(ctx context.Context, contract domain.Contract) domain.ContractResult
}

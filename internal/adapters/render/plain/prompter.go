package plain

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
)

const cancelWord = "cancel"

// Prompter asks for contract answers on a line-oriented stream. Lines are
// taken from the same channel the session loop reads, so only one reader
// ever touches the input.
type Prompter struct {
	lines <-chan string
	out   io.Writer
}

var _ ports.ContractPrompter = (*Prompter)(nil)

func NewPrompter(lines <-chan string, out io.Writer) *Prompter {
	return &Prompter{lines: lines, out: out}
}

func (p *Prompter) Prompt(ctx context.Context, contract domain.Contract) domain.ContractResult {
	_, _ = fmt.Fprintf(p.out, "%s\n", contract.Type)
	if contract.Description != "" {
		_, _ = fmt.Fprintf(p.out, "%s\n", contract.Description)
	}
	_, _ = fmt.Fprintf(p.out, "Tries remaining: %d\n", contract.MaxNumTries()-contract.Tries)
	_, _ = fmt.Fprintf(p.out, "Enter your answer (or %q to close): ", cancelWord)

	select {
	case <-ctx.Done():
		return domain.ContractCancelled
	case line, ok := <-p.lines:
		if !ok {
			return domain.ContractCancelled
		}
		return Judge(contract, line)
	}
}

// Judge maps a raw answer line to a contract result.
func Judge(contract domain.Contract, line string) domain.ContractResult {
	answer := strings.TrimSpace(line)
	switch {
	case answer == "" || strings.EqualFold(answer, cancelWord):
		return domain.ContractCancelled
	case contract.Check(answer):
		return domain.ContractSuccess
	default:
		return domain.ContractFailure
	}
}

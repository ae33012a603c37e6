package ws

import (
	"context"
	"log"

	"github.com/bnema/netrun/internal/adapters/recordjson"
	"github.com/bnema/netrun/internal/adapters/render/plain"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
	"github.com/goccy/go-json"
)

// client is one connection's output sink and contract prompter.
type client struct {
	id      string
	log     *log.Logger
	out     chan []byte
	answers chan string
	done    chan struct{}
}

var (
	_ ports.OutputSink       = (*client)(nil)
	_ ports.ContractPrompter = (*client)(nil)
)

func newClient(id string, logger *log.Logger, queue int) *client {
	return &client{
		id:      id,
		log:     logger,
		out:     make(chan []byte, queue),
		answers: make(chan string, 1),
		done:    make(chan struct{}),
	}
}

func (c *client) send(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.log.Printf("ws %s: encode %T: %v", c.id, v, err)
		return
	}
	select {
	case c.out <- b:
	case <-c.done:
	}
}

func (c *client) Write(record domain.Record) {
	c.send(RecordMsg{Type: TypeRecord, Record: recordjson.From(record)})
}

func (c *client) Prompt(ctx context.Context, contract domain.Contract) domain.ContractResult {
	c.send(PromptMsg{
		Type:           TypePrompt,
		Path:           string(contract.Path),
		ContractType:   contract.Type,
		Description:    contract.Description,
		TriesRemaining: contract.MaxNumTries() - contract.Tries,
	})

	select {
	case answer := <-c.answers:
		return plain.Judge(contract, answer)
	case <-ctx.Done():
		return domain.ContractCancelled
	case <-c.done:
		return domain.ContractCancelled
	}
}

func (c *client) answer(text string) {
	select {
	case c.answers <- text:
	default:
	}
}

package plain

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/netrun/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSinkWritesPlainLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, false)

	sink.WriteAll([]domain.Record{
		domain.TextLine{Text: "netrun v1.0.0", Style: domain.StylePrimary},
		domain.TextLine{Text: "Host not found", Style: domain.StyleError},
		domain.Link{Dashes: "----", Hostname: "n00dles"},
		domain.RawContent{Value: 42},
	})

	assert.Equal(t, "netrun v1.0.0\nHost not found\n----n00dles\n42\n", buf.String())
}

func TestSinkColorsByStyle(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, true)

	sink.Write(domain.TextLine{Text: "boom", Style: domain.StyleError})

	assert.Contains(t, buf.String(), "\x1b[31m")
	assert.Contains(t, buf.String(), "boom")
}

func TestJudge(t *testing.T) {
	contract := domain.Contract{Answer: "[1, 2]"}

	tests := []struct {
		line string
		want domain.ContractResult
	}{
		{line: " [1,2] ", want: domain.ContractSuccess},
		{line: "[2,1]", want: domain.ContractFailure},
		{line: "", want: domain.ContractCancelled},
		{line: "CANCEL", want: domain.ContractCancelled},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Judge(contract, tt.line), tt.line)
	}
}

func TestPrompterReadsNextLine(t *testing.T) {
	lines := make(chan string, 1)
	lines <- "7"
	var out bytes.Buffer

	result := NewPrompter(lines, &out).Prompt(context.Background(), domain.Contract{
		Type:     "Find Largest Prime Factor",
		Answer:   "7",
		MaxTries: 3,
		Tries:    1,
	})

	assert.Equal(t, domain.ContractSuccess, result)
	assert.Contains(t, out.String(), "Find Largest Prime Factor")
	assert.Contains(t, out.String(), "Tries remaining: 2")
}

func TestPrompterCancelledByContextOrClosedInput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer

	assert.Equal(t, domain.ContractCancelled, NewPrompter(make(chan string), &out).Prompt(ctx, domain.Contract{}))

	closed := make(chan string)
	close(closed)
	assert.Equal(t, domain.ContractCancelled, NewPrompter(closed, &out).Prompt(context.Background(), domain.Contract{}))
}

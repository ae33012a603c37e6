package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func contractServer() *domain.Server {
	return &domain.Server{
		Hostname: "foodnstuff",
		Contracts: []*domain.Contract{{
			Path:       "contract-1.cct",
			Type:       "Find Largest Prime Factor",
			Answer:     "7",
			Difficulty: 1,
			MaxTries:   3,
			Reward:     &domain.ContractReward{Kind: domain.RewardMoney},
		}},
	}
}

type contractFixture struct {
	*fixture
	prompter  *mocks.MockContractPrompter
	scheduler *queueScheduler
	server    *domain.Server
}

func newContractFixture(t *testing.T) *contractFixture {
	t.Helper()

	server := contractServer()
	f := newFixture(t, defaultFormulas(), nil, server)
	cf := &contractFixture{
		fixture:   f,
		prompter:  mocks.NewMockContractPrompter(t),
		scheduler: newQueueScheduler(),
		server:    server,
	}
	f.term.deps.Prompter = cf.prompter
	f.term.deps.Scheduler = cf.scheduler
	return cf
}

func (cf *contractFixture) runNextJob(t *testing.T) {
	t.Helper()
	select {
	case job := <-cf.scheduler.jobs:
		job()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for contract continuation")
	}
}

func TestRunContractRejectsSecondPromptWhileOpen(t *testing.T) {
	cf := newContractFixture(t)
	release := make(chan domain.ContractResult)
	cf.prompter.EXPECT().Prompt(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Contract) domain.ContractResult { return <-release }).
		Once()

	cf.term.RunContract("contract-1.cct")
	require.True(t, cf.term.ContractOpen())

	cf.term.RunContract("contract-1.cct")
	assert.True(t, cf.term.ContractOpen())
	line := lastLine(t, cf.term)
	assert.Equal(t, "There's already a Coding Contract in Progress", line.Text)
	assert.Equal(t, domain.StyleError, line.Style)

	release <- domain.ContractCancelled
	cf.runNextJob(t)

	assert.False(t, cf.term.ContractOpen())
	assert.Equal(t, "Contract cancelled", lastLine(t, cf.term).Text)
}

func TestRunContractSuccessGrantsRewardAndRemoves(t *testing.T) {
	cf := newContractFixture(t)
	cf.prompter.EXPECT().Prompt(mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.Path == "contract-1.cct"
	})).Return(domain.ContractSuccess).Once()

	cf.term.RunContract("contract-1.cct")
	cf.runNextJob(t)

	assert.False(t, cf.term.ContractOpen())
	assert.Empty(t, cf.server.Contracts)
	assert.Equal(t, []domain.ContractReward{{Kind: domain.RewardMoney}}, cf.player.rewards)
	assert.Equal(t, "Contract SUCCESS - Gained $1.000m", lastLine(t, cf.term).Text)
}

func TestRunContractFailureCountsTries(t *testing.T) {
	cf := newContractFixture(t)
	cf.prompter.EXPECT().Prompt(mock.Anything, mock.Anything).Return(domain.ContractFailure).Times(3)

	cf.term.RunContract("contract-1.cct")
	cf.runNextJob(t)
	assert.Equal(t, "Contract FAILED - 2 tries remaining", lastLine(t, cf.term).Text)
	assert.False(t, cf.term.ContractOpen())

	cf.term.RunContract("contract-1.cct")
	cf.runNextJob(t)
	assert.Equal(t, "Contract FAILED - 1 tries remaining", lastLine(t, cf.term).Text)

	cf.term.RunContract("contract-1.cct")
	cf.runNextJob(t)
	assert.Equal(t, "Contract FAILED - Contract is now self-destructing", lastLine(t, cf.term).Text)
	assert.Empty(t, cf.server.Contracts)
	assert.False(t, cf.term.ContractOpen())
}

func TestRunContractVanishedWhilePrompting(t *testing.T) {
	cf := newContractFixture(t)
	cf.prompter.EXPECT().Prompt(mock.Anything, mock.Anything).Return(domain.ContractSuccess).Once()

	cf.term.RunContract("contract-1.cct")
	cf.server.RemoveContract(cf.server.Contracts[0])
	cf.runNextJob(t)

	assert.False(t, cf.term.ContractOpen())
	assert.Empty(t, cf.player.rewards)
	assert.Equal(t, "Contract no longer exists (Was it solved by a script?)", lastLine(t, cf.term).Text)
}

func TestRunContractMissing(t *testing.T) {
	cf := newContractFixture(t)

	cf.term.RunContract("nope.cct")

	assert.False(t, cf.term.ContractOpen())
	assert.Equal(t, "No such contract", lastLine(t, cf.term).Text)
}

func TestRunContractWithoutSchedulerBlocks(t *testing.T) {
	cf := newContractFixture(t)
	cf.term.deps.Scheduler = nil
	cf.prompter.EXPECT().Prompt(mock.Anything, mock.Anything).Return(domain.ContractCancelled).Once()

	cf.term.RunContract("contract-1.cct")

	assert.False(t, cf.term.ContractOpen())
	assert.Equal(t, "Contract cancelled", lastLine(t, cf.term).Text)
	assert.Len(t, cf.server.Contracts, 1)
}

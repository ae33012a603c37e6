package session

import (
	"context"
	"strings"
	"testing"
	"time"

	worldyaml "github.com/bnema/netrun/internal/adapters/world/yaml"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, opts Options, start string) *Game {
	t.Helper()

	world, err := worldyaml.Default()
	require.NoError(t, err)
	if start != "" {
		world.Player.Hostname = start
	}
	opts.Version = "test"
	game, err := NewGame(world, opts)
	require.NoError(t, err)
	return game
}

func texts(records []domain.Record) []string {
	var out []string
	for _, r := range records {
		if line, ok := r.(domain.TextLine); ok {
			out = append(out, line.Text)
		}
	}
	return out
}

func TestNewGameWiresCommandsAndEvents(t *testing.T) {
	game := newGame(t, Options{}, "")

	game.Terminal.Submit("hostname")
	assert.Equal(t, domain.HomeHostname, texts(game.Terminal.Records())[1])

	csec, ok := game.Servers.Get("CSEC")
	require.True(t, ok)
	csec.BackdoorInstalled = true
	game.Events.CheckFactionInvitations()

	last := game.Terminal.Records()[len(game.Terminal.Records())-1]
	assert.Equal(t, domain.TextLine{Text: "You received a faction invitation from CyberSec", Style: domain.StyleSuccess}, last)
	assert.Equal(t, []string{"CyberSec"}, game.Player.Factions())
}

func TestQueueSettleFastForwardsAction(t *testing.T) {
	queue := NewQueue()
	game := newGame(t, Options{Scheduler: queue}, "")

	game.Terminal.Submit("analyze")
	_, running := game.Terminal.Action()
	require.True(t, running)

	require.NoError(t, queue.Settle(context.Background(), game.Terminal, 0))

	_, running = game.Terminal.Action()
	assert.False(t, running)
	assert.Contains(t, texts(game.Terminal.Records()), "home: ")
}

func TestQueueSettleWaitsForContract(t *testing.T) {
	queue := NewQueue()
	prompter := mocks.NewMockContractPrompter(t)
	prompter.EXPECT().Prompt(mock.Anything, mock.Anything).Return(domain.ContractSuccess).Once()
	game := newGame(t, Options{Scheduler: queue, Prompter: prompter}, "foodnstuff")

	game.Terminal.Submit("run contract-21342.cct")
	require.NoError(t, queue.Settle(context.Background(), game.Terminal, 0))

	assert.False(t, game.Terminal.ContractOpen())
	got := texts(game.Terminal.Records())
	assert.True(t, strings.HasPrefix(got[len(got)-1], "Contract SUCCESS - Gained $"), got[len(got)-1])
	foodnstuff, _ := game.Servers.Get("foodnstuff")
	assert.Empty(t, foodnstuff.Contracts)
}

func TestQueueSettleHonoursContext(t *testing.T) {
	queue := NewQueue()
	release := make(chan struct{})
	prompter := mocks.NewMockContractPrompter(t)
	prompter.EXPECT().Prompt(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Contract) domain.ContractResult {
			<-release
			return domain.ContractCancelled
		}).Once()
	game := newGame(t, Options{Scheduler: queue, Prompter: prompter}, "foodnstuff")

	game.Terminal.Submit("run contract-21342.cct")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, queue.Settle(ctx, game.Terminal, 0), context.DeadlineExceeded)
	close(release)
}

func TestLoopRunsActionsToCompletion(t *testing.T) {
	loop := NewLoop(5 * time.Millisecond)
	game := newGame(t, Options{Scheduler: loop}, "")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx, game.Terminal)

	require.NoError(t, loop.Submit("analyze"))

	require.Eventually(t, func() bool {
		var done bool
		err := loop.Do(ctx, func() {
			_, running := game.Terminal.Action()
			done = !running && len(texts(game.Terminal.Records())) > 3
		})
		return err == nil && done
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLoopStops(t *testing.T) {
	loop := NewLoop(time.Millisecond)
	game := newGame(t, Options{Scheduler: loop}, "")
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx, game.Terminal)

	cancel()
	select {
	case <-loop.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}

	assert.ErrorIs(t, loop.Submit("ls"), ErrStopped)
	assert.ErrorIs(t, loop.Do(context.Background(), func() {}), ErrStopped)
	loop.Schedule(func() {})
}

func TestQueueSettlePacedRunsInRealTime(t *testing.T) {
	queue := NewQueue()
	queue.Pace = time.Millisecond
	game := newGame(t, Options{Scheduler: queue}, "")

	game.Terminal.Submit("analyze")
	start := time.Now()
	require.NoError(t, queue.Settle(context.Background(), game.Terminal, 0))

	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	_, running := game.Terminal.Action()
	assert.False(t, running)
}

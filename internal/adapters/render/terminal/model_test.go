package terminal

import (
	"testing"
	"time"

	worldyaml "github.com/bnema/netrun/internal/adapters/world/yaml"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, start string) (*model, *session.Game) {
	t.Helper()

	world, err := worldyaml.Default()
	require.NoError(t, err)
	if start != "" {
		world.Player.Hostname = start
	}
	game, err := session.NewGame(world, session.Options{Version: "test"})
	require.NoError(t, err)

	m := newModel(10 * time.Millisecond)
	m.term = game.Terminal
	m.refresh()
	return m, game
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

func typeLine(m *model, line string) {
	m.input.SetValue(line)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestEnterEchoesAndSubmits(t *testing.T) {
	m, game := newTestModel(t, "")

	typeLine(m, "hostname")

	assert.Equal(t, []string{"netrun vtest", "[home /]> hostname", "home"}, texts(game.Terminal.Records()))
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "home")
}

func TestHistoryNavigation(t *testing.T) {
	m, _ := newTestModel(t, "")
	typeLine(m, "hostname")
	typeLine(m, "free")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "free", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "hostname", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "free", m.input.Value())
}

func TestTabCompletesCommandNames(t *testing.T) {
	m, _ := newTestModel(t, "")

	m.input.SetValue("hostn")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "hostname ", m.input.Value())

	m.input.SetValue("sc")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "scan", m.input.Value())
}

func TestComplete(t *testing.T) {
	names := []string{"scan", "scan-analyze", "cat", "cd"}

	got, ok := complete("c", names)
	assert.False(t, ok)
	assert.Equal(t, "c", got)

	got, ok = complete("sc", names)
	assert.True(t, ok)
	assert.Equal(t, "scan", got)

	got, ok = complete("ca", names)
	assert.True(t, ok)
	assert.Equal(t, "cat ", got)

	_, ok = complete("zz", names)
	assert.False(t, ok)
}

func TestTickAdvancesAction(t *testing.T) {
	m, game := newTestModel(t, "")
	typeLine(m, "analyze")
	_, running := game.Terminal.Action()
	require.True(t, running)
	assert.Contains(t, m.View(), "analyze home")

	m.lastTick = time.Now()
	m.Update(tickMsg(m.lastTick.Add(2 * time.Second)))

	_, running = game.Terminal.Action()
	assert.False(t, running)
	assert.Contains(t, texts(game.Terminal.Records()), "home: ")
}

func TestCtrlCCancelsRunningAction(t *testing.T) {
	m, game := newTestModel(t, "")
	typeLine(m, "analyze")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Nil(t, cmd)
	_, running := game.Terminal.Action()
	assert.False(t, running)
	got := texts(game.Terminal.Records())
	assert.Equal(t, "Cancelled", got[len(got)-1])
}

func TestJobMsgRunsOnUpdate(t *testing.T) {
	m, game := newTestModel(t, "")

	m.Update(jobMsg(func() { game.Terminal.Print("from job") }))

	got := texts(game.Terminal.Records())
	assert.Equal(t, "from job", got[len(got)-1])
}

func TestContractPromptAnswers(t *testing.T) {
	m, _ := newTestModel(t, "foodnstuff")
	req := &promptRequest{
		contract: domain.Contract{Type: "Find Largest Prime Factor", Description: "3116?", Answer: "41"},
		reply:    make(chan domain.ContractResult, 1),
	}

	m.Update(promptMsg{request: req})
	assert.Contains(t, m.View(), "Find Largest Prime Factor")
	assert.Contains(t, m.View(), "answer> ")

	typeLine(m, "41")

	assert.Equal(t, domain.ContractSuccess, <-req.reply)
	assert.Nil(t, m.prompt)
	assert.Contains(t, m.View(), "[foodnstuff /]> ")
}

func TestContractPromptEscCancels(t *testing.T) {
	m, _ := newTestModel(t, "")
	req := &promptRequest{reply: make(chan domain.ContractResult, 1)}
	m.Update(promptMsg{request: req})

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, domain.ContractCancelled, <-req.reply)
}

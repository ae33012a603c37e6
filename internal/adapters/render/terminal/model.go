package terminal

import (
	"strings"
	"time"

	"github.com/bnema/netrun/internal/adapters/render/plain"
	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

type jobMsg func()

type promptMsg struct {
	request *promptRequest
}

type promptRequest struct {
	contract domain.Contract
	reply    chan domain.ContractResult
}

type model struct {
	term   *application.Terminal
	styles styles
	cycle  time.Duration

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	prompt   *promptRequest
	lastTick time.Time
	carry    time.Duration
	ready    bool
}

func newModel(cycle time.Duration) *model {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 512

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return &model{
		styles:   newStyles(),
		cycle:    cycle,
		input:    input,
		viewport: viewport.New(80, 20),
		spinner:  s,
	}
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.cycle, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	m.lastTick = time.Now()
	m.refresh()
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.tick())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		m.input.Width = max(msg.Width-lipgloss.Width(m.promptLabel())-1, 1)
		m.ready = true
	case tickMsg:
		now := time.Time(msg)
		elapsed := now.Sub(m.lastTick) + m.carry
		m.lastTick = now
		cycles := int(elapsed / m.cycle)
		m.carry = elapsed - time.Duration(cycles)*m.cycle
		m.term.Process(cycles)
		cmds = append(cmds, m.tick())
	case jobMsg:
		msg()
	case promptMsg:
		m.prompt = msg.request
		m.input.Reset()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			m.refresh()
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		if m.prompt != nil {
			m.answer(domain.ContractCancelled)
			return nil, true
		}
		if _, running := m.term.Action(); running && msg.String() == "ctrl+c" {
			m.term.CancelAction()
			return nil, true
		}
		return tea.Quit, true
	case "esc":
		if m.prompt != nil {
			m.answer(domain.ContractCancelled)
		}
		return nil, true
	case "enter":
		line := m.input.Value()
		m.input.Reset()
		if m.prompt != nil {
			m.answer(plain.Judge(m.prompt.contract, line))
			return nil, true
		}
		m.term.Print(m.promptLabel() + line)
		m.term.Submit(line)
		return nil, true
	case "up":
		if m.prompt == nil {
			if prev, ok := m.term.PreviousCommand(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
		}
		return nil, true
	case "down":
		if m.prompt == nil {
			if next, ok := m.term.NextCommand(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			}
		}
		return nil, true
	case "tab":
		value := m.input.Value()
		if m.prompt == nil && value != "" && !strings.Contains(value, " ") {
			if completed, ok := complete(value, m.term.CommandNames()); ok {
				m.input.SetValue(completed)
				m.input.CursorEnd()
			}
		}
		return nil, true
	case "ctrl+l":
		m.term.Clear()
		return nil, true
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd, true
	}
	return nil, false
}

func (m *model) answer(result domain.ContractResult) {
	m.prompt.reply <- result
	m.prompt = nil
}

func (m *model) promptLabel() string {
	if m.prompt != nil {
		return "answer> "
	}
	server := m.term.Player().CurrentServer()
	return promptText(server.Hostname, m.term.Cwd().Absolute())
}

func (m *model) refresh() {
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(renderRecords(m.term.Records(), m.styles))
	if atBottom || !m.ready {
		m.viewport.GotoBottom()
	}
	m.input.Prompt = m.styles.prompt.Render(m.promptLabel())
}

func (m *model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.statusLine(),
		m.input.View(),
	)
}

func (m *model) statusLine() string {
	if m.prompt != nil {
		c := m.prompt.contract
		return m.styles.notice.Render(c.Type+": "+c.Description) + " " +
			m.styles.status.Render("(enter an answer, esc to close)")
	}
	if action, running := m.term.Action(); running {
		return m.spinner.View() + " " + renderProgress(action, m.styles)
	}
	return ""
}

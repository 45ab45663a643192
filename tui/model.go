package tui

import (
	"errors"
	"fmt"
	"splendor/game"
	"splendor/gamemaster"
	"splendor/player"
	"splendor/searcher/agent"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const helpText = `take k0 k1 k2 k3 k4 [r0 r1 r2 r3 r4]   colours: black blue green red white
reserve tier index [returnKind]        index 4 reserves blind from the deck
buy source index [nobleIndex]          source 0 is your reserve, 1-3 a tier
moves                                  list every legal action
quit                                   leave the game`

// Model is a human-vs-agent game in the terminal. The human types actions in
// the text codec; the agent replies through a command.
type Model struct {
	engine    gamemaster.Engine
	getUpdate gamemaster.UpdateGetter
	opponent  *player.Controller
	human     int

	state       *game.Position
	logViewport viewport.Model
	actionInput textinput.Model
	gameLog     []string
	thinking    bool
	quitting    bool

	width  int
	height int
}

// opponentMsg carries the agent's reply for the position it was given.
type opponentMsg struct {
	action game.Action
}

// NewModel deals a game on engine with the human in seat human.
func NewModel(engine gamemaster.Engine, opponent agent.Agent, human int) *Model {
	vp := viewport.New(40, 10)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter your action (take 1 1 1 0 0, reserve 1 2, buy 1 0, moves, help)"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 80
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	state, getUpdate := engine.Init()
	m := &Model{
		engine:      engine,
		getUpdate:   getUpdate,
		opponent:    player.NewController(game.Opponent(human), opponent, engine),
		human:       human,
		state:       state,
		logViewport: vp,
		actionInput: ti,
	}
	m.resize()
	m.addLog(fmt.Sprintf("You are player %d. Player %d starts. Type help for the action syntax.", human+1, state.Starting+1))
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.opponentTurn())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case opponentMsg:
		m.thinking = false
		m.playOpponent(msg.action)
		cmds = append(cmds, m.opponentTurn())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.actionInput.Value())
			m.actionInput.SetValue("")
			if m.submit(text) {
				m.quitting = true
				return m, tea.Quit
			}
			cmds = append(cmds, m.opponentTurn())
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit handles one line of input and reports whether to quit.
func (m *Model) submit(text string) bool {
	switch strings.ToLower(text) {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		m.addLog(helpText)
		return false
	case "moves":
		actions := game.LegalActions(m.state)
		lines := make([]string, len(actions))
		for i, a := range actions {
			lines[i] = a.String()
		}
		m.addLog(InfoStyle.Render(fmt.Sprintf("%d legal actions:\n%s", len(actions), strings.Join(lines, "\n"))))
		return false
	}

	action, err := game.ParseAction(text)
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return false
	}
	err = m.engine.Play(m.human, action)
	switch {
	case errors.Is(err, game.ErrOutOfTurn):
		m.addLog(WarningStyle.Render("wait for your turn"))
	case err != nil:
		m.addLog(ErrorStyle.Render(err.Error()))
	}
	m.drainUpdates()
	return false
}

// opponentTurn starts the agent's search when it is the agent's move.
func (m *Model) opponentTurn() tea.Cmd {
	if m.thinking || m.state.IsOver() || m.state.ToMove != m.opponent.Seat() {
		return nil
	}
	m.thinking = true
	state := m.state.Copy()
	return func() tea.Msg {
		action, _ := m.opponent.Think(state)
		return opponentMsg{action: action}
	}
}

func (m *Model) playOpponent(action game.Action) {
	if _, err := m.opponent.Submit(action); err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
	}
	m.drainUpdates()
}

// drainUpdates applies the pending engine updates and announces the final
// round and the end of the game once each.
func (m *Model) drainUpdates() {
	wasFinal, wasOver := m.state.IsFinalRound(), m.state.IsOver()
	for {
		action, state := m.getUpdate()
		if action == nil {
			break
		}
		mover := game.Opponent(state.ToMove)
		name := fmt.Sprintf("Player %d", mover+1)
		if mover == m.human {
			name = "You"
		}
		m.addLog(fmt.Sprintf("%s: %s", name, action))
		m.state = state
	}
	if m.state.IsFinalRound() && !wasFinal {
		last := game.Opponent(m.state.Starting)
		m.addLog(WarningStyle.Render(fmt.Sprintf("Final round: the game ends after player %d moves", last+1)))
	}
	if m.state.IsOver() && !wasOver {
		m.addLog(WarningStyle.Render(gameOverText(m.state, m.human)))
	}
	m.resize()
}

func gameOverText(p *game.Position, human int) string {
	switch p.Winner() {
	case game.Draw:
		return fmt.Sprintf("Game over: draw at %d points", p.Score[0])
	case human:
		return fmt.Sprintf("Game over: you win %d to %d", p.Score[human], p.Score[game.Opponent(human)])
	default:
		return fmt.Sprintf("Game over: you lose %d to %d", p.Score[human], p.Score[game.Opponent(human)])
	}
}

func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// resize fits the log pane beside the board for the current window.
func (m *Model) resize() {
	board := RenderBoard(m.state, m.human)
	m.logViewport.Width = max(m.width-lipgloss.Width(board)-4, 20)
	m.logViewport.Height = max(lipgloss.Height(board)-2, 5)
	m.logViewport.GotoBottom()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	board := RenderBoard(m.state, m.human)
	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Render(m.logViewport.View())

	status := InfoStyle.Render("Enter to submit • PgUp/PgDn scroll log • Ctrl+C to quit")
	if m.thinking {
		status = WarningStyle.Render("Opponent is thinking...")
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", logPane)
	return lipgloss.JoinVertical(lipgloss.Left, top, m.actionInput.View(), status)
}

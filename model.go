package main

import (
	"time"

	"go-tiles/internal/board"
	"go-tiles/internal/game"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Flip    key.Binding
	Small   key.Binding
	Medium  key.Binding
	Large   key.Binding
	Start   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Flip:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "flip")),
		Small:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "2 x 2")),
		Medium:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "4 x 2")),
		Large:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "4 x 4")),
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "default size")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "re-deal")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// forPhase enables the bindings that apply to the given phase.
func (k *keyMap) forPhase(p game.Phase) {
	playing := p == game.PhasePlaying
	for _, b := range []*key.Binding{&k.Up, &k.Down, &k.Left, &k.Right, &k.Flip, &k.Restart, &k.Back} {
		b.SetEnabled(playing)
	}
	for _, b := range []*key.Binding{&k.Small, &k.Medium, &k.Large, &k.Start} {
		b.SetEnabled(!playing)
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Small, k.Medium, k.Large, k.Start, k.Flip, k.Restart, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Small, k.Medium, k.Large, k.Start},
		{k.Flip, k.Restart, k.Back, k.Quit},
	}
}

// resolveMsg delivers a deferred board resolution back onto the program's
// update loop.
type resolveMsg struct {
	id int
}

type model struct {
	session     *game.Session
	clock       *board.Deferred
	defaultSize board.Size
	keys        keyMap
	help        help.Model
	log         zerolog.Logger

	cursor int
	status string
	err    error
}

func newModel(sess *game.Session, clock *board.Deferred, size board.Size, log zerolog.Logger) *model {
	m := &model{
		session:     sess,
		clock:       clock,
		defaultSize: size,
		keys:        newKeyMap(),
		help:        help.New(),
		log:         log,
	}
	m.keys.forPhase(sess.Phase)
	sess.Game.Subscribe(m.handleEvent)
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveMsg:
		m.clock.Fire(msg.id)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.session.Phase == game.PhasePlaying {
			m.updatePlaying(msg)
		} else {
			m.updateSelecting(msg)
		}
	}

	m.keys.forPhase(m.session.Phase)
	return m, m.drainTimers()
}

func (m *model) updateSelecting(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Small):
		m.start(board.Small)
	case key.Matches(msg, m.keys.Medium):
		m.start(board.Medium)
	case key.Matches(msg, m.keys.Large):
		m.start(board.Large)
	case key.Matches(msg, m.keys.Start):
		m.start(m.defaultSize)
	}
}

func (m *model) updatePlaying(msg tea.KeyMsg) {
	b := m.session.Game.Board
	w, h := b.Width(), b.Height()
	row, col := m.cursor/w, m.cursor%w

	switch {
	case key.Matches(msg, m.keys.Up):
		row = (row - 1 + h) % h
	case key.Matches(msg, m.keys.Down):
		row = (row + 1) % h
	case key.Matches(msg, m.keys.Left):
		col = (col - 1 + w) % w
	case key.Matches(msg, m.keys.Right):
		col = (col + 1) % w
	case key.Matches(msg, m.keys.Flip):
		m.session.Activate(m.cursor)
		return
	case key.Matches(msg, m.keys.Restart):
		m.status = ""
		m.setErr(m.session.Restart())
		return
	case key.Matches(msg, m.keys.Back):
		m.status = ""
		m.session.Back()
		return
	}
	m.cursor = row*w + col
}

func (m *model) start(size board.Size) {
	m.cursor = 0
	m.status = ""
	m.setErr(m.session.Select(size))
}

func (m *model) setErr(err error) {
	m.err = err
	if err != nil {
		m.log.Error().Err(err).Msg("round could not start")
	}
}

func (m *model) handleEvent(e board.Event) {
	switch e.Kind {
	case board.TilesMatch:
		m.status = "Match!"
	case board.TilesMismatch:
		m.status = "No match."
	case board.GameOver:
		m.status = ""
	}
}

// drainTimers turns newly scheduled resolutions into ticks so they run on
// the update loop.
func (m *model) drainTimers() tea.Cmd {
	pending := m.clock.Take()
	if len(pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(pending))
	for _, p := range pending {
		id := p.ID
		cmds = append(cmds, tea.Tick(p.Delay, func(time.Time) tea.Msg {
			return resolveMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

// Package shell is the full-screen command prompt. Command output scrolls
// above the prompt; a status bar shows the now-playing slot.
package shell

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cham5/google-code-sample/internal/console"
	"github.com/cham5/google-code-sample/internal/library"
	"github.com/cham5/google-code-sample/internal/playback"
	"github.com/cham5/google-code-sample/internal/ui/styles"
)

// playbackChangedMsg is sent when the playback subscription fires.
type playbackChangedMsg struct{}

// playbackClosedMsg is sent when the subscription ends.
type playbackClosedMsg struct{}

// Model is the bubbletea model of the prompt.
type Model struct {
	ctl     *library.Controller
	console *console.Console
	out     *bytes.Buffer
	sub     *playback.Subscription

	input    textinput.Model
	status   playback.Status
	color    bool
	width    int
	quitting bool
}

// New creates the prompt model. It subscribes to playback events of ctl.
func New(ctl *library.Controller, prompt string, color bool) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "HELP"
	if color {
		ti.PromptStyle = styles.T().S().Prompt
	}
	ti.Focus()

	out := &bytes.Buffer{}
	return Model{
		ctl:     ctl,
		console: console.New(ctl, out, color),
		out:     out,
		sub:     ctl.Subscribe(),
		input:   ti,
		status:  ctl.Status(),
		color:   color,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	banner := console.Welcome
	if m.color {
		lines := strings.SplitN(banner, "\n", 2)
		lines[0] = styles.T().Banner(lines[0])
		banner = strings.Join(lines, "\n")
	}
	return tea.Batch(textinput.Blink, tea.Println(banner), m.watchPlayback())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 0)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m.execute("EXIT")
		case "enter":
			line := m.input.Value()
			m.input.Reset()
			return m.execute(line)
		}

	case playbackChangedMsg:
		m.status = m.ctl.Status()
		return m, m.watchPlayback()

	case playbackClosedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs a command line and prints the echo and output above the
// prompt.
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	m.out.Reset()
	cont := m.console.Execute(line)
	output := strings.TrimRight(m.out.String(), "\n")

	cmds := []tea.Cmd{tea.Println(m.input.Prompt + line)}
	if output != "" {
		cmds = append(cmds, tea.Println(output))
	}
	if !cont {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Sequence(cmds...)
}

// watchPlayback waits for the next playback event.
func (m Model) watchPlayback() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-sub.StateChanged:
			return playbackChangedMsg{}
		case <-sub.VideoChanged:
			return playbackChangedMsg{}
		case <-sub.Done:
			return playbackClosedMsg{}
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.statusBar() + "\n" + m.input.View()
}

func (m Model) statusBar() string {
	s := styles.T().S()
	text, style := "Nothing playing", s.Muted
	if m.status.Video != nil {
		switch m.status.State {
		case playback.StatePaused:
			text, style = "Paused: "+m.status.Video.Title(), s.Paused
		default:
			text, style = "Playing: "+m.status.Video.Title(), s.Playing
		}
	}
	if !m.color {
		return text
	}
	bar := s.StatusBar
	if m.width > 2 {
		bar = bar.Width(m.width - 2)
	}
	return bar.Render(style.Render(text))
}

// Run starts the prompt and blocks until the user exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

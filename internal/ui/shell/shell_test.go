package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cham5/google-code-sample/internal/catalog"
	"github.com/cham5/google-code-sample/internal/library"
	"github.com/cham5/google-code-sample/internal/playback"
)

func newTestModel(t *testing.T) (Model, *library.Controller) {
	t.Helper()
	ctl := library.New(catalog.Sample())
	t.Cleanup(ctl.Close)
	return New(ctl, "> ", false), ctl
}

func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestModel_EnterExecutesCommand(t *testing.T) {
	m, ctl := newTestModel(t)

	m, cmd := submit(t, m, "CREATE_PLAYLIST my_list")

	assert.NotNil(t, cmd)
	assert.Empty(t, m.input.Value(), "input is cleared after enter")
	require.Len(t, ctl.Playlists(), 1)
	assert.Equal(t, "my_list", ctl.Playlists()[0].Name)
	assert.False(t, m.quitting)
}

func TestModel_ExitQuits(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := submit(t, m, "EXIT")

	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
	assert.True(t, updated.(Model).quitting)
}

func TestModel_StatusFollowsPlayback(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "Nothing playing")

	m, _ = submit(t, m, "PLAY amazing_cats_video_id")
	msg := m.watchPlayback()()
	require.IsType(t, playbackChangedMsg{}, msg)
	updated, cmd := m.Update(msg)
	m = updated.(Model)

	assert.NotNil(t, cmd, "keeps watching after an event")
	assert.Equal(t, playback.StatePlaying, m.status.State)
	assert.Contains(t, m.View(), "Playing: Amazing Cats")

	m, _ = submit(t, m, "PAUSE")
	updated, _ = m.Update(playbackChangedMsg{})
	m = updated.(Model)
	assert.Contains(t, m.View(), "Paused: Amazing Cats")
}

func TestModel_WatchReportsClose(t *testing.T) {
	m, ctl := newTestModel(t)

	ctl.Close()

	assert.IsType(t, playbackClosedMsg{}, m.watchPlayback()())
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, updated.(Model).width)
	assert.Equal(t, 77, updated.(Model).input.Width)
}

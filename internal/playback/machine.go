package playback

import (
	"errors"
	"sync"

	"github.com/cham5/google-code-sample/internal/video"
)

var (
	// ErrNoVideoPlaying is returned by Stop, Pause and Continue when no
	// video is loaded.
	ErrNoVideoPlaying = errors.New("no video is currently playing")
	// ErrAlreadyPaused is returned by Pause when the video is already paused.
	ErrAlreadyPaused = errors.New("video already paused")
	// ErrNotPaused is returned by Continue when the video is playing.
	ErrNotPaused = errors.New("video is not paused")
)

// Machine tracks the now-playing slot. It is not safe for concurrent use;
// callers serialize access. Subscribe and Close may be called from any
// goroutine.
type Machine struct {
	current *video.Video
	paused  bool

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool
}

// NewMachine creates a machine with nothing loaded.
func NewMachine() *Machine {
	return &Machine{}
}

// State returns the current playback state.
func (m *Machine) State() State {
	switch {
	case m.current == nil:
		return StateStopped
	case m.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// Current returns a copy of the loaded video, or nil if none.
func (m *Machine) Current() *video.Video {
	if m.current == nil {
		return nil
	}
	v := *m.current
	return &v
}

// Status returns a snapshot of the slot.
func (m *Machine) Status() Status {
	return Status{State: m.State(), Video: m.Current()}
}

// Play loads v and starts it, stopping whatever was loaded before.
func (m *Machine) Play(v video.Video) Transition {
	t := Transition{Started: v}
	if m.current != nil {
		t.Stopped = m.Current()
		m.unload()
	}

	m.current = &v
	m.paused = false
	m.emitState(StateStopped, StatePlaying)
	m.emitVideo(nil, m.Current())
	return t
}

// Stop unloads the current video and returns it.
func (m *Machine) Stop() (video.Video, error) {
	if m.current == nil {
		return video.Video{}, ErrNoVideoPlaying
	}
	v := *m.current
	m.unload()
	return v, nil
}

// Pause pauses the current video. An already paused video is returned
// together with ErrAlreadyPaused and the state is left unchanged.
func (m *Machine) Pause() (video.Video, error) {
	if m.current == nil {
		return video.Video{}, ErrNoVideoPlaying
	}
	if m.paused {
		return *m.current, ErrAlreadyPaused
	}
	m.paused = true
	m.emitState(StatePlaying, StatePaused)
	return *m.current, nil
}

// Continue resumes a paused video. A playing video is returned together
// with ErrNotPaused and the state is left unchanged.
func (m *Machine) Continue() (video.Video, error) {
	if m.current == nil {
		return video.Video{}, ErrNoVideoPlaying
	}
	if !m.paused {
		return *m.current, ErrNotPaused
	}
	m.paused = false
	m.emitState(StatePaused, StatePlaying)
	return *m.current, nil
}

func (m *Machine) unload() {
	prevState := m.State()
	prev := m.Current()
	m.current = nil
	m.paused = false
	m.emitState(prevState, StateStopped)
	m.emitVideo(prev, nil)
}

// Subscribe creates a new event subscription.
func (m *Machine) Subscribe() *Subscription {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	sub := newSubscription()
	if m.closed {
		sub.close()
		return sub
	}
	m.subs = append(m.subs, sub)
	return sub
}

// Close ends all subscriptions. Later state changes are not published.
func (m *Machine) Close() {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for _, sub := range m.subs {
		sub.close()
	}
	m.subs = nil
}

func (m *Machine) emitState(prev, cur State) {
	m.subsMu.RLock()
	defer m.subsMu.RUnlock()
	for _, sub := range m.subs {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	}
}

func (m *Machine) emitVideo(prev, cur *video.Video) {
	m.subsMu.RLock()
	defer m.subsMu.RUnlock()
	for _, sub := range m.subs {
		sub.sendVideo(VideoChange{Previous: prev, Current: cur})
	}
}

// internal/playback/state.go
package playback

import "github.com/cham5/google-code-sample/internal/video"

// State represents the playback state.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a video is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// Status is a read-only snapshot of the now-playing slot.
// Video is nil when the state is StateStopped.
type Status struct {
	State State
	Video *video.Video
}

// IsPaused returns true if a video is loaded and paused.
func (s Status) IsPaused() bool {
	return s.State == StatePaused
}

// Transition describes the effect of starting a video. Stopped is the
// video that was implicitly stopped first, nil if none was loaded.
type Transition struct {
	Stopped *video.Video
	Started video.Video
}

package playback

import "github.com/cham5/google-code-sample/internal/video"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// VideoChange is emitted when the loaded video changes.
//
// Starting a video while another one is loaded emits two changes in order:
// the first has a nil Current (stopping), the second a nil Previous
// (now playing). Pause and continue do not emit VideoChange.
type VideoChange struct {
	Previous *video.Video
	Current  *video.Video
}

package library

import (
	"errors"

	"github.com/cham5/google-code-sample/internal/playback"
)

// Errors returned by Controller operations. Every one of them is an
// expected, recoverable outcome; the controller state is unchanged when one
// is returned.
var (
	ErrPlaylistNotFound   = errors.New("playlist does not exist")
	ErrVideoNotFound      = errors.New("video does not exist")
	ErrDuplicateName      = errors.New("a playlist with the same name already exists")
	ErrDuplicateVideo     = errors.New("video already added")
	ErrVideoNotInPlaylist = errors.New("video is not in playlist")
	ErrEmptyCatalog       = errors.New("no videos available")

	ErrNoVideoPlaying = playback.ErrNoVideoPlaying
	ErrAlreadyPaused  = playback.ErrAlreadyPaused
	ErrNotPaused      = playback.ErrNotPaused
)

// Code is the discrete outcome of a controller operation.
type Code int

const (
	OK Code = iota
	PlaylistNotFound
	VideoNotFound
	DuplicateName
	DuplicateVideo
	VideoNotInPlaylist
	NoVideoPlaying
	AlreadyPaused
	NotPaused
	EmptyCatalog
	Unknown
)

var codeErrors = []struct {
	err  error
	code Code
}{
	{ErrPlaylistNotFound, PlaylistNotFound},
	{ErrVideoNotFound, VideoNotFound},
	{ErrDuplicateName, DuplicateName},
	{ErrDuplicateVideo, DuplicateVideo},
	{ErrVideoNotInPlaylist, VideoNotInPlaylist},
	{ErrNoVideoPlaying, NoVideoPlaying},
	{ErrAlreadyPaused, AlreadyPaused},
	{ErrNotPaused, NotPaused},
	{ErrEmptyCatalog, EmptyCatalog},
}

// CodeOf maps an operation error to its outcome code.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	for _, ce := range codeErrors {
		if errors.Is(err, ce.err) {
			return ce.code
		}
	}
	return Unknown
}

// String returns the code name.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case PlaylistNotFound:
		return "PlaylistNotFound"
	case VideoNotFound:
		return "VideoNotFound"
	case DuplicateName:
		return "DuplicateName"
	case DuplicateVideo:
		return "DuplicateVideo"
	case VideoNotInPlaylist:
		return "VideoNotInPlaylist"
	case NoVideoPlaying:
		return "NoVideoPlaying"
	case AlreadyPaused:
		return "AlreadyPaused"
	case NotPaused:
		return "NotPaused"
	case EmptyCatalog:
		return "EmptyCatalog"
	default:
		return "Unknown"
	}
}

// Category groups outcome codes into failure classes.
type Category int

const (
	CategoryNone Category = iota
	CategoryNotFound
	CategoryDuplicate
	CategoryInvalidStateTransition
	CategoryEmptyCatalog
	CategoryUnknown
)

// Category returns the failure class of the code.
func (c Code) Category() Category {
	switch c {
	case OK:
		return CategoryNone
	case PlaylistNotFound, VideoNotFound, VideoNotInPlaylist:
		return CategoryNotFound
	case DuplicateName, DuplicateVideo:
		return CategoryDuplicate
	case NoVideoPlaying, AlreadyPaused, NotPaused:
		return CategoryInvalidStateTransition
	case EmptyCatalog:
		return CategoryEmptyCatalog
	default:
		return CategoryUnknown
	}
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryNotFound:
		return "NotFound"
	case CategoryDuplicate:
		return "Duplicate"
	case CategoryInvalidStateTransition:
		return "InvalidStateTransition"
	case CategoryEmptyCatalog:
		return "EmptyCatalog"
	default:
		return "Unknown"
	}
}

// Package playlist implements named, ordered, duplicate-free video lists.
package playlist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/cham5/google-code-sample/internal/video"
)

// Playlist holds an ordered collection of videos, unique by video id.
type Playlist struct {
	id     string
	name   string
	videos []video.Video
}

// New creates an empty playlist. The name keeps the caller's casing.
func New(name string) *Playlist {
	return &Playlist{
		id:     uuid.NewString(),
		name:   name,
		videos: make([]video.Video, 0),
	}
}

// Key returns the case-insensitive lookup key for a playlist name.
func Key(name string) string {
	return strings.ToLower(name)
}

// ID returns the identity assigned at creation. A playlist deleted and
// created again under the same name gets a new ID.
func (p *Playlist) ID() string { return p.id }

// Name returns the name as it was given at creation.
func (p *Playlist) Name() string { return p.name }

// Key returns the lookup key of this playlist.
func (p *Playlist) Key() string { return Key(p.name) }

// Add appends v unless a video with the same id is already present.
// Returns false if it was a duplicate.
func (p *Playlist) Add(v video.Video) bool {
	if p.Contains(v.ID()) {
		return false
	}
	p.videos = append(p.videos, v)
	return true
}

// Contains reports whether a video with the given id is in the playlist.
func (p *Playlist) Contains(id string) bool {
	return p.IndexOf(id) >= 0
}

// IndexOf returns the position of the video with the given id, or -1.
func (p *Playlist) IndexOf(id string) int {
	for i, v := range p.videos {
		if v.ID() == id {
			return i
		}
	}
	return -1
}

// Remove removes the video at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.videos) {
		return false
	}
	p.videos = append(p.videos[:index], p.videos[index+1:]...)
	return true
}

// RemoveID removes the video with the given id.
// Returns false if it is not in the playlist.
func (p *Playlist) RemoveID(id string) bool {
	return p.Remove(p.IndexOf(id))
}

// Clear removes all videos, keeping name and identity.
func (p *Playlist) Clear() {
	p.videos = p.videos[:0]
}

// Videos returns a copy of the videos in insertion order.
func (p *Playlist) Videos() []video.Video {
	result := make([]video.Video, len(p.videos))
	copy(result, p.videos)
	return result
}

// Len returns the number of videos.
func (p *Playlist) Len() int {
	return len(p.videos)
}

// IsEmpty returns true if the playlist has no videos.
func (p *Playlist) IsEmpty() bool {
	return len(p.videos) == 0
}

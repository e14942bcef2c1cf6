// Package catalog provides the fixed, read-only set of videos available in a
// session.
package catalog

import (
	"errors"
	"fmt"

	"github.com/cham5/google-code-sample/internal/video"
)

// ErrDuplicateID is returned when two catalog entries share an id.
var ErrDuplicateID = errors.New("duplicate video id")

// Provider is the read-only view of a catalog.
type Provider interface {
	// Videos returns a snapshot of all videos in catalog order.
	Videos() []video.Video
	// Find looks up a video by id.
	Find(id string) (video.Video, bool)
	// Len returns the number of videos.
	Len() int
}

// Verify Catalog implements Provider at compile time.
var _ Provider = (*Catalog)(nil)

// Catalog is an immutable id-indexed video collection.
type Catalog struct {
	videos []video.Video
	byID   map[string]int
}

// New builds a catalog from videos, keeping their order.
// Returns ErrDuplicateID if an id appears twice.
func New(videos []video.Video) (*Catalog, error) {
	c := &Catalog{
		videos: make([]video.Video, 0, len(videos)),
		byID:   make(map[string]int, len(videos)),
	}
	for _, v := range videos {
		if _, ok := c.byID[v.ID()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, v.ID())
		}
		c.byID[v.ID()] = len(c.videos)
		c.videos = append(c.videos, v)
	}
	return c, nil
}

// Videos returns a copy of all videos.
func (c *Catalog) Videos() []video.Video {
	result := make([]video.Video, len(c.videos))
	copy(result, c.videos)
	return result
}

// Find returns the video with the given id.
func (c *Catalog) Find(id string) (video.Video, bool) {
	i, ok := c.byID[id]
	if !ok {
		return video.Video{}, false
	}
	return c.videos[i], true
}

// Len returns the number of videos.
func (c *Catalog) Len() int {
	return len(c.videos)
}

// Package video defines the immutable video record shared by the catalog,
// playlists and playback.
package video

import (
	"slices"
	"strings"
)

// Video is a single catalog entry. Fields are read-only after New.
type Video struct {
	title string
	id    string
	tags  []string
}

// New creates a video. The tag slice is copied.
func New(title, id string, tags []string) Video {
	return Video{
		title: title,
		id:    id,
		tags:  slices.Clone(tags),
	}
}

// Title returns the video title.
func (v Video) Title() string { return v.title }

// ID returns the catalog identifier.
func (v Video) ID() string { return v.id }

// Tags returns a copy of the tag list.
func (v Video) Tags() []string {
	return slices.Clone(v.tags)
}

// String formats the video as "Title (id) [tag1 tag2]".
func (v Video) String() string {
	return v.title + " (" + v.id + ") [" + strings.Join(v.tags, " ") + "]"
}

// Compare orders videos by title, case-sensitive.
func Compare(a, b Video) int {
	return strings.Compare(a.title, b.title)
}

// SortByTitle sorts videos in place by title.
func SortByTitle(videos []Video) {
	slices.SortStableFunc(videos, Compare)
}

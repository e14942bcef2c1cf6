// Package library orchestrates the now-playing slot and the playlist
// collection on top of a read-only video catalog.
package library

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/cham5/google-code-sample/internal/catalog"
	"github.com/cham5/google-code-sample/internal/logging"
	"github.com/cham5/google-code-sample/internal/playback"
	"github.com/cham5/google-code-sample/internal/playlist"
	"github.com/cham5/google-code-sample/internal/video"
)

// Controller is the entry point for every library operation. All checks run
// before any mutation, so a failed operation leaves the state untouched.
type Controller struct {
	mu sync.Mutex

	catalog   catalog.Provider
	machine   *playback.Machine
	playlists map[string]*playlist.Playlist // keyed by playlist.Key

	intN func(n int) int
}

// Option configures a Controller.
type Option func(*Controller)

// WithRandom sets the index source used by PlayRandom. intN must return a
// value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(c *Controller) {
		c.intN = intN
	}
}

// New creates a controller over the given catalog.
func New(cat catalog.Provider, opts ...Option) *Controller {
	c := &Controller{
		catalog:   cat,
		machine:   playback.NewMachine(),
		playlists: make(map[string]*playlist.Playlist),
		intN:      rand.IntN, //nolint:gosec // not security-sensitive
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NumberOfVideos returns the catalog size.
func (c *Controller) NumberOfVideos() int {
	return c.catalog.Len()
}

// Videos returns every catalog video sorted by title.
func (c *Controller) Videos() []video.Video {
	videos := c.catalog.Videos()
	video.SortByTitle(videos)
	return videos
}

// Subscribe returns a subscription to playback events.
func (c *Controller) Subscribe() *playback.Subscription {
	return c.machine.Subscribe()
}

// Close ends all playback subscriptions.
func (c *Controller) Close() {
	c.machine.Close()
}

// Play starts the video with the given id, stopping the current one first.
func (c *Controller) Play(id string) (playback.Transition, error) {
	v, ok := c.catalog.Find(id)
	if !ok {
		return playback.Transition{}, ErrVideoNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Play(v), nil
}

// PlayRandom starts a video picked uniformly from the catalog.
func (c *Controller) PlayRandom() (playback.Transition, error) {
	videos := c.catalog.Videos()
	if len(videos) == 0 {
		return playback.Transition{}, ErrEmptyCatalog
	}
	v := videos[c.intN(len(videos))]
	logging.Debug("random pick %s out of %d videos", v.ID(), len(videos))

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Play(v), nil
}

// Stop stops the current video and returns it.
func (c *Controller) Stop() (video.Video, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Stop()
}

// Pause pauses the current video. See playback.Machine.Pause.
func (c *Controller) Pause() (video.Video, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Pause()
}

// Continue resumes the current video. See playback.Machine.Continue.
func (c *Controller) Continue() (video.Video, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Continue()
}

// Status returns what is playing.
func (c *Controller) Status() playback.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Status()
}

// Summary describes a playlist without its videos.
type Summary struct {
	ID   string
	Name string
	Len  int
}

// Detail is a snapshot of a playlist and its videos in insertion order.
type Detail struct {
	Summary
	Videos []video.Video
}

// CreatePlaylist creates an empty playlist. Names are unique ignoring case.
func (c *Controller) CreatePlaylist(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := playlist.Key(name)
	if _, ok := c.playlists[key]; ok {
		return ErrDuplicateName
	}
	p := playlist.New(name)
	c.playlists[key] = p
	logging.Debug("created playlist %q (%s)", name, p.ID())
	return nil
}

// AddToPlaylist appends the video with the given id to a playlist and
// returns it. Checks run in order: playlist, video, membership.
func (c *Controller) AddToPlaylist(name, id string) (video.Video, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.playlists[playlist.Key(name)]
	if !ok {
		return video.Video{}, ErrPlaylistNotFound
	}
	v, ok := c.catalog.Find(id)
	if !ok {
		return video.Video{}, ErrVideoNotFound
	}
	if !p.Add(v) {
		return video.Video{}, ErrDuplicateVideo
	}
	return v, nil
}

// RemoveFromPlaylist removes the video with the given id from a playlist
// and returns it. Catalog membership is checked before playlist membership.
func (c *Controller) RemoveFromPlaylist(name, id string) (video.Video, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.playlists[playlist.Key(name)]
	if !ok {
		return video.Video{}, ErrPlaylistNotFound
	}
	v, ok := c.catalog.Find(id)
	if !ok {
		return video.Video{}, ErrVideoNotFound
	}
	if !p.RemoveID(id) {
		return video.Video{}, ErrVideoNotInPlaylist
	}
	return v, nil
}

// ClearPlaylist removes every video from a playlist, keeping the playlist.
func (c *Controller) ClearPlaylist(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.playlists[playlist.Key(name)]
	if !ok {
		return ErrPlaylistNotFound
	}
	p.Clear()
	return nil
}

// DeletePlaylist removes a playlist.
func (c *Controller) DeletePlaylist(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := playlist.Key(name)
	p, ok := c.playlists[key]
	if !ok {
		return ErrPlaylistNotFound
	}
	delete(c.playlists, key)
	logging.Debug("deleted playlist %q (%s)", p.Name(), p.ID())
	return nil
}

// Playlists lists every playlist ordered by lower-cased name. The result is
// empty when none exist.
func (c *Controller) Playlists() []Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Summary, 0, len(c.playlists))
	for _, p := range c.playlists {
		result = append(result, summarize(p))
	}
	slices.SortFunc(result, func(a, b Summary) int {
		return strings.Compare(playlist.Key(a.Name), playlist.Key(b.Name))
	})
	return result
}

// Playlist returns a snapshot of the named playlist.
func (c *Controller) Playlist(name string) (Detail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.playlists[playlist.Key(name)]
	if !ok {
		return Detail{}, ErrPlaylistNotFound
	}
	return Detail{Summary: summarize(p), Videos: p.Videos()}, nil
}

func summarize(p *playlist.Playlist) Summary {
	return Summary{ID: p.ID(), Name: p.Name(), Len: p.Len()}
}

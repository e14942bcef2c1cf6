package console

import (
	"errors"

	"github.com/cham5/google-code-sample/internal/errmsg"
	"github.com/cham5/google-code-sample/internal/library"
	"github.com/cham5/google-code-sample/internal/playback"
)

func (c *Console) showAllVideos() {
	c.println(c.styles.Heading, "Here's a list of all available videos:")
	for _, v := range c.ctl.Videos() {
		c.item(v.String())
	}
}

func (c *Console) play(id string) {
	t, err := c.ctl.Play(id)
	if err != nil {
		c.fail(errmsg.Format(errmsg.OpPlay, err))
		return
	}
	c.transition(t)
}

func (c *Console) playRandom() {
	t, err := c.ctl.PlayRandom()
	if err != nil {
		c.fail(errmsg.Format(errmsg.OpPlay, err))
		return
	}
	c.transition(t)
}

func (c *Console) transition(t playback.Transition) {
	if t.Stopped != nil {
		c.println(c.styles.Base, "Stopping video: "+t.Stopped.Title())
	}
	c.println(c.styles.Playing, "Playing video: "+t.Started.Title())
}

func (c *Console) stop() {
	v, err := c.ctl.Stop()
	if err != nil {
		c.fail(errmsg.Format(errmsg.OpStop, err))
		return
	}
	c.println(c.styles.Base, "Stopping video: "+v.Title())
}

func (c *Console) pause() {
	v, err := c.ctl.Pause()
	switch {
	case errors.Is(err, library.ErrAlreadyPaused):
		c.println(c.styles.Warning, "Video already paused: "+v.Title())
	case err != nil:
		c.fail(errmsg.Format(errmsg.OpPause, err))
	default:
		c.println(c.styles.Paused, "Pausing video: "+v.Title())
	}
}

func (c *Console) continueVideo() {
	v, err := c.ctl.Continue()
	if err != nil {
		c.fail(errmsg.Format(errmsg.OpContinue, err))
		return
	}
	c.println(c.styles.Playing, "Continuing video: "+v.Title())
}

func (c *Console) showPlaying() {
	s := c.ctl.Status()
	if s.Video == nil {
		c.println(c.styles.Muted, "No video is currently playing")
		return
	}
	line := "Currently playing: " + s.Video.String()
	if s.IsPaused() {
		line += " - PAUSED"
		c.println(c.styles.Paused, line)
		return
	}
	c.println(c.styles.Playing, line)
}

func (c *Console) createPlaylist(name string) {
	if err := c.ctl.CreatePlaylist(name); err != nil {
		c.fail(errmsg.Format(errmsg.OpPlaylistCreate, err))
		return
	}
	c.println(c.styles.Success, "Successfully created new playlist: "+name)
}

func (c *Console) addToPlaylist(name, id string) {
	v, err := c.ctl.AddToPlaylist(name, id)
	if err != nil {
		c.fail(errmsg.FormatWith(errmsg.OpPlaylistAdd, name, err))
		return
	}
	c.println(c.styles.Success, "Added video to "+name+": "+v.Title())
}

func (c *Console) removeFromPlaylist(name, id string) {
	v, err := c.ctl.RemoveFromPlaylist(name, id)
	if err != nil {
		c.fail(errmsg.FormatWith(errmsg.OpPlaylistRemove, name, err))
		return
	}
	c.println(c.styles.Success, "Removed video from "+name+": "+v.Title())
}

func (c *Console) clearPlaylist(name string) {
	if err := c.ctl.ClearPlaylist(name); err != nil {
		c.fail(errmsg.FormatWith(errmsg.OpPlaylistClear, name, err))
		return
	}
	c.println(c.styles.Success, "Successfully removed all videos from "+name)
}

func (c *Console) deletePlaylist(name string) {
	if err := c.ctl.DeletePlaylist(name); err != nil {
		c.fail(errmsg.FormatWith(errmsg.OpPlaylistDelete, name, err))
		return
	}
	c.println(c.styles.Success, "Deleted playlist: "+name)
}

func (c *Console) showAllPlaylists() {
	playlists := c.ctl.Playlists()
	if len(playlists) == 0 {
		c.println(c.styles.Muted, "No playlists exist yet")
		return
	}
	c.println(c.styles.Heading, "Showing all playlists:")
	for _, p := range playlists {
		c.item(p.Name)
	}
}

func (c *Console) showPlaylist(name string) {
	d, err := c.ctl.Playlist(name)
	if err != nil {
		c.fail(errmsg.FormatWith(errmsg.OpPlaylistShow, name, err))
		return
	}
	c.println(c.styles.Heading, "Showing playlist: "+name)
	if len(d.Videos) == 0 {
		c.item("No videos here yet")
		return
	}
	for _, v := range d.Videos {
		c.item(v.String())
	}
}

func (c *Console) help() {
	c.println(c.styles.Heading, "Available commands:")
	for _, s := range syntaxes {
		if s.unsupported {
			continue
		}
		usage := s.name
		for _, a := range s.args {
			usage += " <" + a + ">"
		}
		c.item(usage + " - " + s.help)
	}
}

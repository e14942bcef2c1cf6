package console

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyLine is returned by Parse for blank input.
	ErrEmptyLine = errors.New("empty command")
	// ErrUnknownCommand is returned by Parse for an unrecognized keyword.
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a parsed input line.
type Command struct {
	Name string // upper-cased keyword
	Args []string
}

// syntax describes a command keyword and its arguments.
type syntax struct {
	name string
	args []string
	help string
	// unsupported commands are recognized but have no behaviour.
	unsupported bool
}

var syntaxes = []syntax{
	{name: "NUMBER_OF_VIDEOS", help: "Shows how many videos are in the library."},
	{name: "SHOW_ALL_VIDEOS", help: "Lists all videos from the library."},
	{name: "PLAY", args: []string{"video_id"}, help: "Plays specified video."},
	{name: "PLAY_RANDOM", help: "Plays a random video from the library."},
	{name: "STOP", help: "Stop the current video."},
	{name: "PAUSE", help: "Pause the current video."},
	{name: "CONTINUE", help: "Resume the current paused video."},
	{name: "SHOW_PLAYING", help: "Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused)."},
	{name: "CREATE_PLAYLIST", args: []string{"playlist_name"}, help: "Creates a new (empty) playlist with the provided name."},
	{name: "ADD_TO_PLAYLIST", args: []string{"playlist_name", "video_id"}, help: "Adds the requested video to the playlist."},
	{name: "REMOVE_FROM_PLAYLIST", args: []string{"playlist_name", "video_id"}, help: "Removes the specified video from the specified playlist"},
	{name: "CLEAR_PLAYLIST", args: []string{"playlist_name"}, help: "Removes all videos from the playlist."},
	{name: "DELETE_PLAYLIST", args: []string{"playlist_name"}, help: "Deletes the playlist."},
	{name: "SHOW_PLAYLIST", args: []string{"playlist_name"}, help: "List all the videos in this playlist."},
	{name: "SHOW_ALL_PLAYLISTS", help: "Display all the available playlists."},
	{name: "SEARCH_VIDEOS", args: []string{"search_term"}, unsupported: true},
	{name: "SEARCH_VIDEOS_WITH_TAG", args: []string{"tag_name"}, unsupported: true},
	{name: "FLAG_VIDEO", args: []string{"video_id"}, unsupported: true},
	{name: "ALLOW_VIDEO", args: []string{"video_id"}, unsupported: true},
	{name: "HELP", help: "Displays help."},
	{name: "EXIT", help: "Terminates the program execution."},
}

func lookup(name string) (syntax, bool) {
	for _, s := range syntaxes {
		if s.name == name {
			return s, true
		}
	}
	return syntax{}, false
}

// Parse splits a line into keyword and arguments. Keywords are matched
// ignoring case; arguments keep their casing.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyLine
	}
	cmd := Command{Name: strings.ToUpper(fields[0]), Args: fields[1:]}
	if _, ok := lookup(cmd.Name); !ok {
		return cmd, ErrUnknownCommand
	}
	return cmd, nil
}

// usage describes the arguments a command expects.
func (s syntax) usage() string {
	return "Please enter " + s.name + " command followed by " + strings.Join(s.args, " and ") + "."
}

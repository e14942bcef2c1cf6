// Package console turns text commands into library operations and renders
// their outcomes.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/cham5/google-code-sample/internal/library"
	"github.com/cham5/google-code-sample/internal/logging"
	"github.com/cham5/google-code-sample/internal/ui/styles"
)

const (
	Welcome = "Hello and welcome to vidcat, what would you like to do?\n" +
		"Enter HELP for list of available commands or EXIT to terminate."
	Goodbye = "vidcat has now terminated its execution. Thank you and goodbye!"

	invalidCommand = "Please enter a valid command, type HELP for a list of available commands."
)

// Console executes commands against a controller and writes the results.
type Console struct {
	ctl    *library.Controller
	out    io.Writer
	color  bool
	styles *styles.Styles
}

// New creates a console. When color is false no escape sequences are written.
func New(ctl *library.Controller, out io.Writer, color bool) *Console {
	return &Console{
		ctl:    ctl,
		out:    out,
		color:  color,
		styles: styles.T().S(),
	}
}

// Run executes commands read line by line from r until EXIT or end of input.
func (c *Console) Run(r io.Reader) error {
	c.println(c.styles.Heading, Welcome)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !c.Execute(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Execute runs a single command line. It returns false after EXIT.
func (c *Console) Execute(line string) bool {
	cmd, err := Parse(line)
	switch {
	case errors.Is(err, ErrEmptyLine):
		return true
	case err != nil:
		logging.Debug("unknown command %q", cmd.Name)
		c.println(c.styles.Warning, invalidCommand)
		return true
	}

	s, _ := lookup(cmd.Name)
	if len(cmd.Args) != len(s.args) {
		if len(s.args) == 0 {
			c.println(c.styles.Warning, invalidCommand)
		} else {
			c.println(c.styles.Warning, s.usage())
		}
		return true
	}
	if s.unsupported {
		c.println(c.styles.Warning, s.name+" is not supported")
		return true
	}

	c.dispatch(cmd)
	return cmd.Name != "EXIT"
}

func (c *Console) dispatch(cmd Command) {
	args := cmd.Args
	switch cmd.Name {
	case "NUMBER_OF_VIDEOS":
		c.printf(c.styles.Base, "%s videos in the library", humanize.Comma(int64(c.ctl.NumberOfVideos())))
	case "SHOW_ALL_VIDEOS":
		c.showAllVideos()
	case "PLAY":
		c.play(args[0])
	case "PLAY_RANDOM":
		c.playRandom()
	case "STOP":
		c.stop()
	case "PAUSE":
		c.pause()
	case "CONTINUE":
		c.continueVideo()
	case "SHOW_PLAYING":
		c.showPlaying()
	case "CREATE_PLAYLIST":
		c.createPlaylist(args[0])
	case "ADD_TO_PLAYLIST":
		c.addToPlaylist(args[0], args[1])
	case "REMOVE_FROM_PLAYLIST":
		c.removeFromPlaylist(args[0], args[1])
	case "CLEAR_PLAYLIST":
		c.clearPlaylist(args[0])
	case "DELETE_PLAYLIST":
		c.deletePlaylist(args[0])
	case "SHOW_PLAYLIST":
		c.showPlaylist(args[0])
	case "SHOW_ALL_PLAYLISTS":
		c.showAllPlaylists()
	case "HELP":
		c.help()
	case "EXIT":
		c.println(c.styles.Heading, Goodbye)
	}
}

func (c *Console) paint(style lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return style.Render(s)
}

func (c *Console) println(style lipgloss.Style, s string) {
	fmt.Fprintln(c.out, c.paint(style, s))
}

func (c *Console) printf(style lipgloss.Style, format string, args ...any) {
	c.println(style, fmt.Sprintf(format, args...))
}

// item writes an indented list entry. Entries are never styled so the tab
// survives rendering.
func (c *Console) item(s string) {
	fmt.Fprintln(c.out, "\t"+s)
}

func (c *Console) fail(s string) {
	c.println(c.styles.Error, s)
}

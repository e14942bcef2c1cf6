//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlay,
			err:      nil,
			expected: "",
		},
		{
			name:     "play operation",
			op:       OpPlay,
			err:      errors.New("video does not exist"),
			expected: "Cannot play video: Video does not exist",
		},
		{
			name:     "stop operation",
			op:       OpStop,
			err:      errors.New("no video is currently playing"),
			expected: "Cannot stop video: No video is currently playing",
		},
		{
			name:     "create playlist",
			op:       OpPlaylistCreate,
			err:      errors.New("a playlist with the same name already exists"),
			expected: "Cannot create playlist: A playlist with the same name already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		target   string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaylistAdd,
			target:   "my_list",
			err:      nil,
			expected: "",
		},
		{
			name:     "add video names the playlist",
			op:       OpPlaylistAdd,
			target:   "my_list",
			err:      errors.New("video already added"),
			expected: "Cannot add video to my_list: Video already added",
		},
		{
			name:     "show playlist keeps the typed casing",
			op:       OpPlaylistShow,
			target:   "MY_list",
			err:      errors.New("playlist does not exist"),
			expected: "Cannot show playlist MY_list: Playlist does not exist",
		},
		{
			name:     "empty target falls back to Format",
			op:       OpPlaylistClear,
			target:   "",
			err:      errors.New("playlist does not exist"),
			expected: "Cannot clear playlist: Playlist does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.target, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.target, tt.err, result, tt.expected)
			}
		})
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New(""), ""},
		{errors.New("video is not paused"), "Video is not paused"},
		{errors.New("Already upper"), "Already upper"},
		{errors.New("élan"), "Élan"},
	}
	for _, tt := range tests {
		if got := Reason(tt.err); got != tt.want {
			t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

//nolint:goconst // test file with repeated string literals
package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cham5/google-code-sample/internal/video"
)

var (
	cats = video.New("Amazing Cats", "amazing_cats_video_id", []string{"#cat", "#animal"})
	dogs = video.New("Funny Dogs", "funny_dogs_video_id", []string{"#dog", "#animal"})
	life = video.New("Life at Google", "life_at_google_video_id", []string{"#google", "#career"})
)

func TestNew(t *testing.T) {
	p := New("My_List")

	assert.Equal(t, "My_List", p.Name())
	assert.Equal(t, "my_list", p.Key())
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.IsEmpty())
	assert.NotNil(t, p.Videos(), "Videos() should return empty slice, not nil")
	assert.NotEmpty(t, p.ID())
}

func TestNew_DistinctIDs(t *testing.T) {
	a := New("list")
	b := New("list")
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"my_list", "my_list"},
		{"MY_LIST", "my_list"},
		{"My_List", "my_list"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Key(tt.name); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPlaylist_Add_PreservesOrder(t *testing.T) {
	p := New("list")

	require.True(t, p.Add(dogs))
	require.True(t, p.Add(cats))
	require.True(t, p.Add(life))

	videos := p.Videos()
	require.Len(t, videos, 3)
	assert.Equal(t, "funny_dogs_video_id", videos[0].ID())
	assert.Equal(t, "amazing_cats_video_id", videos[1].ID())
	assert.Equal(t, "life_at_google_video_id", videos[2].ID())
}

func TestPlaylist_Add_RejectsDuplicateByID(t *testing.T) {
	p := New("list")
	require.True(t, p.Add(cats))

	// Different value, same id.
	again := video.New("Amazing Cats (copy)", "amazing_cats_video_id", nil)
	assert.False(t, p.Add(again))
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, "Amazing Cats", p.Videos()[0].Title())
}

func TestPlaylist_Remove(t *testing.T) {
	p := New("list")
	p.Add(dogs)
	p.Add(cats)
	p.Add(life)

	assert.True(t, p.Remove(1))
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.Contains("amazing_cats_video_id"))

	assert.False(t, p.Remove(-1))
	assert.False(t, p.Remove(2))
	assert.Equal(t, 2, p.Len())
}

func TestPlaylist_RemoveID(t *testing.T) {
	p := New("list")
	p.Add(dogs)
	p.Add(cats)

	assert.True(t, p.RemoveID("funny_dogs_video_id"))
	assert.Equal(t, []video.Video{cats}, p.Videos())

	assert.False(t, p.RemoveID("funny_dogs_video_id"))
	assert.Equal(t, 1, p.Len())
}

func TestPlaylist_IndexOf(t *testing.T) {
	p := New("list")
	p.Add(dogs)
	p.Add(cats)

	assert.Equal(t, 0, p.IndexOf("funny_dogs_video_id"))
	assert.Equal(t, 1, p.IndexOf("amazing_cats_video_id"))
	assert.Equal(t, -1, p.IndexOf("nothing_video_id"))
}

func TestPlaylist_Clear_KeepsIdentity(t *testing.T) {
	p := New("My_List")
	id := p.ID()
	p.Add(dogs)
	p.Add(cats)

	p.Clear()

	assert.True(t, p.IsEmpty())
	assert.Equal(t, "My_List", p.Name())
	assert.Equal(t, id, p.ID())

	// Still usable after clear.
	assert.True(t, p.Add(cats))
	assert.Equal(t, 1, p.Len())
}

func TestPlaylist_VideosReturnsCopy(t *testing.T) {
	p := New("list")
	p.Add(dogs)

	videos := p.Videos()
	videos[0] = cats

	assert.Equal(t, "funny_dogs_video_id", p.Videos()[0].ID())
}

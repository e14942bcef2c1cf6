package catalog

import "github.com/cham5/google-code-sample/internal/video"

// Sample returns the built-in catalog used when no catalog file is configured.
func Sample() *Catalog {
	c, err := New([]video.Video{
		video.New("Funny Dogs", "funny_dogs_video_id", []string{"#dog", "#animal"}),
		video.New("Amazing Cats", "amazing_cats_video_id", []string{"#cat", "#animal"}),
		video.New("Another Cat Video", "another_cat_video_id", []string{"#cat", "#animal"}),
		video.New("Life at Google", "life_at_google_video_id", []string{"#google", "#career"}),
		video.New("Video about nothing", "nothing_video_id", nil),
	})
	if err != nil {
		panic(err)
	}
	return c
}

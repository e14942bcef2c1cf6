package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cham5/google-code-sample/internal/video"
)

const (
	appName         = "vidcat"
	defaultFileName = "videos.txt"
)

// Open loads the catalog at path. With an empty path it looks for
// vidcat/videos.txt in the XDG data directories and falls back to Sample.
func Open(path string) (*Catalog, error) {
	if path != "" {
		return Load(path)
	}
	found, err := xdg.SearchDataFile(filepath.Join(appName, defaultFileName))
	if err != nil {
		return Sample(), nil
	}
	return Load(found)
}

// Load reads a catalog file. Files ending in .toml hold [[videos]] tables,
// anything else uses the "Title | id | #tag1,#tag2" line format.
func Load(path string) (*Catalog, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return loadTOML(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse reads the line format. Blank lines are skipped; the tag column is
// optional.
func Parse(r io.Reader) (*Catalog, error) {
	var videos []video.Video

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected \"title | id | tags\"", lineNo)
		}
		title := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])
		if id == "" {
			return nil, fmt.Errorf("line %d: empty video id", lineNo)
		}

		var tags []string
		if len(fields) > 2 {
			tags = splitTags(fields[2])
		}
		videos = append(videos, video.New(title, id, tags))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return New(videos)
}

func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

type tomlFile struct {
	Videos []tomlVideo `koanf:"videos"`
}

type tomlVideo struct {
	Title string   `koanf:"title"`
	ID    string   `koanf:"id"`
	Tags  []string `koanf:"tags"`
}

func loadTOML(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	var tf tomlFile
	if err := k.Unmarshal("", &tf); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	videos := make([]video.Video, 0, len(tf.Videos))
	for i, v := range tf.Videos {
		if v.ID == "" {
			return nil, fmt.Errorf("%s: video %d: empty id", path, i+1)
		}
		videos = append(videos, video.New(v.Title, v.ID, v.Tags))
	}
	return New(videos)
}

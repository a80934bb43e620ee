package asset

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// FrameWildcard marks the frame number in an animation file pattern
const FrameWildcard = "*"

// Load reads an art file into a sprite with the default centered pivot
func Load(path string) (*Sprite, error) {
	text, err := readArt(path)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// LoadWithPivot reads an art file and sets an explicit pivot
func LoadWithPivot(path string, pivotX, pivotY int) (*Sprite, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	return s.WithPivot(pivotX, pivotY), nil
}

// LoadFrames reads each file as one frame, in the given order
func LoadFrames(paths ...string) (*Animation, error) {
	if len(paths) == 0 {
		return nil, ErrNoFrames
	}
	frames := make([]*Sprite, 0, len(paths))
	for _, p := range paths {
		s, err := LoadWithPivot(p, 0, 0)
		if err != nil {
			return nil, err
		}
		frames = append(frames, s)
	}
	return NewAnimation(frames...), nil
}

// LoadAnimation loads the files in dir matching pattern, where the single
// wildcard stands for the frame number; frames are ordered numerically
func LoadAnimation(dir, pattern string) (*Animation, error) {
	files, err := FrameFiles(dir, pattern)
	if err != nil {
		return nil, err
	}
	return LoadFrames(files...)
}

// FrameFiles lists frame files of an animation pattern in frame order
func FrameFiles(dir, pattern string) ([]string, error) {
	if strings.Count(pattern, FrameWildcard) != 1 {
		return nil, fmt.Errorf("frame pattern %q must contain exactly one %q", pattern, FrameWildcard)
	}

	prefix, suffix, _ := strings.Cut(pattern, FrameWildcard)
	numbered := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)` + regexp.QuoteMeta(suffix) + "$")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset directory %s: %w", dir, err)
	}

	type frameFile struct {
		path  string
		index int
	}
	var frames []frameFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := numbered.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			log.Printf("Skipping frame file with unusable number: %s", entry.Name())
			continue
		}
		frames = append(frames, frameFile{path: filepath.Join(dir, entry.Name()), index: index})
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("no files in %s match %s: %w", dir, pattern, ErrNoFrames)
	}

	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].index < frames[j].index
	})

	paths := make([]string, len(frames))
	for i, f := range frames {
		paths[i] = f.path
	}
	log.Printf("Discovered %d frame(s) for %s in %s", len(paths), pattern, dir)
	return paths, nil
}

// readArt loads art text; files that are not UTF-8 are decoded as code page 437
func readArt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read art file %s: %w", path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.CodePage437.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode art file %s: %w", path, err)
	}
	return string(decoded), nil
}

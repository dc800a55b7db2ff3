// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shared between the loader, extractor and
// writer stages of get-exercises.
package types

// Default marker literals used in Carpentries lesson markup.
const (
	MarkerChallenge  = "{: .challenge}"
	MarkerDiscussion = "{: .discussion}"
	MarkerSolution   = "{: .solution}"
)

// DefaultMarkers lists the block markers that close an extractable block.
var DefaultMarkers = []string{MarkerChallenge, MarkerDiscussion}

// Episode is one lesson markdown file.
type Episode struct {
	// Path is the filesystem path the episode was read from.
	Path string `json:"path" yaml:"path"`

	// Name is the file base name without extension (e.g. "01-introduction").
	Name string `json:"name" yaml:"name"`

	// Title is the front matter title, empty when the file has none.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Lines holds the raw file content, one entry per line, without
	// line terminators.
	Lines []string `json:"-" yaml:"-"`
}

// ChallengeBlock is the extracted text of one quoted block.
type ChallengeBlock struct {
	// MarkerLine is the zero-based index of the marker line that closed the block.
	MarkerLine int `json:"marker_line" yaml:"marker_line"`

	// Lines are the unprefixed, transformed lines in original order.
	Lines []string `json:"lines" yaml:"lines"`
}

// EpisodeExercises groups the blocks extracted from one episode together
// with the reference link definitions relocated to its end.
type EpisodeExercises struct {
	Episode Episode          `json:"episode" yaml:"episode"`
	Blocks  []ChallengeBlock `json:"blocks" yaml:"blocks"`
	Links   []string         `json:"links,omitempty" yaml:"links,omitempty"`
}

// Empty reports whether no blocks were extracted.
func (e EpisodeExercises) Empty() bool {
	return len(e.Blocks) == 0
}

// Heading returns the episode heading line written to the output file.
// When useTitle is set and the episode has a front matter title, the title
// is used; otherwise the file name.
func (e EpisodeExercises) Heading(useTitle bool) string {
	if useTitle && e.Episode.Title != "" {
		return "# " + e.Episode.Title
	}
	return "# " + e.Episode.Name
}

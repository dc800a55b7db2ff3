// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exercises

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/get-exercises/pkg/types"
)

// Writer appends episode sections to a single output file.
type Writer struct {
	path      string
	useTitles bool
}

// NewWriter deletes any existing file at path and creates an empty one in
// its place, so repeated runs produce the same output.
func NewWriter(path string, useTitles bool) (*Writer, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil, fmt.Errorf("output path %s is a directory", path)
	case err == nil:
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("removing previous output %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("checking output %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating output %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("creating output %s: %w", path, err)
	}
	return &Writer{path: path, useTitles: useTitles}, nil
}

// Path returns the output file path.
func (w *Writer) Path() string { return w.path }

// Append writes the section for ex. Episodes without blocks write nothing
// and report false.
func (w *Writer) Append(ex types.EpisodeExercises) (bool, error) {
	if ex.Empty() {
		return false, nil
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("opening output %s: %w", w.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(Format(ex, w.useTitles)); err != nil {
		return false, fmt.Errorf("writing %s to %s: %w", ex.Episode.Name, w.path, err)
	}
	return true, f.Close()
}

// Format renders the output section for one episode: the heading, each
// block followed by a blank line, then the relocated link definitions
// followed by a blank line when there are any.
func Format(ex types.EpisodeExercises, useTitles bool) string {
	if ex.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(ex.Heading(useTitles))
	b.WriteString("\n")
	for _, block := range ex.Blocks {
		for _, line := range block.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(ex.Links) > 0 {
		for _, link := range ex.Links {
			b.WriteString(link)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

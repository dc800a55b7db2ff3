// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package exercises runs an extraction over a lesson: it reads each
// episode, extracts its challenge blocks and appends them to the
// consolidated output file.
package exercises

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/get-exercises/internal/episode"
	"github.com/pdiddy/get-exercises/internal/extract"
	"github.com/pdiddy/get-exercises/internal/transform"
	"github.com/pdiddy/get-exercises/pkg/types"
)

// Summary holds the outcome of an extraction run.
type Summary struct {
	Extracted int
	Skipped   int
	Blocks    int
}

// Total returns the number of episodes processed.
func (s Summary) Total() int {
	return s.Extracted + s.Skipped
}

// EpisodeFiles returns the episode files for cfg: the explicit file list
// when set, otherwise every *.md file in the episodes directory.
func EpisodeFiles(cfg types.ExtractionConfig) ([]string, error) {
	if len(cfg.Files) > 0 {
		return cfg.Files, nil
	}
	dir := cfg.EpisodesDir
	if dir == "" {
		dir = types.DefaultEpisodesDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.LessonDir, dir)
	}
	return episode.List(dir)
}

// Run extracts every episode selected by cfg into cfg.OutputFile, printing
// one status line per episode and a summary to w. vars answers
// {{ site.X }} lookups. Any error aborts the run.
func Run(cfg types.ExtractionConfig, vars transform.Lookup, w io.Writer) (Summary, error) {
	var summary Summary

	files, err := EpisodeFiles(cfg)
	if err != nil {
		return summary, err
	}

	output := cfg.OutputFile
	if output == "" {
		output = types.DefaultOutputFile
	}
	out, err := NewWriter(output, cfg.UseTitles)
	if err != nil {
		return summary, err
	}

	tr := transform.New(vars, cfg.SiteConfig, cfg.Replacements)
	for _, path := range files {
		ep, err := episode.Load(path)
		if err != nil {
			return summary, err
		}

		ex := extract.Episode(ep, cfg.Markers, tr)
		written, err := out.Append(ex)
		if err != nil {
			return summary, err
		}
		if !written {
			fmt.Fprintf(w, "skipped:   %s (no challenges)\n", ep.Name)
			summary.Skipped++
			continue
		}
		fmt.Fprintf(w, "extracted: %s (%d blocks, %d links)\n", ep.Name, len(ex.Blocks), len(ex.Links))
		summary.Extracted++
		summary.Blocks += len(ex.Blocks)
	}

	fmt.Fprintf(w, "\nSummary: %d blocks from %d episodes, %d skipped (total: %d) -> %s\n",
		summary.Blocks, summary.Extracted, summary.Skipped, summary.Total(), out.Path())
	return summary, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls quoted challenge blocks out of lesson episodes.
//
// A block is the run of ">"-prefixed lines directly above a marker line
// such as "{: .challenge}". Nested quotes (solutions) are dropped, and
// reference-style link definitions used by a block are gathered at the end
// of the episode.
package extract

import (
	"strings"

	"github.com/pdiddy/get-exercises/pkg/types"
)

const quotePrefix = ">"

// Transformer rewrites a single extracted line.
type Transformer interface {
	Apply(line string) string
}

// IsMarker reports whether line closes an extractable block.
func IsMarker(line string, markers []string) bool {
	trimmed := strings.TrimRight(line, " \t\r\n")
	for _, m := range markers {
		if trimmed == m {
			return true
		}
	}
	return false
}

// Challenge returns the block ending just above lines[marker], with one
// quote level removed, in original order. Solution markers and lines still
// quoted after stripping are skipped. The scan stops at the first unquoted
// line or at the top of the file.
func Challenge(lines []string, marker int) []string {
	if marker > len(lines) {
		marker = len(lines)
	}
	var out []string
	for i := marker - 1; i >= 0; i-- {
		line := lines[i]
		if !strings.HasPrefix(line, quotePrefix) {
			break
		}
		text := stripQuote(line)
		if strings.HasPrefix(text, quotePrefix) || strings.TrimRight(text, " \t") == types.MarkerSolution {
			continue
		}
		out = append(out, text)
	}
	reverse(out)
	return out
}

// stripQuote removes one ">" and at most one following space.
func stripQuote(line string) string {
	text := strings.TrimPrefix(line, quotePrefix)
	text = strings.TrimPrefix(text, " ")
	return strings.TrimRight(text, "\r\n")
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Episode extracts every block of ep closed by one of markers, transforms
// each line with tr (nil leaves lines as they are) and relocates reference
// link definitions to the end. Blocks with no remaining lines are dropped.
func Episode(ep types.Episode, markers []string, tr Transformer) types.EpisodeExercises {
	if len(markers) == 0 {
		markers = types.DefaultMarkers
	}
	apply := func(s string) string { return s }
	if tr != nil {
		apply = tr.Apply
	}

	result := types.EpisodeExercises{Episode: ep}
	for i, line := range ep.Lines {
		if !IsMarker(line, markers) {
			continue
		}
		raw := Challenge(ep.Lines, i)
		if len(raw) == 0 {
			continue
		}

		block := types.ChallengeBlock{MarkerLine: i}
		var defs []string
		for _, text := range raw {
			block.Lines = append(block.Lines, apply(text))
			for _, d := range Definitions(ep.Lines, ReferencedLabels(text)) {
				defs = append(defs, apply(d))
			}
		}
		block.Lines = append(block.Lines, defs...)
		result.Blocks = append(result.Blocks, block)
	}

	result.Blocks, result.Links = RelocateLinks(result.Blocks)
	return result
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/get-exercises/pkg/types"
)

var (
	// referencePattern matches a [text][label] reference; label is captured.
	referencePattern = regexp.MustCompile(`\[[^\]]+\]\[([^\]\s]+)\]`)

	// definitionPattern matches a [label]: target definition line.
	definitionPattern = regexp.MustCompile(`^ {0,3}\[[^\]]+\]:`)
)

// ReferencedLabels returns the labels of [text][label] references in line,
// in order of appearance.
func ReferencedLabels(line string) []string {
	var labels []string
	for _, m := range referencePattern.FindAllStringSubmatch(line, -1) {
		labels = append(labels, m[1])
	}
	return labels
}

// IsDefinition reports whether line is a reference link definition.
func IsDefinition(line string) bool {
	return definitionPattern.MatchString(line)
}

// Definitions returns the lines of lines defining any of labels. Labels
// compare case-insensitively, as in markdown.
func Definitions(lines []string, labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	var defs []string
	for _, label := range labels {
		prefix := strings.ToLower("[" + label + "]:")
		for _, line := range lines {
			if strings.HasPrefix(strings.ToLower(line), prefix) {
				defs = append(defs, strings.TrimRight(line, "\r\n"))
			}
		}
	}
	return defs
}

// RelocateLinks removes every definition line from blocks and returns the
// remaining blocks together with the removed definitions, each kept once in
// first-seen order. The input blocks are not modified.
func RelocateLinks(blocks []types.ChallengeBlock) ([]types.ChallengeBlock, []string) {
	seen := make(map[string]bool)
	var links []string
	out := make([]types.ChallengeBlock, len(blocks))
	for i, b := range blocks {
		kept := make([]string, 0, len(b.Lines))
		for _, line := range b.Lines {
			if !IsDefinition(line) {
				kept = append(kept, line)
				continue
			}
			if !seen[line] {
				seen[line] = true
				links = append(links, line)
			}
		}
		out[i] = types.ChallengeBlock{MarkerLine: b.MarkerLine, Lines: kept}
	}
	return out, links
}

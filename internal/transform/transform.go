// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform rewrites extracted lesson text so it reads correctly
// outside the Jekyll site it came from: template variables are expanded,
// internal and file links become absolute, and lesson-specific wording is
// replaced.
package transform

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/get-exercises/pkg/types"
)

var (
	// variablePattern matches {{ expr }}; the expression is captured trimmed.
	variablePattern = regexp.MustCompile(`\{\{\s*(.*?)\s*\}\}`)

	// pageRootPattern matches {{ page.root }} and an optional following slash.
	pageRootPattern = regexp.MustCompile(`\{\{\s*page\.root\s*\}\}/?`)

	// linkTagPattern matches {% link _episodes/NAME.md %}.
	linkTagPattern = regexp.MustCompile(`\{%\s*link\s+_episodes/([^\s%]+?)\.md\s*%\}`)

	// fileLinkPattern matches a relative markdown link target into files/.
	fileLinkPattern = regexp.MustCompile(`\(\.\./files/([^)\s]*)\)`)
)

// Lookup resolves a site variable name to its value.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// SubstituteVariables expands each {{ expr }} whose expression, after an
// optional site. or page. prefix is removed, names a key known to vars.
// Unknown variables are left as they are.
func SubstituteVariables(line string, vars Lookup) string {
	if vars == nil || !strings.Contains(line, "{{") {
		return line
	}
	return variablePattern.ReplaceAllStringFunc(line, func(span string) string {
		m := variablePattern.FindStringSubmatch(span)
		key := m[1]
		if k, ok := strings.CutPrefix(key, "site."); ok {
			key = k
		} else if k, ok := strings.CutPrefix(key, "page."); ok {
			key = k
		}
		if v, ok := vars.Lookup(key); ok {
			return v
		}
		return span
	})
}

// RewriteInternalLinks replaces {{ page.root }} with siteURL and reduces
// {% link _episodes/NAME.md %} tags to NAME. An empty siteURL leaves
// {{ page.root }} untouched.
func RewriteInternalLinks(line, siteURL string) string {
	if siteURL != "" {
		line = pageRootPattern.ReplaceAllLiteralString(line, siteURL)
	}
	return linkTagPattern.ReplaceAllString(line, "${1}")
}

// ResolveFileLinks turns (../files/PATH) link targets into absolute URLs
// under blobURL. An empty blobURL leaves the line unchanged.
func ResolveFileLinks(line, blobURL string) string {
	if blobURL == "" {
		return line
	}
	stem := strings.TrimSuffix(blobURL, "/")
	return fileLinkPattern.ReplaceAllStringFunc(line, func(span string) string {
		m := fileLinkPattern.FindStringSubmatch(span)
		return "(" + stem + "/files/" + m[1] + ")"
	})
}

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

func compileReplacements(table map[string]string) []replacement {
	words := make([]string, 0, len(table))
	for w := range table {
		if w != "" {
			words = append(words, w)
		}
	}
	// Longest first so "etherpad link" wins over "etherpad".
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})

	out := make([]replacement, len(words))
	for i, w := range words {
		out[i] = replacement{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`),
			with:    table[w],
		}
	}
	return out
}

// ReplaceLiterals applies a word replacement table case-insensitively on
// word boundaries.
func ReplaceLiterals(line string, table map[string]string) string {
	return applyReplacements(line, compileReplacements(table))
}

func applyReplacements(line string, reps []replacement) string {
	for _, r := range reps {
		line = r.pattern.ReplaceAllLiteralString(line, r.with)
	}
	return line
}

// Transformer applies every rewrite to a line with fixed inputs.
type Transformer struct {
	vars         Lookup
	site         types.SiteConfig
	replacements []replacement
}

// New creates a Transformer. A nil replacement table selects
// types.DefaultReplacements; an empty non-nil table disables replacement.
func New(vars Lookup, site types.SiteConfig, replacements map[string]string) *Transformer {
	if replacements == nil {
		replacements = types.DefaultReplacements
	}
	return &Transformer{
		vars:         vars,
		site:         site,
		replacements: compileReplacements(replacements),
	}
}

// Apply rewrites one line. Internal links go first so {{ page.root }}
// always means the site URL, even when the site config has a root key.
func (t *Transformer) Apply(line string) string {
	line = RewriteInternalLinks(line, t.site.SiteURL)
	line = SubstituteVariables(line, t.vars)
	line = ResolveFileLinks(line, t.site.BlobURL)
	return applyReplacements(line, t.replacements)
}

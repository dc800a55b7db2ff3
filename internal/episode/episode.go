// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package episode lists and reads lesson episode files.
package episode

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/get-exercises/pkg/types"
)

// maxLineSize bounds a single episode line; long tables and inline images
// exceed bufio's 64 KiB default.
const maxLineSize = 1 << 20

// List returns the *.md files directly under dir, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading episodes directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Load reads the episode at path. Lines are kept verbatim, front matter
// included, so line indices match the file.
func Load(path string) (types.Episode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Episode{}, fmt.Errorf("reading episode %s: %w", path, err)
	}
	lines, err := splitLines(data)
	if err != nil {
		return types.Episode{}, fmt.Errorf("scanning episode %s: %w", path, err)
	}
	return types.Episode{
		Path:  path,
		Name:  Name(path),
		Title: title(data),
		Lines: lines,
	}, nil
}

// Name returns the episode name: the file base name without extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// title returns the front matter title, or "" when there is none or it
// cannot be parsed. Headings fall back to the episode name in that case.
func title(data []byte) string {
	var meta frontMatter
	if _, err := frontmatter.Parse(bytes.NewReader(data), &meta); err != nil {
		return ""
	}
	return strings.TrimSpace(meta.Title)
}

func splitLines(data []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

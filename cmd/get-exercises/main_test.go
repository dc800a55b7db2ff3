// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-exercises/internal/gitremote"
	"github.com/pdiddy/get-exercises/pkg/types"
)

func stubDiscoverer(t *testing.T, r gitremote.Remote, err error) *int {
	t.Helper()
	calls := 0
	orig := remoteDiscoverer
	remoteDiscoverer = func(string) (gitremote.Remote, error) {
		calls++
		return r, err
	}
	t.Cleanup(func() { remoteDiscoverer = orig })
	return &calls
}

func TestResolveSite(t *testing.T) {
	discovered := gitremote.Remote{Name: "origin", Account: "swcarpentry", Repo: "shell-novice"}

	tests := []struct {
		name      string
		siteURL   string
		repoURL   string
		branch    string
		want      types.SiteConfig
		wantCalls int
	}{
		{
			name: "derived from git",
			want: types.SiteConfig{
				SiteURL: "https://swcarpentry.github.io/shell-novice/",
				BlobURL: "https://github.com/swcarpentry/shell-novice/blob/gh-pages",
			},
			wantCalls: 1,
		},
		{
			name:   "custom branch",
			branch: "main",
			want: types.SiteConfig{
				SiteURL: "https://swcarpentry.github.io/shell-novice/",
				BlobURL: "https://github.com/swcarpentry/shell-novice/blob/main",
			},
			wantCalls: 1,
		},
		{
			name:    "repo url skips git",
			repoURL: "git@github.com:me/lesson.git",
			want: types.SiteConfig{
				SiteURL: "https://me.github.io/lesson/",
				BlobURL: "https://github.com/me/lesson/blob/gh-pages",
			},
		},
		{
			name:    "site url override gains trailing slash",
			siteURL: "https://lessons.example.org/shell",
			repoURL: "https://github.com/me/lesson",
			want: types.SiteConfig{
				SiteURL: "https://lessons.example.org/shell/",
				BlobURL: "https://github.com/me/lesson/blob/gh-pages",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := stubDiscoverer(t, discovered, nil)

			got, err := resolveSite("/lesson", tt.siteURL, tt.repoURL, tt.branch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, *calls)
		})
	}
}

func TestResolveSite_Errors(t *testing.T) {
	stubDiscoverer(t, gitremote.Remote{}, errors.New("no git remotes configured"))

	_, err := resolveSite("/lesson", "", "", "")
	assert.ErrorContains(t, err, "no git remotes")

	_, err = resolveSite("/lesson", "", "https://gitlab.com/me/lesson.git", "")
	assert.ErrorContains(t, err, "malformed git remote")
}

func TestRootCommand(t *testing.T) {
	lesson := t.TempDir()
	episodes := filepath.Join(lesson, "_episodes")
	require.NoError(t, os.MkdirAll(episodes, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(lesson, "_config.yml"), []byte("title: \"Shell\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(episodes, "01-intro.md"),
		[]byte("> ## In {{ site.title }}\n> Read [this]({{ page.root }}/setup/).\n{: .challenge}\n"), 0o644))

	output := filepath.Join(t.TempDir(), "out.md")
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{lesson, "--output", output, "--repo-url", "git@github.com:me/lesson.git"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "# 01-intro\n## In Shell\nRead [this](https://me.github.io/lesson/setup/).\n\n", string(data))
	assert.Contains(t, stdout.String(), "extracted: 01-intro")
}

func TestRunExtract_RejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lesson.md")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err := runExtract(rootCmd, []string{file})
	assert.ErrorContains(t, err, "expected lesson repo directory")
}

func TestRunExtract_MissingDirectory(t *testing.T) {
	err := runExtract(rootCmd, []string{filepath.Join(t.TempDir(), "missing")})
	assert.ErrorContains(t, err, "lesson directory")
}

func TestRootCommand_RequiresOneArgument(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, nil))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"a", "b"}))
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"a"}))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "get-exercises dev\n", out.String())
}

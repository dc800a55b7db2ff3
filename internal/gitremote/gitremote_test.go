// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gitremote

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor returns canned output keyed by "name arg1 arg2".
type mockExecutor struct {
	outputs map[string]string
	calls   []string
}

func (m *mockExecutor) Output(name string, args ...string) ([]byte, error) {
	key := name + " " + strings.Join(args, " ")
	m.calls = append(m.calls, key)
	out, ok := m.outputs[key]
	if !ok {
		return nil, errors.New("command failed: " + key)
	}
	return []byte(out), nil
}

func remotes(dir string, urls map[string]string, order ...string) *mockExecutor {
	outputs := map[string]string{
		"git -C " + dir + " remote": strings.Join(order, "\n") + "\n",
	}
	for name, url := range urls {
		outputs["git -C "+dir+" config --get remote."+name+".url"] = url + "\n"
	}
	return &mockExecutor{outputs: outputs}
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantAccount string
		wantRepo    string
		wantErr     bool
	}{
		{name: "ssh", url: "git@github.com:swcarpentry/shell-novice.git", wantAccount: "swcarpentry", wantRepo: "shell-novice"},
		{name: "https", url: "https://github.com/swcarpentry/shell-novice.git", wantAccount: "swcarpentry", wantRepo: "shell-novice"},
		{name: "https without .git", url: "https://github.com/carpentries/instructor-training", wantAccount: "carpentries", wantRepo: "instructor-training"},
		{name: "ssh scheme", url: "ssh://git@github.com/datacarpentry/r-socialsci.git", wantAccount: "datacarpentry", wantRepo: "r-socialsci"},
		{name: "trailing whitespace", url: "git@github.com:me/lesson.git\n", wantAccount: "me", wantRepo: "lesson"},
		{name: "dotted repo name", url: "https://github.com/me/my.lesson.git", wantAccount: "me", wantRepo: "my.lesson"},
		{name: "not github", url: "https://gitlab.com/me/lesson.git", wantErr: true},
		{name: "empty", url: "", wantErr: true},
		{name: "missing repo", url: "https://github.com/me", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "malformed git remote")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccount, r.Account)
			assert.Equal(t, tt.wantRepo, r.Repo)
		})
	}
}

func TestRemoteURLs(t *testing.T) {
	r := Remote{Account: "swcarpentry", Repo: "shell-novice"}
	assert.Equal(t, "https://swcarpentry.github.io/shell-novice/", r.SiteURL())
	assert.Equal(t, "https://github.com/swcarpentry/shell-novice", r.RepoURL())
	assert.Equal(t, "https://github.com/swcarpentry/shell-novice/blob/gh-pages", r.BlobURL("gh-pages"))
}

func TestSSHAndHTTPSAgree(t *testing.T) {
	ssh, err := ParseURL("git@github.com:acct/lesson.git")
	require.NoError(t, err)
	https, err := ParseURL("https://github.com/acct/lesson.git")
	require.NoError(t, err)
	assert.Equal(t, ssh.SiteURL(), https.SiteURL())
	assert.Equal(t, ssh.BlobURL("main"), https.BlobURL("main"))
}

func TestDiscover(t *testing.T) {
	const dir = "/lessons/shell"
	tests := []struct {
		name     string
		exec     *mockExecutor
		wantName string
		wantSite string
		wantErr  string
	}{
		{
			name: "single origin",
			exec: remotes(dir, map[string]string{
				"origin": "git@github.com:swcarpentry/shell-novice.git",
			}, "origin"),
			wantName: "origin",
			wantSite: "https://swcarpentry.github.io/shell-novice/",
		},
		{
			name: "lesson organisation preferred over fork origin",
			exec: remotes(dir, map[string]string{
				"origin":   "git@github.com:someone/shell-novice.git",
				"upstream": "https://github.com/swcarpentry/shell-novice.git",
			}, "origin", "upstream"),
			wantName: "upstream",
			wantSite: "https://swcarpentry.github.io/shell-novice/",
		},
		{
			name: "origin preferred when no lesson organisation",
			exec: remotes(dir, map[string]string{
				"backup": "git@github.com:other/lesson.git",
				"origin": "git@github.com:me/lesson.git",
			}, "backup", "origin"),
			wantName: "origin",
			wantSite: "https://me.github.io/lesson/",
		},
		{
			name: "first remote as last resort",
			exec: remotes(dir, map[string]string{
				"mine": "git@github.com:me/lesson.git",
			}, "mine"),
			wantName: "mine",
			wantSite: "https://me.github.io/lesson/",
		},
		{
			name:    "no remotes",
			exec:    remotes(dir, nil),
			wantErr: "no git remotes",
		},
		{
			name:    "git fails",
			exec:    &mockExecutor{outputs: map[string]string{}},
			wantErr: "listing git remotes",
		},
		{
			name: "malformed remote",
			exec: remotes(dir, map[string]string{
				"origin": "https://example.org/lesson.git",
			}, "origin"),
			wantErr: "malformed git remote",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := discover(tt.exec, dir)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, r.Name)
			assert.Equal(t, tt.wantSite, r.SiteURL())
		})
	}
}

func TestDiscover_RunsGitInLessonDir(t *testing.T) {
	exec := remotes("/tmp/lesson", map[string]string{
		"origin": "git@github.com:me/lesson.git",
	}, "origin")

	_, err := discover(exec, "/tmp/lesson")
	require.NoError(t, err)
	require.Len(t, exec.calls, 2)
	assert.Equal(t, "git -C /tmp/lesson remote", exec.calls[0])
	assert.Equal(t, "git -C /tmp/lesson config --get remote.origin.url", exec.calls[1])
}

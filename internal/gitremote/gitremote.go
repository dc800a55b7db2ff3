// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gitremote discovers a lesson repository's GitHub remote and derives
// the published GitHub Pages URL and the repository blob URL from it.
package gitremote

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

const binGit = "git"

// remoteURLPattern accepts the SSH and HTTPS forms of a GitHub remote:
//
//	git@github.com:ACCOUNT/REPO.git
//	https://github.com/ACCOUNT/REPO.git
//	ssh://git@github.com/ACCOUNT/REPO
var remoteURLPattern = regexp.MustCompile(
	`^(?:git@github\.com:|(?:https?|ssh|git)://(?:[^@/]+@)?github\.com/)([^/]+)/([^/]+?)(?:\.git)?/?$`,
)

// lessonOrgs are the organisations whose remotes are preferred when a
// lesson checkout has several (e.g. a fork plus upstream).
var lessonOrgs = regexp.MustCompile(`(?i)(swcarpentry|datacarpentry|librarycarpentry|carpentries)/`)

// Remote is a parsed GitHub remote.
type Remote struct {
	Name    string
	URL     string
	Account string
	Repo    string
}

// SiteURL returns the GitHub Pages base URL, with a trailing slash.
func (r Remote) SiteURL() string {
	return fmt.Sprintf("https://%s.github.io/%s/", r.Account, r.Repo)
}

// RepoURL returns the repository web URL.
func (r Remote) RepoURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", r.Account, r.Repo)
}

// BlobURL returns the blob URL stem for branch, without a trailing slash.
func (r Remote) BlobURL(branch string) string {
	return r.RepoURL() + "/blob/" + branch
}

// ParseURL parses a GitHub remote URL. Remotes not hosted on GitHub are
// rejected since no Pages URL can be derived for them.
func ParseURL(url string) (Remote, error) {
	url = strings.TrimSpace(url)
	m := remoteURLPattern.FindStringSubmatch(url)
	if m == nil {
		return Remote{}, fmt.Errorf("malformed git remote %q: expected a github.com repository URL", url)
	}
	return Remote{URL: url, Account: m[1], Repo: m[2]}, nil
}

// executor abstracts command execution for testing.
type executor interface {
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var defaultExec = &osExecutor{}

// Discover inspects the remotes of the git checkout at dir and returns the
// one best describing the published lesson: a lesson organisation remote if
// any, then "origin", then the first remote listed.
func Discover(dir string) (Remote, error) {
	return discover(defaultExec, dir)
}

func discover(exec executor, dir string) (Remote, error) {
	out, err := exec.Output(binGit, "-C", dir, "remote")
	if err != nil {
		return Remote{}, fmt.Errorf("listing git remotes in %s: %w", dir, err)
	}
	names := strings.Fields(string(out))
	if len(names) == 0 {
		return Remote{}, fmt.Errorf("no git remotes configured in %s", dir)
	}

	urls := make(map[string]string, len(names))
	for _, name := range names {
		out, err := exec.Output(binGit, "-C", dir, "config", "--get", "remote."+name+".url")
		if err != nil {
			return Remote{}, fmt.Errorf("reading url of remote %s: %w", name, err)
		}
		urls[name] = strings.TrimSpace(string(out))
	}

	chosen := pick(names, urls)
	r, err := ParseURL(urls[chosen])
	if err != nil {
		return Remote{}, err
	}
	r.Name = chosen
	return r, nil
}

func pick(names []string, urls map[string]string) string {
	for _, name := range names {
		if lessonOrgs.MatchString(urls[name]) {
			return name
		}
	}
	for _, name := range names {
		if name == "origin" {
			return name
		}
	}
	return names[0]
}

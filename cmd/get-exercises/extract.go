// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-exercises/internal/exercises"
	"github.com/pdiddy/get-exercises/internal/gitremote"
	"github.com/pdiddy/get-exercises/internal/siteconfig"
	"github.com/pdiddy/get-exercises/pkg/types"
)

// remoteDiscoverer finds the lesson's GitHub remote; replaced in tests.
var remoteDiscoverer = gitremote.Discover

func runExtract(cmd *cobra.Command, args []string) error {
	lessonDir := args[0]
	info, err := os.Stat(lessonDir)
	if err != nil {
		return fmt.Errorf("lesson directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("expected lesson repo directory, got file %s", lessonDir)
	}

	cfg, err := extractionConfig(lessonDir)
	if err != nil {
		return err
	}

	vars, err := siteconfig.Load(cfg.SiteConfigPath)
	if err != nil {
		return err
	}

	_, err = exercises.Run(cfg, vars, cmd.OutOrStdout())
	return err
}

// extractionConfig assembles the run settings from viper (flags, env,
// config file) and resolves the lesson's site URLs.
func extractionConfig(lessonDir string) (types.ExtractionConfig, error) {
	cfg := types.ExtractionConfig{
		LessonDir:      lessonDir,
		EpisodesDir:    viper.GetString("episodes_dir"),
		Files:          viper.GetStringSlice("files"),
		SiteConfigPath: viper.GetString("site_config"),
		OutputFile:     viper.GetString("output"),
		Markers:        viper.GetStringSlice("markers"),
		UseTitles:      viper.GetBool("titles"),
	}
	if cfg.SiteConfigPath == "" {
		cfg.SiteConfigPath = filepath.Join(lessonDir, types.DefaultSiteConfig)
	}
	if viper.IsSet("replacements") {
		cfg.Replacements = viper.GetStringMapString("replacements")
	}

	site, err := resolveSite(lessonDir, viper.GetString("site_url"), viper.GetString("repo_url"), viper.GetString("branch"))
	if err != nil {
		return cfg, err
	}
	cfg.SiteConfig = site
	return cfg, nil
}

// resolveSite derives the site and blob URLs. An explicit repoURL skips
// git; an explicit siteURL overrides the GitHub Pages URL.
func resolveSite(lessonDir, siteURL, repoURL, branch string) (types.SiteConfig, error) {
	if branch == "" {
		branch = types.DefaultBranch
	}

	var remote gitremote.Remote
	var err error
	if repoURL != "" {
		remote, err = gitremote.ParseURL(repoURL)
	} else {
		remote, err = remoteDiscoverer(lessonDir)
	}
	if err != nil {
		return types.SiteConfig{}, err
	}

	if siteURL == "" {
		siteURL = remote.SiteURL()
	}
	if !strings.HasSuffix(siteURL, "/") {
		siteURL += "/"
	}
	return types.SiteConfig{
		SiteURL: siteURL,
		BlobURL: remote.BlobURL(branch),
	}, nil
}

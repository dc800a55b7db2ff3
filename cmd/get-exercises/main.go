// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-exercises CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-exercises/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd extracts the challenge blocks of a lesson.
var rootCmd = &cobra.Command{
	Use:   "get-exercises <lesson-dir>",
	Short: "Collect lesson challenges into one markdown file",
	Long: `get-exercises scans the episodes of a lesson repository for quoted
challenge and discussion blocks and writes their text, without solutions,
into a single markdown file.

Template variables are expanded from the lesson's _config.yml, {{ page.root }}
and ../files/ links become absolute URLs derived from the lesson's GitHub
remote, and reference-style link definitions are gathered at the end of each
episode.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-exercises.yaml or ~/.config/get-exercises/config.yaml)")

	flags := rootCmd.Flags()
	flags.StringP("output", "o", types.DefaultOutputFile, "output file, replaced on every run")
	flags.String("episodes-dir", types.DefaultEpisodesDir, "episodes directory, relative to the lesson directory")
	flags.String("site-config", "", "site config used for {{ site.X }} variables (default: <lesson-dir>/_config.yml)")
	flags.StringSliceP("file", "f", nil, "episode files to read instead of scanning the episodes directory")
	flags.String("site-url", "", "published lesson URL (default: derived from the git remote)")
	flags.String("repo-url", "", "GitHub repository URL (default: read from the lesson's git remotes)")
	flags.String("branch", types.DefaultBranch, "branch that ../files/ links point into")
	flags.Bool("titles", false, "use front matter titles as episode headings")

	bindFlags(map[string]string{
		"output":       "output",
		"episodes_dir": "episodes-dir",
		"site_config":  "site-config",
		"files":        "file",
		"site_url":     "site-url",
		"repo_url":     "repo-url",
		"branch":       "branch",
		"titles":       "titles",
	})
}

func bindFlags(keys map[string]string) {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-exercises")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-exercises"))
		}
	}

	viper.SetDefault("markers", types.DefaultMarkers)

	viper.SetEnvPrefix("GET_EXERCISES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

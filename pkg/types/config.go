// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Defaults for ExtractionConfig fields.
const (
	DefaultOutputFile  = "exercises.md"
	DefaultEpisodesDir = "_episodes"
	DefaultSiteConfig  = "_config.yml"
	DefaultBranch      = "gh-pages"
)

// DefaultReplacements is the literal replacement table applied to every
// extracted line. Keys are matched case-insensitively on word boundaries.
var DefaultReplacements = map[string]string{
	"etherpad": "shared document",
}

// SiteConfig holds the URLs the transformer substitutes into extracted text.
type SiteConfig struct {
	// SiteURL is the published lesson base URL, e.g.
	// "https://swcarpentry.github.io/shell-novice/". {{ page.root }} expands to it.
	SiteURL string `json:"site_url" yaml:"site_url"`

	// BlobURL is the repository blob URL stem, e.g.
	// "https://github.com/swcarpentry/shell-novice/blob/gh-pages".
	// Relative ../files/ links are resolved against it.
	BlobURL string `json:"blob_url" yaml:"blob_url"`
}

// ExtractionConfig holds settings for one extraction run.
type ExtractionConfig struct {
	SiteConfig `yaml:",inline"`

	// LessonDir is the lesson repository root.
	LessonDir string `json:"lesson_dir" yaml:"lesson_dir"`

	// EpisodesDir is the directory scanned for *.md, relative to LessonDir
	// unless absolute.
	EpisodesDir string `json:"episodes_dir" yaml:"episodes_dir"`

	// Files, when non-empty, replaces the episodes directory scan.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`

	// SiteConfigPath is the Jekyll _config.yml used for {{ site.X }} lookups.
	SiteConfigPath string `json:"site_config" yaml:"site_config"`

	// OutputFile is the consolidated output path.
	OutputFile string `json:"output" yaml:"output"`

	// Markers are the lines that close an extractable block.
	Markers []string `json:"markers" yaml:"markers"`

	// Replacements maps words to their literal replacement.
	Replacements map[string]string `json:"replacements" yaml:"replacements"`

	// UseTitles selects front matter titles for episode headings.
	UseTitles bool `json:"titles" yaml:"titles"`
}

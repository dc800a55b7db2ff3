// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package siteconfig reads a lesson's Jekyll _config.yml and answers
// {{ site.X }} variable lookups against its top-level keys.
package siteconfig

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Config holds the top-level scalar values of a site configuration file,
// as written in the file: 2.0 stays "2.0" and 0012 stays "0012". Nested
// mappings and sequences are not addressable by a {{ site.X }} variable
// and are dropped.
type Config struct {
	values map[string]string
}

// Load reads and parses the site configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing site config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds a Config from raw YAML. An empty document yields an empty
// Config.
func Parse(data []byte) (*Config, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(raw))
	for key, node := range raw {
		n := &node
		if n.Kind == yaml.AliasNode && n.Alias != nil {
			n = n.Alias
		}
		if n.Kind != yaml.ScalarNode {
			continue
		}
		values[key] = strings.TrimSpace(n.Value)
	}
	return &Config{values: values}, nil
}

// Lookup returns the value for key and whether the key exists.
func (c *Config) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.values[key]
	return v, ok
}

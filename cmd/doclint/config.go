package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"doclint/internal/rules"
)

// toolConfig mirrors doclint.toml. Rule identifiers, severities and
// stop-word lists are compiled in; the config only carries what the host is
// allowed to tune.
type toolConfig struct {
	Rules  rulesConfig  `toml:"rules"`
	Output outputConfig `toml:"output"`
}

type rulesConfig struct {
	// ExemptMarkers lists attribute names that take a method out of scope.
	ExemptMarkers []string `toml:"exempt_markers"`
}

type outputConfig struct {
	Format string `toml:"format"`
}

// findDoclintToml walks from startDir to the filesystem root looking for a
// doclint.toml.
func findDoclintToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "doclint.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadToolConfig reads the config at explicitPath, or searches upward from
// startDir when explicitPath is empty. Absent config falls back to defaults.
func loadToolConfig(explicitPath, startDir string) (toolConfig, error) {
	cfg := toolConfig{
		Rules:  rulesConfig{ExemptMarkers: rules.DefaultConfig().ExemptMarkers},
		Output: outputConfig{Format: "pretty"},
	}

	path := explicitPath
	if path == "" {
		found, ok, err := findDoclintToml(startDir)
		if err != nil {
			return cfg, err
		}
		if !ok {
			return cfg, nil
		}
		path = found
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%q: unknown config key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

func (c toolConfig) ruleConfig() rules.Config {
	return rules.Config{ExemptMarkers: c.Rules.ExemptMarkers}
}

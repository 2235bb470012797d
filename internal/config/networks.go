package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NamePattern maps networks matching Pattern to a display Name.
type NamePattern struct {
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name"`
}

// NetworkConfig controls broadcast network filtering and naming.
type NetworkConfig struct {
	// NameMap rewrites exact network strings.
	NameMap map[string]string
	// Patterns are tried in order before NameMap; first match wins.
	Patterns []NamePattern
	// Preferred orders and filters extracted networks.
	Preferred []string
}

// networkFile is the YAML shape accepted from NETWORK_CONFIG_FILE.
type networkFile struct {
	Preferred []string          `yaml:"preferred"`
	Patterns  []NamePattern     `yaml:"patterns"`
	Names     map[string]string `yaml:"names"`
}

// DefaultNetworkConfig returns the built-in naming rules.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		NameMap: map[string]string{
			"ESPN Select": "ESPN+",
			"ESPN":        "ESPN",
			"TNT":         "TNT",
			"TruTV":       "TruTV",
			"Prime":       "Prime Video",
		},
		Patterns: []NamePattern{
			{Pattern: "FDS*", Name: "FanDuel Sports North"},
		},
		Preferred: []string{"TNT", "TruTV", "ESPN*", "FDSN*", "FDS*", "Prime*", "ESPN Select"},
	}
}

// loadNetworks applies defaults, then the optional YAML file, then env overrides.
// A file that cannot be read or parsed is reported and otherwise ignored.
func loadNetworks() (NetworkConfig, []string) {
	cfg := DefaultNetworkConfig()
	var warnings []string

	if path := envOrDefault(envNetworkCfgFile, ""); path != "" {
		if err := applyNetworkFile(&cfg, path); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	applyNetworkEnv(&cfg)
	return cfg, warnings
}

func applyNetworkFile(cfg *NetworkConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read network config %s: %w", path, err)
	}
	var file networkFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse network config %s: %w", path, err)
	}

	if file.Preferred != nil {
		cfg.Preferred = file.Preferred
	}
	var patterns []NamePattern
	for _, p := range file.Patterns {
		if strings.TrimSpace(p.Pattern) != "" && strings.TrimSpace(p.Name) != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) > 0 {
		cfg.Patterns = patterns
	}
	if len(file.Names) > 0 {
		cfg.NameMap = file.Names
	}
	return nil
}

func applyNetworkEnv(cfg *NetworkConfig) {
	// A JSON list of strings wins over the comma list, even when empty.
	if raw, ok := jsonEnv(envPreferredJSON); ok {
		if list, ok := stringList(raw); ok {
			cfg.Preferred = list
		} else if list, ok := listEnv(envPreferredList); ok {
			cfg.Preferred = list
		}
	} else if list, ok := listEnv(envPreferredList); ok {
		cfg.Preferred = list
	}

	// A JSON list suppresses the delimited form; its invalid items are skipped.
	if raw, ok := jsonEnv(envPatternsJSON); ok {
		if items, isList := raw.([]any); isList {
			if parsed := patternPairs(items); len(parsed) > 0 {
				cfg.Patterns = parsed
			}
		} else if pairs, ok := pairsEnv(envPatternsPairs); ok {
			cfg.Patterns = pairs
		}
	} else if pairs, ok := pairsEnv(envPatternsPairs); ok {
		cfg.Patterns = pairs
	}

	if raw, ok := jsonEnv(envNameMapJSON); ok {
		if m, ok := stringMap(raw); ok {
			cfg.NameMap = m
		}
	}
}

func stringList(raw any) ([]string, bool) {
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func patternPairs(items []any) []NamePattern {
	var out []NamePattern
	for _, item := range items {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		pat, ok1 := pair[0].(string)
		name, ok2 := pair[1].(string)
		if ok1 && ok2 {
			out = append(out, NamePattern{Pattern: pat, Name: name})
		}
	}
	return out
}

func stringMap(raw any) (map[string]string, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[k] = s
	}
	return out, true
}

// Package networks turns raw broadcast identifiers into the short list of
// display names shown on the ticker.
package networks

import (
	"strings"

	"github.com/preston-bernstein/nhl-ticker-service/internal/config"
)

type namePattern struct {
	matcher matcher
	name    string
}

// Resolver applies the preferred-network filter and display-name mapping.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	preferred []matcher
	patterns  []namePattern
	names     map[string]string
}

// NewResolver compiles the configured patterns once.
func NewResolver(cfg config.NetworkConfig) *Resolver {
	r := &Resolver{names: make(map[string]string, len(cfg.NameMap))}
	for _, p := range cfg.Preferred {
		r.preferred = append(r.preferred, compile(p))
	}
	for _, p := range cfg.Patterns {
		r.patterns = append(r.patterns, namePattern{matcher: compile(p.Pattern), name: p.Name})
	}
	for raw, display := range cfg.NameMap {
		r.names[raw] = display
	}
	return r
}

// Resolve filters raw networks by preference and maps them to display names.
func (r *Resolver) Resolve(raw []string) []string {
	return r.Display(r.Prefer(raw))
}

// Prefer keeps the networks matching the preference list, ordered by the first
// pattern each one matches. When nothing matches the cleaned input is returned.
func (r *Resolver) Prefer(raw []string) []string {
	cleaned := clean(raw)
	if len(cleaned) == 0 {
		return []string{}
	}
	if len(r.preferred) == 0 {
		return dedupe(cleaned)
	}
	var picked []string
	for _, m := range r.preferred {
		for _, name := range cleaned {
			if m.match(name) {
				picked = append(picked, name)
			}
		}
	}
	if len(picked) == 0 {
		return cleaned
	}
	return dedupe(picked)
}

// Display maps each network to its display name, deduplicating the result.
func (r *Resolver) Display(raw []string) []string {
	cleaned := clean(raw)
	if len(cleaned) == 0 {
		return []string{}
	}
	mapped := make([]string, 0, len(cleaned))
	for _, name := range cleaned {
		mapped = append(mapped, r.DisplayName(name))
	}
	return dedupe(mapped)
}

// DisplayName maps one network: the first matching pattern wins, then the
// exact name map, then the name itself.
func (r *Resolver) DisplayName(network string) string {
	for _, p := range r.patterns {
		if p.matcher.match(network) {
			return p.name
		}
	}
	if display, ok := r.names[network]; ok {
		return display
	}
	return network
}

func clean(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

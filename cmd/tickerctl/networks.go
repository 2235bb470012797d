package main

import (
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

type networksCmd struct {
	Raw []string `help:"Raw network names as the upstream reports them (comma separated or repeated)." required:""`
}

type networksOutput struct {
	Input    []string `json:"input"`
	Resolved []string `json:"resolved"`
}

func (c *networksCmd) Run(e *env) error {
	input := make([]string, 0, len(c.Raw))
	for _, raw := range c.Raw {
		if raw = strings.TrimSpace(raw); raw != "" {
			input = append(input, raw)
		}
	}

	resolver := e.app.Resolver
	resolved := resolver.Resolve(input)
	if e.json {
		return writeJSON(e.out, networksOutput{Input: input, Resolved: resolved})
	}

	kept := resolver.Prefer(input)
	t := newTable(e.out, "Networks", table.Row{"Raw", "Display", "Kept"})
	for _, raw := range input {
		mark := ""
		if slices.Contains(kept, raw) {
			mark = "yes"
		}
		t.AppendRow(table.Row{raw, resolver.DisplayName(raw), mark})
	}
	summary := strings.Join(resolved, ", ")
	if summary == "" {
		summary = "-"
	}
	t.AppendFooter(table.Row{"resolved", summary, ""})
	t.Render()
	return nil
}

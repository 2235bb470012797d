package networks

import (
	"strings"

	"github.com/gobwas/glob"
)

const globMeta = "*?[]"

// matcher is a compiled network pattern. Patterns with glob metacharacters use
// shell-style matching; plain patterns match on equality or prefix. Matching is
// case-insensitive and ignores surrounding whitespace.
type matcher struct {
	pattern string
	g       glob.Glob
	literal bool
}

func compile(pattern string) matcher {
	p := strings.ToLower(strings.TrimSpace(pattern))
	m := matcher{pattern: p}
	if p == "" || !strings.ContainsAny(p, globMeta) {
		return m
	}
	g, err := glob.Compile(escapeNonShell(p))
	if err != nil {
		// An unbalanced class can only match itself.
		m.literal = true
		return m
	}
	m.g = g
	return m
}

// escapeNonShell escapes the glob syntax that shell patterns treat literally.
func escapeNonShell(p string) string {
	r := strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)
	return r.Replace(p)
}

func (m matcher) match(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if m.pattern == "" || t == "" {
		return false
	}
	switch {
	case m.g != nil:
		return m.g.Match(t)
	case m.literal:
		return t == m.pattern
	default:
		return t == m.pattern || strings.HasPrefix(t, m.pattern)
	}
}

// Match reports whether text matches pattern under the network matching rules.
func Match(pattern, text string) bool {
	return compile(pattern).match(text)
}

package networks

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

var (
	// List-valued fields on a schedule entry that may carry broadcasts.
	gameListFields = []string{"tvBroadcasts", "broadcasts", "tvBroadcast", "tv"}
	// Fields naming a network inside a broadcast object.
	nameFields = []string{"network", "name", "callSign", "callsign", "displayName", "shortName"}
	// Identifier fields compared against the wanted game id in a tv schedule.
	tvIDFields = []string{"gameId", "id", "gamePK"}
	// Broadcast containers on a matched tv schedule node.
	tvListFields = []string{"broadcasts", "tvBroadcasts", "networks", "channels"}
	// Single-valued network fields on a matched tv schedule node.
	tvValueFields = []string{"network", "callSign", "callsign"}
)

type nameSet map[string]struct{}

// add records a broadcast value: a non-blank string, or every name field of an object.
func (s nameSet) add(v any) {
	switch val := v.(type) {
	case string:
		if trimmed := strings.TrimSpace(val); trimmed != "" {
			s[trimmed] = struct{}{}
		}
	case map[string]any:
		for _, key := range nameFields {
			if str, ok := val[key].(string); ok {
				s.add(str)
			}
		}
	}
}

func (s nameSet) addList(v any) {
	list, ok := v.([]any)
	if !ok {
		return
	}
	for _, item := range list {
		s.add(item)
	}
}

// sorted drops placeholder values and returns the names in lexical order.
func (s nameSet) sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		lower := strings.ToLower(name)
		if lower == "null" || lower == "none" {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FromGame collects networks embedded directly on a schedule entry.
func FromGame(game payload.Object) []string {
	set := nameSet{}
	for _, field := range gameListFields {
		set.addList(game[field])
	}

	info := game["broadcast"]
	if !payload.Truthy(info) || isEmptyObject(info) {
		info = game["broadcastInfo"]
	}
	if b, ok := payload.AsObject(info); ok {
		set.addList(b["tvBroadcasts"])
		set.addList(b["broadcasts"])
		set.add(b["network"])
	}
	return set.sorted()
}

// FromTVSchedule walks a tv schedule document and collects networks listed
// on any node whose identifier equals gameID.
func FromTVSchedule(doc payload.Object, gameID string) []string {
	set := nameSet{}
	if gameID == "" {
		return nil
	}
	walk(doc, gameID, set)
	return set.sorted()
}

func walk(node any, gameID string, set nameSet) {
	switch n := node.(type) {
	case map[string]any:
		if matchesGame(n, gameID) {
			for _, field := range tvListFields {
				switch v := n[field].(type) {
				case []any:
					set.addList(v)
				case map[string]any:
					set.add(v)
				}
			}
			for _, field := range tvValueFields {
				set.add(n[field])
			}
		}
		for _, child := range n {
			walk(child, gameID, set)
		}
	case []any:
		for _, child := range n {
			walk(child, gameID, set)
		}
	}
}

func matchesGame(node map[string]any, gameID string) bool {
	for _, field := range tvIDFields {
		v, ok := node[field]
		if ok && v != nil && payload.Text(v) == gameID {
			return true
		}
	}
	return false
}

func isEmptyObject(v any) bool {
	m, ok := v.(map[string]any)
	return ok && len(m) == 0
}

// Package resolve maps entity names mentioned in free text back to known
// entity ids. Models refer to suspects and clues by name, and rarely by the
// exact name we gave them, so matching is fuzzy: two names match when either
// contains the other, case-insensitively.
package resolve

import "strings"

// Candidate is a known entity that free-text mentions can resolve to.
type Candidate struct {
	ID   string
	Name string
}

// Table is a name-to-id lookup built once per analysis call.
type Table struct {
	candidates []Candidate
}

// NewTable builds a lookup table from the candidates, preserving order.
// Candidates with empty names are skipped since they would match everything.
func NewTable(candidates []Candidate) Table {
	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) != "" {
			kept = append(kept, c)
		}
	}
	return Table{candidates: kept}
}

// Match resolves a name to an entity id using bidirectional case-insensitive
// substring matching. The first candidate in insertion order wins.
func (t Table) Match(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	for _, c := range t.candidates {
		known := strings.ToLower(c.Name)
		if strings.Contains(known, needle) || strings.Contains(needle, known) {
			return c.ID, true
		}
	}
	return "", false
}

// Mentions scans a haystack text for occurrences of each candidate's name
// and returns the ids of the mentioned entities in candidate order.
func (t Table) Mentions(text string) []string {
	haystack := strings.ToLower(text)
	var ids []string
	for _, c := range t.candidates {
		if strings.Contains(haystack, strings.ToLower(c.Name)) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// NameOf returns the name of the candidate with the given id, or "" when
// the id is unknown.
func (t Table) NameOf(id string) string {
	for _, c := range t.candidates {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// NameIndex returns the byte offset of the candidate name in the text,
// case-insensitively, or -1 when the name does not occur. Used for carving
// context windows around a mention.
func NameIndex(text, name string) int {
	return strings.Index(strings.ToLower(text), strings.ToLower(name))
}

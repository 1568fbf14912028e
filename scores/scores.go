// Package scores keeps the high-score table: a small sorted list plus a
// cross-platform persistent store behind it.
package scores

import "strings"

// Entry is one high-score row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// List is a descending high-score table capped at a fixed size.
type List struct {
	entries    []Entry
	maxEntries int
	maxNameLen int
}

func NewList(maxEntries, maxNameLen int) *List {
	if maxEntries < 1 {
		maxEntries = 1
	}
	if maxNameLen < 1 {
		maxNameLen = 1
	}
	return &List{
		maxEntries: maxEntries,
		maxNameLen: maxNameLen,
	}
}

// Entries returns the table in descending score order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *List) Len() int {
	return len(l.entries)
}

// Qualifies reports whether a run with this score would make the table.
func (l *List) Qualifies(score int) bool {
	if len(l.entries) < l.maxEntries {
		return true
	}
	return score > l.entries[len(l.entries)-1].Score
}

// Add inserts a run, keeping descending order and the size cap, and returns
// the zero-based rank it landed at, or -1 if it did not qualify. Names are
// trimmed and clamped to the configured length; an empty name becomes "???".
func (l *List) Add(name string, score int) int {
	if !l.Qualifies(score) {
		return -1
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "???"
	}
	if len(name) > l.maxNameLen {
		name = name[:l.maxNameLen]
	}

	rank := len(l.entries)
	for i, e := range l.entries {
		if score > e.Score {
			rank = i
			break
		}
	}

	l.entries = append(l.entries, Entry{})
	copy(l.entries[rank+1:], l.entries[rank:])
	l.entries[rank] = Entry{Name: name, Score: score}

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[:l.maxEntries]
	}
	return rank
}

package scores

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	scoresObject   = "scores"
	scoresProperty = "table"
)

// Store persists the high-score table through gdata's per-platform app
// storage. A nil manager degrades to memory-only: loads return an empty
// table and saves are silently dropped.
type Store struct {
	manager    *gdata.Manager
	maxEntries int
	maxNameLen int
}

func NewStore(manager *gdata.Manager, maxEntries, maxNameLen int) *Store {
	return &Store{
		manager:    manager,
		maxEntries: maxEntries,
		maxNameLen: maxNameLen,
	}
}

// Load reads the saved table. A missing or unreadable save is not fatal; the
// game starts with an empty table instead.
func (s *Store) Load() *List {
	l := NewList(s.maxEntries, s.maxNameLen)
	if s.manager == nil || !s.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return l
	}

	data, err := s.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return l
	}

	var saved []Entry
	if err := json.Unmarshal(data, &saved); err != nil {
		return l
	}
	for _, e := range saved {
		l.Add(e.Name, e.Score)
	}
	return l
}

// Save writes the table. With a nil manager it is a no-op.
func (s *Store) Save(l *List) error {
	if s.manager == nil {
		return nil
	}

	data, err := json.Marshal(l.Entries())
	if err != nil {
		return fmt.Errorf("scores: marshal table: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("scores: save table: %w", err)
	}
	return nil
}

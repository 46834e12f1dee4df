package core

import (
	"github.com/aretw0/introspection"
)

// ManagerState exposes internal state for observability.
type ManagerState struct {
	NoteCount int    `json:"note_count"`
	StoreType string `json:"store_type"`
	Watchable bool   `json:"watchable"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	storeType := "unknown"
	if m.store != nil {
		storeType = "store"
		if comp, ok := m.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}
	_, watchable := m.store.(Watchable)

	return ManagerState{
		NoteCount: len(m.notes),
		StoreType: storeType,
		Watchable: watchable,
	}
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "manager"
}

// Store returns the backing store.
func (m *Manager) Store() Store {
	return m.store
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)

package core

import "context"

// Store defines the contract for persisting the whole note list.
// Implementations own one backing location; Save always rewrites it completely.
type Store interface {
	// Load returns every stored note in file order.
	// A store whose backing file does not exist yet returns an empty list.
	Load(ctx context.Context) ([]Note, error)

	// Save replaces the stored notes with notes.
	Save(ctx context.Context, notes []Note) error
}

// Watchable defines an interface for stores that can report external changes.
type Watchable interface {
	// Watch emits an Event whenever the backing file changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// EventType represents the type of change to the backing file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to the backing file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}

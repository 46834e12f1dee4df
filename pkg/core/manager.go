package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// DateLayout is the day-only rendering used when listing notes and parsing filter dates.
const DateLayout = "2006-01-02"

// Manager owns the ordered note list and keeps its Store in sync.
// Insertion order is display order. Titles are not unique.
type Manager struct {
	mu     sync.RWMutex
	store  Store
	notes  []Note
	logger *slog.Logger
	now    func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger used by the manager.
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithNow overrides the clock used to stamp new notes.
func WithNow(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a Manager backed by store. Call Load before use.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load replaces the in-memory list with the store's contents.
func (m *Manager) Load(ctx context.Context) error {
	notes, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	m.mu.Lock()
	m.notes = notes
	m.mu.Unlock()

	m.logger.Debug("notes loaded", "count", len(notes))
	return nil
}

// Reload re-reads the store, discarding the in-memory list.
func (m *Manager) Reload(ctx context.Context) error {
	return m.Load(ctx)
}

// Save rewrites the store from the full in-memory list.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveLocked(ctx)
}

func (m *Manager) saveLocked(ctx context.Context) error {
	if err := m.store.Save(ctx, m.notes); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	m.logger.Debug("notes saved", "count", len(m.notes))
	return nil
}

// Add appends a new note stamped with the current time and saves.
func (m *Manager) Add(ctx context.Context, title, message string) (Note, error) {
	note := NewNote(title, message, m.now())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.notes = append(m.notes, note)
	if err := m.saveLocked(ctx); err != nil {
		return Note{}, err
	}
	m.logger.Info("note added", "title", title, "id", note.ID)
	return note, nil
}

// Edit replaces the message of the first note titled title and saves.
// It reports whether a note matched; no match leaves the store untouched.
func (m *Manager) Edit(ctx context.Context, title, message string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.notes {
		if m.notes[i].Title != title {
			continue
		}
		m.notes[i].Message = message
		if err := m.saveLocked(ctx); err != nil {
			return true, err
		}
		m.logger.Info("note edited", "title", title, "id", m.notes[i].ID)
		return true, nil
	}
	return false, nil
}

// Delete removes every note titled title and saves.
// It returns the number of removed notes; zero leaves the store untouched.
func (m *Manager) Delete(ctx context.Context, title string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]Note, 0, len(m.notes))
	for _, n := range m.notes {
		if n.Title != title {
			kept = append(kept, n)
		}
	}

	removed := len(m.notes) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	m.notes = kept
	if err := m.saveLocked(ctx); err != nil {
		return removed, err
	}
	m.logger.Info("notes deleted", "title", title, "count", removed)
	return removed, nil
}

// ShowOptions narrows the notes returned by List and printed by Show.
type ShowOptions struct {
	// Date keeps notes created within one whole day of it.
	Date *time.Time
	// Match keeps notes whose title matches this glob pattern.
	Match string
}

// List returns a copy of the notes selected by opts, in insertion order.
func (m *Manager) List(opts ShowOptions) ([]Note, error) {
	if opts.Match != "" && !doublestar.ValidatePattern(opts.Match) {
		return nil, fmt.Errorf("invalid title pattern %q: %w", opts.Match, doublestar.ErrBadPattern)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Note, 0, len(m.notes))
	for _, n := range m.notes {
		if opts.Date != nil && !WithinDay(n.CreatedAt, *opts.Date) {
			continue
		}
		if opts.Match != "" {
			ok, _ := doublestar.Match(opts.Match, n.Title)
			if !ok {
				continue
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// Show writes one "<title> - <date>" line per selected note.
func (m *Manager) Show(w io.Writer, opts ShowOptions) error {
	notes, err := m.List(opts)
	if err != nil {
		return err
	}
	for _, n := range notes {
		if _, err := fmt.Fprintf(w, "%s - %s\n", n.Title, n.CreatedAt.Format(DateLayout)); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of notes held in memory.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.notes)
}

// WithinDay reports whether t lies within one whole day of ref.
// Days are counted on the wall clock of ref's location and floored, so the
// window is [ref-1d, ref+2d) regardless of DST transitions in between.
func WithinDay(t, ref time.Time) bool {
	delta := wallClock(t.In(ref.Location())).Sub(wallClock(ref))
	days := math.Floor(delta.Hours() / 24)
	return math.Abs(days) <= 1
}

// wallClock drops the zone offset, keeping the clock reading.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// ParseDate parses a YYYY-MM-DD filter date as local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the ISO-8601 rendering used for creation timestamps on disk.
const TimeLayout = time.RFC3339Nano

// naive layouts written by tools that stored local time without an offset.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Note is the central entity of the domain.
// ID is an in-memory identity; it is not persisted and is regenerated on every load.
type Note struct {
	ID        string
	Title     string
	Message   string
	CreatedAt time.Time
}

// NewNote creates a note stamped with createdAt.
// A zero createdAt is replaced with the current wall-clock time.
func NewNote(title, message string, createdAt time.Time) Note {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return Note{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		CreatedAt: createdAt,
	}
}

// Record is the storage-facing shape of a note.
type Record struct {
	Title        string `json:"title" yaml:"title"`
	Message      string `json:"message" yaml:"message"`
	CreationTime string `json:"creation_time" yaml:"creation_time"`
}

// ToRecord renders the note as a flat record with an ISO-8601 timestamp.
func (n Note) ToRecord() Record {
	return Record{
		Title:        n.Title,
		Message:      n.Message,
		CreationTime: n.CreatedAt.Format(TimeLayout),
	}
}

// Note materializes a Note from the record.
func (r Record) Note() (Note, error) {
	createdAt, err := ParseTime(r.CreationTime)
	if err != nil {
		return Note{}, fmt.Errorf("%w: note %q: %v", ErrMalformedRecord, r.Title, err)
	}
	return NewNote(r.Title, r.Message, createdAt), nil
}

// ParseTime parses an ISO-8601 timestamp.
// Values without an offset are read in local time.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

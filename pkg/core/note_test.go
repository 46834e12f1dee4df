package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func TestNewNote(t *testing.T) {
	t.Run("Stamps Current Time When Zero", func(t *testing.T) {
		before := time.Now()
		n := core.NewNote("title", "body", time.Time{})
		assert.False(t, n.CreatedAt.Before(before))
		assert.NotEmpty(t, n.ID)
	})

	t.Run("Keeps Explicit Time", func(t *testing.T) {
		at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		n := core.NewNote("title", "body", at)
		assert.True(t, n.CreatedAt.Equal(at))
	})

	t.Run("Unique Identity", func(t *testing.T) {
		a := core.NewNote("same", "", time.Time{})
		b := core.NewNote("same", "", time.Time{})
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestNote_ToRecord(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 30, 15, 500, time.UTC)
	rec := core.NewNote("Shopping", "milk,eggs", at).ToRecord()

	assert.Equal(t, "Shopping", rec.Title)
	assert.Equal(t, "milk,eggs", rec.Message)
	assert.Equal(t, "2024-03-01T10:30:15.0000005Z", rec.CreationTime)

	back, err := rec.Note()
	require.NoError(t, err)
	assert.True(t, back.CreatedAt.Equal(at))
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"RFC3339", "2024-03-01T10:30:15Z", time.Date(2024, 3, 1, 10, 30, 15, 0, time.UTC)},
		{"RFC3339 Offset", "2024-03-01T10:30:15+02:00", time.Date(2024, 3, 1, 8, 30, 15, 0, time.UTC)},
		{"Naive Micro", "2024-03-01T10:30:15.123456", time.Date(2024, 3, 1, 10, 30, 15, 123456000, time.Local)},
		{"Naive Seconds", "2024-03-01T10:30:15", time.Date(2024, 3, 1, 10, 30, 15, 0, time.Local)},
		{"Naive Space", "2024-03-01 10:30:15", time.Date(2024, 3, 1, 10, 30, 15, 0, time.Local)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := core.ParseTime(tc.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}

	t.Run("Rejects Garbage", func(t *testing.T) {
		_, err := core.ParseTime("yesterday")
		assert.Error(t, err)
	})
}

func TestRecord_NoteMalformed(t *testing.T) {
	_, err := core.Record{Title: "x", CreationTime: "nope"}.Note()
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMalformedRecord))
}

package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func fakeNotes(n int) []core.Note {
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)
	notes := make([]core.Note, 0, n)
	for i := 0; i < n; i++ {
		notes = append(notes, core.NewNote(
			gofakeit.Sentence(3),
			gofakeit.Sentence(8),
			base.Add(time.Duration(i)*time.Hour+time.Duration(gofakeit.Number(0, 999))*time.Millisecond),
		))
	}
	return notes
}

func TestSerializers_RoundTrip(t *testing.T) {
	notes := fakeNotes(5)
	// Delimiters, quotes and newlines inside fields must survive.
	notes = append(notes, core.NewNote(`semi;colon "quoted"`, "line one\nline two, with comma", time.Now()))

	for format, s := range DefaultSerializers() {
		t.Run(string(format), func(t *testing.T) {
			data, err := s.Encode(notes)
			require.NoError(t, err)

			parsed, err := s.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			require.Len(t, parsed, len(notes))

			for i := range notes {
				assert.Equal(t, notes[i].Title, parsed[i].Title)
				assert.Equal(t, notes[i].Message, parsed[i].Message)
				assert.True(t,
					notes[i].CreatedAt.Truncate(time.Second).Equal(parsed[i].CreatedAt.Truncate(time.Second)),
					"creation time mismatch at %d: %v vs %v", i, notes[i].CreatedAt, parsed[i].CreatedAt)
			}
		})
	}
}

func TestSerializers_Empty(t *testing.T) {
	for format, s := range DefaultSerializers() {
		t.Run(string(format), func(t *testing.T) {
			data, err := s.Encode(nil)
			require.NoError(t, err)

			parsed, err := s.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Empty(t, parsed)

			parsed, err = s.Decode(strings.NewReader(""))
			require.NoError(t, err)
			assert.Empty(t, parsed)
		})
	}
}

func TestJSONSerializer_Shape(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	data, err := NewJSONSerializer().Encode([]core.Note{core.NewNote("Todo", "call dentist", at)})
	require.NoError(t, err)

	var raw []map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, map[string]string{
		"title":         "Todo",
		"message":       "call dentist",
		"creation_time": "2024-01-02T03:04:05Z",
	}, raw[0])

	data, err = NewJSONSerializer().Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestJSONSerializer_ReadsNaiveTimestamps(t *testing.T) {
	input := `[{"title": "old", "message": "m", "creation_time": "2023-11-05T14:22:01.123456"}]`

	notes, err := NewJSONSerializer().Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.True(t, time.Date(2023, 11, 5, 14, 22, 1, 123456000, time.Local).Equal(notes[0].CreatedAt))
}

func TestCSVSerializer_Layout(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	data, err := NewCSVSerializer().Encode([]core.Note{core.NewNote("Shopping", "milk,eggs", at)})
	require.NoError(t, err)

	assert.Equal(t, "title;message;creation_time\nShopping;milk,eggs;2024-01-02T03:04:05Z\n", string(data))
}

func TestCSVSerializer_ColumnsByName(t *testing.T) {
	input := "creation_time;title;message\r\n2024-01-02T03:04:05;A;x\r\n"

	notes, err := NewCSVSerializer().Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "A", notes[0].Title)
	assert.Equal(t, "x", notes[0].Message)
}

func TestCSVSerializer_Malformed(t *testing.T) {
	t.Run("Missing Column", func(t *testing.T) {
		_, err := NewCSVSerializer().Decode(strings.NewReader("title;message\nA;x\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrMalformedRecord))
	})

	t.Run("Bad Timestamp", func(t *testing.T) {
		_, err := NewCSVSerializer().Decode(strings.NewReader("title;message;creation_time\nA;x;soon\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrMalformedRecord))
	})

	t.Run("Ragged Row", func(t *testing.T) {
		_, err := NewCSVSerializer().Decode(strings.NewReader("title;message;creation_time\nA;x\n"))
		assert.Error(t, err)
	})
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"json": FormatJSON, ".csv": FormatCSV, "YAML": FormatYAML, "yml": FormatYAML,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, core.ErrUnknownFormat)

	assert.Equal(t, "notes.csv", FormatCSV.DefaultFilename())
}

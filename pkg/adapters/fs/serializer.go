package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/jot/pkg/core"
	"gopkg.in/yaml.v3"
)

// Format names a backing file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// CSVSeparator is the field delimiter of the delimited format.
const CSVSeparator = ';'

// csvHeader is the column order written by the delimited format.
var csvHeader = []string{"title", "message", "creation_time"}

// ParseFormat resolves a format name or file extension ("csv", ".yml", ...).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownFormat, s)
}

// DefaultFilename returns the file used when no explicit path is configured.
func (f Format) DefaultFilename() string {
	return "notes." + string(f)
}

// Serializer defines how to read and write a whole note list in a specific format.
type Serializer interface {
	// Decode reads every note from r, in order.
	Decode(r io.Reader) ([]core.Note, error)
	// Encode renders notes as a complete file.
	Encode(notes []core.Note) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers.
func DefaultSerializers() map[Format]Serializer {
	return map[Format]Serializer{
		FormatJSON: NewJSONSerializer(),
		FormatCSV:  NewCSVSerializer(),
		FormatYAML: NewYAMLSerializer(),
	}
}

func toRecords(notes []core.Note) []core.Record {
	records := make([]core.Record, 0, len(notes))
	for _, n := range notes {
		records = append(records, n.ToRecord())
	}
	return records
}

func fromRecords(records []core.Record) ([]core.Note, error) {
	notes := make([]core.Note, 0, len(records))
	for _, rec := range records {
		n, err := rec.Note()
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// --- JSON Serializer ---

// JSONSerializer stores notes as one array of record objects.
type JSONSerializer struct{}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Decode(r io.Reader) ([]core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []core.Note{}, nil
	}

	var records []core.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return fromRecords(records)
}

func (s *JSONSerializer) Encode(notes []core.Note) ([]byte, error) {
	data, err := json.MarshalIndent(toRecords(notes), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Serializer ---

// YAMLSerializer stores notes as a sequence of record mappings.
type YAMLSerializer struct{}

func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Decode(r io.Reader) ([]core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []core.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return fromRecords(records)
}

func (s *YAMLSerializer) Encode(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(toRecords(notes)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Serializer ---

// CSVSerializer stores notes as ';'-delimited rows under a title;message;creation_time header.
type CSVSerializer struct {
	// Comma is the field delimiter. Defaults to CSVSeparator.
	Comma rune
}

func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{Comma: CSVSeparator}
}

func (s *CSVSerializer) Decode(r io.Reader) ([]core.Note, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.Comma

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	// Columns are located by name, like a dict reader.
	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimPrefix(h, "\ufeff")
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range csvHeader {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("%w: csv header missing %q column", core.ErrMalformedRecord, want)
		}
	}

	var records []core.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		records = append(records, core.Record{
			Title:        row[cols["title"]],
			Message:      row[cols["message"]],
			CreationTime: row[cols["creation_time"]],
		})
	}

	return fromRecords(records)
}

func (s *CSVSerializer) Encode(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = s.Comma

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, rec := range toRecords(notes) {
		if err := w.Write([]string{rec.Title, rec.Message, rec.CreationTime}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

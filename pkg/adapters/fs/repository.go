package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// Repository implements core.Store on a single flat file.
type Repository struct {
	Path       string
	serializer Serializer
	config     Config

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
	lastLoad      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path       string      // Backing file. Defaults to Format.DefaultFilename() in the working directory.
	Format     Format      // Defaults to FormatJSON.
	Serializer Serializer  // Overrides the serializer chosen by Format.
	Perm       os.FileMode // Defaults to 0644.
	Logger     *slog.Logger
	// ErrorHandler receives runtime watcher errors, which are otherwise only logged.
	ErrorHandler func(error)
	// Debounce coalesces bursts of filesystem events. Defaults to 50ms.
	Debounce time.Duration
}

// NewRepository creates a new file-backed store.
func NewRepository(config Config) (*Repository, error) {
	if config.Format == "" {
		config.Format = FormatJSON
	}
	if config.Path == "" {
		config.Path = config.Format.DefaultFilename()
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}

	serializer := config.Serializer
	if serializer == nil {
		s, ok := DefaultSerializers()[config.Format]
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownFormat, config.Format)
		}
		serializer = s
	}

	abs, err := filepath.Abs(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", config.Path, err)
	}

	return &Repository{
		Path:       abs,
		serializer: serializer,
		config:     config,
	}, nil
}

// Format returns the encoding of the backing file.
func (r *Repository) Format() Format {
	return r.config.Format
}

// Load reads every note from the backing file.
// A missing file is an empty store, not an error.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			r.config.Logger.Debug("backing file absent, starting empty", "path", r.Path)
			r.recordLoad()
			return []core.Note{}, nil
		}
		return nil, err
	}
	defer f.Close()

	notes, err := r.serializer.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.Path, err)
	}

	r.recordLoad()
	return notes, nil
}

func (r *Repository) recordLoad() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastLoad = &now
}

// Save rewrites the backing file with notes.
//
// Workflow:
//  1. Encode the full list in the configured format.
//  2. Ensure the parent directory exists.
//  3. Write atomically (temp file + rename).
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.serializer.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	if err := writeFileAtomic(r.Path, data, r.config.Perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.mu.Lock()
	now := time.Now()
	r.lastSave = &now
	r.mu.Unlock()

	r.config.Logger.Debug("backing file rewritten", "path", r.Path, "notes", len(notes), "bytes", len(data))
	return nil
}

var _ core.Store = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)

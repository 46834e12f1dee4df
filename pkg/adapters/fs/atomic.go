package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = ".jot-tmp-"
)

// writeFileAtomic writes data next to filename and renames it into place,
// so readers observe either the previous or the new content, never a truncated file.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmpFile.Name()
	committed := false
	defer func() {
		if !committed {
			err = multierr.Append(err, ignoreNotExist(os.Remove(tmpName)))
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("failed to write to temp file: %w", err), tmpFile.Close())
	}

	if err := tmpFile.Sync(); err != nil {
		return multierr.Append(fmt.Errorf("failed to sync temp file: %w", err), tmpFile.Close())
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	committed = true

	return nil
}

func ignoreNotExist(err error) error {
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

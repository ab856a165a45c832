package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile atomically writes a converted document to path. The target is
// only replaced once the whole content is on disk; on any error the previous
// file, if one existed, is left untouched and no partial file is created.
func WriteFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("creating pending file for %s: %w", path, err)
	}
	// Cleanup is a no-op once the file has been committed.
	defer pending.Cleanup() //nolint:errcheck

	if _, err := pending.Write(content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"hotel_reservations/internal/adapters/observability"
	"hotel_reservations/internal/domain"
)

const driver = "json"

// Store keeps one <collection>.json file per collection under dir.
type Store struct{ dir string }

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Path(c domain.Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

// Load returns nil for a missing or empty file.
func (s *Store) Load(ctx context.Context, c domain.Collection) (b []byte, err error) {
	defer func(start time.Time) { observability.ObserveStore(driver, "load", start, err) }(time.Now())
	b, err = os.ReadFile(s.Path(c))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	return b, nil
}

// Save writes to a synced temp file in the same directory and renames it
// over the target, so readers never see a partial collection. The target
// keeps its permissions; new files get 0644.
func (s *Store) Save(ctx context.Context, c domain.Collection, data []byte) (err error) {
	defer func(start time.Time) { observability.ObserveStore(driver, "save", start, err) }(time.Now())
	tmp, err := os.CreateTemp(s.dir, "."+string(c)+"-*.json")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	mode := fs.FileMode(0o644)
	if fi, serr := os.Stat(s.Path(c)); serr == nil {
		mode = fi.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path(c))
}

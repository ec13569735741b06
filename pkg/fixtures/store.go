package fixtures

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/masternet-io/masternet-engine/pkg/apperrors"
)

// Fixture file names consumed by the seed pipeline.
const (
	FilePrecios        = "precios.json"
	FileInstructores   = "instructores.json"
	FileCursos         = "cursos.json"
	FileCalificaciones = "calificaciones.json"
)

// Store loads raw fixture content by file name from an ordered list of
// candidate directories. The first directory containing the file wins.
type Store struct {
	dirs []string
}

// NewStore creates a fixture store with the default candidate directories:
// the source-tree seeddata directory, a working-directory seeddata directory,
// and a seeddata directory next to the executable.
func NewStore() *Store {
	dirs := []string{
		filepath.Join("pkg", "fixtures", "seeddata"),
		"seeddata",
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "seeddata"))
	}
	return &Store{dirs: dirs}
}

// NewStoreAt creates a fixture store reading only from the given directories.
func NewStoreAt(dirs ...string) *Store {
	return &Store{dirs: dirs}
}

// Load returns the raw content of the named fixture file, or
// apperrors.ErrFixtureMissing when no candidate location has it. A missing
// fixture is not a failure; callers treat it as "nothing to seed".
func (s *Store) Load(name string) ([]byte, error) {
	for _, dir := range s.dirs {
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
		}
		return content, nil
	}
	return nil, fmt.Errorf("%s: %w", name, apperrors.ErrFixtureMissing)
}

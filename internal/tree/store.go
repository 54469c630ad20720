package tree

import (
	"github.com/google/uuid"
	"github.com/zhubert/dirshell/internal/errors"
	"github.com/zhubert/dirshell/internal/logger"
)

// RootPosition is the store position of the root directory.
const RootPosition = 0

// Store is the flat, insertion-ordered collection of all directories
// of one session. The zero value is not usable; call NewStore.
type Store struct {
	dirs []Directory
}

// NewStore returns a store holding only the root directory.
func NewStore() *Store {
	s := &Store{}
	s.ResetToRootOnly()
	return s
}

// Exists scans the store in insertion order and returns the position of
// the first directory named name whose ParentLabel is parentLabel.
// Matching is exact; no case folding or trimming is applied.
func (s *Store) Exists(name, parentLabel string) (int, bool) {
	for i, d := range s.dirs {
		if d.Name == name && d.ParentLabel == parentLabel {
			return i, true
		}
	}
	return -1, false
}

// Insert appends d with a fresh ID and returns the stored copy.
// Uniqueness is the caller's concern.
func (s *Store) Insert(d Directory) Directory {
	d = withID(d)
	s.dirs = append(s.dirs, d)
	logger.Debug("tree: inserted %q under %q at %d (id=%s)", d.Name, d.ParentLabel, len(s.dirs)-1, d.ID)
	return d
}

// RemoveAt deletes the directory at pos, shifting later entries down.
// The root position is never removable.
func (s *Store) RemoveAt(pos int) (Directory, error) {
	if pos == RootPosition {
		return Directory{}, errors.Forbidden(errors.Op("tree.RemoveAt"), "root directory cannot be removed")
	}
	if pos < 0 || pos >= len(s.dirs) {
		return Directory{}, errors.PositionOutOfRange(pos, len(s.dirs))
	}
	d := s.dirs[pos]
	s.dirs = append(s.dirs[:pos], s.dirs[pos+1:]...)
	logger.Debug("tree: removed %q under %q from %d (id=%s)", d.Name, d.ParentLabel, pos, d.ID)
	return d, nil
}

// ResetToRootOnly drops every directory and inserts a fresh root.
func (s *Store) ResetToRootOnly() {
	s.dirs = []Directory{withID(newRoot())}
}

// Len returns the number of directories, root included.
func (s *Store) Len() int {
	return len(s.dirs)
}

// At returns the directory at pos.
func (s *Store) At(pos int) (Directory, bool) {
	if pos < 0 || pos >= len(s.dirs) {
		return Directory{}, false
	}
	return s.dirs[pos], true
}

// Children returns every directory whose ParentLabel is label, in
// insertion order.
func (s *Store) Children(label string) []Directory {
	var out []Directory
	for _, d := range s.dirs {
		if d.ParentLabel == label {
			out = append(out, d)
		}
	}
	return out
}

// Directories returns a copy of the store contents.
func (s *Store) Directories() []Directory {
	out := make([]Directory, len(s.dirs))
	copy(out, s.dirs)
	return out
}

func withID(d Directory) Directory {
	d.ID = uuid.New().String()
	return d
}

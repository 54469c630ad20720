package tree

import "strings"

// Cursor is the current working directory: a display path and the label
// used to match children.
type Cursor struct {
	Path  string
	Label string
}

// RootCursor returns the cursor of a fresh session.
func RootCursor() Cursor {
	return Cursor{Path: RootPath, Label: RootName}
}

// IsRoot reports whether c points at the root.
func (c Cursor) IsRoot() bool {
	return c.Label == RootName && c.Path == RootPath
}

// Child returns the cursor one level below c.
func (c Cursor) Child(name string) Cursor {
	if c.Path == RootPath {
		return Cursor{Path: c.Path + name, Label: name}
	}
	return Cursor{Path: c.Path + "/" + name, Label: name}
}

// SplitPath splits a raw path argument on "/".
func SplitPath(path string) []string {
	return strings.Split(path, "/")
}

// Resolution is the outcome of a successful walk.
type Resolution struct {
	Cursor Cursor
	// Position is the store position of the last matched segment, or -1
	// when there were no segments to walk.
	Position int
}

// Resolve walks segments from the starting cursor. It returns false as
// soon as a segment does not exist under the label reached so far.
func Resolve(s *Store, segments []string, from Cursor) (Resolution, bool) {
	res := Resolution{Cursor: from, Position: -1}

	if len(segments) > 0 && segments[0] == "" {
		segments = segments[1:]
	}

	for _, seg := range segments {
		pos, ok := s.Exists(seg, res.Cursor.Label)
		if !ok {
			return Resolution{Cursor: from, Position: -1}, false
		}
		res.Cursor = res.Cursor.Child(seg)
		res.Position = pos
	}
	return res, true
}

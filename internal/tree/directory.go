package tree

// RootName is the name of the directory at position 0.
const RootName = "root"

// RootPath is the path of the root cursor. It is also the root
// directory's ParentLabel.
const RootPath = "/"

// Directory is a single record in the Store.
type Directory struct {
	// ID is assigned by the Store and only appears in log lines.
	// Lookups always go by Name and ParentLabel.
	ID          string
	Name        string
	ParentLabel string
}

// NewDirectory returns a directory named name under the given parent label.
func NewDirectory(name, parentLabel string) Directory {
	return Directory{
		Name:        name,
		ParentLabel: parentLabel,
	}
}

func newRoot() Directory {
	return NewDirectory(RootName, RootPath)
}

// IsRoot reports whether d is the root record.
func (d Directory) IsRoot() bool {
	return d.Name == RootName && d.ParentLabel == RootPath
}

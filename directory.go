package memfs

// Directory is a named container owning one Entries table. Children
// may be any mix of files and directories, recursively forming a
// tree. A directory holds no parent reference; keeping the structure
// acyclic is the caller's obligation.
type Directory struct {
	name    string
	entries Entries
}

func NewDirectory(name string) *Directory {
	return &Directory{
		name:    name,
		entries: NewEntries(),
	}
}

func (d *Directory) Name() string {
	return d.name
}

// Entries returns the directory's child table.
func (d *Directory) Entries() Entries {
	return d.entries
}

// Insert adds or replaces the child mapped to name.
func (d *Directory) Insert(name string, entry Entry) {
	d.entries.Insert(name, entry)
}

// Find returns the child mapped to name.
func (d *Directory) Find(name string) (Entry, error) {
	return d.entries.Find(name)
}

// AddFile creates an empty file and inserts it under name.
func (d *Directory) AddFile(name string) *File {
	f := NewFile(name)
	d.entries.Insert(name, f.AsEntry())
	return f
}

// AddDirectory creates an empty subdirectory and inserts it under name.
func (d *Directory) AddDirectory(name string) *Directory {
	sub := NewDirectory(name)
	d.entries.Insert(name, sub.AsEntry())
	return sub
}

// AsEntry wraps a non-owning directory reference.
func (d *Directory) AsEntry() Entry {
	return Entry{dir: d}
}

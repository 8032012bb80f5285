package memfs

import "fmt"

// Entries maps child names to entries within a directory. Iteration
// order is the map's own order and carries no meaning.
type Entries map[string]Entry

func NewEntries() Entries {
	return make(Entries)
}

// Insert maps name to entry, silently replacing any prior mapping.
func (e Entries) Insert(name string, entry Entry) {
	e[name] = entry
}

// Find returns the entry mapped to name.
func (e Entries) Find(name string) (Entry, error) {
	entry, ok := e[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	return entry, nil
}

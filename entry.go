package memfs

// Entry is a tagged reference to either a File or a Directory. An
// Entry does not own its referent; the File or Directory must outlive
// every Entry that points at it. The zero Entry references nothing.
type Entry struct {
	file *File
	dir  *Directory
}

func (e Entry) IsFile() bool {
	return e.file != nil
}

func (e Entry) IsDir() bool {
	return e.dir != nil
}

// Name returns the name of the referenced file or directory, or the
// empty string for the zero Entry.
func (e Entry) Name() string {
	switch {
	case e.file != nil:
		return e.file.Name()
	case e.dir != nil:
		return e.dir.Name()
	}
	return ""
}

// File narrows the entry to its file referent.
func (e Entry) File() (*File, error) {
	if e.file == nil {
		return nil, ErrEntryNotAFile
	}
	return e.file, nil
}

// Dir narrows the entry to its directory referent.
func (e Entry) Dir() (*Directory, error) {
	if e.dir == nil {
		return nil, ErrEntryNotADirectory
	}
	return e.dir, nil
}

package memfs

// A FileSystem provides access to a tree hierarchy of directories
// and files rooted at a single directory.
type FileSystem struct {
	root *Directory
}

// New returns a filesystem with an empty root directory.
func New() *FileSystem {
	return &FileSystem{root: NewDirectory("/")}
}

// RootDir returns the single root directory.
func (f *FileSystem) RootDir() *Directory {
	return f.root
}

// Info reports file and directory counts and total content bytes for
// the whole tree.
func (f *FileSystem) Info() map[string]any {
	files, dirs, bytes := tally(f.root)
	return map[string]any{
		"files":       files,
		"directories": dirs,
		"bytes":       bytes,
	}
}

func tally(d *Directory) (files, dirs int, bytes uint64) {
	dirs = 1
	for _, entry := range d.Entries() {
		if entry.IsDir() {
			sub, err := entry.Dir()
			if err != nil {
				continue
			}
			subFiles, subDirs, subBytes := tally(sub)
			files += subFiles
			dirs += subDirs
			bytes += subBytes
		} else if file, err := entry.File(); err == nil {
			files++
			bytes += file.Size()
		}
	}
	return files, dirs, bytes
}

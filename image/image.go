package image

import (
	"os"
	"path"

	"github.com/rstms/memfs"
	"github.com/spf13/afero"
)

// FileRecord describes one node found while scanning an image tree.
type FileRecord struct {
	Name        string
	Dir         bool
	Size        uint64
	Permissions memfs.Permission
}

// Image is a decoded or freshly written disk image bound to its
// backing filename.
type Image struct {
	Filename string
	root     memfs.Entry
}

// CreateImage encodes the tree rooted at root into a new file on
// fsys, truncating any existing file of the same name.
func CreateImage(fsys afero.Fs, filename string, root memfs.Entry) (*Image, error) {
	f, err := fsys.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return nil, Fatal(err)
	}
	defer f.Close()
	if err := Encode(f, root); err != nil {
		return nil, Fatal(err)
	}
	return &Image{Filename: filename, root: root}, nil
}

// OpenImage reads and decodes an image file from fsys.
func OpenImage(fsys afero.Fs, filename string) (*Image, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, Fatal(err)
	}
	defer f.Close()
	root, err := Decode(f)
	if err != nil {
		return nil, Fatal(err)
	}
	return &Image{Filename: filename, root: root}, nil
}

// Root returns the image's root entry.
func (i *Image) Root() memfs.Entry {
	return i.root
}

// ScanFiles walks the tree and returns a record for every node below
// the root, with slash-joined paths. Record order follows the entry
// tables' iteration order.
func (i *Image) ScanFiles() ([]FileRecord, error) {
	if i.root.IsDir() {
		dir, err := i.root.Dir()
		if err != nil {
			return nil, Fatal(err)
		}
		return walk("/", dir)
	}
	file, err := i.root.File()
	if err != nil {
		return nil, Fatal(err)
	}
	record := FileRecord{
		Name:        path.Join("/", file.Name()),
		Size:        file.Size(),
		Permissions: file.Permissions(),
	}
	return []FileRecord{record}, nil
}

func walk(prefix string, dir *memfs.Directory) ([]FileRecord, error) {
	records := []FileRecord{}
	for name, entry := range dir.Entries() {
		if entry.IsDir() {
			sub, err := entry.Dir()
			if err != nil {
				return []FileRecord{}, Fatal(err)
			}
			records = append(records, FileRecord{
				Name: path.Join(prefix, name),
				Dir:  true,
			})
			subRecords, err := walk(path.Join(prefix, name), sub)
			if err != nil {
				return []FileRecord{}, Fatal(err)
			}
			records = append(records, subRecords...)
		} else {
			file, err := entry.File()
			if err != nil {
				return []FileRecord{}, Fatal(err)
			}
			records = append(records, FileRecord{
				Name:        path.Join(prefix, name),
				Size:        file.Size(),
				Permissions: file.Permissions(),
			})
		}
	}
	return records, nil
}

package memfs

// File is a growable in-memory byte buffer with a permission-gated
// sequential read cursor and an append-only write path. The backing
// buffer is grown by exactly the number of bytes appended; capacity
// always equals the cumulative bytes written, with no slack.
type File struct {
	name        string
	contents    []byte
	size        uint64
	capacity    uint64
	streamPos   uint64
	permissions Permission
}

// NewFile returns an empty file in the temporary-created permission
// state. No buffer is allocated until the first append.
func NewFile(name string) *File {
	return &File{
		name:        name,
		permissions: PermTemporaryCreated,
	}
}

func (f *File) Name() string {
	return f.name
}

// Size returns the number of bytes appended so far.
func (f *File) Size() uint64 {
	return f.size
}

// Capacity returns the number of bytes allocated in the backing
// buffer. It is always equal to Size.
func (f *File) Capacity() uint64 {
	return f.capacity
}

func (f *File) Permissions() Permission {
	return f.permissions
}

// Contents returns the backing bytes of the file. The slice aliases
// the file's buffer and is invalidated by the next Append or Release.
func (f *File) Contents() []byte {
	return f.contents[:f.size]
}

// Append grows the file by len(data) bytes and copies data onto the
// end. A file accepts appends while in the temporary-created state or
// whenever its write bit is set. Appending nothing succeeds without
// touching the buffer.
func (f *File) Append(data []byte) error {
	if f.permissions != PermTemporaryCreated && !f.permissions.Has(PermWrite) {
		return ErrInsufficientPermissionsForAppend
	}
	if len(data) == 0 {
		return nil
	}

	need := f.size + uint64(len(data))
	grown := make([]byte, need)
	copy(grown, f.contents[:f.size])

	// assertion on the growth invariant: the allocated buffer must
	// hold every byte about to be copied, checked before any copy
	if need > uint64(len(grown)) {
		return ErrContentBiggerThanContentCap
	}
	f.contents = grown
	f.capacity = need
	f.size += uint64(copy(f.contents[f.size:], data))
	return nil
}

// Write implements io.Writer over Append. Append is all-or-nothing,
// so the count is always len(data) on success.
func (f *File) Write(data []byte) (int, error) {
	err := f.Append(data)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Read copies exactly len(buf) bytes from the current stream position
// into buf and advances the position. The request is bounds-checked
// before any copy, so a failed read leaves buf untouched. The read
// cursor is independent of the append path; neither resets the other.
func (f *File) Read(buf []byte) (int, error) {
	if !f.permissions.Has(PermRead) {
		return 0, ErrInsufficientPermissionsForRead
	}
	if f.streamPos+uint64(len(buf)) > f.capacity {
		return 0, ErrEndOfFile
	}
	n := copy(buf, f.contents[f.streamPos:])
	f.streamPos += uint64(len(buf))
	return n, nil
}

// SetPermission replaces the permission word. The bits are not
// validated.
func (f *File) SetPermission(p Permission) {
	f.permissions = p
}

// HasPermission reports whether the capability bit is set in the
// file's permission word.
func (f *File) HasPermission(capability Permission) bool {
	return f.permissions.Has(capability)
}

// AsEntry wraps a non-owning file reference. The file must outlive
// every entry that references it.
func (f *File) AsEntry() Entry {
	return Entry{file: f}
}

// Release drops the backing buffer and zeroes the counters. The file
// must not be used afterward; nothing guards against it.
func (f *File) Release() {
	f.contents = nil
	f.size = 0
	f.capacity = 0
	f.streamPos = 0
}

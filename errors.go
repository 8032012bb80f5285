package memfs

import "errors"

var (
	// ErrInsufficientPermissionsForAppend indicates an append to a file
	// whose permission word carries neither the write bit nor the
	// temporary-created state.
	ErrInsufficientPermissionsForAppend = errors.New("insufficient permissions for append")

	// ErrInsufficientPermissionsForRead indicates a read from a file
	// whose permission word lacks the read bit.
	ErrInsufficientPermissionsForRead = errors.New("insufficient permissions for read")

	// ErrEntryNotFound indicates a lookup of an absent name.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryNotAFile indicates a file narrowing of a directory entry.
	ErrEntryNotAFile = errors.New("entry is not a file")

	// ErrEntryNotADirectory indicates a directory narrowing of a file entry.
	ErrEntryNotADirectory = errors.New("entry is not a directory")

	// ErrEndOfFile indicates a read request extending past the bytes
	// available in the file. No partial copy is performed.
	ErrEndOfFile = errors.New("read past end of file")

	// ErrContentBiggerThanContentCap indicates a violation of the
	// buffer accounting invariant. It cannot occur unless the growth
	// logic is broken.
	ErrContentBiggerThanContentCap = errors.New("content exceeds buffer capacity")
)

package memfs

// Permission is a bitset of capabilities attached to a File.
type Permission uint64

const (
	PermRead  Permission = 0x01
	PermWrite Permission = 0x02
	// PermTemporaryCreated marks a file that was just created and has
	// not had an explicit permission set yet. Its value is bit-equal to
	// PermRead|PermWrite, so a freshly created file passes both the
	// read and write capability checks. This aliasing is intentional
	// and part of the disk image format.
	PermTemporaryCreated Permission = 0x03
	PermNone             Permission = 0x04
)

// Has reports whether the capability bit is set in the permission word.
func (p Permission) Has(capability Permission) bool {
	return p&capability != 0
}

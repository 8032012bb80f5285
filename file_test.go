package memfs

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFileState(t *testing.T) {
	f := NewFile("notes.txt")
	require.Equal(t, "notes.txt", f.Name())
	require.Equal(t, PermTemporaryCreated, f.Permissions())
	require.Equal(t, uint64(0), f.Size())
	require.Equal(t, uint64(0), f.Capacity())
}

func TestAppendOnFreshFile(t *testing.T) {
	f := NewFile("fresh")
	err := f.Append([]byte("howdy"))
	require.Nil(t, err)
	require.Equal(t, uint64(5), f.Size())
}

func TestSequentialAppends(t *testing.T) {
	f := NewFile("seq")
	err := f.Append([]byte("hello "))
	require.Nil(t, err)
	err = f.Append([]byte("world"))
	require.Nil(t, err)
	require.Equal(t, uint64(11), f.Size())
	require.Equal(t, uint64(11), f.Capacity())
	require.Equal(t, []byte("hello world"), f.Contents())
}

func TestEmptyAppend(t *testing.T) {
	f := NewFile("empty")
	for i := 0; i < 3; i++ {
		err := f.Append([]byte{})
		require.Nil(t, err)
	}
	err := f.Append(nil)
	require.Nil(t, err)
	require.Equal(t, uint64(0), f.Size())
	require.Equal(t, uint64(0), f.Capacity())
}

func TestAppendPermissionDenied(t *testing.T) {
	f := NewFile("readonly")
	err := f.Append([]byte("seed"))
	require.Nil(t, err)

	f.SetPermission(PermRead)
	err = f.Append([]byte("more"))
	require.ErrorIs(t, err, ErrInsufficientPermissionsForAppend)
	require.Equal(t, uint64(4), f.Size())

	f.SetPermission(PermWrite)
	err = f.Append([]byte("more"))
	require.Nil(t, err)
	require.Equal(t, uint64(8), f.Size())
}

func TestReadPermissionDenied(t *testing.T) {
	f := NewFile("writeonly")
	err := f.Append([]byte("secret"))
	require.Nil(t, err)
	f.SetPermission(PermWrite)

	buf := make([]byte, 6)
	n, err := f.Read(buf)
	require.ErrorIs(t, err, ErrInsufficientPermissionsForRead)
	require.Equal(t, 0, n)
}

func TestReadToCapacity(t *testing.T) {
	f := NewFile("bounded")
	err := f.Append([]byte("abcdef"))
	require.Nil(t, err)

	buf := make([]byte, 4)
	n, err := f.Read(buf)
	require.Nil(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("abcd"), buf)

	// exactly the remaining bytes
	buf = make([]byte, 2)
	n, err = f.Read(buf)
	require.Nil(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("ef"), buf)

	// one byte past the end fails without a partial copy
	buf = []byte{0xEE}
	n, err = f.Read(buf)
	require.ErrorIs(t, err, ErrEndOfFile)
	require.Equal(t, 0, n)
	require.Equal(t, []byte{0xEE}, buf)
}

func TestReadCursorSurvivesAppend(t *testing.T) {
	f := NewFile("cursor")
	err := f.Append([]byte("one"))
	require.Nil(t, err)

	buf := make([]byte, 3)
	_, err = f.Read(buf)
	require.Nil(t, err)
	require.Equal(t, []byte("one"), buf)

	// appending does not rewind the read cursor
	err = f.Append([]byte("two"))
	require.Nil(t, err)
	_, err = f.Read(buf)
	require.Nil(t, err)
	require.Equal(t, []byte("two"), buf)
}

func TestWriteAdapter(t *testing.T) {
	f := NewFile("sink")
	var w io.Writer = f
	n, err := w.Write([]byte("copied"))
	require.Nil(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte("copied"), f.Contents())

	f.SetPermission(PermNone)
	n, err = w.Write([]byte("denied"))
	require.ErrorIs(t, err, ErrInsufficientPermissionsForAppend)
	require.Equal(t, 0, n)
}

func TestHasPermission(t *testing.T) {
	f := NewFile("perms")
	require.True(t, f.HasPermission(PermRead))
	require.True(t, f.HasPermission(PermWrite))

	f.SetPermission(PermRead)
	require.True(t, f.HasPermission(PermRead))
	require.False(t, f.HasPermission(PermWrite))
}

func TestRelease(t *testing.T) {
	f := NewFile("gone")
	err := f.Append([]byte("payload"))
	require.Nil(t, err)

	f.Release()
	require.Equal(t, uint64(0), f.Size())
	require.Equal(t, uint64(0), f.Capacity())
}

// Package image serializes a memfs entry tree to a flat byte stream
// and reconstructs it. The stream is a sequence of tagged records:
//
//	0xFF  file           nameLen:u64 name permissions:u64 size:u64 content
//	0xAF  directory open nameLen:u64 name, followed by child records
//	0xAB  directory close
//
// All integer fields are fixed-width little-endian. Markers occupy a
// full 8 bytes. There is no header, magic, or version field; the root
// record's marker is the first byte of the stream.
package image

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/rstms/memfs"
)

const (
	MarkerFile     uint64 = 0xFF
	MarkerDirOpen  uint64 = 0xAF
	MarkerDirClose uint64 = 0xAB
)

// ErrMalformedStream covers every decode failure: unknown marker,
// truncated record, or a directory left unterminated at end of
// stream. The decoder never returns a partial tree.
var ErrMalformedStream = errors.New("malformed image stream")

// Encode writes the tree rooted at entry to w in a single forward
// pass, depth first. Children of a directory are emitted in the entry
// table's own iteration order, so the byte stream is not canonical;
// two encodings of the same tree may differ in child order.
func Encode(w io.Writer, entry memfs.Entry) error {
	switch {
	case entry.IsDir():
		dir, err := entry.Dir()
		if err != nil {
			return err
		}
		return encodeDirectory(w, dir)
	case entry.IsFile():
		file, err := entry.File()
		if err != nil {
			return err
		}
		return encodeFile(w, file)
	}
	return Fatalf("cannot encode empty entry")
}

func encodeFile(w io.Writer, f *memfs.File) error {
	if err := writeUint64(w, MarkerFile); err != nil {
		return err
	}
	if err := writeName(w, f.Name()); err != nil {
		return err
	}
	if err := writeUint64(w, uint64(f.Permissions())); err != nil {
		return err
	}
	if err := writeUint64(w, f.Size()); err != nil {
		return err
	}
	_, err := w.Write(f.Contents())
	return err
}

func encodeDirectory(w io.Writer, d *memfs.Directory) error {
	if err := writeUint64(w, MarkerDirOpen); err != nil {
		return err
	}
	if err := writeName(w, d.Name()); err != nil {
		return err
	}
	for _, child := range d.Entries() {
		if err := Encode(w, child); err != nil {
			return err
		}
	}
	return writeUint64(w, MarkerDirClose)
}

func writeUint64(w io.Writer, v uint64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func writeName(w io.Writer, name string) error {
	if err := writeUint64(w, uint64(len(name))); err != nil {
		return err
	}
	_, err := io.WriteString(w, name)
	return err
}

// Decode reads one record tree from r and materializes it. Directory
// nesting is tracked by recursion: each open record pushes a frame
// that consumes child records until it sees the close marker, and end
// of stream before that marker is a truncation error. File contents
// are copied out of the stream; the returned tree does not alias r's
// buffers.
func Decode(r io.Reader) (memfs.Entry, error) {
	marker, err := readUint64(r)
	if err != nil {
		return memfs.Entry{}, malformed("root marker", err)
	}
	return decodeRecord(r, marker)
}

func decodeRecord(r io.Reader, marker uint64) (memfs.Entry, error) {
	switch marker {
	case MarkerFile:
		f, err := decodeFile(r)
		if err != nil {
			return memfs.Entry{}, err
		}
		return f.AsEntry(), nil
	case MarkerDirOpen:
		d, err := decodeDirectory(r)
		if err != nil {
			return memfs.Entry{}, err
		}
		return d.AsEntry(), nil
	}
	return memfs.Entry{}, fmt.Errorf("%w: unknown marker 0x%x", ErrMalformedStream, marker)
}

func decodeFile(r io.Reader) (*memfs.File, error) {
	name, err := readName(r)
	if err != nil {
		return nil, err
	}
	permissions, err := readUint64(r)
	if err != nil {
		return nil, malformed("file permissions", err)
	}
	size, err := readUint64(r)
	if err != nil {
		return nil, malformed("file size", err)
	}
	content, err := readDeclared(r, size)
	if err != nil {
		return nil, malformed("file content", err)
	}

	// Build through the public API so the buffer accounting holds for
	// decoded files too: a fresh file accepts the append, then the
	// stored permission word is restored verbatim.
	f := memfs.NewFile(name)
	if err := f.Append(content); err != nil {
		return nil, err
	}
	f.SetPermission(memfs.Permission(permissions))
	return f, nil
}

func decodeDirectory(r io.Reader) (*memfs.Directory, error) {
	name, err := readName(r)
	if err != nil {
		return nil, err
	}
	d := memfs.NewDirectory(name)
	for {
		marker, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("%w: directory %q not terminated", ErrMalformedStream, name)
		}
		if marker == MarkerDirClose {
			return d, nil
		}
		child, err := decodeRecord(r, marker)
		if err != nil {
			return nil, err
		}
		// duplicate names replace earlier children, matching the
		// table's upsert
		d.Insert(child.Name(), child)
	}
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func readName(r io.Reader) (string, error) {
	n, err := readUint64(r)
	if err != nil {
		return "", malformed("name length", err)
	}
	buf, err := readDeclared(r, n)
	if err != nil {
		return "", malformed("name", err)
	}
	return string(buf), nil
}

// readChunk caps how much buffer is allocated ahead of the bytes
// actually read for a declared length field.
const readChunk = 1 << 20

// readDeclared reads exactly n bytes. Length fields come off the wire
// unvalidated, so the buffer grows chunk by chunk as bytes arrive; a
// declared length larger than the stream fails on the first short
// read instead of allocating for the full claim up front.
func readDeclared(r io.Reader, n uint64) ([]byte, error) {
	buf := make([]byte, 0, min(n, readChunk))
	for uint64(len(buf)) < n {
		chunk := n - uint64(len(buf))
		if chunk > readChunk {
			chunk = readChunk
		}
		start := len(buf)
		buf = append(buf, make([]byte, chunk)...)
		if _, err := io.ReadFull(r, buf[start:]); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func malformed(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedStream, field, err)
}

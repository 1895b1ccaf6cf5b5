// Package input opens matrix data files as read-only memory maps.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ErrNotRegular is returned when the path does not name a regular file.
var ErrNotRegular = errors.New("input: not a regular file")

// File is a read-only view of an input file. The bytes stay valid until Close.
type File struct {
	data mmap.MMap
	file *os.File
	r    *bytes.Reader
}

var _ io.ReadCloser = (*File)(nil)

// Open maps path read-only. Empty files are not mapped (mmap rejects zero
// length) and read as an empty stream.
func Open(path string) (f *File, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() {
		if err != nil {
			_ = file.Close()
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	f = &File{file: file}
	if info.Size() == 0 {
		f.r = bytes.NewReader(nil)
		return f, nil
	}

	if f.data, err = mmap.Map(file, mmap.RDONLY, 0); err != nil {
		return nil, fmt.Errorf("map input: %w", err)
	}
	f.r = bytes.NewReader(f.data)

	return f, nil
}

// Bytes returns the mapped contents. The slice must not be used after Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Read reads from the mapped contents.
func (f *File) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

// Close unmaps the contents and closes the file.
func (f *File) Close() (err error) {
	if f.data != nil {
		err = f.data.Unmap()
		f.data = nil
	}
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}

	return
}

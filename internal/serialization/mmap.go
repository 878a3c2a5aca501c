package serialization

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// MappedStream provides memory-mapped, seekable access to a stream file.
// The file is opened read-only and mapped as a whole; pages are loaded
// on demand through the OS page cache.
//
// Important: Always call Close() when done to unmap the file (use defer).
type MappedStream struct {
	*bytes.Reader

	file   *os.File
	data   mmap.MMap // nil for empty files
	path   string
	closed bool
}

// OpenStream memory-maps the stream file at path.
func OpenStream(path string) (*MappedStream, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for corpus loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	s := &MappedStream{file: file, path: path}

	// Zero-length regions cannot be mapped.
	if stat.Size() == 0 {
		s.Reader = bytes.NewReader(nil)
		return s, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}
	s.data = data
	s.Reader = bytes.NewReader(data)

	return s, nil
}

// Path returns the path the stream was opened from.
func (s *MappedStream) Path() string {
	return s.path
}

// Close unmaps and closes the file.
func (s *MappedStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.data != nil {
		err = s.data.Unmap()
		s.data = nil
	}
	s.Reader = bytes.NewReader(nil)

	if closeErr := s.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	return err
}

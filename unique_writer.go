package twmerge

import (
	"bytes"
	"io"

	"github.com/projectdiscovery/twmerge/internal/dedupe"
)

// UniqueWriter wraps an io.Writer and drops lines already written.
// Lines are written in first-seen order; empty lines are skipped.
// It is not safe for concurrent use.
type UniqueWriter struct {
	writer  io.Writer
	backend dedupe.Backend
	buffer  []byte
	count   int
	closed  bool
}

// NewUniqueWriter creates a UniqueWriter. byteLen estimates the amount of
// data that will be written and selects the dedupe storage.
func NewUniqueWriter(w io.Writer, byteLen int) *UniqueWriter {
	return &UniqueWriter{
		writer:  w,
		backend: dedupe.New(byteLen),
	}
}

// Write implements io.Writer interface
func (uw *UniqueWriter) Write(p []byte) (int, error) {
	if uw.closed {
		return 0, io.ErrClosedPipe
	}
	// incomplete lines wait for the next write
	uw.buffer = append(uw.buffer, p...)
	for {
		idx := bytes.IndexByte(uw.buffer, '\n')
		if idx == -1 {
			break
		}
		line := string(uw.buffer[:idx])
		uw.buffer = uw.buffer[idx+1:]
		if err := uw.writeLine(line); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (uw *UniqueWriter) writeLine(line string) error {
	if line == "" || !uw.backend.Upsert(line) {
		return nil
	}
	if _, err := io.WriteString(uw.writer, line+"\n"); err != nil {
		return err
	}
	uw.count++
	return nil
}

// Close flushes a trailing line without newline and releases the dedupe storage
func (uw *UniqueWriter) Close() error {
	if uw.closed {
		return nil
	}
	uw.closed = true
	var err error
	if len(uw.buffer) > 0 {
		err = uw.writeLine(string(uw.buffer))
		uw.buffer = nil
	}
	uw.backend.Cleanup()
	return err
}

// Count returns the number of unique lines written
func (uw *UniqueWriter) Count() int {
	return uw.count
}

package utils

import (
	"io"
	"sync"
)

// Flusher is implemented by buffered writers such as bufio.Writer.
type Flusher interface {
	Flush() error
}

// FlushingWriter serializes writes and flushes the underlying writer after each one when it implements Flusher.
type FlushingWriter struct {
	mutex   sync.Mutex
	writer  io.Writer
	flusher Flusher
}

// NewFlushingWriter wraps writer; an already wrapped writer is returned unchanged.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return nil
	}
	if existingWriter, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return existingWriter
	}

	flushingWriter := &FlushingWriter{writer: writer}
	if flusher, implementsFlush := writer.(Flusher); implementsFlush {
		flushingWriter.flusher = flusher
	}
	return flushingWriter
}

// Write delegates to the underlying writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	if flushingWriter == nil || flushingWriter.writer == nil {
		return 0, nil
	}

	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil || flushingWriter.flusher == nil {
		return bytesWritten, writeError
	}
	return bytesWritten, flushingWriter.flusher.Flush()
}

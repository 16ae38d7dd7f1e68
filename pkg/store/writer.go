package store

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/ssargent/replaydb/pkg/codec"
)

const defaultWriteBufferSize = 64 * 1024

// RecordingWriter appends frames to a new recording file. Writes are
// strictly sequential; the format has no support for concurrent
// writers or in-place rewrites.
type RecordingWriter struct {
	file   *os.File
	writer *bufio.Writer
	config WriterConfig
	offset int64
}

// NewRecordingWriter creates the destination file, truncating any
// existing content, and writes a fresh header at the current format
// version. The file handle is released if the header write fails.
func NewRecordingWriter(config WriterConfig) (*RecordingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}

	bufferSize := config.BufferSize
	if bufferSize <= 0 {
		bufferSize = defaultWriteBufferSize
	}

	w := &RecordingWriter{
		file:   file,
		writer: bufio.NewWriterSize(file, bufferSize),
		config: config,
	}
	if err := w.writeRaw(codec.NewHeader().AsBytes()); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

// Append frames one payload at the given elapsed time. Producers are
// expected to append with non-decreasing elapsed values; the writer
// does not enforce it, matching what readers tolerate.
func (w *RecordingWriter) Append(elapsed codec.Uint128, payload []byte) error {
	return w.writeRaw(codec.EncodeFrame(elapsed, payload))
}

func (w *RecordingWriter) writeRaw(data []byte) error {
	n, err := w.writer.Write(data)
	w.offset += int64(n)
	return err
}

// Sync flushes buffered frames and fsyncs the file
func (w *RecordingWriter) Sync() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Size returns the number of bytes written so far, header included
func (w *RecordingWriter) Size() int64 {
	return w.offset
}

// Path returns the destination file path
func (w *RecordingWriter) Path() string {
	return w.config.FilePath
}

// Close flushes, syncs, and closes the destination file. The handle is
// closed even when the final flush fails.
func (w *RecordingWriter) Close() error {
	if err := w.Sync(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

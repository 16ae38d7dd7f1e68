package store

import (
	"os"

	"github.com/ssargent/replaydb/pkg/codec"
	"github.com/ssargent/replaydb/pkg/state"
)

// RecordingReader provides sequential access to the frames of one
// recording. The whole file is loaded into memory up front, so the
// reader holds no file handle after opening; recordings are bounded by
// available memory, not by disk access patterns.
type RecordingReader struct {
	header codec.Header
	cursor *codec.Cursor
}

// OpenRecording reads the file at path into memory and validates its
// header. Header errors are returned before any frame is available.
func OpenRecording(path string) (*RecordingReader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadRecording(data)
}

// ReadRecording parses a recording already held in memory
func ReadRecording(data []byte) (*RecordingReader, error) {
	cursor := codec.NewCursor(data)
	header, err := codec.ReadHeader(cursor)
	if err != nil {
		return nil, err
	}
	return &RecordingReader{header: header, cursor: cursor}, nil
}

// Header returns the validated recording header
func (r *RecordingReader) Header() codec.Header {
	return r.header
}

// Frames returns the frame iterator for the recording. The iterator is
// single-pass and shares the reader's cursor; re-open the recording to
// scan it again.
func (r *RecordingReader) Frames() *codec.FrameIterator {
	return codec.Frames(r.cursor)
}

// Updates returns an iterator over the remaining frames decoded with pc
func (r *RecordingReader) Updates(pc state.PayloadCodec) *state.UpdateIterator {
	return state.Updates(r.Frames(), pc)
}

package store

import "github.com/ssargent/replaydb/pkg/codec"

// WriterConfig holds configuration for the recording writer
type WriterConfig struct {
	FilePath   string // Path to the destination recording
	BufferSize int    // Write buffer size (0 = default)
}

// FrameSource provides streaming access to raw frames
type FrameSource interface {
	Next() bool
	Frame() codec.Frame
}

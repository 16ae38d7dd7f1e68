package codec

import "encoding/binary"

// Frame is one timestamped, length-prefixed payload unit in a
// recording. Payload contents are opaque to this package.
type Frame struct {
	Elapsed Uint128 // Duration since recording start
	Payload []byte  // Opaque payload bytes
}

// EncodeFrame returns the byte form of a frame: elapsed (u128 LE),
// payload length (u64 LE), then the payload itself
func EncodeFrame(elapsed Uint128, payload []byte) []byte {
	buf := make([]byte, 0, 24+len(payload))
	buf = elapsed.AppendBytes(buf)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(payload)))
	return append(buf, payload...)
}

// FrameIterator pulls frames off a cursor one at a time. The first
// incomplete frame ends the sequence, whether the input ran out or a
// length field points past the remaining bytes; a recording truncated
// mid-frame ends at its last complete frame.
type FrameIterator struct {
	cursor *Cursor
	frame  Frame
	done   bool
}

// Frames returns an iterator over the frames remaining in c. The
// iterator shares the cursor position with c and is single-pass;
// re-create the cursor to scan again.
func Frames(c *Cursor) *FrameIterator {
	return &FrameIterator{cursor: c}
}

// Next advances to the next frame, returning false at end of stream
func (it *FrameIterator) Next() bool {
	if it.done {
		return false
	}
	elapsed, err := it.cursor.ReadUint128()
	if err != nil {
		it.done = true
		return false
	}
	length, err := it.cursor.ReadUint64()
	if err != nil {
		it.done = true
		return false
	}
	payload, err := it.cursor.ReadBytes(length)
	if err != nil {
		it.done = true
		return false
	}
	it.frame = Frame{Elapsed: elapsed, Payload: payload}
	return true
}

// Frame returns the frame read by the last successful call to Next
func (it *FrameIterator) Frame() Frame {
	return it.frame
}

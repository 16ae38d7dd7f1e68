package state

import "github.com/ssargent/replaydb/pkg/codec"

// Update maps keys to their new values. A nil value is a tombstone
// marking the key for removal from the aggregate.
type Update map[string]Value

// Snapshot is the fully materialized state at a point in time. It
// never contains tombstones.
type Snapshot map[string]Value

// Interface converts the snapshot to plain map[string]any data,
// suitable for JSON serialization.
func (s Snapshot) Interface() map[string]any {
	out := make(map[string]any, len(s))
	for key, value := range s {
		out[key] = Interface(value)
	}
	return out
}

// TimedUpdate pairs an update with the elapsed time it was recorded at
type TimedUpdate struct {
	Elapsed codec.Uint128
	Update  Update
}

// TimedSnapshot pairs a snapshot with the elapsed time it holds at
type TimedSnapshot struct {
	Elapsed codec.Uint128
	State   Snapshot
}

// PayloadCodec translates between opaque frame payloads and updates.
// Concrete codecs live outside this package; the framing layer never
// inspects payload bytes itself.
type PayloadCodec interface {
	Decode(payload []byte) (Update, error)
	Encode(update Update) ([]byte, error)
}

// UpdateSource is a pull iterator over timed updates
type UpdateSource interface {
	Next() bool
	Update() TimedUpdate
	Err() error
}

// UpdateIterator decodes raw frames into timed updates
type UpdateIterator struct {
	frames *codec.FrameIterator
	codec  PayloadCodec
	cur    TimedUpdate
	err    error
}

// Updates returns an iterator decoding every frame of frames with c
func Updates(frames *codec.FrameIterator, c PayloadCodec) *UpdateIterator {
	return &UpdateIterator{frames: frames, codec: c}
}

// Next advances to the next decoded update. It returns false at end of
// stream or on the first codec failure; check Err to tell them apart.
func (it *UpdateIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.frames.Next() {
		return false
	}
	frame := it.frames.Frame()
	update, err := it.codec.Decode(frame.Payload)
	if err != nil {
		it.err = err
		return false
	}
	it.cur = TimedUpdate{Elapsed: frame.Elapsed, Update: update}
	return true
}

// Update returns the update read by the last successful call to Next
func (it *UpdateIterator) Update() TimedUpdate {
	return it.cur
}

// Err reports a payload codec failure. Codec errors propagate
// unchanged; framing truncation is never reported here.
func (it *UpdateIterator) Err() error {
	return it.err
}

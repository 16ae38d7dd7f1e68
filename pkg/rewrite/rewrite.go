// Package rewrite streams a recording through a key-renaming transform
// into a new file, preserving the header bytes and every frame's
// elapsed timestamp.
package rewrite

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ssargent/replaydb/pkg/codec"
	"github.com/ssargent/replaydb/pkg/state"
	"github.com/ssargent/replaydb/pkg/store"
)

// RenameRule is a literal substring replacement applied to every key
// of an update and of every nested mapping. Values are never touched
// and lists are not entered. The rule is lossy: two keys renaming to
// the same string are not detected, and whichever is encoded last wins.
type RenameRule struct {
	From string
	To   string
}

// Apply returns a copy of update with the rule applied to every key at
// every nesting level. The input update is left untouched.
func (r RenameRule) Apply(update state.Update) state.Update {
	renamed := make(state.Update, len(update))
	for key, value := range update {
		renamed[r.rename(key)] = r.applyValue(value)
	}
	return renamed
}

func (r RenameRule) applyValue(value state.Value) state.Value {
	mapping, ok := value.(state.Mapping)
	if !ok {
		return value
	}
	renamed := make(state.Mapping, len(mapping))
	for key, nested := range mapping {
		renamed[r.rename(key)] = r.applyValue(nested)
	}
	return renamed
}

func (r RenameRule) rename(key string) string {
	return strings.ReplaceAll(key, r.From, r.To)
}

// Rewrite streams every frame of src through decode, rename, encode
// and writes the result to dst with its original elapsed time. The
// header bytes are copied before any frame is touched, so the
// destination opens with the same reader as the source.
//
// On a codec failure the failing frame is not written, the error
// propagates unchanged under a frame-position wrapper, and frames
// already written stay in dst. There is no rollback.
func Rewrite(src *store.RecordingReader, dst io.Writer, pc state.PayloadCodec, rule RenameRule) (int, error) {
	if _, err := dst.Write(src.Header().AsBytes()); err != nil {
		return 0, err
	}

	written := 0
	frames := src.Frames()
	for frames.Next() {
		frame := frames.Frame()
		update, err := pc.Decode(frame.Payload)
		if err != nil {
			return written, fmt.Errorf("frame %d: %w", written, err)
		}
		payload, err := pc.Encode(rule.Apply(update))
		if err != nil {
			return written, fmt.Errorf("frame %d: %w", written, err)
		}
		if _, err := dst.Write(codec.EncodeFrame(frame.Elapsed, payload)); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// RewriteFile rewrites the recording at srcPath into a new file at
// dstPath and reports the number of frames written. The destination
// handle is closed on every path; on failure, frames already flushed
// remain on disk.
func RewriteFile(srcPath, dstPath string, pc state.PayloadCodec, rule RenameRule) (int, error) {
	src, err := store.OpenRecording(srcPath)
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return 0, err
	}

	buffered := bufio.NewWriter(out)
	written, rewriteErr := Rewrite(src, buffered, pc, rule)
	if err := buffered.Flush(); err != nil && rewriteErr == nil {
		rewriteErr = err
	}
	if err := out.Close(); err != nil && rewriteErr == nil {
		rewriteErr = err
	}
	return written, rewriteErr
}

package rewrite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/replaydb/pkg/codec"
	"github.com/ssargent/replaydb/pkg/state"
	"github.com/ssargent/replaydb/pkg/store"
	"github.com/ssargent/replaydb/pkg/structcodec"
)

func writeRecording(t *testing.T, path string, pc state.PayloadCodec, updates []state.TimedUpdate) {
	t.Helper()
	w, err := store.NewRecordingWriter(store.WriterConfig{FilePath: path})
	require.NoError(t, err)
	for _, u := range updates {
		payload, err := pc.Encode(u.Update)
		require.NoError(t, err)
		require.NoError(t, w.Append(u.Elapsed, payload))
	}
	require.NoError(t, w.Close())
}

func TestRenameRule_Apply(t *testing.T) {
	rule := RenameRule{From: "narupa", To: "nanover"}

	update := state.Update{
		"narupa.pos": state.Scalar{Data: 1.0},
		"untouched":  state.Scalar{Data: "narupa stays in values"},
		"narupa.nested": state.Mapping{
			"narupa.inner": state.Mapping{
				"narupa.leaf": state.Scalar{Data: true},
			},
		},
		"narupa.gone": nil,
	}

	got := rule.Apply(update)
	assert.Equal(t, state.Update{
		"nanover.pos": state.Scalar{Data: 1.0},
		"untouched":   state.Scalar{Data: "narupa stays in values"},
		"nanover.nested": state.Mapping{
			"nanover.inner": state.Mapping{
				"nanover.leaf": state.Scalar{Data: true},
			},
		},
		"nanover.gone": nil,
	}, got)

	// The input must be left untouched.
	_, stillThere := update["narupa.pos"]
	assert.True(t, stillThere)
}

func TestRenameRule_ListsAreOpaque(t *testing.T) {
	rule := RenameRule{From: "a", To: "b"}
	update := state.Update{
		"list": state.Scalar{Data: []any{"a", map[string]any{"a": 1.0}}},
	}

	got := rule.Apply(update)
	// Only mapping keys are renamed; list contents pass through.
	assert.Equal(t, update["list"], got["list"])
}

func TestRewriteFile_Fidelity(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "old.state")
	dstPath := filepath.Join(dir, "new.state")
	pc := structcodec.New()

	elapsed := codec.Uint128{Lo: 123456}
	writeRecording(t, srcPath, pc, []state.TimedUpdate{
		{Elapsed: elapsed, Update: state.Update{"narupa.pos": state.Scalar{Data: 1.0}}},
	})

	written, err := RewriteFile(srcPath, dstPath, pc, RenameRule{From: "narupa", To: "nanover"})
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	srcBytes, err := os.ReadFile(srcPath)
	require.NoError(t, err)
	dstBytes, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	assert.Equal(t, srcBytes[:codec.HeaderSize], dstBytes[:codec.HeaderSize],
		"header bytes must be copied verbatim")

	dst, err := store.ReadRecording(dstBytes)
	require.NoError(t, err)
	updates := dst.Updates(pc)
	require.True(t, updates.Next())
	got := updates.Update()
	assert.Equal(t, elapsed, got.Elapsed)
	assert.Equal(t, state.Update{"nanover.pos": state.Scalar{Data: 1.0}}, got.Update)
	assert.False(t, updates.Next())
	assert.NoError(t, updates.Err())
}

func TestRewriteFile_PreservesFrameOrderAndTimestamps(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "multi.state")
	dstPath := filepath.Join(dir, "multi_out.state")
	pc := structcodec.New()

	src := []state.TimedUpdate{
		{Elapsed: codec.Uint128{Lo: 10}, Update: state.Update{"narupa.a": state.Scalar{Data: 1.0}}},
		{Elapsed: codec.Uint128{Lo: 20}, Update: state.Update{"narupa.a": nil}},
		{Elapsed: codec.Uint128{Lo: 30, Hi: 2}, Update: state.Update{"plain": state.Scalar{Data: "v"}}},
	}
	writeRecording(t, srcPath, pc, src)

	written, err := RewriteFile(srcPath, dstPath, pc, RenameRule{From: "narupa", To: "nanover"})
	require.NoError(t, err)
	require.Equal(t, 3, written)

	dst, err := store.OpenRecording(dstPath)
	require.NoError(t, err)
	updates := dst.Updates(pc)

	require.True(t, updates.Next())
	assert.Equal(t, codec.Uint128{Lo: 10}, updates.Update().Elapsed)
	require.True(t, updates.Next())
	assert.Equal(t, state.Update{"nanover.a": nil}, updates.Update().Update)
	require.True(t, updates.Next())
	assert.Equal(t, codec.Uint128{Lo: 30, Hi: 2}, updates.Update().Elapsed)
	assert.False(t, updates.Next())
}

// failAfterCodec decodes like the wrapped codec but fails once a given
// number of decodes have succeeded.
type failAfterCodec struct {
	wrapped state.PayloadCodec
	left    int
}

func (c *failAfterCodec) Decode(payload []byte) (state.Update, error) {
	if c.left <= 0 {
		return nil, errors.New("synthetic decode failure")
	}
	c.left--
	return c.wrapped.Decode(payload)
}

func (c *failAfterCodec) Encode(update state.Update) ([]byte, error) {
	return c.wrapped.Encode(update)
}

func TestRewriteFile_PartialOutputOnCodecFailure(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "partial.state")
	dstPath := filepath.Join(dir, "partial_out.state")
	pc := structcodec.New()

	writeRecording(t, srcPath, pc, []state.TimedUpdate{
		{Elapsed: codec.Uint128{Lo: 1}, Update: state.Update{"a": state.Scalar{Data: 1.0}}},
		{Elapsed: codec.Uint128{Lo: 2}, Update: state.Update{"b": state.Scalar{Data: 2.0}}},
	})

	failing := &failAfterCodec{wrapped: pc, left: 1}
	written, err := RewriteFile(srcPath, dstPath, failing, RenameRule{From: "a", To: "z"})
	require.Error(t, err)
	assert.Equal(t, 1, written)

	// The destination keeps its header and the one frame written
	// before the failure. No rollback.
	dst, err := store.OpenRecording(dstPath)
	require.NoError(t, err)
	updates := dst.Updates(pc)
	require.True(t, updates.Next())
	assert.Equal(t, state.Update{"z": state.Scalar{Data: 1.0}}, updates.Update().Update)
	assert.False(t, updates.Next())
}

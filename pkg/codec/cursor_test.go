package codec

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestCursor_ReadUint64(t *testing.T) {
	buf := make([]byte, 0, 16)
	buf = binary.LittleEndian.AppendUint64(buf, 42)
	buf = binary.LittleEndian.AppendUint64(buf, 0xFFFFFFFFFFFFFFFF)

	c := NewCursor(buf)

	v, err := c.ReadUint64()
	if err != nil {
		t.Fatalf("ReadUint64 failed: %v", err)
	}
	if v != 42 {
		t.Errorf("got %d, want 42", v)
	}

	v, err = c.ReadUint64()
	if err != nil {
		t.Fatalf("ReadUint64 failed: %v", err)
	}
	if v != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("got %d, want max uint64", v)
	}

	if _, err := c.ReadUint64(); err != ErrTruncated {
		t.Errorf("expected ErrTruncated at end of buffer, got %v", err)
	}
}

func TestCursor_ReadUint64_Truncated(t *testing.T) {
	// 7 bytes is one short of a u64
	c := NewCursor(make([]byte, 7))
	if _, err := c.ReadUint64(); err != ErrTruncated {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
	if c.Position() != 0 {
		t.Errorf("failed read advanced the cursor to %d", c.Position())
	}
}

func TestCursor_ReadUint128(t *testing.T) {
	buf := make([]byte, 0, 16)
	buf = binary.LittleEndian.AppendUint64(buf, 7)
	buf = binary.LittleEndian.AppendUint64(buf, 3)

	c := NewCursor(buf)
	v, err := c.ReadUint128()
	if err != nil {
		t.Fatalf("ReadUint128 failed: %v", err)
	}
	if v.Lo != 7 || v.Hi != 3 {
		t.Errorf("got {Lo:%d Hi:%d}, want {Lo:7 Hi:3}", v.Lo, v.Hi)
	}
	if c.Remaining() != 0 {
		t.Errorf("expected empty cursor, %d bytes remain", c.Remaining())
	}

	c = NewCursor(make([]byte, 15))
	if _, err := c.ReadUint128(); err != ErrTruncated {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestCursor_ReadBytes(t *testing.T) {
	testCases := []struct {
		name    string
		buf     []byte
		n       uint64
		want    []byte
		wantErr bool
	}{
		{
			name: "exact length",
			buf:  []byte("payload"),
			n:    7,
			want: []byte("payload"),
		},
		{
			name: "partial read",
			buf:  []byte("payload"),
			n:    3,
			want: []byte("pay"),
		},
		{
			name: "zero bytes",
			buf:  []byte{},
			n:    0,
			want: []byte{},
		},
		{
			name:    "past end",
			buf:     []byte("short"),
			n:       6,
			wantErr: true,
		},
		{
			name:    "huge length field",
			buf:     []byte("short"),
			n:       1 << 60,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor(tc.buf)
			got, err := c.ReadBytes(tc.n)
			if tc.wantErr {
				if err != ErrTruncated {
					t.Fatalf("expected ErrTruncated, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadBytes failed: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if c.Position() != int(tc.n) {
				t.Errorf("position %d, want %d", c.Position(), tc.n)
			}
		})
	}
}

func TestCursor_ForwardOnly(t *testing.T) {
	buf := []byte("abcdef")
	c := NewCursor(buf)

	first, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	second, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if !bytes.Equal(first, []byte("abc")) || !bytes.Equal(second, []byte("def")) {
		t.Errorf("reads overlap: %q then %q", first, second)
	}
	if c.Remaining() != 0 {
		t.Errorf("expected exhausted cursor, %d bytes remain", c.Remaining())
	}
}

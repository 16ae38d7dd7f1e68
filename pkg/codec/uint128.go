package codec

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Uint128 holds a 128-bit unsigned integer as two 64-bit halves. The
// container stores elapsed timestamps at this width.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// AppendBytes appends the 16-byte little-endian encoding of v to buf
func (v Uint128) AppendBytes(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, v.Lo)
	return binary.LittleEndian.AppendUint64(buf, v.Hi)
}

// Less reports whether v is strictly smaller than other
func (v Uint128) Less(other Uint128) bool {
	if v.Hi != other.Hi {
		return v.Hi < other.Hi
	}
	return v.Lo < other.Lo
}

// String formats v in decimal when it fits in 64 bits, which every
// recording produced so far does, and as hex otherwise.
func (v Uint128) String() string {
	if v.Hi == 0 {
		return strconv.FormatUint(v.Lo, 10)
	}
	return fmt.Sprintf("0x%016x%016x", v.Hi, v.Lo)
}

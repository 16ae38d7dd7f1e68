package codec

import "encoding/binary"

// MagicNumber is the fixed first field of every recording file
const MagicNumber uint64 = 6661747157043

// CurrentVersion is the format version written to new recordings
const CurrentVersion uint64 = 2

// HeaderSize is the encoded size of a recording header in bytes
const HeaderSize = 16

// SupportedVersions lists the format versions this package can read
var SupportedVersions = []uint64{2}

// Header represents the two leading fields of a recording file
type Header struct {
	Magic   uint64
	Version uint64
}

// NewHeader returns a header for writing recordings at the current version
func NewHeader() Header {
	return Header{Magic: MagicNumber, Version: CurrentVersion}
}

// ReadHeader reads and validates the header at the cursor position.
// A wrong magic number fails before the version field is read. Header
// errors are fatal; callers must not attempt to read frames after one.
func ReadHeader(c *Cursor) (Header, error) {
	magic, err := c.ReadUint64()
	if err != nil {
		return Header{}, err
	}
	if magic != MagicNumber {
		return Header{}, ErrInvalidMagic
	}
	version, err := c.ReadUint64()
	if err != nil {
		return Header{}, err
	}
	if !versionSupported(version) {
		return Header{}, &VersionError{Got: version, Supported: SupportedVersions}
	}
	return Header{Magic: magic, Version: version}, nil
}

// AsBytes returns the exact 16-byte encoding of the header. For a
// header produced by ReadHeader this reproduces the input bytes,
// which rewrites rely on to copy headers byte-for-byte.
func (h Header) AsBytes() []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = binary.LittleEndian.AppendUint64(buf, h.Magic)
	return binary.LittleEndian.AppendUint64(buf, h.Version)
}

func versionSupported(v uint64) bool {
	for _, s := range SupportedVersions {
		if v == s {
			return true
		}
	}
	return false
}

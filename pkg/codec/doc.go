// Package codec implements the binary container format for recordings.
//
// A recording is an append-only, time-ordered file of opaque payload
// units ("frames"). The container gives each frame a timestamp and a
// length prefix but never interprets payload bytes; a payload codec
// living outside this package does that.
//
// # File Format
//
// Every recording starts with a fixed 16-byte header followed by zero
// or more frames:
//
//	[Magic(8)][Version(8)] then repeated [Elapsed(16)][PayloadLength(8)][Payload]
//
// Fields:
//   - Magic: 64-bit constant identifying the file type (little-endian)
//   - Version: 64-bit format version, must be in SupportedVersions (little-endian)
//   - Elapsed: 128-bit duration since recording start (little-endian)
//   - PayloadLength: 64-bit payload size in bytes (little-endian)
//   - Payload: PayloadLength opaque bytes
//
// There is no trailer, checksum, or index; a sequential scan is the
// only access method.
//
// # Truncation
//
// Recordings are often cut short by an abrupt process stop. A frame
// that cannot be read completely ends the frame sequence cleanly; it is
// never an error. Truncation inside the header is an error, as is a
// wrong magic number or an unsupported version.
package codec

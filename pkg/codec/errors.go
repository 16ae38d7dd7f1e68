package codec

import "fmt"

// Errors
var (
	ErrTruncated    = &FormatError{"truncated input"}
	ErrInvalidMagic = &FormatError{"invalid magic number"}
)

// FormatError represents a recording container format error
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// VersionError reports a header version outside the supported set
type VersionError struct {
	Got       uint64
	Supported []uint64
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported format version %d (supported: %v)", e.Got, e.Supported)
}

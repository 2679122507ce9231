// Package persist implements the binary save format: the uncompressed
// .tlwf container, its zlib-wrapped .tlwz sibling, and the two-stage
// save/load protocol that moves a world.World to and from disk.
package persist

import "errors"

// Sentinel errors returned (wrapped with fmt.Errorf's %w) by the codec.
// Checked with errors.Is, matching the rest of the pack's error-wrapping
// idiom (e.g. oriumgames-pile/format/io.go, anvil-region.go.go).
var (
	ErrNotFound            = errors.New("persist: save not found")
	ErrBadMagic            = errors.New("persist: bad magic number")
	ErrUnsupportedVersion  = errors.New("persist: unsupported format version")
	ErrUnsupportedEndian   = errors.New("persist: unsupported endianness")
	ErrBadChecksum         = errors.New("persist: checksum mismatch")
	ErrTruncated           = errors.New("persist: file truncated or corrupt length")
	ErrCorruptChunk        = errors.New("persist: corrupt chunk data")
	ErrCompression         = errors.New("persist: compression error")
	ErrMetadataSizeChanged = errors.New("persist: metadata size changed, cannot update in place")
)

// Package format houses the low-level constants and helpers for the
// flattened device tree (DTB) wire format. The goal is to keep the byte-level
// rules focused and independent from the public API so higher-level packages
// can orchestrate the data in a more ergonomic form.
package format

const (
	// TagBeginNode opens a node record in the structure block. For non-root
	// nodes the tag word is followed by the node name as a NUL-terminated
	// ASCII string padded to a 4-byte boundary; the root node instead
	// carries a single zero word in place of a name.
	TagBeginNode = 0x00000001

	// TagEndNode closes the most recently opened node record.
	TagEndNode = 0x00000002

	// TagProp introduces a property record. Layout (big-endian):
	//   0x00  tag word
	//   0x04  payload length in bytes (before trailing padding)
	//   0x08  offset of the property name in the strings block
	//   0x0C  payload, padded with zero bytes to a 4-byte boundary
	TagProp = 0x00000003

	// TagNop is skipped by parsers. Writers never emit it but tolerant
	// readers must step over it.
	TagNop = 0x00000004

	// TagEnd terminates the structure block as a whole.
	TagEnd = 0x00000009
)

const (
	// PropHeaderSize is the fixed size of a property record header: tag
	// word, payload length, and name offset.
	PropHeaderSize = 12

	// TagSize is the size of a bare tag word.
	TagSize = 4

	// MaxVersion is the newest structure-block layout version this package
	// understands.
	MaxVersion = 17

	// LegacyAlignVersion is the first version that dropped the 8-byte
	// alignment rule for long property payloads. Blobs below this version
	// align payloads of 8 bytes or more to an 8-byte boundary.
	LegacyAlignVersion = 16

	// DefaultWordSize is the bit width bound applied to word-list property
	// values when no explicit width is configured.
	DefaultWordSize = 32

	// WordBytes is the on-wire size of a single word-list element.
	WordBytes = 4

	// RootName is the synthetic name of the tree root. It is never embedded
	// in the structure block; the root begin-node record carries a zero
	// word instead.
	RootName = "/"
)

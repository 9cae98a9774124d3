package format

// Alignment utilities for the DTB wire format.
// Records in the structure block are aligned to 4-byte boundaries; legacy
// blobs (version < 16) additionally align long property payloads to 8 bytes.

// Align4 returns n aligned up to the next 4-byte boundary.
// Used for node name fields and property payloads.
//
// Example:
//
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + 3) &^ 3
}

// Align8 returns n aligned up to the next 8-byte boundary.
// Used for legacy (version < 16) property payload alignment.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + 7) &^ 7
}

// Pad4 appends zero bytes to b until its length is a multiple of 4.
func Pad4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

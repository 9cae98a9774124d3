package format

import "encoding/binary"

// Binary encoding utilities for big-endian integers.
//
// All multi-byte integers in the DTB wire format (tag words, property
// lengths, strings-block offsets, word-list payloads) are big-endian.
//
// Implementation: Uses encoding/binary.BigEndian. The standard library
// calls inline well under modern Go compilers, so no unsafe variants are
// provided.

// PutU32 writes a uint32 value to the buffer at the specified offset in big-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

// AppendU32 appends a uint32 value to the buffer in big-endian format.
func AppendU32(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in big-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

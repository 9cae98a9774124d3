package format

import "fmt"

// Character classification and NUL-terminated string helpers.
//
// Item names and string-list values are restricted to printable characters.
// "Printable" here means the ASCII graphic range plus the usual whitespace
// controls, matching what existing device tree sources contain.

// IsPrintable reports whether every byte of s is a printable ASCII
// character or one of the whitespace controls (tab, LF, VT, FF, CR).
func IsPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isPrintableByte(s[i]) {
			return false
		}
	}
	return true
}

func isPrintableByte(b byte) bool {
	if b >= 0x20 && b < 0x7F {
		return true
	}
	switch b {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsStringLike reports whether raw looks like one or more NUL-terminated
// printable-ASCII strings packed back to back: non-empty, every byte either
// NUL or in the graphic ASCII range, terminated by NUL, with at least one
// graphic byte. Deliberately permissive; binary payloads that happen to be
// printable classify as strings, which keeps round-trip parity with
// existing blobs.
func IsStringLike(raw []byte) bool {
	if len(raw) == 0 || raw[len(raw)-1] != 0 {
		return false
	}
	graphic := false
	for _, b := range raw {
		switch {
		case b == 0:
		case b >= 0x20 && b < 0x7F:
			graphic = true
		default:
			return false
		}
	}
	return graphic
}

// CString reads the NUL-terminated string starting at off.
func CString(b []byte, off int) (string, error) {
	if off < 0 || off >= len(b) {
		return "", fmt.Errorf("%w: string offset %d out of range", ErrBadString, off)
	}
	end := off
	for end < len(b) && b[end] != 0 {
		end++
	}
	if end == len(b) {
		return "", fmt.Errorf("%w: string at offset %d", ErrBadString, off)
	}
	return string(b[off:end]), nil
}

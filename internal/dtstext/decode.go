package dtstext

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Input decoding.
//
// DTS sources in the wild arrive in several encodings: plain UTF-8,
// UTF-16 with a BOM (editors on Windows), and legacy single-byte code
// pages. Everything is normalized to UTF-8 before lexing.

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// DecodeSource converts raw DTS source bytes to a UTF-8 string. UTF-16
// input is detected by its BOM; input that is not valid UTF-8 falls back
// to a Windows-1252 interpretation.
func DecodeSource(data []byte) (string, error) {
	if hasPrefix(data, utf16LEBOM) || hasPrefix(data, utf16BEBOM) {
		// ExpectBOM lets the BOM pick the byte order.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return "", fmt.Errorf("dtstext: decode UTF-16 source: %w", err)
		}
		return string(out), nil
	}
	if hasPrefix(data, utf8BOM) {
		data = data[len(utf8BOM):]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("dtstext: decode legacy source: %w", err)
	}
	return string(out), nil
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

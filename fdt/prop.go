package fdt

import (
	"fmt"

	"github.com/joshuapare/dtkit/internal/format"
)

// Property is the sealed interface over the four property variants. A
// property's concrete variant determines both its DTS syntax and its DTB
// encoding; a property is never re-interpreted as a different variant in
// place, only replaced.
type Property interface {
	Item

	// Len returns the number of values held by the property.
	Len() int
	// Pop removes the value at index.
	Pop(index int) error
	// Clear removes all values.
	Clear()
	// Equal reports whether other has the same concrete variant, name, and
	// element-wise equal values in order.
	Equal(other Property) bool
	// Copy returns a detached deep copy of the property.
	Copy() Property
}

// NewPropertyRaw classifies a raw binary payload and materializes the
// matching property variant:
//
//  1. a packed sequence of NUL-terminated printable-ASCII strings becomes
//     a PropStrings (empty segments are dropped)
//  2. otherwise a non-empty payload whose length is a multiple of 4 becomes
//     a PropWords of big-endian 32-bit cells
//  3. otherwise a non-empty payload becomes a PropBytes
//  4. an empty payload becomes a PropEmpty
//
// String detection deliberately takes priority over word detection so that a
// word-sized printable payload classifies as strings, matching existing
// blobs byte for byte on re-encode.
func NewPropertyRaw(name string, raw []byte) (Property, error) {
	switch {
	case format.IsStringLike(raw):
		p, err := NewPropStrings(name)
		if err != nil {
			return nil, err
		}
		start := 0
		for i, b := range raw {
			if b != 0 {
				continue
			}
			if i > start {
				if err := p.Append(string(raw[start:i])); err != nil {
					return nil, err
				}
			}
			start = i + 1
		}
		return p, nil

	case len(raw) > 0 && len(raw)%format.WordBytes == 0:
		p, err := NewPropWords(name)
		if err != nil {
			return nil, err
		}
		for off := 0; off < len(raw); off += format.WordBytes {
			if err := p.Append(format.ReadU32(raw, off)); err != nil {
				return nil, err
			}
		}
		return p, nil

	case len(raw) > 0:
		return NewPropBytes(name, raw...)

	default:
		return NewPropEmpty(name)
	}
}

// -----------------------------------------------------------------------------
// PropEmpty
// -----------------------------------------------------------------------------

// PropEmpty is a property with no payload, a bare flag.
type PropEmpty struct {
	base
}

// NewPropEmpty creates a detached empty property.
func NewPropEmpty(name string) (*PropEmpty, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}
	return &PropEmpty{base: b}, nil
}

// Len returns 0.
func (p *PropEmpty) Len() int { return 0 }

// Pop always fails; an empty property holds no values.
func (p *PropEmpty) Pop(index int) error {
	return fmt.Errorf("%w: pop %d from empty property %q", ErrIndexOutOfRange, index, p.name)
}

// Clear is a no-op.
func (p *PropEmpty) Clear() {}

// Equal reports whether other is an empty property with the same name.
func (p *PropEmpty) Equal(other Property) bool {
	o, ok := other.(*PropEmpty)
	return ok && p.name == o.name
}

// Copy returns a detached copy.
func (p *PropEmpty) Copy() Property {
	cp, _ := NewPropEmpty(p.name)
	return cp
}

// -----------------------------------------------------------------------------
// PropStrings
// -----------------------------------------------------------------------------

// PropStrings is a property holding an ordered list of strings.
type PropStrings struct {
	base
	data []string
}

// NewPropStrings creates a detached string-list property with the given
// initial values.
func NewPropStrings(name string, values ...string) (*PropStrings, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}
	p := &PropStrings{base: b}
	for _, v := range values {
		if err := p.Append(v); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Append adds a value. Values must be non-empty and printable.
func (p *PropStrings) Append(value string) error {
	if value == "" {
		return fmt.Errorf("%w: empty string value in property %q", ErrValueOutOfRange, p.name)
	}
	if !format.IsPrintable(value) {
		return fmt.Errorf("%w: non-printable string value in property %q", ErrValueOutOfRange, p.name)
	}
	p.data = append(p.data, value)
	return nil
}

// At returns the value at index.
func (p *PropStrings) At(index int) (string, error) {
	if index < 0 || index >= len(p.data) {
		return "", fmt.Errorf("%w: index %d of %d in property %q", ErrIndexOutOfRange, index, len(p.data), p.name)
	}
	return p.data[index], nil
}

// Len returns the number of strings.
func (p *PropStrings) Len() int { return len(p.data) }

// Pop removes the value at index.
func (p *PropStrings) Pop(index int) error {
	if index < 0 || index >= len(p.data) {
		return fmt.Errorf("%w: index %d of %d in property %q", ErrIndexOutOfRange, index, len(p.data), p.name)
	}
	p.data = append(p.data[:index], p.data[index+1:]...)
	return nil
}

// Clear removes all values.
func (p *PropStrings) Clear() { p.data = nil }

// Equal reports whether other is a string-list property with the same name
// and values.
func (p *PropStrings) Equal(other Property) bool {
	o, ok := other.(*PropStrings)
	if !ok || p.name != o.name || len(p.data) != len(o.data) {
		return false
	}
	for i := range p.data {
		if p.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Copy returns a detached deep copy.
func (p *PropStrings) Copy() Property {
	cp, _ := NewPropStrings(p.name)
	cp.data = append([]string(nil), p.data...)
	return cp
}

// -----------------------------------------------------------------------------
// PropWords
// -----------------------------------------------------------------------------

// PropWords is a property holding an ordered list of unsigned words, each
// bounded by a configurable bit width (32 by default).
type PropWords struct {
	base
	wordSize int
	data     []uint32
}

// NewPropWords creates a detached word-list property with the default
// 32-bit word width.
func NewPropWords(name string, words ...uint32) (*PropWords, error) {
	return NewPropWordsSized(name, format.DefaultWordSize, words...)
}

// NewPropWordsSized creates a detached word-list property whose values are
// bounded by wordSize bits, 1 to 32.
func NewPropWordsSized(name string, wordSize int, words ...uint32) (*PropWords, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}
	if wordSize < 1 || wordSize > format.DefaultWordSize {
		return nil, fmt.Errorf("%w: word size %d", ErrValueOutOfRange, wordSize)
	}
	p := &PropWords{base: b, wordSize: wordSize}
	for _, w := range words {
		if err := p.Append(w); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// WordSize returns the configured bit width bound.
func (p *PropWords) WordSize() int { return p.wordSize }

// Append adds a value. The value must satisfy 0 <= v < 2^wordSize.
func (p *PropWords) Append(value uint32) error {
	if p.wordSize < format.DefaultWordSize && uint64(value) >= uint64(1)<<p.wordSize {
		return fmt.Errorf("%w: 0x%X exceeds %d-bit word in property %q",
			ErrValueOutOfRange, value, p.wordSize, p.name)
	}
	p.data = append(p.data, value)
	return nil
}

// At returns the value at index.
func (p *PropWords) At(index int) (uint32, error) {
	if index < 0 || index >= len(p.data) {
		return 0, fmt.Errorf("%w: index %d of %d in property %q", ErrIndexOutOfRange, index, len(p.data), p.name)
	}
	return p.data[index], nil
}

// Len returns the number of words.
func (p *PropWords) Len() int { return len(p.data) }

// Pop removes the value at index.
func (p *PropWords) Pop(index int) error {
	if index < 0 || index >= len(p.data) {
		return fmt.Errorf("%w: index %d of %d in property %q", ErrIndexOutOfRange, index, len(p.data), p.name)
	}
	p.data = append(p.data[:index], p.data[index+1:]...)
	return nil
}

// Clear removes all values.
func (p *PropWords) Clear() { p.data = nil }

// Equal reports whether other is a word-list property with the same name
// and values. The configured word width does not participate in equality.
func (p *PropWords) Equal(other Property) bool {
	o, ok := other.(*PropWords)
	if !ok || p.name != o.name || len(p.data) != len(o.data) {
		return false
	}
	for i := range p.data {
		if p.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Copy returns a detached deep copy preserving the word width.
func (p *PropWords) Copy() Property {
	cp, _ := NewPropWordsSized(p.name, p.wordSize)
	cp.data = append([]uint32(nil), p.data...)
	return cp
}

// -----------------------------------------------------------------------------
// PropBytes
// -----------------------------------------------------------------------------

// PropBytes is a property holding an ordered list of raw bytes.
type PropBytes struct {
	base
	data []byte
}

// NewPropBytes creates a detached byte-list property with the given
// initial values.
func NewPropBytes(name string, data ...byte) (*PropBytes, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}
	return &PropBytes{base: b, data: append([]byte(nil), data...)}, nil
}

// Append adds a value.
func (p *PropBytes) Append(value byte) {
	p.data = append(p.data, value)
}

// At returns the value at index.
func (p *PropBytes) At(index int) (byte, error) {
	if index < 0 || index >= len(p.data) {
		return 0, fmt.Errorf("%w: index %d of %d in property %q", ErrIndexOutOfRange, index, len(p.data), p.name)
	}
	return p.data[index], nil
}

// Len returns the number of bytes.
func (p *PropBytes) Len() int { return len(p.data) }

// Pop removes the value at index.
func (p *PropBytes) Pop(index int) error {
	if index < 0 || index >= len(p.data) {
		return fmt.Errorf("%w: index %d of %d in property %q", ErrIndexOutOfRange, index, len(p.data), p.name)
	}
	p.data = append(p.data[:index], p.data[index+1:]...)
	return nil
}

// Clear removes all values.
func (p *PropBytes) Clear() { p.data = nil }

// Equal reports whether other is a byte-list property with the same name
// and values.
func (p *PropBytes) Equal(other Property) bool {
	o, ok := other.(*PropBytes)
	if !ok || p.name != o.name || len(p.data) != len(o.data) {
		return false
	}
	for i := range p.data {
		if p.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Copy returns a detached deep copy.
func (p *PropBytes) Copy() Property {
	cp, _ := NewPropBytes(p.name, p.data...)
	return cp
}

package fdt

import (
	"bytes"

	"github.com/joshuapare/dtkit/internal/format"
)

// DTB structure block emission.
//
// The strings block and the running byte offset are explicit accumulators
// threaded through the recursive walk, so a serialization owns its state
// and independent trees can be encoded concurrently.

// Strings accumulates the deduplicated strings block of a structure-block
// walk. Each distinct property name is stored once as a NUL-terminated
// entry; the offset recorded by the first encoder to mention a name is
// reused by every later one. Entries are only ever appended, never
// reordered, so recorded offsets stay valid for the final block.
type Strings struct {
	buf []byte
}

// NewStrings returns an empty strings block accumulator.
func NewStrings() *Strings {
	return &Strings{}
}

// Offset returns the block offset of name, appending a new NUL-terminated
// entry if the name is not yet present. Lookup is a raw byte search, so a
// name that forms the tail of an existing entry shares that entry's bytes.
func (s *Strings) Offset(name string) uint32 {
	entry := append([]byte(name), 0)
	if i := bytes.Index(s.buf, entry); i >= 0 {
		return uint32(i)
	}
	off := uint32(len(s.buf))
	s.buf = append(s.buf, entry...)
	return off
}

// Bytes returns the accumulated block.
func (s *Strings) Bytes() []byte { return s.buf }

// Len returns the accumulated block size in bytes.
func (s *Strings) Len() int { return len(s.buf) }

// propHeader emits the fixed PROP record header.
func propHeader(length, nameOff uint32) []byte {
	blob := make([]byte, 0, format.PropHeaderSize)
	blob = format.AppendU32(blob, format.TagProp)
	blob = format.AppendU32(blob, length)
	blob = format.AppendU32(blob, nameOff)
	return blob
}

// ToDTB emits a zero-length PROP record.
func (p *PropEmpty) ToDTB(sb *Strings, pos, version int) ([]byte, int) {
	blob := propHeader(0, sb.Offset(p.name))
	return blob, pos + len(blob)
}

// ToDTB emits the string payload: each value's ASCII bytes plus one NUL
// terminator, in order. The recorded length is the raw payload length; on
// blobs older than version 16 a misaligned payload is first pushed out to
// an 8-byte boundary with leading zeros, and the whole payload is zero
// padded to a 4-byte boundary either way.
func (p *PropStrings) ToDTB(sb *Strings, pos, version int) ([]byte, int) {
	var payload []byte
	for _, v := range p.data {
		payload = append(payload, v...)
		payload = append(payload, 0)
	}
	rawLen := len(payload)
	if version < format.LegacyAlignVersion {
		if start := pos + format.PropHeaderSize; start%8 != 0 {
			payload = append(make([]byte, 8-start%8), payload...)
		}
	}
	payload = format.Pad4(payload)

	blob := propHeader(uint32(rawLen), sb.Offset(p.name))
	blob = append(blob, payload...)
	return blob, pos + len(blob)
}

// ToDTB emits each word as a big-endian 32-bit cell in declared order.
func (p *PropWords) ToDTB(sb *Strings, pos, version int) ([]byte, int) {
	blob := propHeader(uint32(len(p.data)*format.WordBytes), sb.Offset(p.name))
	for _, w := range p.data {
		blob = format.AppendU32(blob, w)
	}
	return blob, pos + len(blob)
}

// ToDTB emits the raw bytes, zero padded to a 4-byte boundary; the
// recorded length is the unpadded byte count.
func (p *PropBytes) ToDTB(sb *Strings, pos, version int) ([]byte, int) {
	blob := propHeader(uint32(len(p.data)), sb.Offset(p.name))
	blob = append(blob, p.data...)
	blob = format.Pad4(blob)
	return blob, pos + len(blob)
}

// ToDTB emits the node's begin marker, its property records in declaration
// order, each child's full rendering in declaration order, and the end
// marker. The root node's begin marker carries a zero word in place of an
// embedded name; every other node embeds its NUL-terminated name padded
// to a 4-byte boundary.
func (n *Node) ToDTB(sb *Strings, pos, version int) ([]byte, int) {
	var blob []byte
	blob = format.AppendU32(blob, format.TagBeginNode)
	if n.isRoot() {
		blob = format.AppendU32(blob, 0)
	} else {
		blob = append(blob, n.name...)
		blob = append(blob, 0)
		blob = format.Pad4(blob)
	}
	pos += len(blob)

	for _, p := range n.props {
		data, next := p.ToDTB(sb, pos, version)
		blob = append(blob, data...)
		pos = next
	}
	for _, c := range n.nodes {
		data, next := c.ToDTB(sb, pos, version)
		blob = append(blob, data...)
		pos = next
	}

	blob = format.AppendU32(blob, format.TagEndNode)
	return blob, pos + format.TagSize
}

// WriteBlob renders the whole tree rooted at root and returns the structure
// block and the strings block. The caller frames both in the file envelope
// and appends the terminating END tag as part of that framing.
func WriteBlob(root *Node, version int) (structBlock, stringsBlock []byte) {
	sb := NewStrings()
	blob, _ := root.ToDTB(sb, 0, version)
	return blob, sb.Bytes()
}

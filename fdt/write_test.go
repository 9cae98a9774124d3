package fdt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dtkit/internal/format"
)

func TestStringsDedup(t *testing.T) {
	sb := NewStrings()
	require.Equal(t, uint32(0), sb.Offset("status"))
	require.Equal(t, uint32(7), sb.Offset("reg"))
	require.Equal(t, uint32(0), sb.Offset("status"), "first-seen offset wins")
	require.Equal(t, []byte("status\x00reg\x00"), sb.Bytes())
	require.Equal(t, 11, sb.Len())
}

func TestStringsTailSharing(t *testing.T) {
	sb := NewStrings()
	require.Equal(t, uint32(0), sb.Offset("address"))
	// "ress" is the tail of "address"; the raw byte search reuses it.
	require.Equal(t, uint32(3), sb.Offset("ress"))
	require.Equal(t, []byte("address\x00"), sb.Bytes())
}

func TestPropEmptyToDTB(t *testing.T) {
	p, _ := NewPropEmpty("little-endian")
	sb := NewStrings()
	blob, pos := p.ToDTB(sb, 0, format.MaxVersion)

	require.Equal(t, format.PropHeaderSize, len(blob))
	require.Equal(t, format.PropHeaderSize, pos)
	require.Equal(t, uint32(format.TagProp), format.ReadU32(blob, 0))
	require.Equal(t, uint32(0), format.ReadU32(blob, 4))
	require.Equal(t, uint32(0), format.ReadU32(blob, 8))
	require.Equal(t, []byte("little-endian\x00"), sb.Bytes())
}

func TestPropStringsToDTB(t *testing.T) {
	p, _ := NewPropStrings("compatible", "a", "bc")
	sb := NewStrings()
	blob, pos := p.ToDTB(sb, 8, format.MaxVersion)

	require.Equal(t, 20, len(blob), "12-byte header plus payload padded to 8")
	require.Equal(t, 28, pos)
	require.Equal(t, uint32(format.TagProp), format.ReadU32(blob, 0))
	require.Equal(t, uint32(5), format.ReadU32(blob, 4), "recorded length is pre-padding")
	require.Equal(t, uint32(0), format.ReadU32(blob, 8))
	require.Equal(t, []byte{0x61, 0x00, 0x62, 0x63, 0x00, 0x00, 0x00, 0x00}, blob[12:])
}

func TestPropStringsToDTBLegacyPrepad(t *testing.T) {
	p, _ := NewPropStrings("compatible", "a", "bc")
	sb := NewStrings()
	// Payload would start at 0+12, not 8-byte aligned, so a legacy blob
	// pushes it out with four leading zeros.
	blob, pos := p.ToDTB(sb, 0, format.LegacyAlignVersion-1)

	require.Equal(t, 24, len(blob))
	require.Equal(t, 24, pos)
	require.Equal(t, uint32(5), format.ReadU32(blob, 4), "prepad does not count")
	require.Equal(t, []byte{0, 0, 0, 0}, blob[12:16])
	require.Equal(t, []byte{0x61, 0x00, 0x62, 0x63, 0x00}, blob[16:21])

	// Aligned start needs no prepad even on legacy blobs.
	blob, _ = p.ToDTB(NewStrings(), 4, format.LegacyAlignVersion-1)
	require.Equal(t, 20, len(blob))
}

func TestPropWordsToDTB(t *testing.T) {
	p, _ := NewPropWords("reg", 0x1, 0xDEADBEEF)
	sb := NewStrings()
	blob, pos := p.ToDTB(sb, 0, format.MaxVersion)

	require.Equal(t, 20, len(blob))
	require.Equal(t, 20, pos)
	require.Equal(t, uint32(8), format.ReadU32(blob, 4))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01, 0xDE, 0xAD, 0xBE, 0xEF}, blob[12:])
}

func TestPropBytesToDTB(t *testing.T) {
	p, _ := NewPropBytes("mac", 0xDE, 0xAD)
	sb := NewStrings()
	blob, pos := p.ToDTB(sb, 0, format.MaxVersion)

	require.Equal(t, 16, len(blob), "payload padded to 4")
	require.Equal(t, 16, pos)
	require.Equal(t, uint32(2), format.ReadU32(blob, 4), "recorded length is unpadded")
	require.Equal(t, []byte{0xDE, 0xAD, 0x00, 0x00}, blob[12:])
}

func TestNodeToDTBRoot(t *testing.T) {
	root := mustNode(t, "/")
	p, _ := NewPropEmpty("x")
	require.NoError(t, root.Append(p))

	sb := NewStrings()
	blob, pos := root.ToDTB(sb, 0, format.MaxVersion)

	require.Equal(t, 24, len(blob))
	require.Equal(t, 24, pos)
	require.Equal(t, uint32(format.TagBeginNode), format.ReadU32(blob, 0))
	require.Equal(t, uint32(0), format.ReadU32(blob, 4), "root carries a zero word, not a name")
	require.Equal(t, uint32(format.TagProp), format.ReadU32(blob, 8))
	require.Equal(t, uint32(format.TagEndNode), format.ReadU32(blob, 20))
}

func TestNodeToDTBNamePadding(t *testing.T) {
	soc := mustNode(t, "soc")
	blob, _ := soc.ToDTB(NewStrings(), 0, format.MaxVersion)
	require.Equal(t, []byte("soc\x00"), blob[4:8], "3-byte name fills its padded word exactly")
	require.Equal(t, 12, len(blob))

	serial := mustNode(t, "serial")
	blob, _ = serial.ToDTB(NewStrings(), 0, format.MaxVersion)
	require.Equal(t, []byte("serial\x00\x00"), blob[4:12], "name padded to a 4-byte boundary")
	require.Equal(t, 16, len(blob))
}

func TestNodeToDTBOffsetsAndAlignment(t *testing.T) {
	root := buildSampleTree(t)
	sb := NewStrings()
	blob, pos := root.ToDTB(sb, 0, format.MaxVersion)

	require.Equal(t, len(blob), pos, "threaded offset tracks emitted bytes")
	require.Zero(t, len(blob)%4, "structure block is 4-byte aligned throughout")
}

func TestTreeWideNameDedup(t *testing.T) {
	// The same property name under different nodes lands in the strings
	// block exactly once, and both records carry the same offset.
	root := mustNode(t, "/")
	for _, name := range []string{"uart@0", "uart@1"} {
		n := mustNode(t, name)
		p, _ := NewPropStrings("status", "okay")
		require.NoError(t, n.Append(p))
		require.NoError(t, root.Append(n))
	}

	sb := NewStrings()
	blob, _ := root.ToDTB(sb, 0, format.MaxVersion)
	require.Equal(t, []byte("status\x00"), sb.Bytes())

	// BEGIN+zero (8) then uart@0: BEGIN (4) + name (8) -> first PROP at 20.
	require.Equal(t, uint32(format.TagProp), format.ReadU32(blob, 20))
	require.Equal(t, uint32(0), format.ReadU32(blob, 28))
	// uart@0 ends (PROP record 12+8=20, END 4) -> uart@1 BEGIN at 44, PROP at 56.
	require.Equal(t, uint32(format.TagProp), format.ReadU32(blob, 56))
	require.Equal(t, uint32(0), format.ReadU32(blob, 64))
}

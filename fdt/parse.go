package fdt

import (
	"fmt"

	"github.com/joshuapare/dtkit/internal/dtstext"
	"github.com/joshuapare/dtkit/internal/format"
)

// ParseDTS parses DTS source text into a tree. The source must contain a
// single top-level node block, conventionally the root node "/"; leading
// directives and comments are skipped.
func ParseDTS(src []byte) (*Node, error) {
	parsed, err := dtstext.Parse(src)
	if err != nil {
		return nil, err
	}
	return materialize(parsed)
}

// materialize converts a neutral parse node into typed items.
func materialize(pn *dtstext.Node) (*Node, error) {
	node, err := NewNode(pn.Name)
	if err != nil {
		return nil, err
	}
	for _, pp := range pn.Props {
		prop, err := materializeProp(pp)
		if err != nil {
			return nil, err
		}
		if err := node.Append(prop); err != nil {
			return nil, err
		}
	}
	for _, pc := range pn.Children {
		child, err := materialize(pc)
		if err != nil {
			return nil, err
		}
		if err := node.Append(child); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func materializeProp(pp dtstext.Prop) (Property, error) {
	switch pp.Kind {
	case dtstext.StringsProp:
		return NewPropStrings(pp.Name, pp.Strings...)
	case dtstext.WordsProp:
		return NewPropWords(pp.Name, pp.Words...)
	case dtstext.BytesProp:
		return NewPropBytes(pp.Name, pp.Bytes...)
	default:
		return NewPropEmpty(pp.Name)
	}
}

// ParseBlob walks a structure block back into a tree. stringsBlock is the
// deduplicated strings block property name offsets refer to; version is
// the structure-block layout version from the (externally parsed) file
// envelope. The walk ends with the matching end marker of the opening
// node; a trailing END tag, if present, is left unconsumed for the
// envelope's accounting.
func ParseBlob(structBlock, stringsBlock []byte, version int) (*Node, error) {
	if version < 1 || version > format.MaxVersion {
		return nil, fmt.Errorf("%w: %d", format.ErrUnsupported, version)
	}
	w := &blobWalker{
		blob:    structBlock,
		strings: stringsBlock,
		version: version,
	}
	node, err := w.parseNode()
	if err != nil {
		return nil, err
	}
	return node, nil
}

type blobWalker struct {
	blob    []byte
	strings []byte
	pos     int
	version int
}

func (w *blobWalker) readTag() (uint32, error) {
	if w.pos+format.TagSize > len(w.blob) {
		return 0, fmt.Errorf("%w: tag at offset %d", format.ErrTruncated, w.pos)
	}
	tag := format.ReadU32(w.blob, w.pos)
	w.pos += format.TagSize
	return tag, nil
}

// parseNode consumes a BEGIN_NODE record, its members, and the matching
// END_NODE.
func (w *blobWalker) parseNode() (*Node, error) {
	tag, err := w.readTag()
	if err != nil {
		return nil, err
	}
	if tag != format.TagBeginNode {
		return nil, fmt.Errorf("%w: 0x%08X at offset %d, want BEGIN_NODE", format.ErrBadTag, tag, w.pos-format.TagSize)
	}

	name, err := format.CString(w.blob, w.pos)
	if err != nil {
		return nil, err
	}
	w.pos += format.Align4(len(name) + 1)
	if name == "" {
		// Root begin markers carry a zero word in place of a name.
		name = format.RootName
	}
	node, err := NewNode(name)
	if err != nil {
		return nil, err
	}

	for {
		tag, err := w.readTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case format.TagEndNode:
			return node, nil
		case format.TagNop:
		case format.TagProp:
			prop, err := w.parseProp()
			if err != nil {
				return nil, err
			}
			if err := node.Append(prop); err != nil {
				return nil, err
			}
		case format.TagBeginNode:
			w.pos -= format.TagSize
			child, err := w.parseNode()
			if err != nil {
				return nil, err
			}
			if err := node.Append(child); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: 0x%08X at offset %d", format.ErrBadTag, tag, w.pos-format.TagSize)
		}
	}
}

// parseProp consumes a PROP record body; the tag word has been read.
func (w *blobWalker) parseProp() (Property, error) {
	headerEnd := w.pos + format.PropHeaderSize - format.TagSize
	if headerEnd > len(w.blob) {
		return nil, fmt.Errorf("%w: property header at offset %d", format.ErrTruncated, w.pos)
	}
	length := int(format.ReadU32(w.blob, w.pos))
	nameOff := int(format.ReadU32(w.blob, w.pos+4))
	w.pos = headerEnd

	// Legacy blobs align long payloads to 8 bytes.
	if w.version < format.LegacyAlignVersion && length >= 8 {
		w.pos = format.Align8(w.pos)
	}
	if w.pos+length > len(w.blob) {
		return nil, fmt.Errorf("%w: property payload at offset %d", format.ErrTruncated, w.pos)
	}
	raw := w.blob[w.pos : w.pos+length]
	w.pos += format.Align4(length)

	name, err := format.CString(w.strings, nameOff)
	if err != nil {
		return nil, err
	}
	return NewPropertyRaw(name, raw)
}

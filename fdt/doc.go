// Package fdt models a flattened device tree as an in-memory object graph
// and converts losslessly between that graph, its textual source form (DTS),
// and the packed binary structure block (DTB) consumed by boot firmware.
//
// # Overview
//
// A tree is built from two kinds of items: Node containers and typed
// properties. Properties come in four variants:
//
//   - PropEmpty: a bare flag with no payload
//   - PropStrings: an ordered list of NUL-terminated ASCII strings
//   - PropWords: an ordered list of big-endian 32-bit cells
//   - PropBytes: an ordered list of raw bytes
//
// Nodes own their properties and child nodes in declaration order; names are
// unique within a node. Items are created detached and attached with
// Node.Append, which sets the parent back-reference and enforces the
// uniqueness invariants.
//
// # Building a Tree
//
//	root, _ := fdt.NewNode("/")
//	soc, _ := fdt.NewNode("soc")
//	compat, _ := fdt.NewPropStrings("compatible", "acme,soc")
//	_ = soc.Append(compat)
//	_ = root.Append(soc)
//
// # Serializing
//
// ToDTS renders an item as DTS source text. ToDTB renders it as structure
// block records, threading an explicit Strings accumulator and byte offset
// through the walk so property name offsets always refer to the final,
// deduplicated strings block:
//
//	sb := fdt.NewStrings()
//	blob, end := root.ToDTB(sb, 0, format.MaxVersion)
//
// The caller wraps the returned structure block and sb.Bytes() in the file
// envelope (header, memory reservation map, block table); the envelope
// itself is outside this package.
//
// # Parsing
//
// ParseDTS parses DTS source text and ParseBlob walks a structure block
// (plus its strings block) back into a tree. Raw property payloads are
// classified by NewPropertyRaw: string-like payloads take priority over
// word-sized ones, matching the behavior of existing tooling.
//
// # Concurrency
//
// A tree is a single-owner document: no internal locking, no ambient state.
// Independent trees may be serialized concurrently because every walk owns
// its Strings accumulator.
package fdt

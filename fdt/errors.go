package fdt

import "errors"

var (
	// ErrInvalidName indicates an empty or non-printable item name.
	ErrInvalidName = errors.New("fdt: invalid name")
	// ErrInvalidType indicates an item of the wrong kind was supplied.
	ErrInvalidType = errors.New("fdt: invalid item type")
	// ErrDuplicateName indicates an insertion collision within a node.
	ErrDuplicateName = errors.New("fdt: duplicate name")
	// ErrSelfReference indicates a node was appended to itself.
	ErrSelfReference = errors.New("fdt: node appended to itself")
	// ErrValueOutOfRange indicates a value exceeding the configured bit width.
	ErrValueOutOfRange = errors.New("fdt: value out of range")
	// ErrIndexOutOfRange indicates an index past the end of a value list.
	ErrIndexOutOfRange = errors.New("fdt: index out of range")
)

// Package dtstext implements the DTS source text codec: tolerant input
// decoding, a small lexer, and a parser producing neutral parse structures
// the tree package materializes into typed items. It also owns the
// indentation helper the DTS emitters call.
package dtstext

const (
	// DirectiveVersion is the standard version directive at the top of a
	// DTS source file. Directives are recognized and skipped.
	DirectiveVersion = "/dts-v1/"

	// DirectiveMemReserve is the memory reservation directive. Its
	// arguments belong to the file envelope, so the parser skips them.
	DirectiveMemReserve = "/memreserve/"

	// CommentLine introduces a comment running to end of line.
	CommentLine = "//"

	// CommentOpen and CommentClose delimit a block comment.
	CommentOpen  = "/*"
	CommentClose = "*/"
)

// Structural characters.
const (
	BraceOpen    = '{'
	BraceClose   = '}'
	Semicolon    = ';'
	Assign       = '='
	CellsOpen    = '<'
	CellsClose   = '>'
	BytesOpen    = '['
	BytesClose   = ']'
	ListComma    = ','
	Quote        = '"'
	EscapeChar   = '\\'
	PathSep      = '/'
	LabelColon   = ':'
	ReferenceAmp = '&'
)

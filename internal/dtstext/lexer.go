package dtstext

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errUnterminatedString  = errors.New("dtstext: unterminated string")
	errUnterminatedComment = errors.New("dtstext: unterminated block comment")
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokBraceOpen
	tokBraceClose
	tokSemicolon
	tokAssign
	tokCellsOpen
	tokCellsClose
	tokBytesOpen
	tokBytesClose
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokBraceOpen:
		return "'{'"
	case tokBraceClose:
		return "'}'"
	case tokSemicolon:
		return "';'"
	case tokAssign:
		return "'='"
	case tokCellsOpen:
		return "'<'"
	case tokCellsClose:
		return "'>'"
	case tokBytesOpen:
		return "'['"
	case tokBytesClose:
		return "']'"
	case tokComma:
		return "','"
	default:
		return "unknown token"
	}
}

type token struct {
	kind tokenKind
	text string
	line int
}

type lexer struct {
	src  string
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

// next returns the next token, skipping whitespace and comments.
func (l *lexer) next() (token, error) {
	if err := l.skipSpace(); err != nil {
		return token{}, err
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}

	c := l.src[l.pos]
	switch c {
	case BraceOpen:
		return l.punct(tokBraceOpen), nil
	case BraceClose:
		return l.punct(tokBraceClose), nil
	case Semicolon:
		return l.punct(tokSemicolon), nil
	case Assign:
		return l.punct(tokAssign), nil
	case CellsOpen:
		return l.punct(tokCellsOpen), nil
	case CellsClose:
		return l.punct(tokCellsClose), nil
	case BytesOpen:
		return l.punct(tokBytesOpen), nil
	case BytesClose:
		return l.punct(tokBytesClose), nil
	case ListComma:
		return l.punct(tokComma), nil
	case Quote:
		return l.lexString()
	}
	if isIdentByte(c) {
		return l.lexIdent(), nil
	}
	return token{}, fmt.Errorf("dtstext: line %d: unexpected character %q", l.line, c)
}

func (l *lexer) punct(kind tokenKind) token {
	t := token{kind: kind, text: l.src[l.pos : l.pos+1], line: l.line}
	l.pos++
	return t
}

// skipSpace advances past whitespace, line comments, and block comments.
func (l *lexer) skipSpace() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			l.pos++
		case strings.HasPrefix(l.src[l.pos:], CommentLine):
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case strings.HasPrefix(l.src[l.pos:], CommentOpen):
			end := strings.Index(l.src[l.pos+len(CommentOpen):], CommentClose)
			if end < 0 {
				return fmt.Errorf("%w: line %d", errUnterminatedComment, l.line)
			}
			skipped := l.src[l.pos : l.pos+len(CommentOpen)+end+len(CommentClose)]
			l.line += strings.Count(skipped, "\n")
			l.pos += len(skipped)
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) lexString() (token, error) {
	start := l.line
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case Quote:
			l.pos++
			return token{kind: tokString, text: sb.String(), line: start}, nil
		case EscapeChar:
			if l.pos+1 < len(l.src) {
				l.pos++
				sb.WriteByte(l.src[l.pos])
				l.pos++
				continue
			}
			l.pos++
		case '\n':
			l.line++
			sb.WriteByte(c)
			l.pos++
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	return token{}, fmt.Errorf("%w: line %d", errUnterminatedString, start)
}

func (l *lexer) lexIdent() token {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && (isIdentByte(l.src[l.pos]) || l.src[l.pos] == ListComma) {
		l.pos++
	}
	return token{kind: tokIdent, text: l.src[start:l.pos], line: l.line}
}

// isIdentByte reports whether c may start or continue an identifier. Node
// and property names use the device tree character set; '/' is included so
// the root node name and directives lex as single identifiers. A comma
// never starts an identifier (it is the string list separator) but may
// continue one, as in vendor-prefixed property names.
func isIdentByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '.', '_', '+', '-', '@', '#', '?', PathSep:
		return true
	}
	return false
}

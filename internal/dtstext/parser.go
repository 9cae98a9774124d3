package dtstext

import (
	"fmt"
	"strconv"
	"strings"
)

// PropKind discriminates the neutral property value forms the parser
// produces.
type PropKind int

const (
	EmptyProp PropKind = iota
	StringsProp
	WordsProp
	BytesProp
)

// Prop is a parsed property before materialization into a typed variant.
type Prop struct {
	Name    string
	Kind    PropKind
	Strings []string
	Words   []uint32
	Bytes   []byte
}

// Node is a parsed node block.
type Node struct {
	Name     string
	Props    []Prop
	Children []*Node
}

// Parse decodes and parses DTS source into a neutral parse tree. The
// dialect covers what the emitters produce plus directives, comments, and
// the usual whitespace freedom: one top-level node block, properties with
// string list, cell list, byte string, or empty values, and nested child
// blocks. Labels and phandle references are not part of the dialect.
func Parse(data []byte) (*Node, error) {
	src, err := DecodeSource(data)
	if err != nil {
		return nil, err
	}
	p := &parser{lex: newLexer(src)}
	if err := p.skipDirectives(); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	root, err := p.parseNodeBody(name.text)
	if err != nil {
		return nil, err
	}
	end, err := p.next()
	if err != nil {
		return nil, err
	}
	if end.kind != tokEOF {
		return nil, fmt.Errorf("dtstext: line %d: trailing %s after root node", end.line, end.kind)
	}
	return root, nil
}

type parser struct {
	lex    *lexer
	peeked *token
}

func (p *parser) next() (token, error) {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t, nil
	}
	return p.lex.next()
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t, err := p.next()
	if err != nil {
		return token{}, err
	}
	if t.kind != kind {
		return token{}, fmt.Errorf("dtstext: line %d: expected %s, found %s", t.line, kind, t.kind)
	}
	return t, nil
}

// skipDirectives consumes leading directives such as /dts-v1/ and
// /memreserve/ together with their arguments and terminating semicolon.
func (p *parser) skipDirectives() error {
	for {
		t, err := p.peek()
		if err != nil {
			return err
		}
		if t.kind != tokIdent || len(t.text) < 2 || !strings.HasPrefix(t.text, "/") {
			return nil
		}
		if _, err := p.next(); err != nil {
			return err
		}
		for {
			t, err := p.next()
			if err != nil {
				return err
			}
			if t.kind == tokSemicolon {
				break
			}
			if t.kind == tokEOF {
				return fmt.Errorf("dtstext: unterminated directive")
			}
		}
	}
}

// parseNodeBody parses "{ contents };" after the node name.
func (p *parser) parseNodeBody(name string) (*Node, error) {
	if _, err := p.expect(tokBraceOpen); err != nil {
		return nil, err
	}
	node := &Node{Name: name}
	for {
		t, err := p.next()
		if err != nil {
			return nil, err
		}
		switch t.kind {
		case tokBraceClose:
			if _, err := p.expect(tokSemicolon); err != nil {
				return nil, err
			}
			return node, nil
		case tokIdent:
			if err := p.parseMember(node, t); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("dtstext: line %d: expected property or node name, found %s", t.line, t.kind)
		}
	}
}

// parseMember parses a single property or child node; name has been read.
func (p *parser) parseMember(node *Node, name token) error {
	t, err := p.next()
	if err != nil {
		return err
	}
	switch t.kind {
	case tokSemicolon:
		node.Props = append(node.Props, Prop{Name: name.text, Kind: EmptyProp})
		return nil
	case tokBraceOpen:
		p.peeked = &t
		child, err := p.parseNodeBody(name.text)
		if err != nil {
			return err
		}
		node.Children = append(node.Children, child)
		return nil
	case tokAssign:
		prop, err := p.parseValue(name.text)
		if err != nil {
			return err
		}
		if _, err := p.expect(tokSemicolon); err != nil {
			return err
		}
		node.Props = append(node.Props, prop)
		return nil
	default:
		return fmt.Errorf("dtstext: line %d: unexpected %s after %q", t.line, t.kind, name.text)
	}
}

// parseValue parses the right-hand side of a property assignment.
func (p *parser) parseValue(name string) (Prop, error) {
	t, err := p.next()
	if err != nil {
		return Prop{}, err
	}
	switch t.kind {
	case tokString:
		prop := Prop{Name: name, Kind: StringsProp, Strings: []string{t.text}}
		for {
			sep, err := p.peek()
			if err != nil {
				return Prop{}, err
			}
			if sep.kind != tokComma {
				return prop, nil
			}
			if _, err := p.next(); err != nil {
				return Prop{}, err
			}
			s, err := p.expect(tokString)
			if err != nil {
				return Prop{}, err
			}
			prop.Strings = append(prop.Strings, s.text)
		}
	case tokCellsOpen:
		prop := Prop{Name: name, Kind: WordsProp}
		for {
			t, err := p.next()
			if err != nil {
				return Prop{}, err
			}
			if t.kind == tokCellsClose {
				return prop, nil
			}
			if t.kind != tokIdent {
				return Prop{}, fmt.Errorf("dtstext: line %d: expected cell value, found %s", t.line, t.kind)
			}
			w, err := parseCell(t)
			if err != nil {
				return Prop{}, err
			}
			prop.Words = append(prop.Words, w)
		}
	case tokBytesOpen:
		prop := Prop{Name: name, Kind: BytesProp}
		for {
			t, err := p.next()
			if err != nil {
				return Prop{}, err
			}
			if t.kind == tokBytesClose {
				return prop, nil
			}
			if t.kind != tokIdent {
				return Prop{}, fmt.Errorf("dtstext: line %d: expected hex bytes, found %s", t.line, t.kind)
			}
			bs, err := parseHexBytes(t)
			if err != nil {
				return Prop{}, err
			}
			prop.Bytes = append(prop.Bytes, bs...)
		}
	default:
		return Prop{}, fmt.Errorf("dtstext: line %d: unsupported value for %q", t.line, name)
	}
}

// parseCell parses a cell value: 0x-prefixed hex or decimal, 32 bits.
func parseCell(t token) (uint32, error) {
	v, err := strconv.ParseUint(t.text, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("dtstext: line %d: bad cell value %q", t.line, t.text)
	}
	if v > 0xFFFFFFFF {
		return 0, fmt.Errorf("dtstext: line %d: cell value %q exceeds 32 bits", t.line, t.text)
	}
	return uint32(v), nil
}

// parseHexBytes parses a run of hex digits into bytes. Both the spaced
// two-digit form `[DE AD]` and the packed form `[DEAD]` are accepted.
func parseHexBytes(t token) ([]byte, error) {
	s := t.text
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("dtstext: line %d: odd hex byte string %q", t.line, s)
	}
	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("dtstext: line %d: bad hex byte %q", t.line, s[i:i+2])
		}
		out = append(out, byte(v))
	}
	return out, nil
}

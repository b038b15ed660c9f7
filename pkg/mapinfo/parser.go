/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package mapinfo tokenizes and parses PsyDoom-style MAPINFO configuration
// text into a flat, queryable block structure. Parsing is strict: the first
// violation aborts with an *Error carrying the offending text location.
package mapinfo

// Document is the result of parsing a MAPINFO text: every token wrapped for
// linking, plus the blocks referencing them. Tokens is allocated once at its
// final size, so links into it stay valid for the life of the document.
type Document struct {
	Source string
	Tokens []LinkedToken
	Blocks []Block
}

// BlocksOfType returns the blocks whose type matches name, ignoring case, in
// document order.
func (d *Document) BlocksOfType(name string) []*Block {
	var blocks []*Block
	for i := range d.Blocks {
		if d.Blocks[i].Type.Token.TextMatches(name) {
			blocks = append(blocks, &d.Blocks[i])
		}
	}
	return blocks
}

// Parse tokenizes and links text into a Document. The first violation of any
// kind aborts parsing with an *Error.
func Parse(text string) (doc *Document, err error) {
	defer catch(&err)

	tokens := scan(text)
	d := &Document{
		Source: text,
		// One allocation for every linked token. Blocks point into this
		// slice, so it must never grow.
		Tokens: make([]LinkedToken, len(tokens)),
	}
	for i := range tokens {
		d.Tokens[i].Token = tokens[i]
	}

	l := linker{doc: d}
	for l.pos < len(d.Tokens) {
		d.Blocks = append(d.Blocks, l.block())
	}

	return d, nil
}

// linker walks the token slice and reconstructs the block structure by
// pointing the tokens at each other.
type linker struct {
	doc *Document
	pos int
}

// next consumes the next token, or nil once the tokens are exhausted.
func (l *linker) next() *LinkedToken {
	if l.pos >= len(l.doc.Tokens) {
		return nil
	}
	t := &l.doc.Tokens[l.pos]
	l.pos++
	return t
}

// peek is next without consuming.
func (l *linker) peek() *LinkedToken {
	if l.pos >= len(l.doc.Tokens) {
		return nil
	}
	return &l.doc.Tokens[l.pos]
}

// block links one MAPINFO block.
//
// Grammar:
//
//	block  = identifier *header "{" *value "}"
//	header = identifier / string / number / "true" / "false"
func (l *linker) block() Block {
	typ := l.next()
	if typ.Token.Type != TOK_IDENTIFIER {
		raise(typ.Token.Begin, "unexpected token '%s', expected a block type", typ.Token.Lexeme)
	}

	b := Block{Type: typ}
	l.headers(&b)
	l.values(&b)
	return b
}

// headers links the block's header tokens, consuming through the opening
// brace.
func (l *linker) headers(b *Block) {
	var tail *LinkedToken
	for {
		t := l.next()
		if t == nil {
			raise(b.Type.Token.End, "unexpected end of input, expected '{'")
		}

		switch t.Token.Type {
		case TOK_OPEN_BLOCK:
			return
		case TOK_IDENTIFIER, TOK_STRING, TOK_NUMBER, TOK_TRUE, TOK_FALSE:
			if tail == nil {
				b.Header = t
			} else {
				tail.Next = t
			}
			tail = t
		default:
			raise(t.Token.Begin, "unexpected token '%s', expected a block header or '{'", t.Token.Lexeme)
		}
	}
}

// values links the block's value statements, consuming through the closing
// brace.
//
// Grammar:
//
//	value = identifier [ "=" data *( "," data ) ]
//	data  = identifier / string / number / "true" / "false"
func (l *linker) values(b *Block) {
	var tail *LinkedToken
	for {
		t := l.next()
		if t == nil {
			raise(b.Type.Token.End, "unexpected end of input, expected '}'")
		}

		switch t.Token.Type {
		case TOK_CLOSE_BLOCK:
			return
		case TOK_IDENTIFIER:
			if tail == nil {
				b.Values = t
			} else {
				tail.Next = t
			}
			tail = t
			l.data(t)
		default:
			raise(t.Token.Begin, "unexpected token '%s', expected a value name or '}'", t.Token.Lexeme)
		}
	}
}

// data links a value's data tokens. A value with no '=' is a flag and gets
// no data chain.
func (l *linker) data(name *LinkedToken) {
	if t := l.peek(); t == nil || t.Token.Type != TOK_EQUALS {
		return
	}
	l.pos++

	tail := name
	for {
		d := l.next()
		if d == nil {
			raise(tail.Token.End, "unexpected end of input, expected a value")
		}

		switch d.Token.Type {
		case TOK_IDENTIFIER, TOK_STRING, TOK_NUMBER, TOK_TRUE, TOK_FALSE:
			tail.NextData = d
			tail = d
		default:
			raise(d.Token.Begin, "unexpected token '%s', expected a value", d.Token.Lexeme)
		}

		if t := l.peek(); t == nil || t.Token.Type != TOK_NEXT_VALUE {
			return
		}
		l.pos++
	}
}

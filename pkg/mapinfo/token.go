/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package mapinfo

import (
	"go4.org/mem"
)

// TextLoc describes a location in the MAPINFO text. Line and Column are
// zero based; Column counts bytes from the start of the line. Offset is the
// byte offset into the source text.
type TextLoc struct {
	Line   int
	Column int
	Offset int
}

type TokenType int

const (
	// TOK_NULL marks the end of the token stream. It is never stored in a
	// parsed document.
	TOK_NULL TokenType = iota
	TOK_IDENTIFIER
	TOK_STRING
	TOK_NUMBER
	TOK_TRUE
	TOK_FALSE
	TOK_EQUALS
	TOK_OPEN_BLOCK
	TOK_CLOSE_BLOCK
	TOK_NEXT_VALUE
)

func (t TokenType) String() string {
	switch t {
	case TOK_NULL:
		return "null"
	case TOK_IDENTIFIER:
		return "identifier"
	case TOK_STRING:
		return "string"
	case TOK_NUMBER:
		return "number"
	case TOK_TRUE:
		return "true"
	case TOK_FALSE:
		return "false"
	case TOK_EQUALS:
		return "equals"
	case TOK_OPEN_BLOCK:
		return "open-block"
	case TOK_CLOSE_BLOCK:
		return "close-block"
	case TOK_NEXT_VALUE:
		return "next-value"
	}
	return "unknown"
}

// Token is a single token extracted from MAPINFO text. Lexeme is the full
// source span of the token; for strings that includes the quotes. Number
// holds the numeric value of a TOK_NUMBER token and is 0 otherwise.
type Token struct {
	Type   TokenType
	Begin  TextLoc
	End    TextLoc // one byte past the end of the token
	Number float64
	Lexeme string
}

// Text returns the textual content of the token. For strings the quotes are
// not part of the content; escape sequences are kept verbatim.
func (t Token) Text() string {
	if t.Type == TOK_STRING {
		return t.Lexeme[1 : len(t.Lexeme)-1]
	}
	return t.Lexeme
}

// TextMatches reports whether the token's content equals name, ignoring
// ASCII case. The whole content has to match: prefixes of either side
// do not.
func (t Token) TextMatches(name string) bool {
	return foldEqual(mem.S(t.Text()), mem.S(name))
}

// foldEqual compares two text views byte for byte, ignoring ASCII case.
func foldEqual(a, b mem.RO) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if asciiUpper(a.At(i)) != asciiUpper(b.At(i)) {
			return false
		}
	}
	return true
}

func asciiUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

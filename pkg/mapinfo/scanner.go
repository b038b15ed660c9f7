/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package mapinfo

import (
	"strconv"
	"strings"

	"go4.org/mem"
)

// Scanner produces MAPINFO tokens from Input. The zero value with Input set
// scans from the beginning.
type Scanner struct {
	Input  string
	Pos    int // byte offset of the next unread character
	Line   int // zero-based line of Pos
	Column int // zero-based byte column of Pos
}

// Emit the next Token found on Scanner.Input. At the end of the input a
// TOK_NULL token is returned; emitting past it keeps returning TOK_NULL.
func (s *Scanner) Emit() Token {
	s.skipBlanks()

	begin := s.loc()
	if s.Pos >= len(s.Input) {
		return Token{Type: TOK_NULL, Begin: begin, End: begin}
	}

	var t Token
	switch s.Input[s.Pos] {
	case '{':
		t.Type = TOK_OPEN_BLOCK
		s.advance(1)
	case '}':
		t.Type = TOK_CLOSE_BLOCK
		s.advance(1)
	case '=':
		t.Type = TOK_EQUALS
		s.advance(1)
	case ',':
		t.Type = TOK_NEXT_VALUE
		s.advance(1)
	case '"':
		size := s.matchString()
		if size == 0 {
			raise(begin, "unterminated string")
		}
		t.Type = TOK_STRING
		s.advance(size)
	default:
		return s.emitWord(begin)
	}

	t.Begin = begin
	t.End = s.loc()
	t.Lexeme = s.Input[begin.Offset:s.Pos]
	return t
}

// emitWord scans and classifies a bare word. Words that look numeric must
// parse as numbers; anything else that is not a boolean literal is an
// identifier.
func (s *Scanner) emitWord(begin TextLoc) Token {
	size := s.matchWord()
	word := s.Input[s.Pos : s.Pos+size]

	t := Token{Begin: begin, Lexeme: word}
	switch {
	case foldEqual(mem.S(word), mem.S("true")):
		t.Type = TOK_TRUE
	case foldEqual(mem.S(word), mem.S("false")):
		t.Type = TOK_FALSE
	case looksNumeric(word):
		n, ok := parseNumber(word)
		if !ok {
			raise(begin, "malformed number '%s'", word)
		}
		t.Type = TOK_NUMBER
		t.Number = n
	default:
		t.Type = TOK_IDENTIFIER
	}

	s.advance(size)
	t.End = s.loc()
	return t
}

// matchString returns the byte length of the string starting at Pos,
// including both quotes, or 0 if the string never closes. A backslash
// escapes the character after it.
//
// Grammar:
//
//	string  = DQUOTE *(escaped / CHAR) DQUOTE
//	escaped = "\" CHAR
func (s *Scanner) matchString() int {
	for i := s.Pos + 1; i < len(s.Input); i++ {
		switch s.Input[i] {
		case '\\':
			i++
		case '"':
			return i + 1 - s.Pos
		}
	}

	return 0
}

// matchWord returns the byte length of the bare word starting at Pos. A word
// runs until whitespace, a structural character, a quote, or a comment.
//
// Grammar:
//
//	word = 1*(CHAR except WSP / "{" / "}" / "=" / "," / DQUOTE / "//")
func (s *Scanner) matchWord() int {
	i := s.Pos
	for i < len(s.Input) && !wordEndsAt(s.Input, i) {
		i++
	}

	return i - s.Pos
}

func wordEndsAt(input string, i int) bool {
	switch input[i] {
	case '{', '}', '=', ',', '"':
		return true
	case '/':
		// A lone slash stays part of the word; two start a comment.
		return strings.HasPrefix(input[i:], "//")
	}
	return isSpace(input[i])
}

// skipBlanks advances past whitespace and single-line comments.
func (s *Scanner) skipBlanks() {
	for s.Pos < len(s.Input) {
		switch {
		case isSpace(s.Input[s.Pos]):
			s.advance(1)
		case strings.HasPrefix(s.Input[s.Pos:], "//"):
			for s.Pos < len(s.Input) && s.Input[s.Pos] != '\n' {
				s.advance(1)
			}
		default:
			return
		}
	}
}

// advance moves Pos forward n bytes, keeping the line and column in step.
func (s *Scanner) advance(n int) {
	for ; n > 0; n-- {
		if s.Input[s.Pos] == '\n' {
			s.Line++
			s.Column = 0
		} else {
			s.Column++
		}
		s.Pos++
	}
}

func (s *Scanner) loc() TextLoc {
	return TextLoc{Line: s.Line, Column: s.Column, Offset: s.Pos}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// looksNumeric reports whether a word is committed to being a number: it
// starts with a digit or a sign. Such a word that fails to parse is a fatal
// lexical error rather than an identifier.
func looksNumeric(word string) bool {
	c := word[0]
	return c == '+' || c == '-' || ('0' <= c && c <= '9')
}

// parseNumber converts a word to its numeric value. A 0x or 0X prefix reads
// the rest as a hexadecimal integer; everything else is a decimal integer or
// float.
func parseNumber(word string) (float64, bool) {
	digits, negative := word, false
	switch digits[0] {
	case '+':
		digits = digits[1:]
	case '-':
		digits, negative = digits[1:], true
	}

	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		u, err := strconv.ParseUint(digits[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		n := float64(u)
		if negative {
			n = -n
		}
		return n, true
	}

	n, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Tokenize scans text into its complete token stream. The TOK_NULL token
// marking the end of the input is not part of the result. The first lexical
// violation aborts scanning with an *Error.
func Tokenize(text string) (tokens []Token, err error) {
	defer catch(&err)
	return scan(text), nil
}

func scan(text string) []Token {
	var tokens []Token

	s := Scanner{Input: text}
	for {
		t := s.Emit()
		if t.Type == TOK_NULL {
			return tokens
		}
		tokens = append(tokens, t)
	}
}

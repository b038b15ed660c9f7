/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package mapinfo

// LinkedToken is a token woven into the parsed block structure.
//
// Next has one of two meanings: for a block header token it points to the
// next header token, and for a value name it points to the next value name in
// the block. NextData points a value name at its first data token; the data
// tokens of an array value link to each other the same way.
type LinkedToken struct {
	Token    Token
	Next     *LinkedToken
	NextData *LinkedToken
}

// NextLen returns how many tokens are ahead by following Next.
func (t *LinkedToken) NextLen() int {
	count := 0
	for cur := t.Next; cur != nil; cur = cur.Next {
		count++
	}
	return count
}

// DataLen returns how many tokens are ahead by following NextData.
func (t *LinkedToken) DataLen() int {
	count := 0
	for cur := t.NextData; cur != nil; cur = cur.NextData {
		count++
	}
	return count
}

// Data returns the full data chain of a value in source order. A flag with
// no '=' has no data.
func (t *LinkedToken) Data() []*LinkedToken {
	var data []*LinkedToken
	for cur := t.NextData; cur != nil; cur = cur.NextData {
		data = append(data, cur)
	}
	return data
}

// Block is one parsed MAPINFO block. Type is never nil; Header and Values
// are nil for a block without header tokens or without values.
type Block struct {
	Type   *LinkedToken
	Header *LinkedToken
	Values *LinkedToken
}

// HeaderCount returns the number of header tokens.
func (b *Block) HeaderCount() int {
	if b.Header == nil {
		return 0
	}
	return 1 + b.Header.NextLen()
}

// HeaderAt returns the header token at index, or nil when the index is out
// of range.
func (b *Block) HeaderAt(index int) *LinkedToken {
	if index < 0 {
		return nil
	}
	t := b.Header
	for ; t != nil && index > 0; t = t.Next {
		index--
	}
	return t
}

// RequireHeaders aborts with a fatal error unless the block has at least min
// header tokens.
func (b *Block) RequireHeaders(min int) {
	if b.HeaderCount() < min {
		b.headerError()
	}
}

// MustHeaderAt returns the header token at index, aborting with a fatal
// error when the block has no such header.
func (b *Block) MustHeaderAt(index int) *LinkedToken {
	t := b.HeaderAt(index)
	if t == nil {
		b.headerError()
	}
	return t
}

// MustHeaderNumber returns the header token at index as a number. Boolean
// literals convert to 1 and 0; any other non-number header is a fatal error.
func (b *Block) MustHeaderNumber(index int) float64 {
	t := b.MustHeaderAt(index)
	switch t.Token.Type {
	case TOK_NUMBER:
		return t.Token.Number
	case TOK_TRUE:
		return 1
	case TOK_FALSE:
		return 0
	}

	b.headerError()
	return 0
}

// MustHeaderInt is MustHeaderNumber truncated to an int.
func (b *Block) MustHeaderInt(index int) int {
	return int(b.MustHeaderNumber(index))
}

// MustHeaderString returns the text of the header token at index, aborting
// with a fatal error when the block has no such header. Any token type
// serves: identifiers are allowed to be used as strings.
func (b *Block) MustHeaderString(index int) string {
	return b.MustHeaderAt(index).Token.Text()
}

// headerError reports an invalid block header at the end of the block's type
// token.
func (b *Block) headerError() {
	raise(b.Type.Token.End, "'%s' block has an invalid header", b.Type.Token.Text())
}

// Value returns the named value, matching the name without regard to case,
// or nil when the block has no such value. The first match in source order
// wins.
func (b *Block) Value(name string) *LinkedToken {
	for cur := b.Values; cur != nil; cur = cur.Next {
		if cur.Token.TextMatches(name) {
			return cur
		}
	}
	return nil
}

// NumberValue returns the named value as a number, or def when the value is
// absent or its data is not numeric. Boolean literals convert to 1 and 0. A
// flag with no data reads as 1. For an array value only the first entry is
// consulted.
func (b *Block) NumberValue(name string, def float64) float64 {
	v := b.Value(name)
	if v == nil {
		return def
	}

	data := v.NextData
	if data == nil {
		// A value with no data is a flag that is set.
		return 1
	}

	switch data.Token.Type {
	case TOK_NUMBER:
		return data.Token.Number
	case TOK_TRUE:
		return 1
	case TOK_FALSE:
		return 0
	}
	return def
}

// IntValue is NumberValue truncated to an int.
func (b *Block) IntValue(name string, def int) int {
	return int(b.NumberValue(name, float64(def)))
}

// StringValue returns the text of the named value, or def when the value is
// absent or is a flag with no data. For an array value only the first entry
// is consulted.
func (b *Block) StringValue(name string, def string) string {
	v := b.Value(name)
	if v == nil || v.NextData == nil {
		return def
	}
	return v.NextData.Token.Text()
}

// Raise aborts with a fatal error at the start of the block.
func (b *Block) Raise(format string, args ...any) {
	raise(b.Type.Token.Begin, format, args...)
}

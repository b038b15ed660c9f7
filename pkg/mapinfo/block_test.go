/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package mapinfo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
)

// mustParseBlock parses input and returns its only block.
func mustParseBlock(t *testing.T, input string) *Block {
	t.Helper()
	doc, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("wanted 1 block, got %d", len(doc.Blocks))
	}
	return &doc.Blocks[0]
}

// catchFatal runs fn and returns the fatal error it raised.
func catchFatal(t *testing.T, fn func()) (perr *Error) {
	t.Helper()
	defer func() {
		e := recover()
		if e == nil {
			t.Fatal("expected a fatal error")
		}
		var ok bool
		if perr, ok = e.(*Error); !ok {
			t.Fatalf("panic value is %T, want *Error", e)
		}
	}()
	fn()
	return nil
}

func TestHeaderAccess(t *testing.T) {
	b := mustParseBlock(t, `map 23 "Ballistyx" true false { }`)

	if got := b.HeaderCount(); got != 4 {
		t.Fatalf("wanted 4 header tokens, got %d", got)
	}
	if got := b.MustHeaderNumber(0); got != 23 {
		t.Errorf("header 0 should be 23, got %v", got)
	}
	if got := b.MustHeaderInt(0); got != 23 {
		t.Errorf("header 0 should be 23, got %d", got)
	}
	if got := b.MustHeaderString(1); got != "Ballistyx" {
		t.Errorf("header 1 should be Ballistyx, got %s", got)
	}

	// Identifiers and numbers read as strings too.
	if got := b.MustHeaderString(0); got != "23" {
		t.Errorf("header 0 as a string should be 23, got %s", got)
	}

	// Boolean literals coerce to numbers.
	if got := b.MustHeaderNumber(2); got != 1 {
		t.Errorf("true header should read as 1, got %v", got)
	}
	if got := b.MustHeaderNumber(3); got != 0 {
		t.Errorf("false header should read as 0, got %v", got)
	}

	if b.HeaderAt(4) != nil {
		t.Error("header 4 does not exist")
	}
	if b.HeaderAt(-1) != nil {
		t.Error("negative indexes have no header")
	}

	b.RequireHeaders(4)
}

func TestHeaderTruncation(t *testing.T) {
	b := mustParseBlock(t, `map 3.7 { }`)
	if got := b.MustHeaderInt(0); got != 3 {
		t.Errorf("3.7 should truncate to 3, got %d", got)
	}

	b = mustParseBlock(t, `map -3.7 { }`)
	if got := b.MustHeaderInt(0); got != -3 {
		t.Errorf("-3.7 should truncate toward zero, got %d", got)
	}
}

func TestHeaderErrors(t *testing.T) {
	// The type token of 'map' ends at line 0 column 3.
	b := mustParseBlock(t, `map "X" { }`)

	mtest.MustPanic(t, func() { b.MustHeaderAt(1) })
	mtest.MustPanic(t, func() { b.MustHeaderNumber(0) })
	mtest.MustPanic(t, func() { b.RequireHeaders(2) })

	perr := catchFatal(t, func() { b.MustHeaderAt(5) })
	if perr.Loc.Line != 0 || perr.Loc.Column != 3 {
		t.Errorf("header errors report at the type token end, got %d:%d", perr.Loc.Line, perr.Loc.Column)
	}
	if perr.Msg != "'map' block has an invalid header" {
		t.Errorf("unexpected message %q", perr.Msg)
	}

	// A string header is not a number.
	perr = catchFatal(t, func() { b.MustHeaderNumber(0) })
	if perr.Loc.Line != 0 || perr.Loc.Column != 3 {
		t.Errorf("type errors report at the type token end, got %d:%d", perr.Loc.Line, perr.Loc.Column)
	}

	// No headers at all.
	empty := mustParseBlock(t, `clearepisodes { }`)
	mtest.MustPanic(t, func() { empty.MustHeaderAt(0) })
	mtest.MustPanic(t, func() { empty.RequireHeaders(1) })
	empty.RequireHeaders(0)
}

func TestValueLookup(t *testing.T) {
	b := mustParseBlock(t, `map {
	Music = 3, 4, 5
	NoIntermission
	Name = "First"
	Name = "Second"
}`)

	for _, name := range []string{"Music", "music", "MUSIC", "mUsIc"} {
		if b.Value(name) == nil {
			t.Errorf("lookup of %s should find the Music value", name)
		}
	}

	if b.Value("Musi") != nil {
		t.Error("prefixes must not match")
	}
	if b.Value("Musics") != nil {
		t.Error("longer names must not match")
	}
	if b.Value("Secret") != nil {
		t.Error("Secret was never defined")
	}

	// The first definition in source order wins.
	if got := b.StringValue("name", ""); got != "First" {
		t.Errorf("wanted First, got %s", got)
	}
}

func TestNumberValues(t *testing.T) {
	b := mustParseBlock(t, `map {
	Music = 3, 4, 5
	Par = "fast"
	Secret = true
	Open = false
	NoIntermission
}`)

	if got := b.NumberValue("Music", -1); got != 3 {
		t.Errorf("array values read their first entry, got %v", got)
	}
	if got := b.IntValue("Music", -1); got != 3 {
		t.Errorf("wanted 3, got %d", got)
	}
	if got := b.IntValue("Missing", -1); got != -1 {
		t.Errorf("missing values read as the default, got %d", got)
	}
	if got := b.NumberValue("Par", -1); got != -1 {
		t.Errorf("non-numeric data reads as the default, got %v", got)
	}
	if got := b.NumberValue("Secret", -1); got != 1 {
		t.Errorf("true data reads as 1, got %v", got)
	}
	if got := b.NumberValue("Open", -1); got != 0 {
		t.Errorf("false data reads as 0, got %v", got)
	}
}

func TestFlagValues(t *testing.T) {
	b := mustParseBlock(t, `map { NoIntermission }`)

	// A bare flag reads as 1 for numbers, regardless of name case.
	if got := b.NumberValue("NoIntermission", 0); got != 1 {
		t.Errorf("a bare flag reads as 1, got %v", got)
	}
	if got := b.NumberValue("noiNTERmission", 0); got != 1 {
		t.Errorf("case must not matter, got %v", got)
	}
	if got := b.IntValue("NOINTERMISSION", 0); got != 1 {
		t.Errorf("wanted 1, got %d", got)
	}

	// For strings the flag carries no text, so the default applies.
	if got := b.StringValue("NoIntermission", "fallback"); got != "fallback" {
		t.Errorf("a bare flag has no string value, got %s", got)
	}
}

func TestStringValues(t *testing.T) {
	b := mustParseBlock(t, `map {
	Name = "The Gauntlet, Part 2"
	SkyPic = SKY02
	Music = 3
}`)

	if got := b.StringValue("Name", ""); got != "The Gauntlet, Part 2" {
		t.Errorf("quoted text is taken verbatim, got %q", got)
	}
	if got := b.StringValue("SkyPic", ""); got != "SKY02" {
		t.Errorf("identifier data reads as its text, got %q", got)
	}
	if got := b.StringValue("Music", ""); got != "3" {
		t.Errorf("number data reads as its text, got %q", got)
	}
	if got := b.StringValue("Missing", "none"); got != "none" {
		t.Errorf("wanted none, got %q", got)
	}
}

// Lookup walks the whole value chain, so a name at the end of a large block
// is found just like one at the front.
func TestValueLookupLargeBlock(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("map 1 {\n")
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&sb, "\tentry%03d = %d\n", i, i)
	}
	sb.WriteString("\tTarget = 7\n}")

	b := mustParseBlock(t, sb.String())

	if got := b.IntValue("TARGET", -1); got != 7 {
		t.Errorf("wanted 7, got %d", got)
	}
	if got := b.IntValue("entry499", -1); got != 499 {
		t.Errorf("wanted 499, got %d", got)
	}
	if got := b.IntValue("entry", -1); got != -1 {
		t.Errorf("a bare prefix must not match, got %d", got)
	}
	if got := 1 + b.Values.NextLen(); got != 501 {
		t.Errorf("wanted 501 values, got %d", got)
	}
}

func TestBlockRaise(t *testing.T) {
	input := "\n  map 2 { }"
	b := mustParseBlock(t, input)

	perr := catchFatal(t, func() { b.Raise("unsupported map number %d", 2) })
	if perr.Loc.Line != 1 || perr.Loc.Column != 2 {
		t.Errorf("Raise reports at the block start, got %d:%d", perr.Loc.Line, perr.Loc.Column)
	}
	if perr.Msg != "unsupported map number 2" {
		t.Errorf("unexpected message %q", perr.Msg)
	}
	if want := "line 2 column 3: unsupported map number 2"; perr.Error() != want {
		t.Errorf("wanted %q, got %q", want, perr.Error())
	}
}

/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package mapinfo

import "testing"

func TestTextMatches(t *testing.T) {
	tests := []struct {
		token Token
		name  string
		want  bool
	}{
		{Token{Type: TOK_IDENTIFIER, Lexeme: "Music"}, "Music", true},
		{Token{Type: TOK_IDENTIFIER, Lexeme: "Music"}, "MUSIC", true},
		{Token{Type: TOK_IDENTIFIER, Lexeme: "Music"}, "music", true},
		{Token{Type: TOK_IDENTIFIER, Lexeme: "Music"}, "Musi", false},
		{Token{Type: TOK_IDENTIFIER, Lexeme: "Music"}, "Musics", false},
		{Token{Type: TOK_IDENTIFIER, Lexeme: "Music"}, "", false},
		{Token{Type: TOK_IDENTIFIER, Lexeme: ""}, "", true},

		// A string token matches on its content, not its quoted lexeme.
		{Token{Type: TOK_STRING, Lexeme: `"My Map"`}, "my map", true},
		{Token{Type: TOK_STRING, Lexeme: `"My Map"`}, `"my map"`, false},

		// Case folding is ASCII only; bytes outside the letters compare
		// verbatim.
		{Token{Type: TOK_IDENTIFIER, Lexeme: "MAP_01"}, "map_01", true},
		{Token{Type: TOK_IDENTIFIER, Lexeme: "MAP-01"}, "map_01", false},
	}

	for _, test := range tests {
		if got := test.token.TextMatches(test.name); got != test.want {
			t.Errorf("%q.TextMatches(%q) = %v, want %v", test.token.Lexeme, test.name, got, test.want)
		}
	}
}

func TestTokenText(t *testing.T) {
	tokens, err := Tokenize(`map "My Map" 5 true {`)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"map", "My Map", "5", "true", "{"}
	for i, tok := range tokens {
		if tok.Text() != want[i] {
			t.Errorf("token %d text should be %q, got %q", i, want[i], tok.Text())
		}
	}
}

/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package render

import (
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/google/go-cmp/cmp"
	"github.com/wadtools/mapq/pkg/mapinfo"
)

const sample = `episode 1 "Hell To Pay" {
	picname = EP1
	NoIntermission
}
map 2 "The Gauntlet, Part 2" {
	Music = 3, 4, 5
}`

func parseSample(t *testing.T) *mapinfo.Document {
	t.Helper()
	doc, err := mapinfo.Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestBlockTable(t *testing.T) {
	got := BlockTable(parseSample(t))

	want := [][]string{
		{"episode", "1 Hell To Pay", "2"},
		{"map", "2 The Gauntlet, Part 2", "1"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestValueTable(t *testing.T) {
	got := ValueTable(parseSample(t))

	want := [][]string{
		{"episode", "picname", "EP1"},
		{"episode", "NoIntermission", ""},
		{"map", "Music", "3, 4, 5"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockDetail(t *testing.T) {
	doc := parseSample(t)
	got := BlockDetail(doc.BlocksOfType("map")[0])

	want := [][]string{
		{"type", "map"},
		{"header 0", "2"},
		{"header 1", "The Gauntlet, Part 2"},
		{"Music", "3, 4, 5"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenTable(t *testing.T) {
	doc, err := mapinfo.Parse(`map "X" {}`)
	if err != nil {
		t.Fatal(err)
	}
	got := TokenTable(doc)

	want := [][]string{
		{"identifier", "map", "1:1", "1:4"},
		{"string", "X", "1:5", "1:8"},
		{"open-block", "{", "1:9", "1:10"},
		{"close-block", "}", "1:10", "1:11"},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVWriter(t *testing.T) {
	var sb strings.Builder
	NewOutputWriter(&sb, "csv").Write(ValueTable(parseSample(t)))

	want := strings.Join([]string{
		"block,value,data",
		"episode,picname,EP1",
		"episode,NoIntermission,",
		`map,Music,"3, 4, 5"`,
		"",
	}, "\n")
	if got := sb.String(); got != want {
		t.Errorf("csv mismatch:\n%s", diff.LineDiff(want, got))
	}
}

func TestJSONWriter(t *testing.T) {
	var sb strings.Builder
	NewOutputWriter(&sb, "json").Write(Table{
		Cols: []string{"block", "value"},
		Rows: [][]string{{"map", "Music"}},
	})

	want := `{"columns":["block","value"],"rows":[["map","Music"]]}` + "\n"
	if got := sb.String(); got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestTextWriter(t *testing.T) {
	var sb strings.Builder
	NewOutputWriter(&sb, "text").Write(BlockTable(parseSample(t)))

	out := sb.String()
	for _, cell := range []string{"BLOCK", "HEADERS", "episode", "Hell To Pay"} {
		if !strings.Contains(out, cell) {
			t.Errorf("text table should contain %q:\n%s", cell, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines < 4 {
		t.Errorf("text table looks too short:\n%s", out)
	}
}

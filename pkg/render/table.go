/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package render

import (
	"fmt"
	"strings"

	"github.com/wadtools/mapq/pkg/mapinfo"
)

// Table is a Printable with precomputed rows.
type Table struct {
	Cols []string   `json:"columns"`
	Rows [][]string `json:"rows"`
}

func (t Table) Headers() []string  { return t.Cols }
func (t Table) Values() [][]string { return t.Rows }

// BlockTable summarizes a document one row per block.
func BlockTable(doc *mapinfo.Document) Table {
	t := Table{Cols: []string{"block", "headers", "values"}}

	for i := range doc.Blocks {
		b := &doc.Blocks[i]

		var headers []string
		for h := b.Header; h != nil; h = h.Next {
			headers = append(headers, h.Token.Text())
		}

		count := 0
		for v := b.Values; v != nil; v = v.Next {
			count++
		}

		t.Rows = append(t.Rows, []string{
			b.Type.Token.Text(),
			strings.Join(headers, " "),
			fmt.Sprintf("%d", count),
		})
	}
	return t
}

// ValueTable lists every value of every block, one row per value. Array
// entries are joined with commas; a flag with no data has an empty data
// cell.
func ValueTable(doc *mapinfo.Document) Table {
	t := Table{Cols: []string{"block", "value", "data"}}

	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		for v := b.Values; v != nil; v = v.Next {
			var data []string
			for _, e := range v.Data() {
				data = append(data, e.Token.Text())
			}

			t.Rows = append(t.Rows, []string{
				b.Type.Token.Text(),
				v.Token.Text(),
				strings.Join(data, ", "),
			})
		}
	}
	return t
}

// BlockDetail renders a single block: its header tokens by index, then each
// value with its data.
func BlockDetail(b *mapinfo.Block) Table {
	t := Table{Cols: []string{"field", "data"}}

	t.Rows = append(t.Rows, []string{"type", b.Type.Token.Text()})
	for i := 0; i < b.HeaderCount(); i++ {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("header %d", i),
			b.HeaderAt(i).Token.Text(),
		})
	}
	for v := b.Values; v != nil; v = v.Next {
		var data []string
		for _, e := range v.Data() {
			data = append(data, e.Token.Text())
		}
		t.Rows = append(t.Rows, []string{v.Token.Text(), strings.Join(data, ", ")})
	}
	return t
}

// TokenTable lists the raw token stream with source spans.
func TokenTable(doc *mapinfo.Document) Table {
	t := Table{Cols: []string{"type", "text", "begin", "end"}}

	for i := range doc.Tokens {
		tok := doc.Tokens[i].Token
		t.Rows = append(t.Rows, []string{
			tok.Type.String(),
			tok.Text(),
			fmt.Sprintf("%d:%d", tok.Begin.Line+1, tok.Begin.Column+1),
			fmt.Sprintf("%d:%d", tok.End.Line+1, tok.End.Column+1),
		})
	}
	return t
}

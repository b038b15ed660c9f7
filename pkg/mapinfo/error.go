/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package mapinfo

import (
	"fmt"
	"strings"
)

// Error is a fatal MAPINFO parse error. Every violation is fatal: the first
// one aborts parsing and is reported with the location that produced it.
// Line and column are zero based in Loc and one based in messages.
type Error struct {
	Loc TextLoc
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d column %d: %s", e.Loc.Line+1, e.Loc.Column+1, e.Msg)
}

// FormatError renders the error against its source text, pointing a caret at
// the offending location.
func (e *Error) FormatError(src string) string {
	errorString := fmt.Sprintf("error parsing MAPINFO at line %d column %d:\n", e.Loc.Line+1, e.Loc.Column+1)

	line := sourceLine(src, e.Loc.Line)
	errorString += line
	errorString += fmt.Sprintf("\n%s^ ", strings.Repeat(" ", caretColumn(line, e.Loc.Column)))
	errorString += fmt.Sprintf("%s\n", e.Msg)
	return errorString
}

// sourceLine extracts the zero-based nth line of src, without its newline.
func sourceLine(src string, n int) string {
	for ; n > 0; n-- {
		nl := strings.IndexByte(src, '\n')
		if nl < 0 {
			return ""
		}
		src = src[nl+1:]
	}
	if nl := strings.IndexByte(src, '\n'); nl >= 0 {
		src = src[:nl]
	}
	return strings.TrimSuffix(src, "\r")
}

// caretColumn clamps a byte column into the rendered line so the caret never
// drifts past a truncated or shorter-than-reported line.
func caretColumn(line string, col int) int {
	if col > len(line) {
		return len(line)
	}
	if col < 0 {
		return 0
	}
	return col
}

// raise aborts parsing with a fatal error at loc. Tokenize and Parse recover
// it into a returned *Error; the Must and Require query accessors let it
// escape so the caller can decide load policy.
func raise(loc TextLoc, format string, args ...any) {
	panic(&Error{Loc: loc, Msg: fmt.Sprintf(format, args...)})
}

// catch converts a raised *Error into a returned error. Any other panic is
// not ours and keeps going.
func catch(errp *error) {
	if e := recover(); e != nil {
		perr, ok := e.(*Error)
		if !ok {
			panic(e)
		}
		*errp = perr
	}
}

// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package textpos provides types for locating text within a line-oriented
// document, such as a single line typed into a read-print loop or a script
// file fed to one.
package textpos

import "fmt"

// Line is the line number of some text in a document.
type Line struct {
	value int
}

// LineFromOffset returns a Line object from an offset value (where 0 indicates
// the first line).
func LineFromOffset(o int) Line { return LineFromOrdinal(o + 1) }

// LineFromOrdinal returns a Line object from a positive value.
func LineFromOrdinal(o int) Line { return Line{o} }

// Offset returns the line number where 0 indicates the first line.
func (n Line) Offset() int { return n.Ordinal() - 1 }

// Ordinal returns the line number where 1 indicates the first line.
func (n Line) Ordinal() int { return n.value }

// String returns the ordinal value encoded as a base 10 string.
func (n Line) String() string { return fmt.Sprintf("%d", n.Ordinal()) }

// IsValid reports if the line value is valid (ordinal >= 1).
func (n Line) IsValid() bool { return n.Ordinal() > 0 }

// Column is a byte offset within a line of text.
type Column struct {
	value int
}

// ColumnFromOffset returns a Column object from an offset value (where 0
// indicates the first column).
func ColumnFromOffset(o int) Column { return ColumnFromOrdinal(o + 1) }

// ColumnFromOrdinal returns a Column object from an ordinal value (where 1
// indicates the first column).
func ColumnFromOrdinal(o int) Column { return Column{o} }

// Offset returns the Column number where 0 indicates the first Column.
func (n Column) Offset() int { return n.Ordinal() - 1 }

// Ordinal returns the Column number where 1 indicates the first Column.
func (n Column) Ordinal() int { return n.value }

// String returns the ordinal value encoded as a base 10 string.
func (n Column) String() string { return fmt.Sprintf("%d", n.Ordinal()) }

// IsValid reports if the column value is valid (ordinal >= 1).
func (n Column) IsValid() bool { return n.Ordinal() > 0 }

// LineColumn is a two dimensional textual position (line, column).
type LineColumn struct {
	line Line
	col  Column
}

// MakeLineColumn returns a new LineColumn tuple.
func MakeLineColumn(line Line, col Column) LineColumn {
	return LineColumn{line, col}
}

// Line returns the line for the tuple.
func (p LineColumn) Line() Line { return p.line }

// Column returns the column for the tuple.
func (p LineColumn) Column() Column { return p.col }

// IsValid reports if both the line and column are valid.
func (p LineColumn) IsValid() bool { return p.line.IsValid() && p.col.IsValid() }

// String returns "lineOrdinal:columnOrdinal". Invalid components are printed
// as "-".
func (p LineColumn) String() string {
	l, c := "-", "-"
	if p.Line().IsValid() {
		l = p.Line().String()
	}
	if p.Column().IsValid() {
		c = p.Column().String()
	}
	return fmt.Sprintf("%s:%s", l, c)
}

// Position is a LineColumn within a named document along with the byte offset
// it was computed from.
type Position struct {
	documentName string
	offset       int
	lc           LineColumn
}

// DocumentName returns the name of the document, which may be empty.
func (p Position) DocumentName() string { return p.documentName }

// Offset returns the byte offset of the position within the document.
func (p Position) Offset() int { return p.offset }

// LineColumn returns the line and column of the position.
func (p Position) LineColumn() LineColumn { return p.lc }

// IsValid reports whether the position refers to a real location.
func (p Position) IsValid() bool { return p.lc.IsValid() }

// String returns "name:line:col", or "line:col" if the document is unnamed.
func (p Position) String() string {
	if p.documentName == "" {
		return p.lc.String()
	}
	return fmt.Sprintf("%s:%s", p.documentName, p.lc)
}

// PositionRange is a half-open interval [Start, End) within a document.
type PositionRange struct {
	start, end Position
}

// MakePositionRange returns a range spanning from start to end.
func MakePositionRange(start, end Position) PositionRange {
	return PositionRange{start, end}
}

// Start returns the first position in the range.
func (r PositionRange) Start() Position { return r.start }

// End returns the position just past the range.
func (r PositionRange) End() Position { return r.end }

// String returns a concise, human-readable form of the range such as
// "a.mal:1:3-7" or "a.mal:1:3-2:1" for a range crossing lines.
func (r PositionRange) String() string {
	rangePart := fmt.Sprintf("%s-", r.start.lc)
	if r.start.lc.Line() == r.end.lc.Line() {
		rangePart += r.end.lc.Column().String()
	} else {
		rangePart += r.end.lc.String()
	}
	if r.start.documentName == "" {
		return rangePart
	}
	return fmt.Sprintf("%s:%s", r.start.documentName, rangePart)
}

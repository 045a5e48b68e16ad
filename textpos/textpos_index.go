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

package textpos

import "sort"

// Index maps byte offsets within a document to line and column positions.
type Index struct {
	name string
	size int
	// firstLine is the offset of the line containing byte 0.
	firstLine int
	// lineStarts[i] is the byte offset of the first character of line i.
	lineStarts []int
}

// NewIndex returns an Index for the given document contents. The name is only
// used when formatting positions and need not refer to a real file.
func NewIndex(name, contents string) *Index {
	return NewIndexAt(name, LineFromOrdinal(1), contents)
}

// NewIndexAt is like NewIndex for contents that start at firstLine of a larger
// document, such as one line read from a script.
func NewIndexAt(name string, firstLine Line, contents string) *Index {
	starts := []int{0}
	for i := 0; i < len(contents); i++ {
		if contents[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{name, len(contents), firstLine.Offset(), starts}
}

// Name returns the document name passed to NewIndex.
func (idx *Index) Name() string { return idx.name }

// LineCount returns the number of lines in the document. An empty document has
// one (empty) line.
func (idx *Index) LineCount() int { return len(idx.lineStarts) }

// Position returns the position of the given byte offset. Offsets outside of
// [0, size] produce an invalid Position.
func (idx *Index) Position(offset int) Position {
	if offset < 0 || offset > idx.size {
		return Position{documentName: idx.name, offset: offset}
	}
	// Index of the last line start <= offset.
	line := sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > offset
	}) - 1
	return Position{
		documentName: idx.name,
		offset:       offset,
		lc:           MakeLineColumn(LineFromOffset(idx.firstLine+line), ColumnFromOffset(offset-idx.lineStarts[line])),
	}
}

// Range returns the PositionRange for the byte interval [start, end).
func (idx *Index) Range(start, end int) PositionRange {
	return MakePositionRange(idx.Position(start), idx.Position(end))
}

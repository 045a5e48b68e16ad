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

// Package reader parses s-expression text into forms.
//
// Input is first split into tokens by a single regular expression (see
// Tokenize) and then parsed by a recursive-descent reader. The reader
// understands only lists and atoms: a token that is exactly "(" opens a list,
// a token made up entirely of ASCII digits is an Integer, and every other
// token, including comments and string literals, is a Symbol holding the
// token text verbatim.
package reader

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/google/malreader/form"
	"github.com/google/malreader/textpos"
)

var (
	// ErrUnterminatedList is returned when the input ends before the closing
	// paren of a list.
	ErrUnterminatedList = errors.New("did not find end of list token ')'")

	// ErrIntegerRange is returned for an all-digit token that does not fit in
	// a signed 64-bit integer.
	ErrIntegerRange = errors.New("integer literal out of 64-bit range")
)

var integerRegexp = regexp.MustCompile(`^[0-9]+$`)

// Error is a parse error with the location of the offending text.
type Error struct {
	Span textpos.PositionRange
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Span, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reader reads a sequence of forms from a document.
type Reader struct {
	idx *textpos.Index
	cur *cursor
	// end is the byte length of the document.
	end int
}

// Option is used to configure a Reader.
type Option interface {
	apply(*readerConfig)
}

type readerConfig struct {
	firstLine textpos.Line
}

type simpleOption func(c *readerConfig)

func (opt simpleOption) apply(c *readerConfig) {
	opt(c)
}

// FirstLine returns an Option that numbers the first line of the contents as
// line in error positions. It is used when the contents are one line of a
// larger input. The default is line 1.
func FirstLine(line textpos.Line) Option {
	return simpleOption(func(c *readerConfig) {
		c.firstLine = line
	})
}

// NewReader returns a Reader for the forms in contents.
//
// The name is used in error messages only and does not need to be a real
// file.
func NewReader(name, contents string, opts ...Option) *Reader {
	cfg := &readerConfig{firstLine: textpos.LineFromOrdinal(1)}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	return &Reader{
		idx: textpos.NewIndexAt(name, cfg.firstLine, contents),
		cur: newCursor(tokenize(contents)),
		end: len(contents),
	}
}

// ReadString reads the first form in input. Any tokens after the first form
// are ignored.
//
// If input contains no tokens, ReadString returns io.EOF. This is distinct from
// reading an empty list, which returns an empty *form.List.
func ReadString(input string) (form.Form, error) {
	return NewReader("", input).ReadForm()
}

// ReadForm reads the next form.
//
// If there are no more tokens, the second value will be io.EOF. If the input
// ends inside a list, the error wraps ErrUnterminatedList and the partially
// read list is discarded.
func (r *Reader) ReadForm() (form.Form, error) {
	if !r.cur.hasNext() {
		return nil, io.EOF
	}
	return r.readForm()
}

func (r *Reader) readForm() (form.Form, error) {
	tok, _ := r.cur.peek()
	if tok.text == "(" {
		r.cur.next()
		return r.readList(tok)
	}
	return r.readAtom()
}

func (r *Reader) readList(open token) (form.Form, error) {
	var forms []form.Form
	for {
		tok, ok := r.cur.peek()
		if !ok {
			return nil, r.errorWithRange(open.start, r.end, ErrUnterminatedList)
		}
		if tok.text == ")" {
			r.cur.next()
			return form.NewList(forms...), nil
		}
		f, err := r.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
}

func (r *Reader) readAtom() (form.Form, error) {
	tok, ok := r.cur.next()
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	if !integerRegexp.MatchString(tok.text) {
		return form.NewSymbol(tok.text), nil
	}
	n, err := strconv.ParseInt(tok.text, 10, 64)
	if err != nil {
		return nil, r.errorWithRange(tok.start, tok.end, fmt.Errorf("%w: %s", ErrIntegerRange, tok.text))
	}
	return form.NewInteger(n), nil
}

func (r *Reader) errorWithRange(start, end int, err error) error {
	return &Error{r.idx.Range(start, end), err}
}

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

// Package form defines the syntax tree produced by the reader and consumed by
// the printer.
//
// A Form is exactly one of *Symbol, *Integer or *List. The set is closed: no
// type outside of this package can implement Form, so a type switch over the
// three variants is exhaustive.
package form

// Form is one complete parsed unit of an s-expression: an atom or a list.
type Form interface {
	// Value returns the underlying Go value of the form: a string for a
	// Symbol, an int64 for an Integer and a []Form for a List.
	Value() interface{}

	isForm()
}

// Symbol is an atom naming an identifier or operator. The name is the token
// text exactly as it appeared in the input.
type Symbol struct {
	name string
}

// NewSymbol returns a Symbol with the given name.
func NewSymbol(name string) *Symbol {
	return &Symbol{name}
}

// Name returns the symbol text.
func (s *Symbol) Name() string { return s.name }

// Value returns the symbol text.
func (s *Symbol) Value() interface{} { return s.name }

func (s *Symbol) isForm() {}

// Integer is a signed 64-bit integer atom.
type Integer struct {
	val int64
}

// NewInteger returns an Integer with the given value.
func NewInteger(v int64) *Integer {
	return &Integer{v}
}

// Int64 returns the value of the integer.
func (i *Integer) Int64() int64 { return i.val }

// Value returns the value of the integer as an int64.
func (i *Integer) Value() interface{} { return i.val }

func (i *Integer) isForm() {}

// List is an ordered, possibly empty, sequence of forms. A List owns its
// subforms; the slice passed to NewList is copied and Subforms returns a copy.
type List struct {
	forms []Form
}

// NewList returns a list of the given subforms.
func NewList(forms ...Form) *List {
	if len(forms) == 0 {
		return &List{}
	}
	return &List{append([]Form(nil), forms...)}
}

// Len returns the length of the list.
func (l *List) Len() int { return len(l.forms) }

// Nth returns the nth subform. It panics if n is out of range.
func (l *List) Nth(n int) Form { return l.forms[n] }

// Subforms returns a copy of the ordered list of forms that comprise the list.
func (l *List) Subforms() []Form {
	if len(l.forms) == 0 {
		return nil
	}
	return append([]Form(nil), l.forms...)
}

// Value returns the same result as Subforms.
func (l *List) Value() interface{} { return l.Subforms() }

func (l *List) isForm() {}

// Equal reports whether a and b are structurally identical trees. Two nil
// forms are equal.
func Equal(a, b Form) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case *Symbol:
		b, ok := b.(*Symbol)
		return ok && a.name == b.name
	case *Integer:
		b, ok := b.(*Integer)
		return ok && a.val == b.val
	case *List:
		b, ok := b.(*List)
		if !ok || len(a.forms) != len(b.forms) {
			return false
		}
		for i := range a.forms {
			if !Equal(a.forms[i], b.forms[i]) {
				return false
			}
		}
		return true
	default:
		panic("unreachable: unknown form type")
	}
}

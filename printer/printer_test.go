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

package printer

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/malreader/form"
	"github.com/google/malreader/reader"
)

func sym(name string) form.Form { return form.NewSymbol(name) }
func num(n int64) form.Form { return form.NewInteger(n) }
func list(fs ...form.Form) form.Form { return form.NewList(fs...) }

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		f    form.Form
		want string
	}{
		{"nil", nil, ""},
		{"symbol", sym("abc"), "abc"},
		{"symbol verbatim", sym(`"a b"`), `"a b"`},
		{"integer", num(42), "42"},
		{"zero", num(0), "0"},
		{"negative integer", num(-42), "-42"},
		{"min int64", num(math.MinInt64), "-9223372036854775808"},
		{"empty list", list(), "()"},
		{"simple list", list(sym("+"), num(1), num(2)), "(+ 1 2)"},
		{"singleton", list(num(1)), "(1)"},
		{"nested", list(list(list(num(1)))), "(((1)))"},
		{"nested empty lists", list(list(), list()), "(() ())"},
		{
			"mixed",
			list(sym("def!"), sym("f"), list(sym("fn*"), list(sym("a")), list(sym("+"), sym("a"), num(1)))),
			"(def! f (fn* (a) (+ a 1)))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Print(tt.f)); diff != "" {
				t.Errorf("unexpected diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, list(sym("a"), num(1))); err != nil {
		t.Fatalf("Fprint() error: %v", err)
	}
	if got, want := buf.String(), "(a 1)"; got != want {
		t.Errorf("Fprint() wrote %q, want %q", got, want)
	}
}

// Printing normalizes spacing, commas and leading zeros.
func TestPrint_canonicalizes(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"(+ 1 2)", "(+ 1 2)"},
		{"(  +   1,2 )", "(+ 1 2)"},
		{"(1,  2 ,3)", "(1 2 3)"},
		{"007", "7"},
		{"( )", "()"},
		{"(((1)))", "(((1)))"},
		{"(a\n  (b c))", "(a (b c))"},
		{"-42", "-42"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := reader.ReadString(tt.input)
			if err != nil {
				t.Fatalf("ReadString(%q) error: %v", tt.input, err)
			}
			if got := Print(f); got != tt.want {
				t.Errorf("Print(ReadString(%q)) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	deep := list(sym("x"))
	for i := 0; i < 200; i++ {
		deep = list(deep, num(int64(i)))
	}
	trees := []form.Form{
		sym("a"),
		sym("+"),
		sym("-42"),
		sym("4x"),
		num(0),
		num(42),
		num(math.MaxInt64),
		list(),
		list(sym("+"), num(1), num(2)),
		list(list(list(num(1)))),
		list(list(), sym("a"), list(num(1), list())),
		list(sym("~@"), sym("^"), sym("@")),
		deep,
	}
	for _, want := range trees {
		text := Print(want)
		t.Run(text[:min(len(text), 40)], func(t *testing.T) {
			got, err := reader.ReadString(text)
			if err != nil {
				t.Fatalf("ReadString(%q) error: %v", text, err)
			}
			if diff := cmp.Diff(want, got, cmp.Comparer(form.Equal)); diff != "" {
				t.Errorf("round trip through %q changed the tree (-want +got):\n%s", text, diff)
			}
			if again := Print(got); again != text {
				t.Errorf("Print is not stable: %q then %q", text, again)
			}
		})
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func BenchmarkPrint(b *testing.B) {
	f, err := reader.ReadString("(" + strings.Repeat("(def! a (+ 1 2)) ", 100) + ")")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Print(f)
	}
}

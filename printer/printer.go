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

// Package printer renders forms as canonical s-expression text.
//
// The output depends only on the form, never on how it was originally
// written: list elements are separated by exactly one space and integers are
// printed in base 10 without leading zeros.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/malreader/form"
)

// Print returns the canonical text of f. A nil form prints as the empty
// string.
func Print(f form.Form) string {
	sb := &strings.Builder{}
	writeForm(sb, f)
	return sb.String()
}

// Fprint writes the canonical text of f to w.
func Fprint(w io.Writer, f form.Form) error {
	_, err := io.WriteString(w, Print(f))
	return err
}

func writeForm(sb *strings.Builder, f form.Form) {
	switch f := f.(type) {
	case nil:
	case *form.Symbol:
		sb.WriteString(f.Name())
	case *form.Integer:
		sb.WriteString(strconv.FormatInt(f.Int64(), 10))
	case *form.List:
		sb.WriteByte('(')
		for i := 0; i < f.Len(); i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeForm(sb, f.Nth(i))
		}
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("unknown form type %T", f))
	}
}

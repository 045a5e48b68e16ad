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

package reader

import (
	"regexp"
	"strings"

	"github.com/golang/glog"
)

// tokenRegexp matches one token, preceded by any run of separators. Submatch 1
// is the token itself. The alternatives are tried in order:
//
//	~@                          splice-unquote
//	[\[\]{}()'`~^@]             single special characters
//	"(?:\\(?s:.)|[^\\"])*(?:"|\\?$)
//	                            string literal; an unterminated one runs to the end
//	                            of input, even if it ends in a lone backslash
//	;.*                         comment to end of line
//	[^\s\[\]{}('"`,;)]*         bare token (symbols and numbers)
var tokenRegexp = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\(?s:.)|[^\\"])*(?:"|\\?$)|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`)

// separators are trimmed from the right of every token.
const separators = " \t\n\v\f\r,"

// token is a span of the input text. start and end are byte offsets.
type token struct {
	text       string
	start, end int
}

// Tokenize splits input into tokens. Separators (whitespace and commas) are
// discarded; comments and string literals are returned as tokens. Empty input,
// or input consisting only of separators, yields no tokens.
func Tokenize(input string) []string {
	toks := tokenize(input)
	if len(toks) == 0 {
		return nil
	}
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.text
	}
	return out
}

func tokenize(input string) (toks []token) {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("tokenizer failed on %q, treating it as empty: %v", input, r)
			toks = nil
		}
	}()
	for _, m := range tokenRegexp.FindAllStringSubmatchIndex(input, -1) {
		start, end := m[2], m[3]
		text := strings.TrimRight(input[start:end], separators)
		if text == "" {
			continue
		}
		toks = append(toks, token{text, start, start + len(text)})
	}
	if glog.V(2) {
		texts := make([]string, len(toks))
		for i, t := range toks {
			texts[i] = t.text
		}
		glog.Infof("tokens: %q", texts)
	}
	return toks
}

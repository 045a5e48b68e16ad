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

// cursor is a forward-only view over a token sequence.
type cursor struct {
	tokens []token
	pos    int
}

func newCursor(tokens []token) *cursor {
	return &cursor{tokens: tokens}
}

func (c *cursor) hasNext() bool {
	return c.pos < len(c.tokens)
}

// peek returns the next unconsumed token without advancing. The second result
// is false if the sequence is exhausted.
func (c *cursor) peek() (token, bool) {
	if !c.hasNext() {
		return token{}, false
	}
	return c.tokens[c.pos], true
}

// next returns the next unconsumed token and advances past it.
func (c *cursor) next() (token, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package wikicore

import "strings"

// stripHTML removes every <...> tag span from s and keeps the rest
// verbatim. Search snippets arrive with highlight markup such as
// <span class="searchmatch">term</span>; only the tags go, the text
// between them stays. Entities are left as they are, a stray ">" outside
// a tag is kept, and an unterminated "<" swallows the remainder.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// tokenize lowercases s and splits it on whitespace.
func tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

func tokenSet(s string) map[string]struct{} {
	tokens := tokenize(s)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// countWords counts whitespace-separated runs in s.
func countWords(s string) int {
	return len(strings.Fields(s))
}

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

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

func validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return errInvalidQuery("query is empty")
	}
	if n := utf8.RuneCountInString(query); n > maxQueryLength {
		return errInvalidQuery(fmt.Sprintf("query is %d characters, limit is %d", n, maxQueryLength))
	}
	return nil
}

// clampLimit normalizes a result count request. Zero means the default,
// anything else is clamped into [1, maxLimit] instead of rejected.
func clampLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultLimit
	case limit < 1:
		return 1
	case limit > maxLimit:
		return maxLimit
	}
	return limit
}

// Search runs a full-text search against the given language edition and
// returns results in API ranking order, each scored for relevance against
// the query. An empty language means the client default. The limit is
// clamped to [1, 50], with 0 meaning 10; no more than limit results are
// returned even if the API sends extras.
// API documentation: https://www.mediawiki.org/wiki/API:Search
func (c *Client) Search(ctx context.Context, query string, language Language, limit int) ([]*SearchResult, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	edition, err := c.resolveLanguage(language)
	if err != nil {
		return nil, err
	}
	limit = clampLimit(limit)

	body, err := c.fetch(ctx, searchURL(c.editionBase(edition), query, limit))
	if err != nil {
		return nil, err
	}

	results, err := decodeSearch(body)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		r.RelevanceScore = relevanceScore(query, r.Title, r.Snippet)
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// SearchTitles runs Search and keeps only the titles, in the same order.
func (c *Client) SearchTitles(ctx context.Context, query string, language Language, limit int) ([]string, error) {
	results, err := c.Search(ctx, query, language, limit)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(results))
	for _, r := range results {
		titles = append(titles, r.Title)
	}
	return titles, nil
}

// relevanceScore rates how well a result matches the query. Each query
// token found among the title's tokens is worth 2 points; a token absent
// from the title but present in the snippet is worth 1; the sum is
// divided by the token count so scores stay comparable across query
// lengths. All matching is case-insensitive. The top of the scale is
// 2.0, a query whose every token appears in the title.
func relevanceScore(query, title, snippet string) float64 {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return 0
	}
	titleTokens := tokenSet(title)
	snippetTokens := tokenSet(snippet)

	var score float64
	for _, token := range tokens {
		if _, ok := titleTokens[token]; ok {
			score += 2.0
			continue
		}
		if _, ok := snippetTokens[token]; ok {
			score += 1.0
		}
	}
	return score / float64(len(tokens))
}

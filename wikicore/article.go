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
	"time"
	"unicode/utf8"
)

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errInvalidQuery("title is empty")
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return errInvalidQuery(fmt.Sprintf("title is %d characters, limit is %d", n, maxTitleLength))
	}
	return nil
}

// GetArticle fetches the summary of the article with the given exact
// title. A title that resolves to no article yields (nil, nil), not an
// error; callers must check the article pointer before use. An empty
// language means the client default.
func (c *Client) GetArticle(ctx context.Context, title string, language Language) (*Article, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	edition, err := c.resolveLanguage(language)
	if err != nil {
		return nil, err
	}

	body, err := c.fetch(ctx, summaryURL(c.editionBase(edition), title))
	if err != nil {
		if notFoundStatus(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeArticle(body, edition)
}

// RandomArticle fetches the summary of a random article from the given
// language edition. Unlike GetArticle there is no absent case; any
// non-200 answer is an error.
func (c *Client) RandomArticle(ctx context.Context, language Language) (*Article, error) {
	edition, err := c.resolveLanguage(language)
	if err != nil {
		return nil, err
	}

	body, err := c.fetch(ctx, randomURL(c.editionBase(edition)))
	if err != nil {
		return nil, err
	}
	return decodeArticle(body, edition)
}

// FeaturedArticle fetches the article featured on the given calendar day.
// A zero date means today. The day is taken from the date's own location,
// so a caller near midnight may see a different article than one in
// another zone asking at the same instant.
func (c *Client) FeaturedArticle(ctx context.Context, date time.Time, language Language) (*Article, error) {
	edition, err := c.resolveLanguage(language)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	body, err := c.fetch(ctx, featuredURL(c.editionBase(edition), date))
	if err != nil {
		return nil, err
	}
	return decodeFeatured(body, edition)
}

// FindArticle resolves free-form text to an article. It first tries the
// text as an exact title; on a miss it searches for the single best hit
// and fetches that. Worst case is three requests, and a search with no
// hits yields (nil, nil) just like GetArticle.
func (c *Client) FindArticle(ctx context.Context, query string, language Language) (*Article, error) {
	article, err := c.GetArticle(ctx, query, language)
	if err != nil || article != nil {
		return article, err
	}

	hits, err := c.Search(ctx, query, language, 1)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}
	return c.GetArticle(ctx, hits[0].Title, language)
}

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
	"fmt"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
)

// Wire shapes use pointer fields so that an absent key is distinguishable
// from a zero value. Required keys that arrive absent turn into parse
// errors instead of silently empty results.

type searchEnvelope struct {
	Query *struct {
		Search []searchHit `json:"search"`
	} `json:"query"`
}

type searchHit struct {
	Title     *string `json:"title"`
	Snippet   *string `json:"snippet"`
	PageID    *int    `json:"pageid"`
	WordCount *int    `json:"wordcount"`
}

// decodeSearch parses an Action API search response into results with
// snippets stripped of highlight markup. Relevance scores are not set
// here; the caller computes them against the original query.
func decodeSearch(body []byte) ([]*SearchResult, error) {
	var envelope searchEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, errParse("unmarshal search response failed", err)
	}
	if envelope.Query == nil {
		return nil, errParse("search response has no query object", nil)
	}
	results := make([]*SearchResult, 0, len(envelope.Query.Search))
	for i, hit := range envelope.Query.Search {
		if hit.Title == nil || hit.Snippet == nil || hit.PageID == nil || hit.WordCount == nil {
			return nil, errParse(fmt.Sprintf("search hit %d is missing required fields", i), nil)
		}
		results = append(results, &SearchResult{
			Title:     *hit.Title,
			PageID:    *hit.PageID,
			Snippet:   stripHTML(*hit.Snippet),
			WordCount: *hit.WordCount,
		})
	}
	return results, nil
}

type thumbnailPayload struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type summaryPayload struct {
	Title       *string           `json:"title"`
	Extract     *string           `json:"extract"`
	Description *string           `json:"description"`
	Thumbnail   *thumbnailPayload `json:"thumbnail"`
	ContentURLs *struct {
		Desktop *struct {
			Page *string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	PageID    *int    `json:"pageid"`
	Timestamp *string `json:"timestamp"`
}

// decodeArticle parses a REST page summary into an Article in the given
// language edition.
func decodeArticle(body []byte, language Language) (*Article, error) {
	var payload summaryPayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, errParse("unmarshal summary response failed", err)
	}
	return articleFromSummary(&payload, language)
}

func articleFromSummary(payload *summaryPayload, language Language) (*Article, error) {
	if payload.Title == nil || payload.Extract == nil || payload.PageID == nil {
		return nil, errParse("summary response is missing required fields", nil)
	}
	if payload.ContentURLs == nil || payload.ContentURLs.Desktop == nil || payload.ContentURLs.Desktop.Page == nil {
		return nil, errParse("summary response has no desktop page url", nil)
	}
	article := &Article{
		Title:       *payload.Title,
		Extract:     *payload.Extract,
		Description: payload.Description,
		Thumbnail:   thumbnailImage(payload.Thumbnail),
		URL:         *payload.ContentURLs.Desktop.Page,
		PageID:      *payload.PageID,
		Language:    language,
	}
	if payload.Timestamp != nil {
		ts, err := time.Parse(time.RFC3339, *payload.Timestamp)
		if err != nil {
			return nil, errParse(fmt.Sprintf("invalid timestamp %q", *payload.Timestamp), err)
		}
		article.LastModified = &ts
	}
	return article, nil
}

// thumbnailImage converts an optional thumbnail payload. A payload with a
// malformed source URL or negative dimensions is dropped rather than
// failing the whole article; a thumbnail is decoration, not content.
func thumbnailImage(payload *thumbnailPayload) *Image {
	if payload == nil {
		return nil
	}
	if payload.Width < 0 || payload.Height < 0 {
		return nil
	}
	u, err := url.Parse(payload.Source)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return &Image{
		Source: payload.Source,
		Width:  payload.Width,
		Height: payload.Height,
	}
}

type featuredEnvelope struct {
	TFA *summaryPayload `json:"tfa"`
}

// decodeFeatured parses a featured feed response. Only the "today's
// featured article" entry is read; the feed's image and news sections
// are ignored.
func decodeFeatured(body []byte, language Language) (*Article, error) {
	var envelope featuredEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, errParse("unmarshal featured response failed", err)
	}
	if envelope.TFA == nil {
		return nil, errParse("featured response has no tfa entry", nil)
	}
	return articleFromSummary(envelope.TFA, language)
}

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
	"time"
)

// wordsPerMinute is the reading speed assumed for reading-time estimates.
const wordsPerMinute = 200

// Image is an article thumbnail with its pixel dimensions. Images are only
// constructed by the decoder from a response carrying a usable source URL;
// an article whose thumbnail fails that check simply has none.
type Image struct {
	// Source is the image URL.
	Source string `json:"source"`
	// Width is the image width in pixels.
	Width int `json:"width"`
	// Height is the image height in pixels.
	Height int `json:"height"`
}

// AspectRatio returns width divided by height, or 1.0 for a zero height.
func (i Image) AspectRatio() float64 {
	if i.Height == 0 {
		return 1.0
	}
	return float64(i.Width) / float64(i.Height)
}

// IsLandscape reports whether the image is wider than it is tall.
func (i Image) IsLandscape() bool {
	return i.Width > i.Height
}

// IsPortrait reports whether the image is taller than it is wide.
func (i Image) IsPortrait() bool {
	return i.Height > i.Width
}

// IsSquare reports whether the aspect ratio falls within [0.9, 1.1].
func (i Image) IsSquare() bool {
	ratio := i.AspectRatio()
	return ratio >= 0.9 && ratio <= 1.1
}

// SearchResult is a single full-text search hit. It is a lightweight
// reference to a page, not a full Article; resolve the Title through
// Client.GetArticle for the summary. PageID doubles as the result's
// identifier within its language edition.
type SearchResult struct {
	// Title is the page title of the hit.
	Title string `json:"title"`
	// Snippet is the match context with HTML tags stripped.
	Snippet string `json:"snippet"`
	// PageID is the upstream page identifier.
	PageID int `json:"pageid"`
	// WordCount is the full page's word count as reported upstream.
	WordCount int `json:"wordcount"`
	// RelevanceScore is the token-overlap score of the hit against the
	// query, zero or greater. See Client.Search for the formula.
	RelevanceScore float64 `json:"relevance_score"`
}

// EstimatedReadingTime returns the minutes needed to read the full page at
// 200 words per minute, never less than one.
func (r SearchResult) EstimatedReadingTime() int {
	return readingMinutes(r.WordCount)
}

// IsHighlyRelevant reports whether the relevance score is at least 1.5,
// meaning most query tokens matched the title.
func (r SearchResult) IsHighlyRelevant() bool {
	return r.RelevanceScore >= 1.5
}

// Article is the normalized summary of a Wikipedia page. Optional fields
// are pointers and nil when the upstream response omits them. PageID
// doubles as the article's identifier within its language edition.
type Article struct {
	// Title is the canonical page title.
	Title string `json:"title"`
	// Extract is the plain-text summary of the page.
	Extract string `json:"extract"`
	// Description is the short Wikidata description, when present.
	Description *string `json:"description,omitempty"`
	// Thumbnail is the lead image, when present and usable.
	Thumbnail *Image `json:"thumbnail,omitempty"`
	// URL is the canonical desktop page URL.
	URL string `json:"url"`
	// PageID is the upstream page identifier.
	PageID int `json:"pageid"`
	// Language is the edition the article was fetched from.
	Language Language `json:"language"`
	// LastModified is the page's last revision time, when present.
	LastModified *time.Time `json:"last_modified,omitempty"`
}

// WordCount returns the number of whitespace-separated words in the
// extract.
func (a Article) WordCount() int {
	return countWords(a.Extract)
}

// EstimatedReadingTime returns the minutes needed to read the extract at
// 200 words per minute, never less than one.
func (a Article) EstimatedReadingTime() int {
	return readingMinutes(a.WordCount())
}

// Length buckets the extract's word count into a LengthCategory.
func (a Article) Length() LengthCategory {
	return lengthForWordCount(a.WordCount())
}

// HasThumbnail reports whether the article carries a usable thumbnail.
func (a Article) HasThumbnail() bool {
	return a.Thumbnail != nil
}

func readingMinutes(wordCount int) int {
	minutes := wordCount / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// LengthCategory buckets an extract by word count, for presentation only.
// Buckets are inclusive at the low bound and exclusive at the high bound,
// with the top bucket open-ended.
type LengthCategory int

const (
	// LengthStub covers extracts under 50 words.
	LengthStub LengthCategory = iota
	// LengthShort covers 50 to 199 words.
	LengthShort
	// LengthMedium covers 200 to 499 words.
	LengthMedium
	// LengthLong covers 500 to 999 words.
	LengthLong
	// LengthVeryLong covers 1000 words and up.
	LengthVeryLong
)

func lengthForWordCount(words int) LengthCategory {
	switch {
	case words < 50:
		return LengthStub
	case words < 200:
		return LengthShort
	case words < 500:
		return LengthMedium
	case words < 1000:
		return LengthLong
	default:
		return LengthVeryLong
	}
}

func (c LengthCategory) String() string {
	switch c {
	case LengthStub:
		return "stub"
	case LengthShort:
		return "short"
	case LengthMedium:
		return "medium"
	case LengthLong:
		return "long"
	case LengthVeryLong:
		return "very long"
	default:
		return "unknown"
	}
}

// Description returns a display sentence for the category.
func (c LengthCategory) Description() string {
	switch c {
	case LengthStub:
		return "A stub with only a few sentences"
	case LengthShort:
		return "A short summary"
	case LengthMedium:
		return "A medium-length overview"
	case LengthLong:
		return "A long, detailed summary"
	case LengthVeryLong:
		return "A very long, in-depth text"
	default:
		return "Unknown length"
	}
}

// ReadingTime returns the display reading-time range for the category.
// It describes the bucket, not a specific article; use
// Article.EstimatedReadingTime for the per-article figure.
func (c LengthCategory) ReadingTime() string {
	switch c {
	case LengthStub:
		return "under 1 min"
	case LengthShort:
		return "about 1 min"
	case LengthMedium:
		return "1-2 min"
	case LengthLong:
		return "2-4 min"
	case LengthVeryLong:
		return "5+ min"
	default:
		return ""
	}
}

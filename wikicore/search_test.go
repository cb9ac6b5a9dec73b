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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchBody(hits ...string) string {
	return fmt.Sprintf(`{"query":{"search":[%s]}}`, strings.Join(hits, ","))
}

func searchHitJSON(title string, pageID int, snippet string, wordCount int) string {
	return fmt.Sprintf(`{"title":%q,"pageid":%d,"snippet":%q,"wordcount":%d}`,
		title, pageID, snippet, wordCount)
}

func TestSearchValidation(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(searchBody()))
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		ok    bool
	}{
		{name: "empty", query: "", ok: false},
		{name: "whitespace only", query: " \t ", ok: false},
		{name: "too long", query: strings.Repeat("a", 301), ok: false},
		{name: "at the limit", query: strings.Repeat("a", 300), ok: true},
		{name: "multibyte at the limit", query: strings.Repeat("ü", 300), ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := requests
			_, err := client.Search(context.Background(), tt.query, "", 5)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, before+1, requests)
				return
			}
			assert.True(t, IsInvalidQuery(err), "want invalid query, got %v", err)
			assert.Equal(t, before, requests, "validation failures must not reach the network")
		})
	}
}

func TestSearchInvalidLanguage(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "golang", Language("xx"), 5)
	assert.True(t, IsInvalidLanguage(err))
	assert.Zero(t, requests)
}

func TestSearchRequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(searchBody()))
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "machine learning", "", 25)
	require.NoError(t, err)

	assert.Equal(t, "/w/api.php", gotPath)
	assert.Equal(t, map[string]string{
		"action":   "query",
		"list":     "search",
		"format":   "json",
		"srsearch": "machine learning",
		"srlimit":  "25",
		"srprop":   "snippet|wordcount",
	}, gotQuery)
}

func TestSearchLimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit string
	}{
		{name: "zero means default", limit: 0, wantLimit: "10"},
		{name: "negative clamps to one", limit: -5, wantLimit: "1"},
		{name: "above cap clamps to fifty", limit: 100, wantLimit: "50"},
		{name: "in range passes through", limit: 7, wantLimit: "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotLimit = r.URL.Query().Get("srlimit")
				w.Write([]byte(searchBody()))
			}))
			defer server.Close()

			client, err := New(&Config{BaseURL: server.URL})
			require.NoError(t, err)

			_, err = client.Search(context.Background(), "golang", "", tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestSearchResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchBody(
			searchHitJSON("Machine learning", 1234, `<span class="searchmatch">Machine</span> <span class="searchmatch">learning</span> is a field`, 9000),
			searchHitJSON("Deep learning", 5678, "subfield of machine learning", 4000),
			searchHitJSON("Unrelated", 9012, "nothing in common", 100),
		)))
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "machine learning", "", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// API ranking order is preserved; scores do not reorder results.
	assert.Equal(t, "Machine learning", results[0].Title)
	assert.Equal(t, "Deep learning", results[1].Title)
	assert.Equal(t, "Unrelated", results[2].Title)

	// Both tokens hit the title: (2+2)/2 = 2. Snippet matches add
	// nothing for tokens already found in the title.
	assert.InDelta(t, 2.0, results[0].RelevanceScore, 0.001)
	assert.True(t, results[0].IsHighlyRelevant())

	// "learning" hits the title, "machine" only the snippet: (2+1)/2.
	assert.InDelta(t, 1.5, results[1].RelevanceScore, 0.001)
	assert.True(t, results[1].IsHighlyRelevant())

	assert.InDelta(t, 0.0, results[2].RelevanceScore, 0.001)
	assert.False(t, results[2].IsHighlyRelevant())

	for _, r := range results {
		assert.GreaterOrEqual(t, r.WordCount, 0)
		assert.GreaterOrEqual(t, r.RelevanceScore, 0.0)
		assert.NotContains(t, r.Snippet, "<span")
	}
}

func TestSearchTitleOnlyScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchBody(
			searchHitJSON("Machine learning", 1, "completely different words here", 500),
		)))
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "machine learning", "", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Title-only hits score (2+2)/2 = 2 and count as highly relevant.
	assert.InDelta(t, 2.0, results[0].RelevanceScore, 0.001)
	assert.True(t, results[0].IsHighlyRelevant())
}

func TestSearchTruncatesExtraHits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Three hits even though the request asked for two.
		w.Write([]byte(searchBody(
			searchHitJSON("A", 1, "a", 10),
			searchHitJSON("B", 2, "b", 20),
			searchHitJSON("C", 3, "c", 30),
		)))
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "letters", "", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Title)
	assert.Equal(t, "B", results[1].Title)
}

func TestSearchEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchBody()))
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "zxqwv nonsense", "", 10)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "golang", "", 10)
	assert.Nil(t, results)
	assert.True(t, IsServerError(err))
}

func TestSearchTitles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchBody(
			searchHitJSON("First", 1, "a", 10),
			searchHitJSON("Second", 2, "b", 20),
			searchHitJSON("Third", 3, "c", 30),
		)))
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	titles, err := client.SearchTitles(context.Background(), "ordinals", "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)

	_, err = client.SearchTitles(context.Background(), "", "", 10)
	assert.True(t, IsInvalidQuery(err))
}

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		title   string
		snippet string
		want    float64
	}{
		{
			name:    "case insensitive title and snippet",
			query:   "machine learning",
			title:   "Machine learning",
			snippet: "MACHINE LEARNING explained",
			want:    2.0,
		},
		{
			name:    "single token title only",
			query:   "golang",
			title:   "Golang",
			snippet: "the Go programming language",
			want:    2.0,
		},
		{
			name:    "snippet only",
			query:   "compiler",
			title:   "Go (programming language)",
			snippet: "ships with a fast compiler",
			want:    1.0,
		},
		{
			name:    "no overlap",
			query:   "quantum",
			title:   "Cooking",
			snippet: "recipes and techniques",
			want:    0.0,
		},
		{
			name:    "blank query",
			query:   "   ",
			title:   "Anything",
			snippet: "anything",
			want:    0.0,
		},
		{
			name:    "duplicate query tokens count each time",
			query:   "go go board",
			title:   "Go",
			snippet: "go board game",
			want:    5.0 / 3.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, relevanceScore(tt.query, tt.title, tt.snippet), 0.001)
		})
	}
}

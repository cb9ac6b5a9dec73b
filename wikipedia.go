/*
 * Copyright 2024 CloudWeGo Authors
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

package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cloudwego/eino-ext/components/tool/wikipedia/wikicore"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
)

// Config is the configuration for the wikipedia tools.
type Config struct {
	// BaseURL overrides the per-language https://<language>.wikipedia.org
	// host for every request. Intended for tests; leave empty in production.
	BaseURL string

	// UserAgent is the user agent to use for the http client.
	// Optional but HIGHLY RECOMMENDED to override the default with your project's info.
	// It is recommended to follow Wikipedia's robot specification:
	// https://foundation.wikimedia.org/wiki/Policy:Wikimedia_Foundation_User-Agent_Policy
	// Optional. Default: "eino (https://github.com/cloudwego/eino)"
	UserAgent string `json:"user_agent"`
	// Timeout is the maximum time to wait for the http client to return a response.
	// Optional. Default: 10s.
	Timeout time.Duration `json:"timeout"`
	// TopK is the number of search results to return when the request does not say.
	// Optional. Default: 3.
	TopK int `json:"top_k"`
	// Language is the language edition queried when a request carries no language.
	// Optional. Default: wikicore.LanguageEnglish.
	Language wikicore.Language `json:"language"`

	SearchToolName string `json:"search_tool_name"` // Optional. Default: "wikipedia_search".
	SearchToolDesc string `json:"search_tool_desc"` // Optional. Default: "this tool provides quick and efficient access to information from the Wikipedia"

	ArticleToolName string `json:"article_tool_name"` // Optional. Default: "wikipedia_article".
	ArticleToolDesc string `json:"article_tool_desc"` // Optional. Default: "this tool retrieves the summary of a Wikipedia article by its exact title"

	RandomToolName string `json:"random_tool_name"` // Optional. Default: "wikipedia_random_article".
	RandomToolDesc string `json:"random_tool_desc"` // Optional. Default: "this tool retrieves the summary of a random Wikipedia article"

	FeaturedToolName string `json:"featured_tool_name"` // Optional. Default: "wikipedia_featured_article".
	FeaturedToolDesc string `json:"featured_tool_desc"` // Optional. Default: "this tool retrieves the Wikipedia article featured on a given day"
}

// NewTool creates the wikipedia search tool.
func NewTool(ctx context.Context, conf *Config) (tool.InvokableTool, error) {
	err := conf.validate()
	if err != nil {
		return nil, err
	}
	w, err := newWikipedia(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create wikipedia search tool: %w", err)
	}
	t, err := utils.InferTool(conf.SearchToolName, conf.SearchToolDesc, w.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to infer tool: %w", err)
	}
	return t, nil
}

// NewArticleTool creates the wikipedia article lookup tool.
func NewArticleTool(ctx context.Context, conf *Config) (tool.InvokableTool, error) {
	err := conf.validate()
	if err != nil {
		return nil, err
	}
	w, err := newWikipedia(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create wikipedia article tool: %w", err)
	}
	t, err := utils.InferTool(conf.ArticleToolName, conf.ArticleToolDesc, w.GetArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to infer tool: %w", err)
	}
	return t, nil
}

// NewRandomArticleTool creates the wikipedia random article tool.
func NewRandomArticleTool(ctx context.Context, conf *Config) (tool.InvokableTool, error) {
	err := conf.validate()
	if err != nil {
		return nil, err
	}
	w, err := newWikipedia(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create wikipedia random article tool: %w", err)
	}
	t, err := utils.InferTool(conf.RandomToolName, conf.RandomToolDesc, w.RandomArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to infer tool: %w", err)
	}
	return t, nil
}

// NewFeaturedArticleTool creates the wikipedia featured article tool.
func NewFeaturedArticleTool(ctx context.Context, conf *Config) (tool.InvokableTool, error) {
	err := conf.validate()
	if err != nil {
		return nil, err
	}
	w, err := newWikipedia(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create wikipedia featured article tool: %w", err)
	}
	t, err := utils.InferTool(conf.FeaturedToolName, conf.FeaturedToolDesc, w.FeaturedArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to infer tool: %w", err)
	}
	return t, nil
}

// NewToolKit creates all four wikipedia tools sharing one client.
func NewToolKit(ctx context.Context, conf *Config) ([]tool.BaseTool, error) {
	err := conf.validate()
	if err != nil {
		return nil, err
	}
	w, err := newWikipedia(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create wikipedia toolkit: %w", err)
	}

	searchTool, err := utils.InferTool(conf.SearchToolName, conf.SearchToolDesc, w.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to infer search tool: %w", err)
	}
	articleTool, err := utils.InferTool(conf.ArticleToolName, conf.ArticleToolDesc, w.GetArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to infer article tool: %w", err)
	}
	randomTool, err := utils.InferTool(conf.RandomToolName, conf.RandomToolDesc, w.RandomArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to infer random article tool: %w", err)
	}
	featuredTool, err := utils.InferTool(conf.FeaturedToolName, conf.FeaturedToolDesc, w.FeaturedArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to infer featured article tool: %w", err)
	}

	return []tool.BaseTool{searchTool, articleTool, randomTool, featuredTool}, nil
}

// validate validates the configuration and sets default values if not provided.
func (conf *Config) validate() error {
	if conf == nil {
		return fmt.Errorf("config is nil")
	}
	if conf.SearchToolName == "" {
		conf.SearchToolName = "wikipedia_search"
	}
	if conf.SearchToolDesc == "" {
		conf.SearchToolDesc = "this tool provides quick and efficient access to information from the Wikipedia"
	}
	if conf.ArticleToolName == "" {
		conf.ArticleToolName = "wikipedia_article"
	}
	if conf.ArticleToolDesc == "" {
		conf.ArticleToolDesc = "this tool retrieves the summary of a Wikipedia article by its exact title"
	}
	if conf.RandomToolName == "" {
		conf.RandomToolName = "wikipedia_random_article"
	}
	if conf.RandomToolDesc == "" {
		conf.RandomToolDesc = "this tool retrieves the summary of a random Wikipedia article"
	}
	if conf.FeaturedToolName == "" {
		conf.FeaturedToolName = "wikipedia_featured_article"
	}
	if conf.FeaturedToolDesc == "" {
		conf.FeaturedToolDesc = "this tool retrieves the Wikipedia article featured on a given day"
	}
	if conf.UserAgent == "" {
		conf.UserAgent = "eino (https://github.com/cloudwego/eino)"
	}
	if conf.TopK <= 0 {
		conf.TopK = 3
	}
	if conf.Timeout <= 0 {
		conf.Timeout = 10 * time.Second
	}
	if conf.Language == "" {
		conf.Language = wikicore.DefaultLanguage
	}
	return nil
}

// newWikipedia creates the shared client behind the tools.
func newWikipedia(_ context.Context, conf *Config) (*wikipedia, error) {
	c, err := wikicore.New(&wikicore.Config{
		BaseURL:         conf.BaseURL,
		UserAgent:       conf.UserAgent,
		Timeout:         conf.Timeout,
		DefaultLanguage: conf.Language,
	})
	if err != nil {
		return nil, err
	}
	return &wikipedia{
		conf:   conf,
		client: c,
	}, nil
}

// Search searches Wikipedia for the query and returns the search results.
func (w *wikipedia) Search(ctx context.Context, query *SearchRequest) (*SearchResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = w.conf.TopK
	}
	language := wikicore.Language(query.Language)

	sr, err := w.client.Search(ctx, query.Query, language, limit)
	if err != nil {
		return nil, err
	}

	edition := w.client.Language()
	if language != "" {
		edition = language
	}
	res := make([]*Result, 0, len(sr))
	for _, search := range sr {
		res = append(res, &Result{
			Title:          search.Title,
			URL:            pageURL(edition, search.Title),
			Snippet:        search.Snippet,
			WordCount:      search.WordCount,
			ReadingTime:    search.EstimatedReadingTime(),
			Relevance:      search.RelevanceScore,
			HighlyRelevant: search.IsHighlyRelevant(),
		})
	}
	return &SearchResponse{Results: res}, nil
}

// GetArticle retrieves the summary of the article with the given exact title.
func (w *wikipedia) GetArticle(ctx context.Context, query *ArticleRequest) (*ArticleResponse, error) {
	article, err := w.client.GetArticle(ctx, query.Title, wikicore.Language(query.Language))
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, wikicore.NewArticleNotFound(query.Title)
	}
	return articleResponse(article), nil
}

// RandomArticle retrieves the summary of a random article.
func (w *wikipedia) RandomArticle(ctx context.Context, query *RandomArticleRequest) (*ArticleResponse, error) {
	article, err := w.client.RandomArticle(ctx, wikicore.Language(query.Language))
	if err != nil {
		return nil, err
	}
	return articleResponse(article), nil
}

// FeaturedArticle retrieves the article featured on the given day.
// An empty date means today.
func (w *wikipedia) FeaturedArticle(ctx context.Context, query *FeaturedArticleRequest) (*ArticleResponse, error) {
	var date time.Time
	if query.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", query.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", query.Date, err)
		}
	}
	article, err := w.client.FeaturedArticle(ctx, date, wikicore.Language(query.Language))
	if err != nil {
		return nil, err
	}
	return articleResponse(article), nil
}

// pageURL builds the canonical URL for a page in a language edition.
func pageURL(language wikicore.Language, title string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s",
		language.Code(),
		url.PathEscape(title))
}

func articleResponse(article *wikicore.Article) *ArticleResponse {
	resp := &ArticleResponse{
		Title:       article.Title,
		URL:         article.URL,
		Extract:     article.Extract,
		Language:    article.Language.Code(),
		Length:      article.Length().String(),
		ReadingTime: article.EstimatedReadingTime(),
		WordCount:   article.WordCount(),
	}
	if article.Description != nil {
		resp.Description = *article.Description
	}
	if article.Thumbnail != nil {
		resp.Thumbnail = article.Thumbnail.Source
	}
	if article.LastModified != nil {
		resp.LastModified = article.LastModified.Format(time.RFC3339)
	}
	return resp
}

type wikipedia struct {
	conf   *Config
	client *wikicore.Client
}

// Result is one search hit.
type Result struct {
	Title          string  `json:"title" jsonschema_description:"The title of the search result"`
	URL            string  `json:"url" jsonschema_description:"The url of the search result"`
	Snippet        string  `json:"snippet" jsonschema_description:"The snippet of the search result with highlight markup removed"`
	WordCount      int     `json:"word_count" jsonschema_description:"The word count of the full article"`
	ReadingTime    int     `json:"reading_time" jsonschema_description:"The estimated reading time of the full article in minutes"`
	Relevance      float64 `json:"relevance" jsonschema_description:"How well the result matches the query, 0 to 2"`
	HighlyRelevant bool    `json:"highly_relevant" jsonschema_description:"Whether most query terms match the title"`
}

// SearchRequest is the search request.
type SearchRequest struct {
	Query    string `json:"query" jsonschema_description:"The query to search Wikipedia for"`
	Language string `json:"language,omitempty" jsonschema_description:"Optional language edition code such as en, de or ja; empty means the configured default"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Optional maximum number of results, 1 to 50"`
}

// SearchResponse is the search response.
type SearchResponse struct {
	Results []*Result `json:"results" jsonschema_description:"The results of the search"`
}

// ArticleRequest asks for one article by its exact title.
type ArticleRequest struct {
	Title    string `json:"title" jsonschema_description:"The exact title of the Wikipedia article"`
	Language string `json:"language,omitempty" jsonschema_description:"Optional language edition code such as en, de or ja; empty means the configured default"`
}

// RandomArticleRequest asks for a random article.
type RandomArticleRequest struct {
	Language string `json:"language,omitempty" jsonschema_description:"Optional language edition code such as en, de or ja; empty means the configured default"`
}

// FeaturedArticleRequest asks for the article featured on a day.
type FeaturedArticleRequest struct {
	Date     string `json:"date,omitempty" jsonschema_description:"Optional day in YYYY-MM-DD form; empty means today"`
	Language string `json:"language,omitempty" jsonschema_description:"Optional language edition code such as en, de or ja; empty means the configured default"`
}

// ArticleResponse is the summary of one article.
type ArticleResponse struct {
	Title        string `json:"title" jsonschema_description:"The title of the article"`
	URL          string `json:"url" jsonschema_description:"The canonical url of the article"`
	Extract      string `json:"extract" jsonschema_description:"The plain text summary of the article"`
	Description  string `json:"description,omitempty" jsonschema_description:"The short description of the article"`
	Language     string `json:"language" jsonschema_description:"The language edition code of the article"`
	Length       string `json:"length" jsonschema_description:"The length category of the summary: stub, short, medium, long or very long"`
	ReadingTime  int    `json:"reading_time" jsonschema_description:"The estimated reading time of the summary in minutes"`
	WordCount    int    `json:"word_count" jsonschema_description:"The word count of the summary"`
	Thumbnail    string `json:"thumbnail,omitempty" jsonschema_description:"The url of the article thumbnail"`
	LastModified string `json:"last_modified,omitempty" jsonschema_description:"When the article was last modified, RFC 3339"`
}

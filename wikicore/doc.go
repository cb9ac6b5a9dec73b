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

// Package wikicore provides a Go client for the Wikipedia web APIs.
//
// The client covers full-text search (action API) and article summaries,
// random articles, and the featured article of the day (REST API), across
// the supported language editions. Responses are normalized into a small
// set of value types (Article, SearchResult, Image) with derived
// presentation metadata such as reading time and length category.
//
// Example usage:
//
//	client, err := wikicore.New(&wikicore.Config{
//		UserAgent: "MyApp/1.0 (https://example.com)",
//		Timeout:   10 * time.Second,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.Search(ctx, "machine learning", wikicore.LanguageEnglish, 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, r := range results {
//		fmt.Printf("%s (%.1f): %s\n", r.Title, r.RelevanceScore, r.Snippet)
//	}
//
//	article, err := client.GetArticle(ctx, "Go (programming language)", wikicore.LanguageEnglish)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if article == nil {
//		fmt.Println("no such article")
//		return
//	}
//	fmt.Printf("%s: %d min read\n", article.Title, article.EstimatedReadingTime())
//
// Every failure is reported as an *Error carrying a Kind from a closed
// taxonomy, a technical Detail for logs, and a separate UserMessage for
// display. GetArticle and FindArticle treat a missing article as an
// absent result, (nil, nil), rather than an error.
package wikicore

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
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "eino (https://github.com/cloudwego/eino)"

	defaultLimit = 10
	maxLimit     = 50

	maxQueryLength = 300
	maxTitleLength = 255
)

// Client talks to the Wikipedia Action and REST APIs for one or more
// language editions. Every request goes out fresh; the client keeps no
// cache and never retries, so each call maps to exactly one round of
// HTTP requests.
//
// Use New() to create a new instance with proper configuration.
type Client struct {
	httpClient *http.Client
	userAgent  string
	language   Language
	baseURL    string
}

// Config configures the Client behavior.
// All fields are optional and will use sensible defaults if not provided.
type Config struct {
	// UserAgent is sent with every request. Wikipedia asks API consumers
	// to identify themselves with a descriptive agent string.
	// Example: "MyApp/1.0 (contact@example.com)"
	UserAgent string

	// Timeout specifies the maximum duration for a single request.
	// Default is 10 seconds if not specified.
	// Example: 5 * time.Second
	Timeout time.Duration

	// DefaultLanguage is the edition used when an operation is called
	// without an explicit language. Default is LanguageEnglish.
	DefaultLanguage Language

	// BaseURL overrides the per-edition https://{code}.wikipedia.org
	// host for every request. Intended for tests; leave empty in
	// production.
	BaseURL string

	// HTTPClient replaces the default HTTP client. When set, Timeout is
	// ignored and the supplied client's own timeout applies.
	HTTPClient *http.Client
}

// New creates a new Client with the given configuration
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	language := cfg.DefaultLanguage
	if language == "" {
		language = DefaultLanguage
	}
	if !language.valid() {
		return nil, errInvalidLanguage(string(language))
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
		language:   language,
		baseURL:    cfg.BaseURL,
	}, nil
}

// Language returns the edition used when operations are called with an
// empty language.
func (c *Client) Language() Language {
	return c.language
}

// resolveLanguage maps an operation's language argument to the edition to
// query. Empty means the client default.
func (c *Client) resolveLanguage(language Language) (Language, error) {
	if language == "" {
		return c.language, nil
	}
	if !language.valid() {
		return "", errInvalidLanguage(string(language))
	}
	return language, nil
}

// editionBase returns the URL prefix for an edition's API host.
func (c *Client) editionBase(language Language) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.wikipedia.org", language.Code())
}

// fetch issues one GET and returns the body on HTTP 200. Any other
// outcome becomes an *Error whose kind follows the status: 403 and 429
// are rate limits, 5xx is a server failure, everything else is a network
// error carrying the status code.
func (c *Client) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errNetwork("create request failed", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errNetwork("request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, errRateLimited(resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, errNetworkStatus(resp.StatusCode, "404 - Not found")
	case resp.StatusCode >= 500 && resp.StatusCode <= 599:
		return nil, errServer(resp.StatusCode)
	default:
		return nil, errNetworkStatus(resp.StatusCode, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errNetwork("read response body failed", err)
	}
	return body, nil
}

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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: false,
		},
		{
			name: "full config",
			cfg: &Config{
				UserAgent:       "test-agent/1.0",
				Timeout:         5 * time.Second,
				DefaultLanguage: LanguageFrench,
			},
			wantErr: false,
		},
		{
			name:    "invalid default language",
			cfg:     &Config{DefaultLanguage: Language("xx")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsInvalidLanguage(err))
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	client, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, LanguageEnglish, client.Language())
	assert.Equal(t, defaultUserAgent, client.userAgent)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)

	custom := &http.Client{Timeout: time.Second}
	client, err = New(&Config{HTTPClient: custom})
	require.NoError(t, err)
	assert.Same(t, custom, client.httpClient)
}

func TestResolveLanguage(t *testing.T) {
	client, err := New(&Config{DefaultLanguage: LanguageGerman})
	require.NoError(t, err)

	lang, err := client.resolveLanguage("")
	require.NoError(t, err)
	assert.Equal(t, LanguageGerman, lang)

	lang, err = client.resolveLanguage(LanguageJapanese)
	require.NoError(t, err)
	assert.Equal(t, LanguageJapanese, lang)

	_, err = client.resolveLanguage(Language("xx"))
	assert.True(t, IsInvalidLanguage(err))
}

func TestEditionBase(t *testing.T) {
	client, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://en.wikipedia.org", client.editionBase(LanguageEnglish))
	assert.Equal(t, "https://ja.wikipedia.org", client.editionBase(LanguageJapanese))

	client, err = New(&Config{BaseURL: "http://127.0.0.1:8080"})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", client.editionBase(LanguageJapanese))
}

func TestFetchHeaders(t *testing.T) {
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := New(&Config{UserAgent: "test-agent/1.0", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.fetch(context.Background(), server.URL+"/anything")
	require.NoError(t, err)

	assert.Equal(t, "test-agent/1.0", gotHeaders.Get("User-Agent"))
	assert.Equal(t, "application/json", gotHeaders.Get("Accept"))
	assert.Equal(t, "no-cache", gotHeaders.Get("Cache-Control"))
}

func TestFetchStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		check      func(error) bool
		statusCode int
		detail     string
	}{
		{name: "forbidden", status: http.StatusForbidden, check: IsRateLimited, statusCode: 403},
		{name: "too many requests", status: http.StatusTooManyRequests, check: IsRateLimited, statusCode: 429},
		{name: "not found", status: http.StatusNotFound, check: IsNetworkError, statusCode: 404, detail: "404 - Not found"},
		{name: "internal error", status: http.StatusInternalServerError, check: IsServerError, statusCode: 500},
		{name: "unavailable", status: http.StatusServiceUnavailable, check: IsServerError, statusCode: 503},
		{name: "teapot", status: http.StatusTeapot, check: IsNetworkError, statusCode: 418, detail: "HTTP 418"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client, err := New(&Config{BaseURL: server.URL})
			require.NoError(t, err)

			body, err := client.fetch(context.Background(), server.URL)
			assert.Nil(t, body)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected kind for %v", err)

			var typed *Error
			require.True(t, errors.As(err, &typed))
			assert.Equal(t, tt.statusCode, typed.StatusCode)
			if tt.detail != "" {
				assert.Equal(t, tt.detail, typed.Detail)
			}
		})
	}
}

func TestFetchOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hello":"world"}`))
	}))
	defer server.Close()

	client, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	body, err := client.fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"world"}`, string(body))
}

func TestFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := New(nil)
	require.NoError(t, err)

	body, err := client.fetch(context.Background(), url)
	assert.Nil(t, body)
	assert.True(t, IsNetworkError(err), "want network error, got %v", err)
}

func TestFetchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client, err := New(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.fetch(ctx, server.URL)
	assert.True(t, IsNetworkError(err))
	assert.True(t, errors.Is(err, context.Canceled), "cause must stay reachable, got %v", err)
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := New(&Config{Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	_, err = client.fetch(context.Background(), server.URL)
	assert.True(t, IsNetworkError(err), "want network error, got %v", err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

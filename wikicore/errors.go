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
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the client can produce. The set is
// closed: each failure path maps to exactly one kind.
type ErrorKind int

const (
	// ErrKindNetwork covers transport failures, timeouts, and HTTP
	// statuses outside the dedicated kinds below.
	ErrKindNetwork ErrorKind = iota
	// ErrKindArticleNotFound means a title resolved to no article. The
	// client itself reports missing articles as absent results, not
	// errors; this kind exists for embedders that need an error value,
	// see NewArticleNotFound.
	ErrKindArticleNotFound
	// ErrKindInvalidQuery means a query or title failed validation
	// before any request was issued.
	ErrKindInvalidQuery
	// ErrKindRateLimited means the API answered 403 or 429.
	ErrKindRateLimited
	// ErrKindServer means the API answered with a 5xx status.
	ErrKindServer
	// ErrKindInvalidLanguage means a language code outside the
	// supported editions was supplied.
	ErrKindInvalidLanguage
	// ErrKindParse means a response body could not be decoded into the
	// expected shape.
	ErrKindParse
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindNetwork:
		return "network error"
	case ErrKindArticleNotFound:
		return "article not found"
	case ErrKindInvalidQuery:
		return "invalid query"
	case ErrKindRateLimited:
		return "rate limited"
	case ErrKindServer:
		return "server error"
	case ErrKindInvalidLanguage:
		return "invalid language"
	case ErrKindParse:
		return "parse error"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every client operation. It carries a
// technical Detail meant for logs and, separately, a human-readable
// sentence from UserMessage meant for display; the two are never merged.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Detail is the technical message, e.g. the transport error text or
	// the exact validation rule that failed.
	Detail string
	// StatusCode is the HTTP status that produced the failure, or zero
	// when no response was involved.
	StatusCode int
	// Err is the underlying transport or decode error, when any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns a sentence suitable for end-user display. It never
// contains the technical Detail.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case ErrKindNetwork:
		return "A network problem interrupted the request. Check your connection and try again."
	case ErrKindArticleNotFound:
		return "No article was found with that title."
	case ErrKindInvalidQuery:
		return "That search cannot be processed. Try shorter or different words."
	case ErrKindRateLimited:
		return "Too many requests right now. Wait a moment and try again."
	case ErrKindServer:
		return "Wikipedia is having trouble at the moment. Try again later."
	case ErrKindInvalidLanguage:
		return "That language edition is not supported."
	case ErrKindParse:
		return "The answer from Wikipedia could not be understood."
	default:
		return "Something went wrong."
	}
}

// NewArticleNotFound builds the not-found error for a title. The client's
// own lookups report missing articles as absent results; this constructor
// is for embedding layers that must surface the miss as an error.
func NewArticleNotFound(title string) *Error {
	return &Error{
		Kind:   ErrKindArticleNotFound,
		Detail: fmt.Sprintf("no article found for title %q", title),
	}
}

func errNetwork(detail string, err error) *Error {
	return &Error{Kind: ErrKindNetwork, Detail: detail, Err: err}
}

func errNetworkStatus(statusCode int, detail string) *Error {
	return &Error{Kind: ErrKindNetwork, Detail: detail, StatusCode: statusCode}
}

func errRateLimited(statusCode int) *Error {
	return &Error{
		Kind:       ErrKindRateLimited,
		Detail:     fmt.Sprintf("rate limited with HTTP %d", statusCode),
		StatusCode: statusCode,
	}
}

func errServer(statusCode int) *Error {
	return &Error{
		Kind:       ErrKindServer,
		Detail:     fmt.Sprintf("server failed with HTTP %d", statusCode),
		StatusCode: statusCode,
	}
}

func errInvalidQuery(detail string) *Error {
	return &Error{Kind: ErrKindInvalidQuery, Detail: detail}
}

func errInvalidLanguage(code string) *Error {
	return &Error{
		Kind:   ErrKindInvalidLanguage,
		Detail: fmt.Sprintf("unsupported language code %q", code),
	}
}

func errParse(detail string, err error) *Error {
	return &Error{Kind: ErrKindParse, Detail: detail, Err: err}
}

func kindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsNetworkError reports whether err is a transport or HTTP-level failure.
func IsNetworkError(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindNetwork
}

// IsArticleNotFound reports whether err marks a title without an article.
func IsArticleNotFound(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindArticleNotFound
}

// IsInvalidQuery reports whether err is a validation failure.
func IsInvalidQuery(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindInvalidQuery
}

// IsRateLimited reports whether err means the API asked us to back off.
func IsRateLimited(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindRateLimited
}

// IsServerError reports whether err is a 5xx answer from the API.
func IsServerError(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindServer
}

// IsInvalidLanguage reports whether err rejects a language code.
func IsInvalidLanguage(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindInvalidLanguage
}

// IsParseError reports whether err is a response decoding failure.
func IsParseError(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindParse
}

// notFoundStatus reports whether err is the network error produced by an
// HTTP 404 answer. GetArticle uses this to translate a missing page into
// an absent result instead of matching on the detail text.
func notFoundStatus(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrKindNetwork && e.StatusCode == 404
}

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
	"strconv"
	"time"
)

const (
	actionAPIPath = "/w/api.php"
	restAPIPath   = "/api/rest_v1"
)

// searchURL builds an Action API full-text search request. Snippets and
// word counts ride along via srprop so no second request is needed.
func searchURL(base, query string, limit int) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("format", "json")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "snippet|wordcount")
	return base + actionAPIPath + "?" + params.Encode()
}

// summaryURL builds a REST page summary request. The title is
// path-escaped, so spaces and slashes in article titles survive.
func summaryURL(base, title string) string {
	return base + restAPIPath + "/page/summary/" + url.PathEscape(title)
}

func randomURL(base string) string {
	return base + restAPIPath + "/page/random/summary"
}

// featuredURL builds a featured feed request for the given calendar day.
// The day is read in date's own location, so two callers in different
// zones can legitimately ask for different featured articles at the same
// instant.
func featuredURL(base string, date time.Time) string {
	return fmt.Sprintf("%s%s/feed/featured/%04d/%02d/%02d",
		base, restAPIPath, date.Year(), int(date.Month()), date.Day())
}

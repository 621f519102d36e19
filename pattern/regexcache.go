//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern

import (
	"fmt"
	"regexp"
	"sync"
)

type regexKey struct {
	pattern    string
	ignoreCase bool
	anywhere   bool
}

var (
	regexCacheMu sync.RWMutex
	regexCache   = map[regexKey]*regexp.Regexp{}
	// regexCacheLimit is the size hint set by SetRegexCacheLimit; zero
	// means unbounded.
	regexCacheLimit int
)

// SetRegexCacheLimit bounds the process-wide regex cache to at most n
// entries, evicting the whole cache once it would be exceeded rather
// than tracking per-entry recency. n <= 0 removes the bound. Intended
// to be called once at startup from the loaded run configuration's
// RegexCacheSize hint.
func SetRegexCacheLimit(n int) {
	regexCacheMu.Lock()
	regexCacheLimit = n
	regexCacheMu.Unlock()
}

// compileRegex returns a compiled regexp for pattern, from a
// process-wide cache that is lazily populated and never invalidated
// (§5's "regex cache ... lazily initialized on first use, immutable
// thereafter") except for the size bound set by SetRegexCacheLimit.
// anywhere=false anchors the match to the whole string.
func compileRegex(pattern string, ignoreCase, anywhere bool) (*regexp.Regexp, error) {
	key := regexKey{pattern: pattern, ignoreCase: ignoreCase, anywhere: anywhere}

	regexCacheMu.RLock()
	re, ok := regexCache[key]
	regexCacheMu.RUnlock()
	if ok {
		return re, nil
	}

	expr := pattern
	if !anywhere {
		expr = "^(?:" + expr + ")$"
	}
	if ignoreCase {
		expr = "(?i)" + expr
	}
	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("pattern: invalid regex %q: %w", pattern, err)
	}

	regexCacheMu.Lock()
	if regexCacheLimit > 0 && len(regexCache) >= regexCacheLimit {
		regexCache = map[regexKey]*regexp.Regexp{}
	}
	regexCache[key] = compiled
	regexCacheMu.Unlock()
	return compiled, nil
}

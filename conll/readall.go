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

package conll

import (
	"errors"
	"io"

	"go.uber.org/multierr"

	"github.com/yandex/dep-tregex/tree"
)

// ReadAll reads every tree out of r, collecting every malformed
// sentence's diagnostic instead of stopping at the first one. It
// returns the trees that parsed successfully alongside the aggregated
// error (nil if every sentence parsed).
func ReadAll(r io.Reader) ([]*tree.Tree, error) {
	reader := NewTreeReader(r)

	var trees []*tree.Tree
	var errs error
	for {
		t, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return trees, errs
		}
		var parseErr *CoNLLParseError
		if errors.As(err, &parseErr) {
			errs = multierr.Append(errs, parseErr)
			if skipErr := reader.SkipToNextBlank(); skipErr != nil {
				return trees, multierr.Append(errs, skipErr)
			}
			continue
		}
		if err != nil {
			return trees, multierr.Append(errs, err)
		}
		trees = append(trees, t)
	}
}

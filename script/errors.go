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

package script

import "fmt"

// LexError reports an invalid character encountered while scanning.
type LexError struct {
	Line int
	Col  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("script: line %d, col %d: invalid character %q", e.Line, e.Col, e.Char)
}

// ParseError reports a syntax error at a specific token.
type ParseError struct {
	Line    int
	Col     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("script: line %d, col %d: %s", e.Line, e.Col, e.Message)
}

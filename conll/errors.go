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

import "fmt"

// CoNLLParseError reports a malformed line encountered while decoding
// a CoNLL-X stream.
type CoNLLParseError struct {
	Line   int
	Reason string
}

func (e *CoNLLParseError) Error() string {
	return fmt.Sprintf("conll: line %d: %s", e.Line, e.Reason)
}

// InvalidField reports a field that fails the CoNLL-X validity rules
// at write time.
type InvalidField struct {
	Name  string
	Value string
}

func (e *InvalidField) Error() string {
	return fmt.Sprintf("conll: invalid %s field: %q", e.Name, e.Value)
}

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
	"strings"

	"github.com/yandex/dep-tregex/tree"
)

// StringPred is a compiled string predicate: literal equality or
// regex, as produced by Literal or Regex.
type StringPred func(string) bool

// Literal returns a StringPred matching exact string equality.
func Literal(s string) StringPred {
	return func(v string) bool { return v == s }
}

// Regex compiles body (without the surrounding slashes) with the
// given flags, as parsed from a /body/flags literal: 'i' for
// case-insensitive, 'g' for unanchored substring search. It returns an
// error for a malformed regex so callers (the script compiler) can
// surface a ParseError instead of panicking at match time.
func Regex(body string, ignoreCase, anywhere bool) (StringPred, error) {
	re, err := compileRegex(body, ignoreCase, anywhere)
	if err != nil {
		return nil, err
	}
	return re.MatchString, nil
}

// AttrMatches matches form/lemma/cpostag/postag/deprel against Pred.
// It fails at node 0, per the attribute predicate contract.
type AttrMatches struct {
	Attr tree.Attr
	Pred StringPred
}

func (AttrMatches) pattern() {}
func (p AttrMatches) Match(t *tree.Tree, node int, _ *Backrefs) bool {
	if node == 0 {
		return false
	}
	return p.Pred(t.Get(p.Attr, node))
}

// FeatsMatch matches the '|'-joined feature string against Pred. It
// fails at node 0.
type FeatsMatch struct {
	Pred StringPred
}

func (FeatsMatch) pattern() {}
func (p FeatsMatch) Match(t *tree.Tree, node int, _ *Backrefs) bool {
	if node == 0 {
		return false
	}
	return p.Pred(strings.Join(t.Feats(node), "|"))
}

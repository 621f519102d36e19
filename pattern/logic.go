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

import "github.com/yandex/dep-tregex/tree"

// And evaluates its conditions left to right, short-circuiting on the
// first failure and restoring refs to its entry state.
type And struct {
	Conditions []Pattern
}

func (And) pattern() {}
func (p And) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	before := refs.Clone()
	for _, c := range p.Conditions {
		if !c.Match(t, node, refs) {
			refs.restore(before)
			return false
		}
	}
	return true
}

// Or matches if any condition matches; the first success's bindings
// are kept.
type Or struct {
	Conditions []Pattern
}

func (Or) pattern() {}
func (p Or) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for _, c := range p.Conditions {
		if c.Match(t, node, refs) {
			return true
		}
	}
	return false
}

// Not evaluates Condition on a clone of refs and negates the result;
// the caller's refs is never mutated, win or lose.
type Not struct {
	Condition Pattern
}

func (Not) pattern() {}
func (p Not) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	clone := refs.Clone()
	return !p.Condition.Match(t, node, clone)
}

// SetBackref binds name to node, evaluates Condition, and restores the
// previous binding (including absence) if Condition fails.
type SetBackref struct {
	Name      string
	Condition Pattern
}

func (SetBackref) pattern() {}
func (p SetBackref) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	old, hadOld := refs.Get(p.Name)
	refs.Set(p.Name, node)

	if !p.Condition.Match(t, node, refs) {
		if hadOld {
			refs.Set(p.Name, old)
		} else {
			refs.Delete(p.Name)
		}
		return false
	}
	return true
}

// EqualsBackref matches iff Name is bound to node.
type EqualsBackref struct {
	Name string
}

func (EqualsBackref) pattern() {}
func (p EqualsBackref) Match(_ *tree.Tree, node int, refs *Backrefs) bool {
	bound, ok := refs.Get(p.Name)
	return ok && bound == node
}

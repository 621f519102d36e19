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

// Package pattern implements the tree-pattern language: a Boolean
// expression over node attributes, structural relations, and
// sub-pattern backreferences, matched at a single target node.
package pattern

import "github.com/yandex/dep-tregex/tree"

// Pattern matches a single node of a dependency tree. A matching
// pattern may bind entries in refs; a non-matching pattern must leave
// refs exactly as it found it.
type Pattern interface {
	Match(t *tree.Tree, node int, refs *Backrefs) bool

	// pattern is an unexported marker restricting Pattern to the
	// variants defined in this package, the same sum-type-via-marker
	// idiom used for mast.Node's node()/decl()/stmt()/expr() markers.
	pattern()
}

// AlwaysTrue matches every node unconditionally.
type AlwaysTrue struct{}

func (AlwaysTrue) pattern() {}
func (AlwaysTrue) Match(*tree.Tree, int, *Backrefs) bool { return true }

// IsRoot matches only the synthetic root node 0.
type IsRoot struct{}

func (IsRoot) pattern() {}
func (IsRoot) Match(_ *tree.Tree, node int, _ *Backrefs) bool { return node == 0 }

// NotRoot requires node != 0 before evaluating Condition. Every rule's
// top-level pattern is wrapped in NotRoot per the grammar's bare/guarded
// identifier productions.
type NotRoot struct {
	Condition Pattern
}

func (NotRoot) pattern() {}
func (p NotRoot) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	return node != 0 && p.Condition.Match(t, node, refs)
}

// IsTop matches non-root nodes whose head is the synthetic root.
type IsTop struct{}

func (IsTop) pattern() {}
func (IsTop) Match(t *tree.Tree, node int, _ *Backrefs) bool {
	return node != 0 && t.Heads(node) == 0
}

// IsLeaf matches nodes with no children.
type IsLeaf struct{}

func (IsLeaf) pattern() {}
func (IsLeaf) Match(t *tree.Tree, node int, _ *Backrefs) bool {
	return len(t.Children(node)) == 0
}

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

// HasLeftChild matches if some child c < node matches Condition.
type HasLeftChild struct{ Condition Pattern }

func (HasLeftChild) pattern() {}
func (p HasLeftChild) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for _, child := range t.Children(node) {
		if child > node {
			continue
		}
		if p.Condition.Match(t, child, refs) {
			return true
		}
	}
	return false
}

// HasRightChild matches if some child c > node matches Condition.
type HasRightChild struct{ Condition Pattern }

func (HasRightChild) pattern() {}
func (p HasRightChild) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for _, child := range t.Children(node) {
		if child < node {
			continue
		}
		if p.Condition.Match(t, child, refs) {
			return true
		}
	}
	return false
}

// HasChild matches if any child matches Condition.
type HasChild struct{ Condition Pattern }

func (HasChild) pattern() {}
func (p HasChild) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for _, child := range t.Children(node) {
		if p.Condition.Match(t, child, refs) {
			return true
		}
	}
	return false
}

// HasSuccessor matches if any transitive descendant matches Condition.
type HasSuccessor struct{ Condition Pattern }

func (HasSuccessor) pattern() {}
func (p HasSuccessor) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for _, d := range t.ChildrenRecursive(node) {
		if p.Condition.Match(t, d, refs) {
			return true
		}
	}
	return false
}

// HasAdjacentLeftChild matches if the child immediately preceding node
// (child+1 == node) matches Condition.
type HasAdjacentLeftChild struct{ Condition Pattern }

func (HasAdjacentLeftChild) pattern() {}
func (p HasAdjacentLeftChild) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for _, child := range t.Children(node) {
		if child+1 != node {
			continue
		}
		if p.Condition.Match(t, child, refs) {
			return true
		}
	}
	return false
}

// HasAdjacentRightChild matches if the child immediately following
// node (child-1 == node) matches Condition.
type HasAdjacentRightChild struct{ Condition Pattern }

func (HasAdjacentRightChild) pattern() {}
func (p HasAdjacentRightChild) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for _, child := range t.Children(node) {
		if child-1 != node {
			continue
		}
		if p.Condition.Match(t, child, refs) {
			return true
		}
	}
	return false
}

// HasAdjacentChild matches if either horizontally adjacent child
// matches Condition.
type HasAdjacentChild struct{ Condition Pattern }

func (HasAdjacentChild) pattern() {}
func (p HasAdjacentChild) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for _, child := range t.Children(node) {
		if d := child - node; d != -1 && d != 1 {
			continue
		}
		if p.Condition.Match(t, child, refs) {
			return true
		}
	}
	return false
}

// HasLeftHead matches if node's head is to its left and matches
// Condition.
type HasLeftHead struct{ Condition Pattern }

func (HasLeftHead) pattern() {}
func (p HasLeftHead) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	head := t.Heads(node)
	return head < node && p.Condition.Match(t, head, refs)
}

// HasRightHead matches if node's head is to its right and matches
// Condition.
type HasRightHead struct{ Condition Pattern }

func (HasRightHead) pattern() {}
func (p HasRightHead) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	head := t.Heads(node)
	return head > node && p.Condition.Match(t, head, refs)
}

// HasHead matches if node's head matches Condition.
type HasHead struct{ Condition Pattern }

func (HasHead) pattern() {}
func (p HasHead) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	return p.Condition.Match(t, t.Heads(node), refs)
}

// HasPredecessor matches if any ancestor (walking to the root)
// matches Condition.
type HasPredecessor struct{ Condition Pattern }

func (HasPredecessor) pattern() {}
func (p HasPredecessor) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	for {
		node = t.Heads(node)
		if p.Condition.Match(t, node, refs) {
			return true
		}
		if node == 0 {
			return false
		}
	}
}

// HasAdjacentLeftHead matches if node's head is immediately to its
// left (head+1 == node) and matches Condition.
type HasAdjacentLeftHead struct{ Condition Pattern }

func (HasAdjacentLeftHead) pattern() {}
func (p HasAdjacentLeftHead) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	head := t.Heads(node)
	return head+1 == node && p.Condition.Match(t, head, refs)
}

// HasAdjacentRightHead matches if node's head is immediately to its
// right (head-1 == node) and matches Condition.
type HasAdjacentRightHead struct{ Condition Pattern }

func (HasAdjacentRightHead) pattern() {}
func (p HasAdjacentRightHead) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	head := t.Heads(node)
	return head-1 == node && p.Condition.Match(t, head, refs)
}

// HasAdjacentHead matches if node's head is horizontally adjacent and
// matches Condition.
type HasAdjacentHead struct{ Condition Pattern }

func (HasAdjacentHead) pattern() {}
func (p HasAdjacentHead) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	head := t.Heads(node)
	if d := head - node; d != -1 && d != 1 {
		return false
	}
	return p.Condition.Match(t, head, refs)
}

// HasLeftNeighbor matches if any node strictly to the left of node
// (including the root) matches Condition.
type HasLeftNeighbor struct{ Condition Pattern }

func (HasLeftNeighbor) pattern() {}
func (p HasLeftNeighbor) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	for neighbor := 0; neighbor < node; neighbor++ {
		if p.Condition.Match(t, neighbor, refs) {
			return true
		}
	}
	return false
}

// HasRightNeighbor matches if any node strictly to the right of node
// matches Condition.
type HasRightNeighbor struct{ Condition Pattern }

func (HasRightNeighbor) pattern() {}
func (p HasRightNeighbor) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	for neighbor := node + 1; neighbor <= t.Len(); neighbor++ {
		if p.Condition.Match(t, neighbor, refs) {
			return true
		}
	}
	return false
}

// HasAdjacentLeftNeighbor matches if node-1 matches Condition.
type HasAdjacentLeftNeighbor struct{ Condition Pattern }

func (HasAdjacentLeftNeighbor) pattern() {}
func (p HasAdjacentLeftNeighbor) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == 0 {
		return false
	}
	return p.Condition.Match(t, node-1, refs)
}

// HasAdjacentRightNeighbor matches if node+1 matches Condition.
type HasAdjacentRightNeighbor struct{ Condition Pattern }

func (HasAdjacentRightNeighbor) pattern() {}
func (p HasAdjacentRightNeighbor) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	if node == t.Len() {
		return false
	}
	return p.Condition.Match(t, node+1, refs)
}

// CanHead matches if node may become the head of the node bound to
// Backref without creating a cycle.
type CanHead struct{ Backref string }

func (CanHead) pattern() {}
func (p CanHead) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	child, ok := refs.Get(p.Backref)
	if !ok {
		return false
	}
	return canSetHead(t, child, node)
}

// CanBeHeadedBy matches if the node bound to Backref may become the
// head of node without creating a cycle.
type CanBeHeadedBy struct{ Backref string }

func (CanBeHeadedBy) pattern() {}
func (p CanBeHeadedBy) Match(t *tree.Tree, node int, refs *Backrefs) bool {
	head, ok := refs.Get(p.Backref)
	if !ok {
		return false
	}
	return canSetHead(t, node, head)
}

// canSetHead reports whether child's head may become head without
// creating a cycle, like tree.Tree.CanSetHead but without its range
// checks. For child == 0 it always reports false, since every node
// other than the root descends from it.
func canSetHead(t *tree.Tree, child, head int) bool {
	if head == child {
		return false
	}
	for _, d := range t.ChildrenRecursive(child) {
		if d == head {
			return false
		}
	}
	return true
}

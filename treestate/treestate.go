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

// Package treestate couples a Tree with the auxiliary indices the
// action interpreter and script driver need: backreference bindings,
// per-node marks, and a symmetric "grouped with" relation. Every
// mutation that reorders or deletes nodes remaps all three alongside
// the tree itself.
package treestate

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/yandex/dep-tregex/pattern"
	"github.com/yandex/dep-tregex/tree"
)

// TreeState is the unit of exclusive access the script driver hands to
// actions: a tree plus the three auxiliary maps kept in sync with it.
type TreeState struct {
	Tree    *tree.Tree
	Refs    *pattern.Backrefs
	marked  *bitset.BitSet
	grouped map[int]map[int]bool
}

// New wraps t in a fresh TreeState with no marks, bindings, or
// groupings.
func New(t *tree.Tree) *TreeState {
	return &TreeState{
		Tree:    t,
		Refs:    &pattern.Backrefs{},
		marked:  bitset.New(uint(t.Len() + 1)),
		grouped: make(map[int]map[int]bool),
	}
}

// Mark marks node (0..N) as an "original node" for the current rule
// iteration.
func (s *TreeState) Mark(node int) {
	s.marked.Set(uint(node))
}

// Unmark clears node's mark.
func (s *TreeState) Unmark(node int) {
	s.marked.Clear(uint(node))
}

// UnmarkAll clears every mark.
func (s *TreeState) UnmarkAll() {
	s.marked.ClearAll()
}

// Marked reports whether node is currently marked.
func (s *TreeState) Marked(node int) bool {
	return s.marked.Test(uint(node))
}

// GroupTogether records that a and b belong to the same action group,
// symmetrically.
func (s *TreeState) GroupTogether(a, b int) {
	s.addGrouped(a, b)
	s.addGrouped(b, a)
}

func (s *TreeState) addGrouped(from, to int) {
	if s.grouped[from] == nil {
		s.grouped[from] = make(map[int]bool)
	}
	s.grouped[from][to] = true
}

// GatherGroup returns node together with the transitive closure of
// children ∪ grouped_with reachable from it, each node appearing once.
func (s *TreeState) GatherGroup(node int) []int {
	queue := []int{node}
	visited := make(map[int]bool)
	var result []int

	for i := 0; i < len(queue); i++ {
		n := queue[i]
		if visited[n] {
			continue
		}
		visited[n] = true
		result = append(result, n)

		queue = append(queue, s.Tree.Children(n)...)
		for g := range s.grouped[n] {
			queue = append(queue, g)
		}
	}
	return result
}

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

package treestate

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/yandex/dep-tregex/tree"
)

// Move moves nodes before/after anchor, then remaps marks, groupings,
// and backreferences under the permutation tree.Move applied.
func (s *TreeState) Move(nodes []int, anchor int, where tree.Where) error {
	newTree, perm, err := s.Tree.Move(nodes, anchor, where)
	if err != nil {
		return err
	}
	s.Tree = newTree
	s.remapIndices(func(node int) int {
		if node == 0 {
			return 0
		}
		return perm[node-1] + 1
	})
	return nil
}

// remapIndices rewrites marks, groupings, and backreferences through
// f, which must map each surviving node to its new index.
func (s *TreeState) remapIndices(f func(int) int) {
	oldMarked := s.marked
	remapped := bitset.New(uint(s.Tree.Len() + 1))
	for i, e := oldMarked.NextSet(0); e; i, e = oldMarked.NextSet(i + 1) {
		remapped.Set(uint(f(int(i))))
	}
	s.marked = remapped

	newGrouped := make(map[int]map[int]bool, len(s.grouped))
	for node, peers := range s.grouped {
		newNode := f(node)
		for peer := range peers {
			if newGrouped[newNode] == nil {
				newGrouped[newNode] = make(map[int]bool)
			}
			newGrouped[newNode][f(peer)] = true
		}
	}
	s.grouped = newGrouped

	newRefs := map[string]int{}
	s.Refs.Range(func(name string, node int) {
		newRefs[name] = f(node)
	})
	s.Refs.ReplaceAll(newRefs)
}

// Delete removes nodes from the tree, lifting orphaned arcs, and drops
// marks/groupings/backreferences that referred to deleted nodes.
func (s *TreeState) Delete(nodes []int) error {
	deleted := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		deleted[n] = true
	}

	newTree, err := s.Tree.Delete(nodes)
	if err != nil {
		return err
	}

	// Recompute the surviving-node remap the same way tree.Delete does:
	// original relative order, compacted starting at 1.
	remap := map[int]int{0: 0}
	next := 1
	for node := 1; node <= s.Tree.Len(); node++ {
		if deleted[node] {
			continue
		}
		remap[node] = next
		next++
	}

	s.Tree = newTree

	oldMarked := s.marked
	remapped := bitset.New(uint(s.Tree.Len() + 1))
	for i, e := oldMarked.NextSet(0); e; i, e = oldMarked.NextSet(i + 1) {
		if deleted[int(i)] {
			continue
		}
		remapped.Set(uint(remap[int(i)]))
	}
	s.marked = remapped

	newGrouped := make(map[int]map[int]bool, len(s.grouped))
	for node, peers := range s.grouped {
		if deleted[node] {
			continue
		}
		for peer := range peers {
			if deleted[peer] {
				continue
			}
			newNode, newPeer := remap[node], remap[peer]
			if newGrouped[newNode] == nil {
				newGrouped[newNode] = make(map[int]bool)
			}
			newGrouped[newNode][newPeer] = true
		}
	}
	s.grouped = newGrouped

	var stale []string
	s.Refs.Range(func(name string, node int) {
		if deleted[node] {
			stale = append(stale, name)
		}
	})
	for _, name := range stale {
		s.Refs.Delete(name)
	}
	return nil
}

// SetHead sets node's head, applying tree.SetHead. Node count and
// order are unaffected, so no auxiliary reindexing is needed.
func (s *TreeState) SetHead(node, head int) error {
	newTree, err := s.Tree.SetHead(node, head)
	if err != nil {
		return err
	}
	s.Tree = newTree
	return nil
}

// AppendCopy appends copies of nodes at the tail of the tree and
// returns the range of newly created node indices, in the same order
// as the sorted copied set.
func (s *TreeState) AppendCopy(nodes []int) ([]int, error) {
	before := s.Tree.Len()
	newTree, err := s.Tree.AppendCopy(nodes)
	if err != nil {
		return nil, err
	}
	s.Tree = newTree
	s.marked = growBitset(s.marked, uint(newTree.Len()+1))

	var newNodes []int
	for i := before + 1; i <= newTree.Len(); i++ {
		newNodes = append(newNodes, i)
	}
	return newNodes, nil
}

func growBitset(b *bitset.BitSet, size uint) *bitset.BitSet {
	grown := bitset.New(size)
	for i, e := b.NextSet(0); e; i, e = b.NextSet(i + 1) {
		grown.Set(i)
	}
	return grown
}

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

package action

import (
	"sort"

	"github.com/yandex/dep-tregex/tree"
	"github.com/yandex/dep-tregex/treestate"
)

// Move relocates the nodes selected by (What, SelWhat) to just before
// or after the node selected by (Anchor, SelAnchor).
type Move struct {
	What      string
	SelWhat   Selector
	Anchor    string
	SelAnchor Selector
	Where     tree.Where
}

func (Move) action() {}

func (m Move) Apply(state *treestate.TreeState) error {
	whatNode, err := resolve(state, m.What)
	if err != nil {
		return err
	}
	if whatNode == 0 {
		return &CannotMoveRoot{}
	}
	anchorNode, err := resolve(state, m.Anchor)
	if err != nil {
		return err
	}
	if m.Where == tree.Before && anchorNode == 0 {
		return &CannotMoveBeforeRoot{}
	}

	moved := gather(state, whatNode, m.SelWhat)
	return moveResolved(state, moved, anchorNode, m.SelAnchor, m.Where)
}

// moveResolved implements the anchor-expansion-and-exclusion logic
// shared by Move and Copy once "what" has already been gathered into
// a concrete node set.
func moveResolved(state *treestate.TreeState, moved []int, anchor int, selAnchor Selector, where tree.Where) error {
	if selAnchor == Group {
		movedSet := make(map[int]bool, len(moved))
		for _, n := range moved {
			movedSet[n] = true
		}

		var candidates []int
		for _, n := range state.GatherGroup(anchor) {
			if !movedSet[n] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			return nil
		}
		sort.Ints(candidates)
		if where == tree.Before {
			anchor = candidates[0]
		} else {
			anchor = candidates[len(candidates)-1]
		}
	}

	return state.Move(moved, anchor, where)
}

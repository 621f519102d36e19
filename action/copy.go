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
	"github.com/yandex/dep-tregex/tree"
	"github.com/yandex/dep-tregex/treestate"
)

// Copy appends a copy of the nodes selected by (What, SelWhat) at the
// tail of the tree, then moves that new block before or after the
// node selected by (Anchor, SelAnchor).
type Copy struct {
	What      string
	SelWhat   Selector
	Anchor    string
	SelAnchor Selector
	Where     tree.Where
}

func (Copy) action() {}

func (c Copy) Apply(state *treestate.TreeState) error {
	whatNode, err := resolve(state, c.What)
	if err != nil {
		return err
	}
	if whatNode == 0 {
		return &CannotMoveRoot{}
	}
	anchorNode, err := resolve(state, c.Anchor)
	if err != nil {
		return err
	}
	if c.Where == tree.Before && anchorNode == 0 {
		return &CannotMoveBeforeRoot{}
	}

	what := gather(state, whatNode, c.SelWhat)
	newNodes, err := state.AppendCopy(what)
	if err != nil {
		return err
	}

	return moveResolved(state, newNodes, anchorNode, c.SelAnchor, c.Where)
}

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

import "github.com/yandex/dep-tregex/treestate"

// SetHead makes the node bound to Head the head of the node bound to
// Node. If Strict, a cycle-inducing Head fails with InvalidHead;
// otherwise it silently no-ops.
type SetHead struct {
	Node   string
	Head   string
	Strict bool
}

func (SetHead) action() {}

func (a SetHead) Apply(state *treestate.TreeState) error {
	node, err := resolve(state, a.Node)
	if err != nil {
		return err
	}
	if node == 0 {
		return &CannotSetRootHead{}
	}
	head, err := resolve(state, a.Head)
	if err != nil {
		return err
	}

	if !state.Tree.CanSetHead(node, head) {
		if a.Strict {
			return &InvalidHead{Node: node, Head: head}
		}
		return nil
	}
	return state.SetHead(node, head)
}

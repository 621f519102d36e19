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

// Delete removes the nodes selected by (What, SelWhat). Descendants
// that survive are reparented to the nearest surviving ancestor.
type Delete struct {
	What    string
	SelWhat Selector
}

func (Delete) action() {}

func (d Delete) Apply(state *treestate.TreeState) error {
	node, err := resolve(state, d.What)
	if err != nil {
		return err
	}

	nodes := gather(state, node, d.SelWhat)
	for _, n := range nodes {
		if n == 0 {
			return &CannotDeleteRoot{}
		}
	}
	return state.Delete(nodes)
}

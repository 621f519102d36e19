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

// Package action implements the action language: mutation operations
// resolved against a TreeState's backreferences and applied to its
// tree, marks, and groupings together.
package action

import "github.com/yandex/dep-tregex/treestate"

// Action mutates a TreeState. Errors abort the whole script run.
type Action interface {
	Apply(state *treestate.TreeState) error

	// action is an unexported marker restricting Action to the variants
	// defined in this package, the same sum-type idiom used by Pattern.
	action()
}

// Selector qualifies how a backreferenced node expands into a node
// set for Move/Copy/Delete.
type Selector int

const (
	// Node selects the singleton {n}.
	Node Selector = iota
	// Group selects gather_group(n): the transitive closure of
	// children ∪ grouped_with.
	Group
)

func gather(state *treestate.TreeState, node int, sel Selector) []int {
	if sel == Node {
		return []int{node}
	}
	return state.GatherGroup(node)
}

func resolve(state *treestate.TreeState, name string) (int, error) {
	node, ok := state.Refs.Get(name)
	if !ok {
		return 0, &UnmatchedBackref{Name: name}
	}
	return node, nil
}

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

package tree

import "fmt"

// IndexOutOfRange reports a node index outside the range a tree
// operation requires.
type IndexOutOfRange struct {
	Index int
}

func (e *IndexOutOfRange) Error() string {
	return fmt.Sprintf("tree: index out of range: %d", e.Index)
}

// InvalidReordering reports that a permutation passed to Reorder is
// not a bijection on [0,N), or that a constructed tree's heads are out
// of range.
type InvalidReordering struct {
	Reason string
}

func (e *InvalidReordering) Error() string {
	return fmt.Sprintf("tree: invalid reordering: %s", e.Reason)
}

// WouldCreateCycle reports that SetHead was asked to make a node, or one
// of its own (possibly indirect) descendants, that node's head.
type WouldCreateCycle struct {
	Node int
	Head int
}

func (e *WouldCreateCycle) Error() string {
	return fmt.Sprintf("tree: setting head of %d to %d would create a cycle", e.Node, e.Head)
}

// Disconnected reports that a constructed tree fails the
// acyclicity/connectivity invariant.
type Disconnected struct {
	Reason string
}

func (e *Disconnected) Error() string {
	return fmt.Sprintf("tree: %s", e.Reason)
}

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

import "fmt"

// UnmatchedBackref reports an action referring to a backreference name
// with no current binding.
type UnmatchedBackref struct {
	Name string
}

func (e *UnmatchedBackref) Error() string {
	return fmt.Sprintf("action: unmatched backreference %q", e.Name)
}

// CannotMoveRoot reports a Move/Copy whose expanded "what" set
// contains the synthetic root.
type CannotMoveRoot struct{}

func (e *CannotMoveRoot) Error() string { return "action: cannot move the root node" }

// CannotMoveBeforeRoot reports a Move/Copy placing nodes before the
// synthetic root.
type CannotMoveBeforeRoot struct{}

func (e *CannotMoveBeforeRoot) Error() string { return "action: cannot move nodes before the root" }

// CannotDeleteRoot reports a Delete whose expanded "what" set contains
// the synthetic root.
type CannotDeleteRoot struct{}

func (e *CannotDeleteRoot) Error() string { return "action: cannot delete the root node" }

// CannotSetOnRoot reports a SetAttr targeting the synthetic root.
type CannotSetOnRoot struct{}

func (e *CannotSetOnRoot) Error() string { return "action: cannot set an attribute on the root node" }

// CannotSetRootHead reports a SetHead targeting the synthetic root as
// the node whose head is being set.
type CannotSetRootHead struct{}

func (e *CannotSetRootHead) Error() string { return "action: cannot set the head of the root node" }

// InvalidHead reports a strict SetHead that would create a cycle.
type InvalidHead struct {
	Node int
	Head int
}

func (e *InvalidHead) Error() string {
	return fmt.Sprintf("action: %d cannot become the head of %d without creating a cycle", e.Head, e.Node)
}

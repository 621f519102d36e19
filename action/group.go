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

// GroupTogether marks the nodes bound to A and B as belonging to the
// same action group, symmetrically.
type GroupTogether struct {
	A string
	B string
}

func (GroupTogether) action() {}

func (g GroupTogether) Apply(state *treestate.TreeState) error {
	a, err := resolve(state, g.A)
	if err != nil {
		return err
	}
	b, err := resolve(state, g.B)
	if err != nil {
		return err
	}
	state.GroupTogether(a, b)
	return nil
}

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
	"strings"

	"github.com/yandex/dep-tregex/tree"
	"github.com/yandex/dep-tregex/treestate"
)

// SetAttr overwrites a single string attribute (or, for feats, the
// whole feature list) of the node bound to Node. Dispatch goes through
// tree.Attr rather than a raw field name, per the typed attribute-kind
// design.
type SetAttr struct {
	Node  string
	Attr  tree.Attr
	Value string
}

func (SetAttr) action() {}

func (a SetAttr) Apply(state *treestate.TreeState) error {
	node, err := resolve(state, a.Node)
	if err != nil {
		return err
	}
	if node == 0 {
		return &CannotSetOnRoot{}
	}

	if a.Attr == tree.AttrFeats {
		var feats []string
		if a.Value != "" {
			feats = strings.Split(a.Value, "|")
		}
		state.Tree.SetFeats(node, feats)
		return nil
	}
	state.Tree.Set(a.Attr, node, a.Value)
	return nil
}

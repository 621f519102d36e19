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

// Package driver runs compiled scripts over a tree: each script is
// applied to a fixed point over the nodes that existed when the
// script began, before the next script starts.
package driver

import (
	"fmt"

	"github.com/yandex/dep-tregex/script"
	"github.com/yandex/dep-tregex/tree"
	"github.com/yandex/dep-tregex/treestate"
)

// RunError wraps an action failure with the source text of the script
// that produced it.
type RunError struct {
	ScriptText string
	Line, Col  int
	Err        error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("line %d, col %d: %v (in %q)", e.Line, e.Col, e.Err, e.ScriptText)
}

func (e *RunError) Unwrap() error { return e.Err }

// Run applies scripts to t in order, each to a fixed point over its
// own original nodes, and returns the resulting tree. The scripts run
// on a private copy of t, so t itself is left untouched.
func Run(t *tree.Tree, scripts []script.Script) (*tree.Tree, error) {
	// Delete with no nodes rebuilds an independent copy, so in-place
	// attribute writes (SetAttr) never reach the caller's tree.
	working, err := t.Delete(nil)
	if err != nil {
		return nil, err
	}
	state := treestate.New(working)

	for _, s := range scripts {
		if err := runToFixedPoint(state, s); err != nil {
			line, col := s.Pos()
			return nil, &RunError{ScriptText: s.Text, Line: line, Col: col, Err: err}
		}
	}
	return state.Tree, nil
}

// runToFixedPoint marks every node currently in state.Tree as
// original, then repeatedly finds the first marked node (ascending,
// starting at the synthetic root 0) matching s.Pattern and applies
// s.Actions to it, unmarking the node first so a rule never matches
// the same original node twice. It stops once no marked node matches.
func runToFixedPoint(state *treestate.TreeState, s script.Script) error {
	state.UnmarkAll()
	for node := 0; node <= state.Tree.Len(); node++ {
		state.Mark(node)
	}

	for {
		state.Refs.Clear()

		node, ok := firstMarkedMatch(state, s)
		if !ok {
			return nil
		}

		state.Unmark(node)
		for _, act := range s.Actions {
			if err := act.Apply(state); err != nil {
				return err
			}
		}
	}
}

func firstMarkedMatch(state *treestate.TreeState, s script.Script) (int, bool) {
	for node := 0; node <= state.Tree.Len(); node++ {
		if !state.Marked(node) {
			continue
		}
		if s.Pattern.Match(state.Tree, node, state.Refs) {
			return node, true
		}
	}
	return 0, false
}

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

package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yandex/dep-tregex/action"
	"github.com/yandex/dep-tregex/pattern"
	"github.com/yandex/dep-tregex/script"
	"github.com/yandex/dep-tregex/tree"
)

// theCatSat builds "1 The/DT/2/det 2 cat/NN/3/nsubj 3 sat/VB/0/root".
func theCatSat(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.New(
		[]string{"The", "cat", "sat"},
		[]string{"", "", ""},
		[]string{"DT", "NN", "VB"},
		[]string{"DT", "NN", "VB"},
		[][]string{{}, {}, {}},
		[]int{2, 3, 0},
		[]string{"det", "nsubj", "root"},
	)
	require.NoError(t, err)
	return tr
}

func TestRunScenarioANoOpIdentity(t *testing.T) {
	in := theCatSat(t)
	scripts, err := script.ParseScripts(`{ x :: }`)
	require.NoError(t, err)

	out, err := Run(in, scripts)
	require.NoError(t, err)

	for n := 1; n <= in.Len(); n++ {
		require.Equal(t, in.Heads(n), out.Heads(n))
	}
	for n := 1; n <= in.Len(); n++ {
		require.Equal(t, in.Forms(n), out.Forms(n))
		require.Equal(t, in.Deprels(n), out.Deprels(n))
	}
}

func TestRunScenarioBDeletePunctuation(t *testing.T) {
	in, err := tree.New(
		[]string{"Hi", "!", "."},
		[]string{"", "", ""},
		[]string{"UH", ".", "."},
		[]string{"UH", ".", "."},
		[][]string{{}, {}, {}},
		[]int{2, 0, 2},
		[]string{"intj", "root", "punct"},
	)
	require.NoError(t, err)

	scripts, err := script.ParseScripts(`{ x cpostag "." :: delete node x; }`)
	require.NoError(t, err)

	out, err := Run(in, scripts)
	require.NoError(t, err)

	require.Equal(t, 1, out.Len())
	require.Equal(t, "Hi", out.Forms(1))
	require.Equal(t, "UH", out.CPostags(1))
	require.Equal(t, 0, out.Heads(1))
	require.Equal(t, "intj", out.Deprels(1))
}

func TestRunScenarioCMoveDeterminerBeforeHead(t *testing.T) {
	in, err := tree.New(
		[]string{"cat", "sat", "The"},
		[]string{"", "", ""},
		[]string{"NN", "VB", "DT"},
		[]string{"NN", "VB", "DT"},
		[][]string{{}, {}, {}},
		[]int{2, 0, 1},
		[]string{"nsubj", "root", "det"},
	)
	require.NoError(t, err)

	scripts, err := script.ParseScripts(`{ d cpostag "DT" and < h :: move node d before node h; }`)
	require.NoError(t, err)

	out, err := Run(in, scripts)
	require.NoError(t, err)

	require.Equal(t, "The", out.Forms(1))
	require.Equal(t, "cat", out.Forms(2))
	require.Equal(t, "sat", out.Forms(3))
	require.Equal(t, 3, out.Heads(1))
	require.Equal(t, 3, out.Heads(2))
	require.Equal(t, 0, out.Heads(3))
}

// TestRunScenarioDCopySubjectAfterVerb builds the pattern/action pair
// directly rather than through script syntax: the grammar has no
// implicit conjunction between condition atoms (every additional atom
// needs an explicit "and"/"or"), so the spec's shorthand
// "s deprel nsubj < h" is exercised here as its fully-bracketed
// equivalent, "s deprel \"nsubj\" and < h", built as an AST.
func TestRunScenarioDCopySubjectAfterVerb(t *testing.T) {
	in, err := tree.New(
		[]string{"cat", "sat"},
		[]string{"", ""},
		[]string{"NN", "VB"},
		[]string{"NN", "VB"},
		[][]string{{}, {}},
		[]int{2, 0},
		[]string{"nsubj", "root"},
	)
	require.NoError(t, err)

	pat := pattern.NotRoot{Condition: pattern.SetBackref{
		Name: "s",
		Condition: pattern.And{Conditions: []pattern.Pattern{
			pattern.AttrMatches{Attr: tree.AttrDeprel, Pred: pattern.Literal("nsubj")},
			pattern.HasHead{Condition: pattern.SetBackref{Name: "h", Condition: pattern.AlwaysTrue{}}},
		}},
	}}

	scripts := []script.Script{{
		Pattern: pat,
		Actions: []action.Action{
			action.Copy{What: "s", SelWhat: action.Group, Anchor: "h", SelAnchor: action.Node, Where: tree.After},
		},
		Text: `{ s deprel "nsubj" and < h :: copy group s after node h; }`,
	}}

	out, err := Run(in, scripts)
	require.NoError(t, err)

	require.Equal(t, 3, out.Len())
	require.Equal(t, "cat", out.Forms(1))
	require.Equal(t, "sat", out.Forms(2))
	require.Equal(t, "cat", out.Forms(3))
	require.Equal(t, 2, out.Heads(1))
	require.Equal(t, 2, out.Heads(3))
}

func TestRunScenarioECyclePrevention(t *testing.T) {
	// 1=cat(nsubj->2) 2=sat(root->0) 3=The(det->1); 1 is a transitive
	// child of... construct x with a transitive child y: x=2(sat), y=3
	// is a child of 1 which is a child of 2, so y is a transitive child
	// of x.
	in, err := tree.New(
		[]string{"cat", "sat", "The"},
		[]string{"", "", ""},
		[]string{"NN", "VB", "DT"},
		[]string{"NN", "VB", "DT"},
		[][]string{{}, {}, {}},
		[]int{2, 0, 1},
		[]string{"nsubj", "root", "det"},
	)
	require.NoError(t, err)

	tryAction := action.SetHead{Node: "x", Head: "y", Strict: false}
	strictAction := action.SetHead{Node: "x", Head: "y", Strict: true}

	// A pattern that matches node 2 once, binding x=2 and y=3 (3 is a
	// transitive child of 2 via 1).
	bindXY := pattern.NotRoot{Condition: pattern.And{Conditions: []pattern.Pattern{
		pattern.AttrMatches{Attr: tree.AttrCPostag, Pred: pattern.Literal("VB")},
		pattern.SetBackref{Name: "x", Condition: pattern.AlwaysTrue{}},
		pattern.HasSuccessor{Condition: pattern.SetBackref{Name: "y", Condition: pattern.AttrMatches{Attr: tree.AttrCPostag, Pred: pattern.Literal("DT")}}},
	}}}

	nonStrict, err := Run(in, []script.Script{{Pattern: bindXY, Actions: []action.Action{tryAction}, Text: "try_set_head x heads y"}})
	require.NoError(t, err)
	require.Equal(t, 1, nonStrict.Heads(2), "non-strict try_set_head must leave the cycle-inducing head unchanged")

	_, err = Run(in, []script.Script{{Pattern: bindXY, Actions: []action.Action{strictAction}, Text: "set_head x heads y"}})
	require.Error(t, err)
	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
}

func TestRunDeletesEveryOriginalMatchToFixedPoint(t *testing.T) {
	in, err := tree.New(
		[]string{"a", "b", "c"},
		[]string{"", "", ""},
		[]string{".", ".", "X"},
		[]string{".", ".", "X"},
		[][]string{{}, {}, {}},
		[]int{3, 3, 0},
		[]string{"punct", "punct", "root"},
	)
	require.NoError(t, err)

	scripts, err := script.ParseScripts(`{ x cpostag "." :: delete node x; }`)
	require.NoError(t, err)

	out, err := Run(in, scripts)
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	require.Equal(t, "c", out.Forms(1))
}

func TestRunReturnsRunErrorWithSourceText(t *testing.T) {
	in := theCatSat(t)
	scripts, err := script.ParseScripts(`{ x deprel "det" :: set_head x heads x; }`)
	require.NoError(t, err)

	_, err = Run(in, scripts)
	require.Error(t, err)
	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	require.Contains(t, runErr.ScriptText, "set_head")
}

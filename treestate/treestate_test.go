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

package treestate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yandex/dep-tregex/tree"
)

func catSatTheState(t *testing.T) *TreeState {
	t.Helper()
	// 1=cat(nsubj->2) 2=sat(root->0) 3=The(det->1)
	tr, err := tree.New(
		[]string{"cat", "sat", "The"},
		[]string{"", "", ""},
		[]string{"NN", "VB", "DT"},
		[]string{"NN", "VB", "DT"},
		[][]string{{}, {}, {}},
		[]int{2, 0, 1},
		[]string{"nsubj", "root", "det"},
	)
	require.NoError(t, err)
	return New(tr)
}

func TestMarkUnmark(t *testing.T) {
	state := catSatTheState(t)
	require.False(t, state.Marked(1))
	state.Mark(1)
	state.Mark(3)
	require.True(t, state.Marked(1))
	require.True(t, state.Marked(3))
	require.False(t, state.Marked(2))

	state.Unmark(1)
	require.False(t, state.Marked(1))
	require.True(t, state.Marked(3))

	state.UnmarkAll()
	require.False(t, state.Marked(3))
}

func TestGatherGroupIncludesSeedAndChildren(t *testing.T) {
	state := catSatTheState(t)
	// cat(1)'s only child is The(3); no groupings.
	group := state.GatherGroup(1)
	require.ElementsMatch(t, []int{1, 3}, group)
}

func TestGatherGroupFollowsGrouping(t *testing.T) {
	state := catSatTheState(t)
	state.GroupTogether(3, 2)
	// The(3) has no children, but is grouped with sat(2), which pulls
	// in sat's child cat(1) too.
	group := state.GatherGroup(3)
	require.ElementsMatch(t, []int{3, 2, 1}, group)
}

func TestGatherGroupLeafIsJustItself(t *testing.T) {
	state := catSatTheState(t)
	group := state.GatherGroup(3)
	require.Equal(t, []int{3}, group)
}

func TestMoveRemapsMarksGroupsAndRefs(t *testing.T) {
	state := catSatTheState(t)
	state.Mark(3)
	state.GroupTogether(1, 3)
	state.Refs.Set("d", 3)
	state.Refs.Set("h", 1)

	require.NoError(t, state.Move([]int{3}, 1, tree.Before))

	// The(3) moves before cat(1): new order The(1) cat(2) sat(3).
	require.Equal(t, "The", state.Tree.Forms(1))
	require.Equal(t, "cat", state.Tree.Forms(2))

	require.True(t, state.Marked(1))
	require.False(t, state.Marked(3))

	d, ok := state.Refs.Get("d")
	require.True(t, ok)
	require.Equal(t, 1, d)
	h, ok := state.Refs.Get("h")
	require.True(t, ok)
	require.Equal(t, 2, h)

	require.True(t, state.grouped[2][1])
	require.True(t, state.grouped[1][2])
}

func TestDeleteDropsStaleMarksGroupsAndRefs(t *testing.T) {
	state := catSatTheState(t)
	state.Mark(1)
	state.Mark(3)
	state.GroupTogether(1, 3)
	state.Refs.Set("d", 3)
	state.Refs.Set("s", 1)

	require.NoError(t, state.Delete([]int{3}))

	require.Equal(t, 2, state.Tree.Len())
	require.True(t, state.Marked(1))

	_, ok := state.Refs.Get("d")
	require.False(t, ok)
	s, ok := state.Refs.Get("s")
	require.True(t, ok)
	require.Equal(t, 1, s)

	require.Empty(t, state.grouped[1])
}

func TestAppendCopyReturnsNewRangeAndGrowsMarks(t *testing.T) {
	state := catSatTheState(t)
	state.Mark(1)

	newNodes, err := state.AppendCopy([]int{1, 3})
	require.NoError(t, err)
	require.Equal(t, []int{4, 5}, newNodes)
	require.Equal(t, 5, state.Tree.Len())

	require.True(t, state.Marked(1))
	require.False(t, state.Marked(4))
	require.False(t, state.Marked(5))
}

func TestSetHeadReplacesTreeOnly(t *testing.T) {
	state := catSatTheState(t)
	state.Mark(3)
	state.Refs.Set("d", 3)

	// The(3) is a leaf, so repointing its head to sat(2) cannot cycle.
	require.NoError(t, state.SetHead(3, 2))
	require.Equal(t, 2, state.Tree.Heads(3))
	require.True(t, state.Marked(3))
	d, ok := state.Refs.Get("d")
	require.True(t, ok)
	require.Equal(t, 3, d)
}

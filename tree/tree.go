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

// Package tree implements the dependency-tree data model: a validated,
// immutable-by-convention tree over word nodes 1..N plus a synthetic
// root 0, and the mutation primitives (Reorder, Delete, SetHead,
// AppendCopy, Move) that each produce a new valid tree or fail without
// partial mutation.
package tree

import "fmt"

// Attr identifies one of the six per-node attributes (five string-valued
// fields plus feats), used by
// Get/Set to dispatch without reflection or field-name strings.
type Attr int

const (
	AttrForm Attr = iota
	AttrLemma
	AttrCPostag
	AttrPostag
	AttrDeprel
	// AttrFeats tags the list-valued feats field. It is not accepted by
	// Get/Set (which are string-valued); callers needing feats use
	// Feats/SetFeats directly and use this tag only to identify the
	// attribute kind uniformly (e.g. in action.SetAttr's dispatch).
	AttrFeats
)

func (a Attr) String() string {
	switch a {
	case AttrForm:
		return "form"
	case AttrLemma:
		return "lemma"
	case AttrCPostag:
		return "cpostag"
	case AttrPostag:
		return "postag"
	case AttrDeprel:
		return "deprel"
	case AttrFeats:
		return "feats"
	default:
		return "unknown"
	}
}

// Tree is a dependency tree over N word nodes numbered 1..N plus a
// synthetic root numbered 0. All per-node slices are 0-indexed by
// (node-1); use the Forms/Lemmas/... accessors for 1-based node
// indices as the rest of the package does.
type Tree struct {
	forms    []string
	lemmas   []string
	cpostags []string
	postags  []string
	feats    [][]string
	heads    []int
	deprels  []string

	children [][]int
}

// Len returns the number of word nodes in the tree (not counting the
// synthetic root).
func (t *Tree) Len() int {
	return len(t.forms)
}

// New constructs a Tree from the seven per-node field sequences,
// validating lengths, head ranges, and acyclicity/connectivity.
// feats[i] is the already-split feature list for word i+1.
func New(forms, lemmas, cpostags, postags []string, feats [][]string, heads []int, deprels []string) (*Tree, error) {
	n := len(forms)
	if len(lemmas) != n {
		return nil, fmt.Errorf("invalid lemmas: got %d elements, want %d", len(lemmas), n)
	}
	if len(cpostags) != n {
		return nil, fmt.Errorf("invalid cpostags: got %d elements, want %d", len(cpostags), n)
	}
	if len(postags) != n {
		return nil, fmt.Errorf("invalid postags: got %d elements, want %d", len(postags), n)
	}
	if len(feats) != n {
		return nil, fmt.Errorf("invalid feats: got %d elements, want %d", len(feats), n)
	}
	if len(heads) != n {
		return nil, fmt.Errorf("invalid heads: got %d elements, want %d", len(heads), n)
	}
	if len(deprels) != n {
		return nil, fmt.Errorf("invalid deprels: got %d elements, want %d", len(deprels), n)
	}

	for _, h := range heads {
		if h < 0 || h > n {
			return nil, &InvalidReordering{Reason: fmt.Sprintf("head %d out of range [0,%d]", h, n)}
		}
	}

	t := &Tree{
		forms:    append([]string(nil), forms...),
		lemmas:   append([]string(nil), lemmas...),
		cpostags: append([]string(nil), cpostags...),
		postags:  append([]string(nil), postags...),
		feats:    copyFeats(feats),
		heads:    append([]int(nil), heads...),
		deprels:  append([]string(nil), deprels...),
	}

	t.children = make([][]int, n+1)
	for node, head := range t.heads {
		t.children[head] = append(t.children[head], node+1)
	}

	if err := t.checkConnected(); err != nil {
		return nil, err
	}
	return t, nil
}

func copyFeats(feats [][]string) [][]string {
	out := make([][]string, len(feats))
	for i, f := range feats {
		out[i] = append([]string(nil), f...)
	}
	return out
}

func (t *Tree) checkConnected() error {
	n := t.Len()
	visited := make([]bool, n+1)
	queue := []int{0}
	visited[0] = true
	count := 1

	for i := 0; i < len(queue); i++ {
		node := queue[i]
		for _, child := range t.Children(node) {
			if visited[child] {
				return &Disconnected{Reason: "loop in tree"}
			}
			visited[child] = true
			count++
			queue = append(queue, child)
		}
	}
	if count != n+1 {
		return &Disconnected{Reason: "disconnected node"}
	}
	return nil
}

// Forms returns the FORM of word i (1-based).
func (t *Tree) Forms(i int) string { return t.forms[t.index(i)] }

// Lemmas returns the LEMMA of word i (1-based).
func (t *Tree) Lemmas(i int) string { return t.lemmas[t.index(i)] }

// CPostags returns the CPOSTAG of word i (1-based).
func (t *Tree) CPostags(i int) string { return t.cpostags[t.index(i)] }

// Postags returns the POSTAG of word i (1-based).
func (t *Tree) Postags(i int) string { return t.postags[t.index(i)] }

// Feats returns the feature list of word i (1-based).
func (t *Tree) Feats(i int) []string { return t.feats[t.index(i)] }

// Heads returns the HEAD of word i (1-based); result is 1-based, 0
// meaning the synthetic root.
func (t *Tree) Heads(i int) int { return t.heads[t.index(i)] }

// Deprels returns the DEPREL of word i (1-based).
func (t *Tree) Deprels(i int) string { return t.deprels[t.index(i)] }

func (t *Tree) index(i int) int {
	if i <= 0 {
		panic(&IndexOutOfRange{Index: i})
	}
	return i - 1
}

// Children returns the ordered list of immediate children of node i
// (1-based, 0 meaning the synthetic root).
func (t *Tree) Children(i int) []int {
	if i < 0 {
		panic(&IndexOutOfRange{Index: i})
	}
	return t.children[i]
}

// ChildrenRecursive returns every descendant of node i, in
// pre-order (child, then that child's descendants, for each child in
// turn).
func (t *Tree) ChildrenRecursive(i int) []int {
	var result []int
	for _, child := range t.Children(i) {
		result = append(result, child)
		result = append(result, t.ChildrenRecursive(child)...)
	}
	return result
}

// Get returns the value of the named string attribute for word node i
// (1-based). It panics if node is 0; callers implementing the "fails
// if node == 0" pattern predicate rule must check that first.
func (t *Tree) Get(attr Attr, node int) string {
	switch attr {
	case AttrForm:
		return t.Forms(node)
	case AttrLemma:
		return t.Lemmas(node)
	case AttrCPostag:
		return t.CPostags(node)
	case AttrPostag:
		return t.Postags(node)
	case AttrDeprel:
		return t.Deprels(node)
	default:
		panic(fmt.Sprintf("tree: unknown attribute %v", attr))
	}
}

// Set overwrites the value of the named string attribute for word node
// i (1-based) in place.
func (t *Tree) Set(attr Attr, node int, value string) {
	idx := t.index(node)
	switch attr {
	case AttrForm:
		t.forms[idx] = value
	case AttrLemma:
		t.lemmas[idx] = value
	case AttrCPostag:
		t.cpostags[idx] = value
	case AttrPostag:
		t.postags[idx] = value
	case AttrDeprel:
		t.deprels[idx] = value
	default:
		panic(fmt.Sprintf("tree: unknown attribute %v", attr))
	}
}

// SetFeats overwrites the feature list of word node i (1-based) in
// place. Split apart from Set/Get since feats is list-valued, not
// string-valued.
func (t *Tree) SetFeats(node int, feats []string) {
	t.feats[t.index(node)] = append([]string(nil), feats...)
}

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

// Package conll implements the bit-exact CoNLL-X codec: a pull-style
// stream reader that rejects malformed lines and a tree writer that
// validates every field against the CoNLL field rules.
package conll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yandex/dep-tregex/tree"
)

// valid reports whether text can be written to a CoNLL field.
// emptyAllowed permits the empty string but then forbids the literal
// "_", which CoNLL reserves to mean "empty".
func valid(text string, emptyAllowed bool) bool {
	if strings.ContainsAny(text, "\t\n ") {
		return false
	}
	if !emptyAllowed && text == "" {
		return false
	}
	// "_" is the format's reserved sentinel for an empty lemma/feats; no
	// field may carry it as a literal value.
	if text == "_" {
		return false
	}
	return true
}

// TreeReader pulls trees one at a time from a CoNLL-X stream.
type TreeReader struct {
	scanner *bufio.Scanner
	lineNo  int
	node    int

	forms, lemmas, cpostags, postags, deprels []string
	feats                                      [][]string
	heads                                      []int
}

// NewTreeReader wraps r as a stream of trees.
func NewTreeReader(r io.Reader) *TreeReader {
	return &TreeReader{
		scanner: bufio.NewScanner(r),
		node:    1,
	}
}

func (r *TreeReader) reset() {
	r.node = 1
	r.forms, r.lemmas, r.cpostags, r.postags, r.deprels = nil, nil, nil, nil, nil
	r.feats = nil
	r.heads = nil
}

func (r *TreeReader) hasPending() bool {
	return len(r.forms) > 0
}

// SkipToNextBlank discards the rest of the current sentence, scanning
// up to and including the next blank line (or EOF), and resets pending
// state so Next can resume after a malformed sentence. Used by ReadAll
// to recover from a CoNLLParseError instead of treating the stream as
// unusable.
func (r *TreeReader) SkipToNextBlank() error {
	r.reset()
	for r.scanner.Scan() {
		r.lineNo++
		if r.scanner.Text() == "" {
			return nil
		}
	}
	return r.scanner.Err()
}

func (r *TreeReader) build() (*tree.Tree, error) {
	t, err := tree.New(r.forms, r.lemmas, r.cpostags, r.postags, r.feats, r.heads, r.deprels)
	if err != nil {
		return nil, &CoNLLParseError{Line: r.lineNo, Reason: err.Error()}
	}
	return t, nil
}

// Next returns the next tree in the stream, or io.EOF once the stream
// is exhausted. On a malformed line it returns CoNLLParseError and
// does not emit a partial tree; call SkipToNextBlank before reading on
// after an error.
func (r *TreeReader) Next() (*tree.Tree, error) {
	for r.scanner.Scan() {
		r.lineNo++
		line := r.scanner.Text()

		if line == "" {
			if r.hasPending() {
				t, err := r.build()
				r.reset()
				return t, err
			}
			continue
		}

		if err := r.parseLine(line); err != nil {
			return nil, err
		}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}

	if r.hasPending() {
		t, err := r.build()
		r.reset()
		return t, err
	}
	return nil, io.EOF
}

func (r *TreeReader) parseLine(line string) error {
	parts := strings.Split(line, "\t")
	if len(parts) != 10 {
		return &CoNLLParseError{Line: r.lineNo, Reason: fmt.Sprintf("expected 10 tab-separated fields, got %d", len(parts))}
	}
	if parts[0] != strconv.Itoa(r.node) {
		return &CoNLLParseError{Line: r.lineNo, Reason: fmt.Sprintf("field 0: expected %q, got %q", strconv.Itoa(r.node), parts[0])}
	}
	for i, part := range parts {
		if part == "" {
			return &CoNLLParseError{Line: r.lineNo, Reason: fmt.Sprintf("field %d: empty", i)}
		}
		if strings.ContainsAny(part, "\t\n ") {
			return &CoNLLParseError{Line: r.lineNo, Reason: fmt.Sprintf("field %d: contains whitespace", i)}
		}
	}

	head, err := strconv.Atoi(parts[6])
	if err != nil || head < 0 {
		return &CoNLLParseError{Line: r.lineNo, Reason: fmt.Sprintf("field 6: invalid head %q", parts[6])}
	}

	lemma := parts[2]
	if lemma == "_" {
		lemma = ""
	}
	var feat []string
	if parts[5] != "_" {
		feat = strings.Split(parts[5], "|")
	}

	r.node++
	r.forms = append(r.forms, parts[1])
	r.lemmas = append(r.lemmas, lemma)
	r.cpostags = append(r.cpostags, parts[3])
	r.postags = append(r.postags, parts[4])
	r.feats = append(r.feats, feat)
	r.heads = append(r.heads, head)
	r.deprels = append(r.deprels, parts[7])
	return nil
}

// WriteTree serializes t to w in CoNLL-X format, terminated by a
// blank line. Every field is validated against the rules in tree's
// structural invariants before any byte is written.
func WriteTree(w io.Writer, t *tree.Tree) error {
	bw := bufio.NewWriter(w)

	for node := 1; node <= t.Len(); node++ {
		form := t.Forms(node)
		lemma := t.Lemmas(node)
		cpostag := t.CPostags(node)
		postag := t.Postags(node)
		feats := t.Feats(node)
		head := t.Heads(node)
		deprel := t.Deprels(node)

		if !valid(form, false) {
			return &InvalidField{Name: "form", Value: form}
		}
		if !valid(lemma, true) {
			return &InvalidField{Name: "lemma", Value: lemma}
		}
		if !valid(cpostag, false) {
			return &InvalidField{Name: "cpostag", Value: cpostag}
		}
		if !valid(postag, false) {
			return &InvalidField{Name: "postag", Value: postag}
		}
		for _, f := range feats {
			if !valid(f, false) {
				return &InvalidField{Name: "feats", Value: f}
			}
		}
		if !valid(deprel, false) {
			return &InvalidField{Name: "deprel", Value: deprel}
		}

		lemmaOut := lemma
		if lemmaOut == "" {
			lemmaOut = "_"
		}
		featsOut := strings.Join(feats, "|")
		if featsOut == "" {
			featsOut = "_"
		}

		fmt.Fprintf(&bw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t_\t_\n",
			node, form, lemmaOut, cpostag, postag, featsOut, head, deprel)
	}

	bw.WriteString("\n")
	_, err := io.WriteString(w, bw.String())
	return err
}

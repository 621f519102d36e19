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

package script

import (
	"go.uber.org/multierr"

	"github.com/yandex/dep-tregex/action"
	"github.com/yandex/dep-tregex/pattern"
)

// pos is a byte-offset-and-line/col source span, attached to compiled
// scripts so the driver can cite the offending source text in
// diagnostics.
type pos struct {
	start, end int
	line, col  int
}

// Script couples a compiled pattern with the ordered actions applied
// to each node it matches.
type Script struct {
	Pattern pattern.Pattern
	Actions []action.Action
	// Text is the exact source span this script was parsed from.
	Text string

	pos pos
}

// Pos reports the script's line and column in its source text.
func (s Script) Pos() (line, col int) { return s.pos.line, s.pos.col }

// binaryOps maps each structural-relation operator's surface syntax to
// the pattern variant it compiles to.
var binaryOps = map[string]func(pattern.Pattern) pattern.Pattern{
	".<--": func(c pattern.Pattern) pattern.Pattern { return pattern.HasLeftChild{Condition: c} },
	"-->.": func(c pattern.Pattern) pattern.Pattern { return pattern.HasRightChild{Condition: c} },
	"<--.": func(c pattern.Pattern) pattern.Pattern { return pattern.HasRightHead{Condition: c} },
	".-->": func(c pattern.Pattern) pattern.Pattern { return pattern.HasLeftHead{Condition: c} },
	".<-":  func(c pattern.Pattern) pattern.Pattern { return pattern.HasAdjacentLeftChild{Condition: c} },
	"->.":  func(c pattern.Pattern) pattern.Pattern { return pattern.HasAdjacentRightChild{Condition: c} },
	"<-.":  func(c pattern.Pattern) pattern.Pattern { return pattern.HasAdjacentRightHead{Condition: c} },
	".->":  func(c pattern.Pattern) pattern.Pattern { return pattern.HasAdjacentLeftHead{Condition: c} },
	">":    func(c pattern.Pattern) pattern.Pattern { return pattern.HasChild{Condition: c} },
	">>":   func(c pattern.Pattern) pattern.Pattern { return pattern.HasSuccessor{Condition: c} },
	"<":    func(c pattern.Pattern) pattern.Pattern { return pattern.HasHead{Condition: c} },
	"<<":   func(c pattern.Pattern) pattern.Pattern { return pattern.HasPredecessor{Condition: c} },
	"$--":  func(c pattern.Pattern) pattern.Pattern { return pattern.HasLeftNeighbor{Condition: c} },
	"$++":  func(c pattern.Pattern) pattern.Pattern { return pattern.HasRightNeighbor{Condition: c} },
	"$-":   func(c pattern.Pattern) pattern.Pattern { return pattern.HasAdjacentLeftNeighbor{Condition: c} },
	"$+":   func(c pattern.Pattern) pattern.Pattern { return pattern.HasAdjacentRightNeighbor{Condition: c} },
}

// ParsePattern compiles a single tree-pattern expression, the grammar
// accepted on the left-hand side of "::" minus the wrapping braces.
func ParsePattern(text string) (pattern.Pattern, error) {
	p := newParser(text)
	pat, err := p.parseTreePattern()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.typ != itemEOF {
		return nil, p.unexpected(tok, "end of input")
	}
	return pat, nil
}

// ParseScripts compiles zero or more "{ pattern :: actions }" blocks.
func ParseScripts(text string) ([]Script, error) {
	p := newParser(text)
	var scripts []Script
	for !p.atEnd() {
		s, err := p.parseScript()
		if err != nil {
			return nil, err
		}
		s.Text = text[s.pos.start:s.pos.end]
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// ParseScriptsTolerant compiles every "{ pattern :: actions }" block in
// text like ParseScripts, but recovers from a malformed block by
// skipping to its closing brace and continuing, aggregating every
// error encountered instead of stopping at the first. Used by batch
// tooling that wants to report every broken rule in a rule file at
// once.
func ParseScriptsTolerant(text string) ([]Script, error) {
	p := newParser(text)
	var scripts []Script
	var errs error
	for !p.atEnd() {
		s, err := p.parseScript()
		if err != nil {
			errs = multierr.Append(errs, err)
			if p.atEnd() {
				break
			}
			p.recoverToBlockEnd()
			continue
		}
		s.Text = text[s.pos.start:s.pos.end]
		scripts = append(scripts, s)
	}
	return scripts, errs
}

// recoverToBlockEnd discards tokens up to and including the next
// top-level '}', or EOF, so parsing can resume at the following block.
func (p *parser) recoverToBlockEnd() {
	for {
		tok := p.next()
		if tok.typ == itemRBrace || tok.typ == itemEOF || tok.typ == itemError {
			return
		}
	}
}

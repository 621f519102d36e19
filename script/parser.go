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
	"fmt"

	"github.com/yandex/dep-tregex/action"
	"github.com/yandex/dep-tregex/pattern"
	"github.com/yandex/dep-tregex/tree"
)

// parser is a recursive-descent parser with one token of lookahead,
// reading from a lexer's item channel.
type parser struct {
	l    *lexer
	buf  *item
	prev item
}

func newParser(text string) *parser {
	return &parser{l: lex(text)}
}

func (p *parser) next() item {
	var it item
	if p.buf != nil {
		it = *p.buf
		p.buf = nil
	} else {
		it = <-p.l.items
	}
	p.prev = it
	return it
}

func (p *parser) peek() item {
	if p.buf == nil {
		it := <-p.l.items
		p.buf = &it
	}
	return *p.buf
}

func (p *parser) lexError() error {
	return p.l.err
}

// atEnd reports whether the next token is EOF or an unrecoverable lex
// error (after which the lexer goroutine has already exited and the
// channel yields nothing further).
func (p *parser) atEnd() bool {
	typ := p.peek().typ
	return typ == itemEOF || typ == itemError
}

func (p *parser) unexpected(tok item, want string) error {
	if err := p.lexError(); err != nil {
		return err
	}
	if tok.typ == itemEOF {
		return &ParseError{Line: tok.line, Col: tok.col, Message: "unexpected end of input, want " + want}
	}
	return &ParseError{Line: tok.line, Col: tok.col, Message: fmt.Sprintf("unexpected token %q, want %s", tok.val, want)}
}

func (p *parser) expect(t itemType, want string) (item, error) {
	tok := p.next()
	if tok.typ != t {
		return tok, p.unexpected(tok, want)
	}
	return tok, nil
}

var conditionStart = map[itemType]bool{
	itemNot: true, itemLParen: true, itemBinaryOp: true, itemEquals: true,
	itemForm: true, itemLemma: true, itemCPostag: true, itemPostag: true,
	itemFeats: true, itemDeprel: true, itemIsTop: true, itemIsLeaf: true,
	itemCanHead: true, itemCanBeHeadedBy: true,
}

// parseTreePattern implements:
//
//	tree_pattern : ID | ID condition | LPAREN tree_pattern RPAREN
func (p *parser) parseTreePattern() (pattern.Pattern, error) {
	if p.peek().typ == itemLParen {
		p.next()
		inner, err := p.parseTreePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(itemRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	id, err := p.expect(itemID, "identifier")
	if err != nil {
		return nil, err
	}

	var cond pattern.Pattern = pattern.AlwaysTrue{}
	if conditionStart[p.peek().typ] {
		cond, err = p.parseCondition()
		if err != nil {
			return nil, err
		}
	}
	return pattern.SetBackref{Name: id.val, Condition: pattern.NotRoot{Condition: cond}}, nil
}

func (p *parser) parseCondition() (pattern.Pattern, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (pattern.Pattern, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	conditions := []pattern.Pattern{first}
	for p.peek().typ == itemOr {
		p.next()
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, next)
	}
	if len(conditions) == 1 {
		return conditions[0], nil
	}
	return pattern.Or{Conditions: conditions}, nil
}

func (p *parser) parseAnd() (pattern.Pattern, error) {
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	conditions := []pattern.Pattern{first}
	for p.peek().typ == itemAnd {
		p.next()
		next, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, next)
	}
	if len(conditions) == 1 {
		return conditions[0], nil
	}
	return pattern.And{Conditions: conditions}, nil
}

func (p *parser) parseNot() (pattern.Pattern, error) {
	if p.peek().typ == itemNot {
		p.next()
		inner, err := p.parseOp()
		if err != nil {
			return nil, err
		}
		return pattern.Not{Condition: inner}, nil
	}
	return p.parseOp()
}

func (p *parser) parseOp() (pattern.Pattern, error) {
	tok := p.peek()
	switch tok.typ {
	case itemLParen:
		p.next()
		inner, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(itemRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case itemBinaryOp:
		p.next()
		make, ok := binaryOps[tok.val]
		if !ok {
			return nil, &ParseError{Line: tok.line, Col: tok.col, Message: fmt.Sprintf("unknown operator %q", tok.val)}
		}
		sub, err := p.parseTreePattern()
		if err != nil {
			return nil, err
		}
		return make(sub), nil

	case itemEquals:
		p.next()
		id, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		return pattern.EqualsBackref{Name: id.val}, nil

	case itemForm, itemLemma, itemCPostag, itemPostag, itemFeats, itemDeprel:
		p.next()
		pred, err := p.parseStringCondition()
		if err != nil {
			return nil, err
		}
		if tok.typ == itemFeats {
			return pattern.FeatsMatch{Pred: pred}, nil
		}
		return pattern.AttrMatches{Attr: attrOf(tok.typ), Pred: pred}, nil

	case itemIsTop:
		p.next()
		return pattern.IsTop{}, nil

	case itemIsLeaf:
		p.next()
		return pattern.IsLeaf{}, nil

	case itemCanHead:
		p.next()
		id, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		return pattern.CanHead{Backref: id.val}, nil

	case itemCanBeHeadedBy:
		p.next()
		id, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		return pattern.CanBeHeadedBy{Backref: id.val}, nil

	default:
		return nil, p.unexpected(tok, "condition")
	}
}

func (p *parser) parseStringCondition() (pattern.StringPred, error) {
	tok := p.next()
	switch tok.typ {
	case itemString:
		return pattern.Literal(tok.val), nil
	case itemRegex:
		body, ignoreCase, anywhere := parseRegexLiteral(tok.val)
		pred, err := pattern.Regex(body, ignoreCase, anywhere)
		if err != nil {
			return nil, &ParseError{Line: tok.line, Col: tok.col, Message: err.Error()}
		}
		return pred, nil
	default:
		return nil, p.unexpected(tok, "string or regex literal")
	}
}

// parseRegexLiteral splits a /body/flags token's raw text into its
// body and the ignore-case/anywhere flags, mirroring the lexer's
// trailing-flag-stripping step in the reference grammar.
func parseRegexLiteral(raw string) (body string, ignoreCase, anywhere bool) {
	end := len(raw)
	for end > 0 && (raw[end-1] == 'i' || raw[end-1] == 'g') {
		if raw[end-1] == 'i' {
			ignoreCase = true
		}
		if raw[end-1] == 'g' {
			anywhere = true
		}
		end--
	}
	body = raw[1 : end-1]
	return body, ignoreCase, anywhere
}

func attrOf(t itemType) tree.Attr {
	switch t {
	case itemForm:
		return tree.AttrForm
	case itemLemma:
		return tree.AttrLemma
	case itemCPostag:
		return tree.AttrCPostag
	case itemPostag:
		return tree.AttrPostag
	case itemDeprel:
		return tree.AttrDeprel
	case itemFeats:
		return tree.AttrFeats
	default:
		panic("script: attrOf called on non-attribute token")
	}
}

func (p *parser) parseSelector() (action.Selector, error) {
	tok := p.next()
	switch tok.typ {
	case itemNode:
		return action.Node, nil
	case itemGroup:
		return action.Group, nil
	default:
		return 0, p.unexpected(tok, "'node' or 'group'")
	}
}

func (p *parser) parseWhere() (tree.Where, error) {
	tok := p.next()
	switch tok.typ {
	case itemBefore:
		return tree.Before, nil
	case itemAfter:
		return tree.After, nil
	default:
		return 0, p.unexpected(tok, "'before' or 'after'")
	}
}

// parseAction implements the seven action productions.
func (p *parser) parseAction() (action.Action, error) {
	tok := p.next()
	switch tok.typ {
	case itemCopy, itemMove:
		selWhat, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		what, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		where, err := p.parseWhere()
		if err != nil {
			return nil, err
		}
		selAnchor, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		anchor, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		if tok.typ == itemCopy {
			return action.Copy{What: what.val, SelWhat: selWhat, Anchor: anchor.val, SelAnchor: selAnchor, Where: where}, nil
		}
		return action.Move{What: what.val, SelWhat: selWhat, Anchor: anchor.val, SelAnchor: selAnchor, Where: where}, nil

	case itemDelete:
		selWhat, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		what, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		return action.Delete{What: what.val, SelWhat: selWhat}, nil

	case itemSet:
		attrTok := p.next()
		switch attrTok.typ {
		case itemForm, itemLemma, itemCPostag, itemPostag, itemFeats, itemDeprel:
		default:
			return nil, p.unexpected(attrTok, "attribute name")
		}
		node, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		val, err := p.expect(itemString, "string literal")
		if err != nil {
			return nil, err
		}
		return action.SetAttr{Node: node.val, Attr: attrOf(attrTok.typ), Value: val.val}, nil

	case itemSetHead, itemTrySetHead:
		strict := tok.typ == itemSetHead
		first, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		rel := p.next()
		if rel.typ != itemHeadedBy && rel.typ != itemHeads {
			return nil, p.unexpected(rel, "'headed_by' or 'heads'")
		}
		second, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		node, head := second.val, first.val
		if rel.typ == itemHeadedBy {
			node, head = first.val, second.val
		}
		return action.SetHead{Node: node, Head: head, Strict: strict}, nil

	case itemGroup:
		a, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		b, err := p.expect(itemID, "identifier")
		if err != nil {
			return nil, err
		}
		return action.GroupTogether{A: a.val, B: b.val}, nil

	default:
		return nil, p.unexpected(tok, "action")
	}
}

func (p *parser) parseActions() ([]action.Action, error) {
	var actions []action.Action
	for p.peek().typ != itemRBrace {
		act, err := p.parseAction()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(itemSemicolon, "';'"); err != nil {
			return nil, err
		}
		actions = append(actions, act)
	}
	return actions, nil
}

// parseScript implements: tree_script : LBRACE tree_pattern COMMAND_SEP actions RBRACE
func (p *parser) parseScript() (Script, error) {
	start, err := p.expect(itemLBrace, "'{'")
	if err != nil {
		return Script{}, err
	}
	pat, err := p.parseTreePattern()
	if err != nil {
		return Script{}, err
	}
	if _, err := p.expect(itemCommandSep, "'::'"); err != nil {
		return Script{}, err
	}
	actions, err := p.parseActions()
	if err != nil {
		return Script{}, err
	}
	end, err := p.expect(itemRBrace, "'}'")
	if err != nil {
		return Script{}, err
	}
	return Script{Pattern: pat, Actions: actions, pos: pos{start: start.start, end: end.end, line: start.line, col: start.col}}, nil
}

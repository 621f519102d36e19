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

// itemType identifies the lexical class of a scanned item.
type itemType int

const (
	itemError itemType = iota
	itemEOF

	itemID
	itemString
	itemRegex
	itemEquals    // ==
	itemCommandSep // ::
	itemLParen
	itemRParen
	itemLBrace
	itemRBrace
	itemSemicolon
	itemBinaryOp

	// keywords
	itemAnd
	itemOr
	itemNot
	itemIsTop
	itemIsLeaf
	itemForm
	itemLemma
	itemCPostag
	itemPostag
	itemFeats
	itemDeprel
	itemCanHead
	itemCanBeHeadedBy
	itemCopy
	itemMove
	itemDelete
	itemNode
	itemGroup
	itemBefore
	itemAfter
	itemSet
	itemSetHead
	itemTrySetHead
	itemHeads
	itemHeadedBy
)

var keywords = map[string]itemType{
	"and":               itemAnd,
	"or":                itemOr,
	"not":               itemNot,
	"is_top":            itemIsTop,
	"is_leaf":           itemIsLeaf,
	"form":              itemForm,
	"lemma":             itemLemma,
	"cpostag":           itemCPostag,
	"postag":            itemPostag,
	"feats":             itemFeats,
	"deprel":            itemDeprel,
	"can_head":          itemCanHead,
	"can_be_headed_by":  itemCanBeHeadedBy,
	"copy":              itemCopy,
	"move":              itemMove,
	"delete":            itemDelete,
	"node":              itemNode,
	"group":             itemGroup,
	"before":            itemBefore,
	"after":             itemAfter,
	"set":               itemSet,
	"set_head":          itemSetHead,
	"try_set_head":      itemTrySetHead,
	"heads":             itemHeads,
	"headed_by":         itemHeadedBy,
}

// binaryOpSymbols lists every operator recognized by lexBinaryOpOrError,
// longest first so that e.g. ".-->" is tried before ".->" and ">>"
// before ">".
var binaryOpSymbols = []string{
	".<--", "-->.", "<--.", ".-->",
	".<-", "->.", "<-.", ".->", "$--", "$++",
	">>", "<<", "$-", "$+",
	">", "<",
}

// item is one lexical token, with its source span and position for
// error reporting and diagnostics.
type item struct {
	typ        itemType
	val        string
	start, end int
	line, col  int
}

// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package content expands a dom.Tree into a parallel tree of word-tokenized
// body text, one content node per dom.Node (including those with an empty
// body). It is a
// thin, optional post-processor: nothing in lexer/parse/dom imports it.
package content

import (
	"strings"

	"github.com/dbern/markup/dom"
)

// Node is a content-tree node: the word-tokenized body of one dom.Node,
// plus a weak back-reference to the dom.Node it was compiled from.
type Node struct {
	Words    []string
	Source   *dom.Node
	Children []*Node
}

// Tree is the content tree produced by Expand, shaped like the dom.Tree it
// was compiled from: one Node per dom.Node that reaches Expand's walk.
type Tree struct {
	Root *Node
}

// Expand walks t breadth-first (mirroring the source's dom_tree_expand) and
// builds a parallel content.Tree: every dom.Node becomes a content.Node
// whose Words are its body, split on whitespace, and whose Children mirror
// the dom.Node's own children in source order. Nodes with an empty body
// still appear, with a nil Words slice, so the two trees stay shape-aligned.
func Expand(t *dom.Tree) *Tree {
	if t == nil || t.Root == nil {
		return &Tree{}
	}

	root := &Node{Words: compile(t.Root.Body), Source: t.Root}
	domQueue := []*dom.Node{t.Root}
	contentQueue := []*Node{root}

	for len(domQueue) > 0 {
		n := domQueue[0]
		domQueue = domQueue[1:]
		parent := contentQueue[0]
		contentQueue = contentQueue[1:]

		for _, child := range n.Children {
			cn := &Node{Words: compile(child.Body), Source: child}
			parent.Children = append(parent.Children, cn)
			domQueue = append(domQueue, child)
			contentQueue = append(contentQueue, cn)
		}
	}

	return &Tree{Root: root}
}

// compile word-tokenizes body the way text_compile's lexer does: runs of
// non-whitespace bytes, whitespace discarded as a separator only.
func compile(body []byte) []string {
	if len(body) == 0 {
		return nil
	}
	return strings.Fields(string(body))
}

// Search returns every Node in t whose Words contain word (exact match),
// visiting the tree depth-first. Used by cmd/markup's --query flag.
func (t *Tree) Search(word string) []*Node {
	if t == nil || t.Root == nil {
		return nil
	}
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, w := range n.Words {
			if w == word {
				out = append(out, n)
				break
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return out
}

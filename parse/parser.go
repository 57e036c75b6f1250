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

// Package parse implements the scheduled, state-driven parser: the
// parse-state table (tag_open, tag_name, attribute_name, attribute_value,
// tag_close, elm_close, doctype, elm_body, and their resume twins) plus the
// Parser driver that threads a token.Queue, a state.Queue, and the dom
// builder stacks through each state invocation.
package parse

import (
	"github.com/dbern/markup/dom"
	"github.com/dbern/markup/lexer"
	"github.com/dbern/markup/state"
	"github.com/dbern/markup/token"
)

// Status is a state handler's verdict: whether it fully committed its
// decision (Done) or had to schedule a resume state because it ran out of
// lookahead mid-decision (Suspend).
type Status int

const (
	// Done means the state consumed its tokens and scheduled its
	// successor(s), if any.
	Done Status = iota
	// Suspend means the state consumed its current token but needed a next
	// token that was not yet available; it has already enqueued a "resume"
	// state at the front of the state queue.
	Suspend
)

// Fn is a parse-state handle. Handles are plain top-level functions (never
// closures), so that two Fn values referring to the same state compare
// equal and carry a stable identity across enqueue/dequeue, per spec.
type Fn func(p *Parser) (Status, error)

// Options configures the bounded resources the parser allocates, and the
// optional width-normalization pass.
type Options struct {
	TokenQueueCap  int  // default token.DefaultQueueCapacity
	StateQueueCap  int  // default state.DefaultQueueCapacity
	NodeStackCap   int  // default dom.DefaultStackCapacity
	AttrStackCap   int  // default dom.DefaultStackCapacity
	NormalizeWidth bool // fold East-Asian fullwidth forms via dom.FoldWidth
}

// Parser threads the token queue, state queue, and DOM builder stacks
// through each state invocation. A Parser is single-use: create one per
// document with New, feed it lines with Line, then Finish it.
type Parser struct {
	Tree    *dom.Tree
	Nodes   *dom.NodeStack
	Attrs   *dom.AttrStack
	States  *state.Queue[Fn]
	Tokens  *token.Queue
	Options Options

	lines      int
	offset     int
	rootClosed bool // set once elm_close verifies the root's own end tag
}

// New returns a Parser seeded with a single tagOpen state, ready to consume
// lines via Line.
func New(opts Options) *Parser {
	if opts.TokenQueueCap <= 0 {
		opts.TokenQueueCap = token.DefaultQueueCapacity
	}
	if opts.StateQueueCap <= 0 {
		opts.StateQueueCap = state.DefaultQueueCapacity
	}
	if opts.NodeStackCap <= 0 {
		opts.NodeStackCap = dom.DefaultStackCapacity
	}
	if opts.AttrStackCap <= 0 {
		opts.AttrStackCap = dom.DefaultStackCapacity
	}

	p := &Parser{
		Tree:    dom.NewTree(),
		Nodes:   dom.NewNodeStack(opts.NodeStackCap),
		Attrs:   dom.NewAttrStack(opts.AttrStackCap),
		States:  state.NewQueue[Fn](opts.StateQueueCap),
		Options: opts,
	}
	_ = p.States.EnqueueBack(tagOpen)
	return p
}

// Lines reports how many input lines have been fed to the parser so far,
// blank lines included (blank lines contribute no tokens, but they are
// still consumed and counted).
func (p *Parser) Lines() int { return p.lines }

// Line lexes a single line of input (without its trailing newline) and
// drives the scheduler until the resulting token queue is drained or a
// state suspends awaiting the next line.
func (p *Parser) Line(line []byte) error {
	p.lines++
	if len(line) == 0 {
		return nil
	}

	q := token.NewQueue(p.Options.TokenQueueCap)
	cur := lexer.NewCursor(line)
	for {
		if err := lexer.Lex(cur, q); err != nil {
			return wrapErr("lex", LexError, "could not tokenize input", err)
		}
		if err := p.drain(q); err != nil {
			return err
		}
		if cur.Done() {
			return nil
		}
		// The token queue filled mid-line; the scheduler has drained it, so
		// resume lexing from the cursor into the now-empty queue.
	}
}

// drain runs the inner scheduler loop against q until q is empty or a state
// suspends.
func (p *Parser) drain(q *token.Queue) error {
	p.Tokens = q
	for {
		if _, ok := p.Tokens.Peek(); !ok {
			return nil
		}
		fn, ok := p.States.Dequeue()
		if !ok {
			// Tokens remain but nothing is scheduled to consume them: the
			// grammar never reaches this state on well-formed input.
			return newErr("scheduler", StructureError, "token queue non-empty with no state scheduled")
		}
		status, err := fn(p)
		if err != nil {
			return err
		}
		if status == Suspend {
			return nil
		}
	}
}

// Finish runs the terminal check: the node stack must hold exactly the
// root node. On success it pops the root into p.Tree.Root and returns it.
func (p *Parser) Finish() (*dom.Tree, error) {
	if p.Nodes.Len() != 1 || !p.rootClosed {
		return nil, newErr("finish", StructureError, "incomplete")
	}
	root, _ := p.Nodes.Pop()
	p.Tree.Root = root
	return p.Tree, nil
}

// normalize applies the optional width-folding pass to b, if enabled.
func (p *Parser) normalize(b []byte) []byte {
	if p.Options.NormalizeWidth {
		return dom.FoldWidth(b)
	}
	return b
}

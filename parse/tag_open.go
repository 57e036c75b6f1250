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

package parse

import (
	"github.com/dbern/markup/dom"
	"github.com/dbern/markup/token"
)

// tagOpen expects current to be LtCaret or Space. If the peeked next token
// is FwdSlash or Excl, the branch is taken before the current-token action
// runs: no node is pushed, and control routes straight to elm_close or
// doctype.
func tagOpen(p *Parser) (Status, error) {
	cur, ok := p.Tokens.Dequeue()
	if !ok {
		return Done, newErr("tag_open", SyntaxError, "expected current token")
	}
	if cur.Kind != token.LtCaret && cur.Kind != token.Space {
		return Done, newErr("tag_open", SyntaxError, "expected '<' or space")
	}

	next, hasNext := p.Tokens.Peek()
	if hasNext {
		switch next.Kind {
		case token.FwdSlash:
			return enqueue(p, "tag_open", elmClose)
		case token.Excl:
			return enqueue(p, "tag_open", doctype)
		}
	}

	if cur.Kind == token.LtCaret {
		if err := p.Nodes.Push(dom.NewNode()); err != nil {
			return Done, wrapErr("tag_open", CapacityError, "node stack full", err)
		}
	}

	if !hasNext {
		if err := p.States.EnqueueFront(resumeTagOpen); err != nil {
			return Done, wrapErr("tag_open", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return tagOpenRoute(p, next)
}

// resumeTagOpen runs on the first iteration after tagOpen suspended for
// lack of a next token; the push/no-op action already ran before
// suspension, so this only makes the routing decision.
func resumeTagOpen(p *Parser) (Status, error) {
	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeTagOpen); err != nil {
			return Done, wrapErr("tag_open", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	switch next.Kind {
	case token.FwdSlash:
		return enqueue(p, "tag_open", elmClose)
	case token.Excl:
		return enqueue(p, "tag_open", doctype)
	}
	return tagOpenRoute(p, next)
}

func tagOpenRoute(p *Parser, next token.Token) (Status, error) {
	switch next.Kind {
	case token.LtCaret, token.Space:
		return enqueue(p, "tag_open", tagOpen)
	case token.Word:
		return enqueue(p, "tag_open", tagName)
	default:
		return Done, newErr("tag_open", SyntaxError, "unexpected token after '<'")
	}
}

// enqueue schedules fn at the back of the state queue and reports Done.
func enqueue(p *Parser, state string, fn Fn) (Status, error) {
	if err := p.States.EnqueueBack(fn); err != nil {
		return Done, wrapErr(state, CapacityError, "state queue full", err)
	}
	return Done, nil
}

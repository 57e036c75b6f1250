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
	"bytes"

	"github.com/dbern/markup/token"
)

// elmClose is entered immediately after tag_open sees a '/' following '<'.
// On the end-tag's Word it verifies the name against the stack top
// regardless of depth (the root's own closing tag is checked too, not just
// nested ones); only the relocation into a parent's children is depth-gated,
// since the root has no parent to append into and is instead left for the
// driver's terminal pop.
func elmClose(p *Parser) (Status, error) {
	cur, ok := p.Tokens.Dequeue()
	if !ok {
		return Done, newErr("elm_close", SyntaxError, "expected current token")
	}

	switch cur.Kind {
	case token.Word:
		top, ok := p.Nodes.Peek()
		if !ok {
			return Done, newErr("elm_close", StructureError, "node stack empty")
		}
		if !bytes.Equal(top.Name, p.normalize(cur.Data)) {
			return Done, newErr("elm_close", StructureError, "tag mismatch")
		}
		if p.Nodes.Len() > 1 {
			node, _ := p.Nodes.Pop()
			parent, ok := p.Nodes.Peek()
			if ok {
				parent.AppendChild(node)
			}
		} else {
			p.rootClosed = true
		}
	case token.FwdSlash:
		// no action
	default:
		return Done, newErr("elm_close", SyntaxError, "unexpected current token")
	}

	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeElmClose); err != nil {
			return Done, wrapErr("elm_close", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return elmCloseRoute(p, next)
}

func resumeElmClose(p *Parser) (Status, error) {
	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeElmClose); err != nil {
			return Done, wrapErr("elm_close", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return elmCloseRoute(p, next)
}

func elmCloseRoute(p *Parser, next token.Token) (Status, error) {
	switch next.Kind {
	case token.Word:
		return enqueue(p, "elm_close", elmClose)
	case token.RtCaret:
		return enqueue(p, "elm_close", tagClose)
	default:
		return Done, newErr("elm_close", SyntaxError, "unexpected token in end tag")
	}
}

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

// attributeName expects current to be Word, Space, Equals, or DblQuot. A
// Word introduces a new attribute, owned by the stack-top node and pushed
// onto the attribute stack awaiting its value.
func attributeName(p *Parser) (Status, error) {
	node, ok := p.Nodes.Peek()
	if !ok {
		return Done, newErr("attribute_name", StructureError, "node stack empty")
	}

	cur, ok := p.Tokens.Dequeue()
	if !ok {
		return Done, newErr("attribute_name", SyntaxError, "expected current token")
	}

	switch cur.Kind {
	case token.Word:
		attr := &dom.Attr{Name: p.normalize(cur.Data)}
		node.AppendAttribute(attr)
		if err := p.Attrs.Push(attr); err != nil {
			return Done, wrapErr("attribute_name", CapacityError, "attribute stack full", err)
		}
	case token.Space, token.Equals, token.DblQuot:
		// no action
	default:
		return Done, newErr("attribute_name", SyntaxError, "unexpected current token")
	}

	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeAttributeName); err != nil {
			return Done, wrapErr("attribute_name", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return attributeNameRoute(p, next)
}

func resumeAttributeName(p *Parser) (Status, error) {
	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeAttributeName); err != nil {
			return Done, wrapErr("attribute_name", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return attributeNameRoute(p, next)
}

func attributeNameRoute(p *Parser, next token.Token) (Status, error) {
	switch next.Kind {
	case token.Word, token.Equals, token.Space:
		return enqueue(p, "attribute_name", attributeName)
	case token.DblQuot:
		return enqueue(p, "attribute_name", attributeValue)
	case token.RtCaret:
		return enqueue(p, "attribute_name", tagClose)
	default:
		return Done, newErr("attribute_name", SyntaxError, "unexpected token after attribute name")
	}
}

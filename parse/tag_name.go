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

import "github.com/dbern/markup/token"

// tagName expects current to be Word; the stack top receives the appended
// name bytes. A tag name may span several Word tokens (rare) before
// whitespace or '>' ends it.
func tagName(p *Parser) (Status, error) {
	node, ok := p.Nodes.Peek()
	if !ok {
		return Done, newErr("tag_name", StructureError, "node stack empty")
	}

	cur, ok := p.Tokens.Dequeue()
	if !ok {
		return Done, newErr("tag_name", SyntaxError, "expected current token")
	}
	if cur.Kind != token.Word {
		return Done, newErr("tag_name", SyntaxError, "expected a word")
	}
	node.AppendName(p.normalize(cur.Data))

	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeTagName); err != nil {
			return Done, wrapErr("tag_name", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return tagNameRoute(p, next)
}

func resumeTagName(p *Parser) (Status, error) {
	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeTagName); err != nil {
			return Done, wrapErr("tag_name", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return tagNameRoute(p, next)
}

func tagNameRoute(p *Parser, next token.Token) (Status, error) {
	switch next.Kind {
	case token.Word:
		return enqueue(p, "tag_name", tagName)
	case token.Space:
		return enqueue(p, "tag_name", attributeName)
	case token.RtCaret:
		return enqueue(p, "tag_name", tagClose)
	case token.Excl:
		return enqueue(p, "tag_name", doctype)
	default:
		return Done, newErr("tag_name", SyntaxError, "unexpected token after word")
	}
}

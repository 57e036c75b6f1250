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

// tagClose consumes the '>' that ends an open tag. The node it closes
// remains open on the stack; only elm_close pops it.
//
// Its next-token routing is wider than a literal reading of the state
// table: any body-content token (not just Word) routes to elm_body, so
// that whitespace between a tag's '>' and its first child (e.g. source
// indentation before a nested element) is treated as leading body text
// rather than a syntax error, consistent with elm_body's own accepted set.
func tagClose(p *Parser) (Status, error) {
	cur, ok := p.Tokens.Dequeue()
	if !ok {
		return Done, newErr("tag_close", SyntaxError, "expected current token")
	}
	if cur.Kind != token.RtCaret {
		return Done, newErr("tag_close", SyntaxError, "expected '>'")
	}

	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeTagClose); err != nil {
			return Done, wrapErr("tag_close", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return tagCloseRoute(p, next)
}

func resumeTagClose(p *Parser) (Status, error) {
	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeTagClose); err != nil {
			return Done, wrapErr("tag_close", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return tagCloseRoute(p, next)
}

func tagCloseRoute(p *Parser, next token.Token) (Status, error) {
	if next.Kind == token.LtCaret {
		return enqueue(p, "tag_close", tagOpen)
	}
	if isBodyContent(next.Kind) {
		return enqueue(p, "tag_close", elmBody)
	}
	return Done, newErr("tag_close", SyntaxError, "unexpected token after '>'")
}

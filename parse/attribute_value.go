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

// valueContentByte maps the single-byte value-content kinds to the byte
// appended to the attribute value. Word/Number are handled separately since
// they carry their own data.
var valueContentByte = map[token.Kind]byte{
	token.Dash:       '-',
	token.Period:     '.',
	token.FwdSlash:   '/',
	token.Colon:      ':',
	token.Underscore: '_',
}

// attributeValue requires a non-empty attribute stack; it appends
// value-content bytes to the top attribute's value until the closing
// DblQuot, at which point the attribute is popped and control returns to
// attribute_name.
func attributeValue(p *Parser) (Status, error) {
	attr, ok := p.Attrs.Peek()
	if !ok {
		return Done, newErr("attribute_value", StructureError, "attribute stack empty")
	}

	cur, ok := p.Tokens.Dequeue()
	if !ok {
		return Done, newErr("attribute_value", SyntaxError, "expected current token")
	}

	switch {
	case cur.Kind == token.Word || cur.Kind == token.Number:
		attr.AppendValue(p.normalize(cur.Data))
	case cur.Kind == token.DblQuot:
		// opening quote, no append (the closing quote is consumed by
		// attribute_name after the pop in attributeValueRoute)
	default:
		b, ok := valueContentByte[cur.Kind]
		if !ok {
			return Done, newErr("attribute_value", SyntaxError, "unexpected current token")
		}
		attr.AppendValue([]byte{b})
	}

	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeAttributeValue); err != nil {
			return Done, wrapErr("attribute_value", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return attributeValueRoute(p, next)
}

func resumeAttributeValue(p *Parser) (Status, error) {
	next, ok := p.Tokens.Peek()
	if !ok {
		if err := p.States.EnqueueFront(resumeAttributeValue); err != nil {
			return Done, wrapErr("attribute_value", CapacityError, "state queue full", err)
		}
		return Suspend, nil
	}
	return attributeValueRoute(p, next)
}

func attributeValueRoute(p *Parser, next token.Token) (Status, error) {
	if next.Kind == token.Word || next.Kind == token.Number {
		return enqueue(p, "attribute_value", attributeValue)
	}
	if _, ok := valueContentByte[next.Kind]; ok {
		return enqueue(p, "attribute_value", attributeValue)
	}
	if next.Kind == token.DblQuot {
		if _, ok := p.Attrs.Pop(); !ok {
			return Done, newErr("attribute_value", StructureError, "attribute stack empty")
		}
		return enqueue(p, "attribute_value", attributeName)
	}
	return Done, newErr("attribute_value", SyntaxError, "unexpected token in attribute value")
}

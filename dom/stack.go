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

package dom

import "errors"

// DefaultStackCapacity is the default depth bound for NodeStack and
// AttrStack, mirroring the source's fixed 32-slot stacks.
const DefaultStackCapacity = 32

// ErrStackFull is returned by Push when a stack is already at capacity.
var ErrStackFull = errors.New("dom: stack is full")

// NodeStack is a LIFO of currently open elements. The top of the stack is
// the node whose name, attributes, or body is currently being filled.
type NodeStack struct {
	items []*Node
	cap   int
}

// NewNodeStack returns an empty NodeStack bounded at cap entries.
func NewNodeStack(cap int) *NodeStack {
	if cap <= 0 {
		cap = DefaultStackCapacity
	}
	return &NodeStack{cap: cap}
}

// Len reports the current stack depth.
func (s *NodeStack) Len() int { return len(s.items) }

// Push opens node, making it the new top of stack.
func (s *NodeStack) Push(n *Node) error {
	if len(s.items) >= s.cap {
		return ErrStackFull
	}
	s.items = append(s.items, n)
	return nil
}

// Pop closes and returns the top of stack.
func (s *NodeStack) Pop() (*Node, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	n := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return n, true
}

// Peek returns the top of stack without closing it.
func (s *NodeStack) Peek() (*Node, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

// AttrStack is a LIFO of attributes currently awaiting a value.
type AttrStack struct {
	items []*Attr
	cap   int
}

// NewAttrStack returns an empty AttrStack bounded at cap entries.
func NewAttrStack(cap int) *AttrStack {
	if cap <= 0 {
		cap = DefaultStackCapacity
	}
	return &AttrStack{cap: cap}
}

// Len reports the current stack depth.
func (s *AttrStack) Len() int { return len(s.items) }

// Push begins accumulating a value for attr.
func (s *AttrStack) Push(a *Attr) error {
	if len(s.items) >= s.cap {
		return ErrStackFull
	}
	s.items = append(s.items, a)
	return nil
}

// Pop completes the top attribute's value.
func (s *AttrStack) Pop() (*Attr, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	a := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return a, true
}

// Peek returns the attribute currently accumulating a value, if any.
func (s *AttrStack) Peek() (*Attr, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

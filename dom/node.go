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

// Package dom holds the in-memory document tree the parser builds: nodes,
// attributes, the open-element/open-attribute stacks, and the tree wrapper.
//
// Node.Parent is a weak back-reference: it exists for upward traversal only
// and is never used to free or otherwise own its target. Children are the
// sole owners of their subtrees.
package dom

// Attr is a single name/value attribute, owned by exactly one Node.
type Attr struct {
	Name  []byte
	Value []byte
}

// AppendValue appends b to the attribute's value. Quoted values are filled
// incrementally as the parser consumes each value-content token.
func (a *Attr) AppendValue(b []byte) {
	a.Value = append(a.Value, b...)
}

// Node is a single element in the document tree.
type Node struct {
	Name     []byte
	Body     []byte
	Attrs    []*Attr
	Parent   *Node // weak back-reference; never dereferenced for ownership
	Children []*Node
}

// NewNode returns an empty, unattached Node.
func NewNode() *Node {
	return &Node{}
}

// AppendName appends b to the node's name. A single tag may be built from
// more than one Word token (rare, but the grammar allows successive Word
// tokens before whitespace); their concatenation is the name.
func (n *Node) AppendName(b []byte) {
	n.Name = append(n.Name, b...)
}

// AppendBody appends b to the node's text body.
func (n *Node) AppendBody(b []byte) {
	n.Body = append(n.Body, b...)
}

// AppendAttribute takes ownership of attr, adding it to the node's
// attribute list in the order attributes appear in the source.
func (n *Node) AppendAttribute(attr *Attr) {
	n.Attrs = append(n.Attrs, attr)
}

// AppendChild takes ownership of child, setting its Parent back-reference to
// n and appending it to n's children in source order.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

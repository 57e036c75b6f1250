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

import (
	"bytes"
	"fmt"
)

// Tree wraps the parsed document: the leading doctype text (without the
// surrounding "<!" and ">") and the single root Node.
type Tree struct {
	Doctype []byte
	Root    *Node
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// GetElementByName walks the tree pre-order (this node, then each child in
// source order) and returns the first Node whose Name equals name
// byte-for-byte, or nil if none matches.
func (t *Tree) GetElementByName(name []byte) *Node {
	if t.Root == nil {
		return nil
	}
	return getElementByName(t.Root, name)
}

func getElementByName(n *Node, name []byte) *Node {
	if n == nil {
		return nil
	}
	if bytes.Equal(n.Name, name) {
		return n
	}
	for _, c := range n.Children {
		if found := getElementByName(c, name); found != nil {
			return found
		}
	}
	return nil
}

// Serialize renders the tree as markup: the doctype line (if any), then the
// root pre-order — an open tag with its attributes, the body, the children
// in source order, and the matching close tag.
func (t *Tree) Serialize() []byte {
	var buf bytes.Buffer
	if len(t.Doctype) > 0 {
		buf.WriteString("<!")
		buf.Write(t.Doctype)
		buf.WriteString(">\n")
	}
	if t.Root != nil {
		writeNode(&buf, t.Root)
	}
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *Node) {
	buf.WriteByte('<')
	buf.Write(n.Name)
	for _, a := range n.Attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Name, a.Value)
	}
	buf.WriteByte('>')
	buf.Write(n.Body)
	for _, c := range n.Children {
		writeNode(buf, c)
	}
	buf.WriteString("</")
	buf.Write(n.Name)
	buf.WriteByte('>')
}

package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbern/markup/dom"
)

func TestAppendChildSetsParent(t *testing.T) {
	parent := dom.NewNode()
	parent.AppendName([]byte("html"))
	child := dom.NewNode()
	child.AppendName([]byte("head"))

	parent.AppendChild(child)

	require.Len(t, parent.Children, 1)
	assert.Same(t, parent, child.Parent)
	assert.Same(t, child, parent.Children[0])
}

func TestChildOrderMatchesAppendOrder(t *testing.T) {
	parent := dom.NewNode()
	for _, name := range []string{"head", "body"} {
		c := dom.NewNode()
		c.AppendName([]byte(name))
		parent.AppendChild(c)
	}
	require.Len(t, parent.Children, 2)
	assert.Equal(t, "head", string(parent.Children[0].Name))
	assert.Equal(t, "body", string(parent.Children[1].Name))
}

func TestGetElementByNamePreOrder(t *testing.T) {
	root := dom.NewNode()
	root.AppendName([]byte("html"))
	head := dom.NewNode()
	head.AppendName([]byte("head"))
	body := dom.NewNode()
	body.AppendName([]byte("body"))
	p := dom.NewNode()
	p.AppendName([]byte("p"))
	body.AppendChild(p)
	root.AppendChild(head)
	root.AppendChild(body)

	tree := &dom.Tree{Root: root}

	found := tree.GetElementByName([]byte("p"))
	require.NotNil(t, found)
	assert.Same(t, p, found)

	assert.Nil(t, tree.GetElementByName([]byte("span")))
}

func TestAttrAppendValueAccumulates(t *testing.T) {
	a := &dom.Attr{Name: []byte("lang")}
	a.AppendValue([]byte("en"))
	a.AppendValue([]byte("-"))
	a.AppendValue([]byte("US"))
	assert.Equal(t, "en-US", string(a.Value))
}

func TestSerializeRoundTripsStructure(t *testing.T) {
	root := dom.NewNode()
	root.AppendName([]byte("html"))
	root.AppendAttribute(&dom.Attr{Name: []byte("dir"), Value: []byte("ltr")})
	p := dom.NewNode()
	p.AppendName([]byte("p"))
	p.AppendBody([]byte("hi"))
	root.AppendChild(p)

	tree := &dom.Tree{Doctype: []byte("DOCTYPE html"), Root: root}
	out := string(tree.Serialize())

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `<html dir="ltr">`)
	assert.Contains(t, out, "<p>hi</p>")
	assert.Contains(t, out, "</html>")
}

func TestNodeStackPushPopPeek(t *testing.T) {
	s := dom.NewNodeStack(2)
	n1, n2 := dom.NewNode(), dom.NewNode()
	require.NoError(t, s.Push(n1))
	require.NoError(t, s.Push(n2))
	require.ErrorIs(t, s.Push(dom.NewNode()), dom.ErrStackFull)

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, n2, top)

	popped, ok := s.Pop()
	require.True(t, ok)
	assert.Same(t, n2, popped)
	assert.Equal(t, 1, s.Len())
}

func TestAttrStackPushPopPeek(t *testing.T) {
	s := dom.NewAttrStack(1)
	a := &dom.Attr{Name: []byte("id")}
	require.NoError(t, s.Push(a))
	require.ErrorIs(t, s.Push(&dom.Attr{}), dom.ErrStackFull)

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, a, top)

	popped, ok := s.Pop()
	require.True(t, ok)
	assert.Same(t, a, popped)
	assert.Equal(t, 0, s.Len())
}

func TestFoldWidthNarrowsFullwidthLatin(t *testing.T) {
	// U+FF28 U+FF49 are the fullwidth forms of 'H' and 'i'.
	folded := dom.FoldWidth([]byte("Ｈｉ"))
	assert.Equal(t, "Hi", string(folded))
}

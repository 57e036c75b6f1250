package content_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbern/markup/content"
	"github.com/dbern/markup/dom"
)

func buildTree() *dom.Tree {
	root := dom.NewNode()
	root.AppendName([]byte("a"))
	root.AppendBody([]byte("hello world"))

	child := dom.NewNode()
	child.AppendName([]byte("b"))
	child.AppendBody([]byte("foo"))
	root.AppendChild(child)

	return &dom.Tree{Root: root}
}

func TestExpandMirrorsDomShape(t *testing.T) {
	tree := content.Expand(buildTree())
	require.NotNil(t, tree.Root)
	require.Equal(t, []string{"hello", "world"}, tree.Root.Words)
	require.Len(t, tree.Root.Children, 1)
	require.Equal(t, []string{"foo"}, tree.Root.Children[0].Words)
	require.Same(t, tree.Root.Children[0].Source, tree.Root.Source.Children[0])
}

func TestExpandEmptyTree(t *testing.T) {
	tree := content.Expand(&dom.Tree{})
	require.Nil(t, tree.Root)
}

func TestSearchFindsWordAcrossLevels(t *testing.T) {
	tree := content.Expand(buildTree())
	hits := tree.Search("foo")
	require.Len(t, hits, 1)
	require.Equal(t, "b", string(hits[0].Source.Name))

	require.Empty(t, tree.Search("missing"))
}

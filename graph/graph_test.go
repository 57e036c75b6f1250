package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbern/markup/dom"
	"github.com/dbern/markup/graph"
)

func buildTree() *dom.Tree {
	root := dom.NewNode()
	root.AppendName([]byte("a"))
	b := dom.NewNode()
	b.AppendName([]byte("b"))
	c := dom.NewNode()
	c.AppendName([]byte("c"))
	root.AppendChild(b)
	root.AppendChild(c)
	return &dom.Tree{Root: root}
}

func TestFromTreeBuildsOneVertexPerNode(t *testing.T) {
	g := graph.FromTree(buildTree())
	require.Len(t, g.Nodes(), 3)
	require.Equal(t, "a", g.Root().Name)
	require.Equal(t, 0, g.Root().Weight)
}

func TestBFSVisitsInBreadthOrder(t *testing.T) {
	g := graph.FromTree(buildTree())
	order := graph.BFS(g.Root())
	require.Len(t, order, 3)
	require.Equal(t, "a", order[0].Name)
	require.ElementsMatch(t, []string{"b", "c"}, []string{order[1].Name, order[2].Name})
}

func TestBFSNilRoot(t *testing.T) {
	require.Nil(t, graph.BFS(nil))
}

func TestDotEmitsOneNodePerVertex(t *testing.T) {
	g := graph.FromTree(buildTree())
	out := graph.Dot(g)
	require.Contains(t, out, "digraph markup")
	require.Contains(t, out, `label="a"`)
	require.Contains(t, out, `label="b"`)
	require.Contains(t, out, `label="c"`)
}

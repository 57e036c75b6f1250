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

// Package graph converts a dom.Tree into a plain directed graph for
// visualization or tooling, independent of the parser's own node types.
package graph

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dbern/markup/dom"
)

// Node is one graph vertex: a stable synthetic ID, the vertex's display
// weight (its depth in the source dom.Tree), and a weak back-reference to
// the dom.Node it was built from.
type Node struct {
	ID     uuid.UUID
	Name   string
	Weight int
	Source *dom.Node

	adj []*Node
}

// Graph is a directed graph of Nodes, one per dom.Node reachable from the
// dom.Tree it was built from.
type Graph struct {
	nodes []*Node
}

// FromTree builds a Graph from t: one vertex per dom.Node, one directed
// edge from each parent to each child, weight set to the child's depth.
func FromTree(t *dom.Tree) *Graph {
	g := &Graph{}
	if t == nil || t.Root == nil {
		return g
	}

	root := g.addNode(t.Root, 0)
	type pending struct {
		domNode *dom.Node
		vertex  *Node
		depth   int
	}
	queue := []pending{{t.Root, root, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range cur.domNode.Children {
			cv := g.addNode(child, cur.depth+1)
			g.addDirectedEdge(cur.vertex, cv)
			queue = append(queue, pending{child, cv, cur.depth + 1})
		}
	}

	return g
}

func (g *Graph) addNode(n *dom.Node, depth int) *Node {
	v := &Node{ID: uuid.New(), Name: string(n.Name), Weight: depth, Source: n}
	g.nodes = append(g.nodes, v)
	return v
}

func (g *Graph) addDirectedEdge(src, dst *Node) {
	src.adj = append(src.adj, dst)
}

// BFS visits the graph breadth-first starting from root and returns the
// nodes in visitation order, mirroring the source's graph_BFS.
func BFS(root *Node) []*Node {
	if root == nil {
		return nil
	}

	visited := map[uuid.UUID]bool{root.ID: true}
	order := []*Node{root}
	queue := []*Node{root}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range n.adj {
			if visited[next.ID] {
				continue
			}
			visited[next.ID] = true
			order = append(order, next)
			queue = append(queue, next)
		}
	}

	return order
}

// Root returns the graph's first vertex, the one FromTree built from the
// dom.Tree's root, or nil for an empty graph.
func (g *Graph) Root() *Node {
	if len(g.nodes) == 0 {
		return nil
	}
	return g.nodes[0]
}

// Nodes returns every vertex in the graph, in insertion order.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Dot renders the graph as Graphviz dot source, for tooling and for tests
// that want a textual snapshot of graph shape. cmd/markup does not call it.
func Dot(g *Graph) string {
	var b strings.Builder
	b.WriteString("digraph markup {\n")
	for _, n := range g.nodes {
		fmt.Fprintf(&b, "  %q [label=%q];\n", n.ID, n.Name)
		for _, adj := range n.adj {
			fmt.Fprintf(&b, "  %q -> %q;\n", n.ID, adj.ID)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

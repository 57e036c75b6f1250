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

// Command markup parses a single file of the markup described in
// parse/, then prints the resulting tree (--print, or serialized markup
// when no flag is given) and/or searches its text (--query).
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/dbern/markup"
	"github.com/dbern/markup/content"
	"github.com/dbern/markup/dom"
	"github.com/dbern/markup/parse"
)

// CLI is the top-level flag set: one positional file path plus the parse
// and reporting options spec.md §4.2/§7's Parser.Options expose.
type CLI struct {
	File string `arg:"" help:"Path to the markup file to parse." type:"path"`

	MaxTokens int    `name:"max-tokens" help:"Token queue capacity (0 uses the default)." default:"0"`
	MaxDepth  int    `name:"max-depth" help:"Node/attribute stack capacity (0 uses the default)." default:"0"`
	Print     bool   `name:"print" help:"Pretty-print the parsed tree."`
	Query     string `name:"query" help:"Search the document's text content for an exact word match." default:""`
	Latin1    bool   `name:"latin1" help:"Decode the input as ISO-8859-1 before parsing."`
}

var (
	tagStyle  = lipgloss.NewStyle().Bold(true)
	attrStyle = lipgloss.NewStyle().Faint(true)
)

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("markup"),
		kong.Description("Parse and inspect a markup document."),
		kong.UsageOnError(),
	)

	logger := log.New(os.Stderr)

	opts := markup.Options{Latin1: cli.Latin1}
	if cli.MaxTokens > 0 {
		opts.TokenQueueCap = cli.MaxTokens
	}
	if cli.MaxDepth > 0 {
		opts.NodeStackCap = cli.MaxDepth
		opts.AttrStackCap = cli.MaxDepth
	}

	tree, err := markup.ParseFile(afero.NewOsFs(), cli.File, opts)
	if err != nil {
		if perr, ok := err.(*parse.Error); ok {
			logger.Fatal("parse failed", "state", perr.State, "kind", perr.Kind, "reason", perr.Reason)
		}
		logger.Fatal("parse failed", "err", err)
	}

	if cli.Print {
		printTree(tree)
	}

	if cli.Query != "" {
		runQuery(tree, cli.Query)
	}

	if !cli.Print && cli.Query == "" {
		os.Stdout.Write(tree.Serialize())
		fmt.Println()
	}
}

func printTree(tree *dom.Tree) {
	pretty := isatty.IsTerminal(os.Stdout.Fd())
	if len(tree.Doctype) > 0 {
		fmt.Printf("<!%s>\n", tree.Doctype)
	}
	if tree.Root != nil {
		printNode(tree.Root, 0, pretty)
	}
}

func printNode(n *dom.Node, depth int, pretty bool) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	name := string(n.Name)
	if pretty {
		name = tagStyle.Render(name)
	}

	attrs := ""
	for _, a := range n.Attrs {
		piece := fmt.Sprintf(` %s="%s"`, a.Name, a.Value)
		if pretty {
			piece = attrStyle.Render(piece)
		}
		attrs += piece
	}

	fmt.Printf("%s<%s%s>%s\n", indent, name, attrs, n.Body)
	for _, c := range n.Children {
		printNode(c, depth+1, pretty)
	}
}

func runQuery(tree *dom.Tree, word string) {
	hits := content.Expand(tree).Search(word)
	if len(hits) == 0 {
		fmt.Println("no matches")
		return
	}
	for _, h := range hits {
		fmt.Printf("<%s>: %v\n", h.Source.Name, h.Words)
	}
}

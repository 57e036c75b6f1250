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

package markup_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/dbern/markup"
)

func TestParseBytesBuildsTree(t *testing.T) {
	tree, err := markup.ParseBytes([]byte("<!doctype html>\n<a><b></b></a>\n"), markup.Options{})
	require.NoError(t, err)
	require.Equal(t, "doctype html", string(tree.Doctype))
	require.Equal(t, "a", string(tree.Root.Name))
	require.Len(t, tree.Root.Children, 1)
	require.Equal(t, "b", string(tree.Root.Children[0].Name))
}

func TestParseFileOverMemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/doc.html", []byte("<a class=\"x\"></a>\n"), 0o644))

	tree, err := markup.ParseFile(fs, "/doc.html", markup.Options{})
	require.NoError(t, err)
	require.Equal(t, "a", string(tree.Root.Name))
	require.Len(t, tree.Root.Attrs, 1)
	require.Equal(t, "class", string(tree.Root.Attrs[0].Name))
	require.Equal(t, "x", string(tree.Root.Attrs[0].Value))
}

func TestParseFileMissingPathIsIoError(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := markup.ParseFile(fs, "/missing.html", markup.Options{})
	require.Error(t, err)
}

func TestParseBytesLatin1DecodesBodyBeforeLexing(t *testing.T) {
	// 0xE9 is 'é' in ISO-8859-1; UTF-8 encodes the same rune as the two
	// bytes 0xC3 0xA9.
	body := []byte{'<', 'p', '>', 0xE9, '<', '/', 'p', '>'}

	tree, err := markup.ParseBytes(body, markup.Options{Latin1: true})
	require.NoError(t, err)
	require.Equal(t, "é", string(tree.Root.Body))
}

func TestParseFileLatin1DecodesBodyBeforeLexing(t *testing.T) {
	fs := afero.NewMemMapFs()
	body := []byte{'<', 'p', '>', 0xE9, '<', '/', 'p', '>', '\n'}
	require.NoError(t, afero.WriteFile(fs, "/latin1.html", body, 0o644))

	tree, err := markup.ParseFile(fs, "/latin1.html", markup.Options{Latin1: true})
	require.NoError(t, err)
	require.Equal(t, "é", string(tree.Root.Body))
}

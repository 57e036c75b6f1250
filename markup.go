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

// Package markup parses a byte stream of HTML-like markup into a DOM tree.
// It is a thin facade over lexer/parse/dom: split the input into lines,
// feed each line to a parse.Parser, and finish the parse once the input is
// exhausted.
package markup

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dbern/markup/dom"
	"github.com/dbern/markup/internal/reader"
	"github.com/dbern/markup/parse"
)

// Options configures a parse. Latin1 is handled here rather than in
// parse.Options because it's a property of the input bytes the facade
// decodes before they ever reach the lexer, not of the parser itself.
type Options struct {
	parse.Options

	// Latin1 transcodes the input from ISO-8859-1 to UTF-8 (via
	// internal/reader.DecodeLatin1) before any line is lexed. Off by
	// default: the lexer's own contract is that bytes arrive as ASCII or
	// already-UTF-8 (§1 Non-goals).
	Latin1 bool
}

// ParseBytes splits data on '\n' and parses it into a Tree.
func ParseBytes(data []byte, opts Options) (*dom.Tree, error) {
	if opts.Latin1 {
		decoded, err := io.ReadAll(reader.DecodeLatin1(bytes.NewReader(data)))
		if err != nil {
			return nil, parse.WrapIoError("decode", err)
		}
		data = decoded
	}

	p := parse.New(opts.Options)
	for _, line := range bytes.Split(data, []byte("\n")) {
		if err := p.Line(line); err != nil {
			return nil, err
		}
	}
	return p.Finish()
}

// ParseFile reads path in bounded chunks via internal/reader and parses the
// result. Parser state persists across chunks; the terminal check runs
// once, at end of input.
func ParseFile(fs reader.Fs, path string, opts Options) (*dom.Tree, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, parse.WrapIoError("open", err)
	}
	defer f.Close()

	p := parse.New(opts.Options)
	cr := reader.NewChunkReader(f, reader.MaxBuf)
	var src io.Reader = cr
	if opts.Latin1 {
		src = reader.DecodeLatin1(cr)
	}
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, reader.MaxBuf), reader.MaxBuf*2)
	for sc.Scan() {
		if err := p.Line(sc.Bytes()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		return nil, parse.WrapIoError("read", err)
	}
	return p.Finish()
}

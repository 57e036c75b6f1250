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

// Package reader adapts an afero filesystem into the chunked reader
// contract §6 describes: successive reads of at most MaxBuf bytes,
// delivered in file order.
package reader

import (
	"io"

	"github.com/spf13/afero"
)

// MaxBuf is the default chunk size: one byte under the 4096-byte block the
// source's buffer is fixed at, leaving room for a NUL terminator.
const MaxBuf = 4095

// Fs is the filesystem a ChunkReader reads through. afero.Fs satisfies
// this directly; tests substitute afero.NewMemMapFs().
type Fs = afero.Fs

// ChunkReader wraps an io.Reader so that every Read call returns at most
// maxBuf bytes, mirroring the source's fixed-size chunk callback even
// though Go's io.Reader already honors the caller's buffer length — this
// type exists so call sites can rely on a named, testable chunk size
// instead of an ad hoc buffer literal.
type ChunkReader struct {
	r      io.Reader
	maxBuf int
}

// NewChunkReader returns a ChunkReader that never delivers more than
// maxBuf bytes per Read.
func NewChunkReader(r io.Reader, maxBuf int) *ChunkReader {
	if maxBuf <= 0 {
		maxBuf = MaxBuf
	}
	return &ChunkReader{r: r, maxBuf: maxBuf}
}

// Read implements io.Reader, capping each read at the configured chunk size.
func (c *ChunkReader) Read(p []byte) (int, error) {
	if len(p) > c.maxBuf {
		p = p[:c.maxBuf]
	}
	return c.r.Read(p)
}

// Open opens path through fs for chunked reading.
func Open(fs Fs, path string) (afero.File, error) {
	return fs.Open(path)
}

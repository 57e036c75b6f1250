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

import "golang.org/x/text/width"

// FoldWidth narrows East-Asian fullwidth forms to their ASCII equivalent
// (e.g. the fullwidth space U+3000 or fullwidth Latin letters) before the
// bytes are stored in a node's body or an attribute's value.
//
// The parser's default lexer only classifies ASCII, so non-ASCII bytes
// inside a body or value are opaque to it and preserved verbatim; FoldWidth
// is purely a post-classification normalization step, applied only when a
// Parser is constructed with the NormalizeWidth option, since the default
// contract is "preserve verbatim" (spec §1 Non-goals: no Unicode-aware
// tokenization).
func FoldWidth(b []byte) []byte {
	return []byte(width.Narrow.String(string(b)))
}

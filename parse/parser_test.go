package parse_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbern/markup/parse"
)

func parseLines(t *testing.T, lines ...string) (*parse.Parser, error) {
	t.Helper()
	p := parse.New(parse.Options{})
	for _, line := range lines {
		if err := p.Line([]byte(line)); err != nil {
			return p, err
		}
	}
	return p, nil
}

func TestParseEmptyDoctypedDocument(t *testing.T) {
	p, err := parseLines(t, "<!DOCTYPE html>", "<html></html>")
	require.NoError(t, err)
	tree, err := p.Finish()
	require.NoError(t, err)

	assert.Equal(t, "DOCTYPE html", string(tree.Doctype))
	assert.Equal(t, "html", string(tree.Root.Name))
	assert.Len(t, tree.Root.Children, 0)
}

func TestParseNestedSiblings(t *testing.T) {
	p, err := parseLines(t,
		"<!DOCTYPE html>",
		"<html>",
		"  <head></head>",
		"  <body></body>",
		"</html>",
	)
	require.NoError(t, err)
	tree, err := p.Finish()
	require.NoError(t, err)

	require.Len(t, tree.Root.Children, 2)
	assert.Equal(t, "head", string(tree.Root.Children[0].Name))
	assert.Equal(t, "body", string(tree.Root.Children[1].Name))
}

func TestParseAttributesWithHyphenAndLetterValue(t *testing.T) {
	p, err := parseLines(t, `<html dir="ltr" lang="en-US"></html>`)
	require.NoError(t, err)
	tree, err := p.Finish()
	require.NoError(t, err)

	require.Len(t, tree.Root.Attrs, 2)
	assert.Equal(t, "dir", string(tree.Root.Attrs[0].Name))
	assert.Equal(t, "ltr", string(tree.Root.Attrs[0].Value))
	assert.Equal(t, "lang", string(tree.Root.Attrs[1].Name))
	assert.Equal(t, "en-US", string(tree.Root.Attrs[1].Value))
}

func TestParseTextBody(t *testing.T) {
	p, err := parseLines(t, "<p>hello world</p>")
	require.NoError(t, err)
	tree, err := p.Finish()
	require.NoError(t, err)

	assert.Equal(t, "p", string(tree.Root.Name))
	assert.Equal(t, "hello world", string(tree.Root.Body))
	assert.Len(t, tree.Root.Children, 0)
}

func TestParseMismatchedEndTagIsStructureError(t *testing.T) {
	_, err := parseLines(t, "<a></b>")
	require.Error(t, err)

	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.StructureError, perr.Kind)
}

func TestParseIllegalCharacterIsLexError(t *testing.T) {
	_, err := parseLines(t, "<a@></a>")
	require.Error(t, err)

	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.LexError, perr.Kind)
}

func TestParseUnclosedDocumentIsIncomplete(t *testing.T) {
	p, err := parseLines(t, "<a>")
	require.NoError(t, err)

	_, err = p.Finish()
	require.Error(t, err)

	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.StructureError, perr.Kind)
	assert.Contains(t, perr.Error(), "incomplete")
}

func TestParseNormalizeWidthFoldsFullwidthBodyAndAttr(t *testing.T) {
	p := parse.New(parse.Options{NormalizeWidth: true})
	// dir="Ａ" uses the fullwidth form of 'A'; the body uses the fullwidth
	// forms of 'H' and 'i'. Both should land narrowed in the tree.
	require.NoError(t, p.Line([]byte(`<p dir="Ａ">Ｈｉ</p>`)))
	tree, err := p.Finish()
	require.NoError(t, err)

	assert.Equal(t, "A", string(tree.Root.Attrs[0].Value))
	assert.Equal(t, "Hi", string(tree.Root.Body))
}

func TestParseWithoutNormalizeWidthPreservesFullwidthBytes(t *testing.T) {
	p, err := parseLines(t, "<p>Ｈｉ</p>")
	require.NoError(t, err)
	tree, err := p.Finish()
	require.NoError(t, err)

	assert.Equal(t, "Ｈｉ", string(tree.Root.Body))
}

func TestParseSerializeRoundTrip(t *testing.T) {
	p, err := parseLines(t, `<html dir="ltr"><p>hi</p></html>`)
	require.NoError(t, err)
	tree, err := p.Finish()
	require.NoError(t, err)

	out := tree.Serialize()
	assert.True(t, bytes.Contains(out, []byte(`<html dir="ltr">`)))
	assert.True(t, bytes.Contains(out, []byte("<p>hi</p>")))
}

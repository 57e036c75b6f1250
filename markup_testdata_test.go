package markup_test

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/dbern/markup"
	"github.com/dbern/markup/parse"
)

// loadFixture reads a testdata file from disk and copies it into an
// in-memory filesystem, so ParseFile is exercised through an afero.Fs the
// way cmd/markup drives it.
func loadFixture(t *testing.T, name string) afero.Fs {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/"+name, data, 0o644))
	return fs
}

func TestParseFileScenario1Doctype(t *testing.T) {
	fs := loadFixture(t, "scenario1_doctype.html")
	tree, err := markup.ParseFile(fs, "/scenario1_doctype.html", markup.Options{})
	require.NoError(t, err)
	require.Equal(t, "DOCTYPE html", string(tree.Doctype))
	require.Equal(t, "html", string(tree.Root.Name))
	require.Empty(t, tree.Root.Children)
}

func TestParseFileScenario2NestedSiblings(t *testing.T) {
	fs := loadFixture(t, "scenario2_nested_siblings.html")
	tree, err := markup.ParseFile(fs, "/scenario2_nested_siblings.html", markup.Options{})
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 2)
	require.Equal(t, "head", string(tree.Root.Children[0].Name))
	require.Equal(t, "body", string(tree.Root.Children[1].Name))
}

func TestParseFileScenario5MismatchedEndTag(t *testing.T) {
	fs := loadFixture(t, "scenario5_mismatched_end_tag.html")
	_, err := markup.ParseFile(fs, "/scenario5_mismatched_end_tag.html", markup.Options{})
	require.Error(t, err)
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, parse.StructureError, perr.Kind)
}

func TestParseFileScenario6IllegalCharacter(t *testing.T) {
	fs := loadFixture(t, "scenario6_illegal_character.html")
	_, err := markup.ParseFile(fs, "/scenario6_illegal_character.html", markup.Options{})
	require.Error(t, err)
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, parse.LexError, perr.Kind)
}

func TestParseFileScenario7UnclosedDocument(t *testing.T) {
	fs := loadFixture(t, "scenario7_unclosed_document.html")
	_, err := markup.ParseFile(fs, "/scenario7_unclosed_document.html", markup.Options{})
	require.Error(t, err)
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, parse.StructureError, perr.Kind)
}

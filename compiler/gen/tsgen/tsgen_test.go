package tsgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdent(t *testing.T) {
	for _, name := range []string{"id", "_id", "$ref", "Book2", "__typename", "enum"} {
		assert.NoError(t, Ident(name), name)
	}
	for _, name := range []string{"", "2nd", "my-field", "a b", "é"} {
		err := Ident(name)
		require.Error(t, err, name)
		var ne *InvalidNameError
		require.True(t, errors.As(err, &ne))
		assert.Equal(t, name, ne.Name)
	}
}

func TestDeclName(t *testing.T) {
	assert.NoError(t, DeclName("Book"))
	assert.NoError(t, DeclName("query"))

	for _, name := range []string{"enum", "class", "interface", "yield"} {
		err := DeclName(name)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "reserved word")
	}
	assert.Contains(t, DeclName("a-b").Error(), "not an identifier")
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb\tc\r", `"a\nb\tc\r"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"\u2028\u2029", `"\u2028\u2029"`},
		{"héllo", `"héllo"`},
		{"", `""`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), tt.in)
	}
}

func TestDeprecated(t *testing.T) {
	assert.Equal(t, "/**\n * @deprecated Use id.\n */", Deprecated("Use id."))
	assert.Equal(t, "/**\n * @deprecated first\n *\n * second  \n */", Deprecated("first\n\nsecond  "))
	assert.Equal(t, "/**\n * @deprecated use y   \n */", Deprecated("use y   "))
	assert.Equal(t, "/**\n * @deprecated a *\\/ b\n */", Deprecated("a */ b"))
	assert.Equal(t, "/**\n * @deprecated\n */", Deprecated(""))
}

func TestLineComment(t *testing.T) {
	assert.Equal(t, "// a b", LineComment("a\nb"))
}

func TestWriter(t *testing.T) {
	var w Writer
	w.Line("a {")
	w.Indent()
	w.Linef("b: %d,", 1)
	w.Lines("c: (\n  d\n),")
	w.Line("")
	w.Dedent()
	w.Dedent()
	w.Line("}")
	assert.Equal(t, "a {\n  b: 1,\n  c: (\n    d\n  ),\n\n}", w.String())
}

func TestImport(t *testing.T) {
	out, err := (&Import{Names: []string{"Field", "Variable"}, From: "../src"}).Render()
	require.NoError(t, err)
	assert.Equal(t, "import {\n  Field,\n  Variable,\n} from \"../src\";", out)

	_, err = (&Import{Names: []string{"new"}, From: "x"}).Render()
	assert.Error(t, err)
}

func TestEnum(t *testing.T) {
	out, err := (&Enum{Name: "Genre", Members: []EnumMember{{"A", "a"}, {"B", "B"}}}).Render()
	require.NoError(t, err)
	assert.Equal(t, "export enum Genre {\n  A = \"a\",\n  B = \"B\",\n}", out)

	out, err = (&Enum{Name: "Empty"}).Render()
	require.NoError(t, err)
	assert.Equal(t, "export enum Empty {}", out)

	_, err = (&Enum{Name: "Genre", Members: []EnumMember{{"a-b", "x"}}}).Render()
	assert.Error(t, err)
}

func TestInterface(t *testing.T) {
	tests := []struct {
		name string
		d    *Interface
		want string
	}{
		{
			name: "members",
			d:    &Interface{Name: "IBook", Members: []string{"id: string", "title?: unknown"}},
			want: "export interface IBook {\n  id: string;\n  title?: unknown;\n}",
		},
		{
			name: "extends",
			d:    &Interface{Name: "IBook", Extends: []string{"INode", "INamed"}, Members: []string{`__typename: "Book"`}},
			want: "export interface IBook extends INode, INamed {\n  __typename: \"Book\";\n}",
		},
		{
			name: "empty",
			d:    &Interface{Name: "IEmpty"},
			want: "export interface IEmpty {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.d.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, err := (&Interface{Name: "IBook", Extends: []string{"bad name"}}).Render()
	assert.Error(t, err)
	_, err = (&Interface{Name: "interface"}).Render()
	assert.Error(t, err)
}

func TestConst(t *testing.T) {
	out, err := (&Const{Name: "Book", Entries: []string{
		`id: () => new Field("id"),`,
		"author: (\n  select: () => T\n) => x,",
	}}).Render()
	require.NoError(t, err)
	assert.Equal(t, "export const Book = {\n  id: () => new Field(\"id\"),\n  author: (\n    select: () => T\n  ) => x,\n};", out)

	out, err = (&Const{Name: "Empty"}).Render()
	require.NoError(t, err)
	assert.Equal(t, "export const Empty = {};", out)

	_, err = (&Const{Name: "const"}).Render()
	assert.Error(t, err)
}

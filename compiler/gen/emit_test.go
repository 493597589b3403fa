package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, s *Schema, opts ...Option) *Generator {
	t.Helper()
	cfg, err := NewConfig(append([]Option{WithLogger(nil)}, opts...)...)
	require.NoError(t, err)
	g, err := NewGenerator(s, cfg)
	require.NoError(t, err)
	return g
}

func TestEmitEnum(t *testing.T) {
	genre := &TypeDef{Kind: KindEnum, Name: "Genre", EnumValues: []*EnumValue{
		{Name: "SCIENCE_FICTION", Value: "SCIENCE_FICTION"},
		{Name: "HISTORY", Value: "history"},
		{Name: "ART", Value: `a"b`},
	}}
	g := newTestGenerator(t, newTestSchema(t, genre))

	t.Run("members in declaration order", func(t *testing.T) {
		out, err := g.emitEnum(genre)
		require.NoError(t, err)
		assert.Equal(t, `export enum Genre {
  SCIENCE_FICTION = "SCIENCE_FICTION",
  HISTORY = "history",
  ART = "a\"b",
}`, out)
	})

	t.Run("empty enum", func(t *testing.T) {
		out, err := g.emitEnum(&TypeDef{Kind: KindEnum, Name: "Empty"})
		require.NoError(t, err)
		assert.Equal(t, "export enum Empty {}", out)
	})

	t.Run("reserved name", func(t *testing.T) {
		_, err := g.emitEnum(&TypeDef{Kind: KindEnum, Name: "enum"})
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})
}

func TestEmitInputObject(t *testing.T) {
	filter := &TypeDef{Kind: KindInputObject, Name: "BookFilter", InputFields: []*InputField{
		{Name: "title", Type: Named("String")},
		{Name: "genre", Type: NonNullOf(Named("String"))},
		{Name: "ids", Type: NonNullOf(ListOf(Named("ID")))},
		{Name: "tags", Type: ListOf(NonNullOf(Named("String")))},
	}}
	g := newTestGenerator(t, newTestSchema(t, filter))

	out, err := g.emitInputObject(filter)
	require.NoError(t, err)
	assert.Equal(t, `export interface BookFilter {
  title?: unknown;
  genre: unknown;
  ids: unknown;
  tags?: unknown;
}`, out)

	_, err = g.emitInputObject(&TypeDef{Kind: KindInputObject, Name: "Bad", InputFields: []*InputField{
		{Name: "a-b", Type: Named("String")},
	}})
	assert.True(t, IsSchemaError(err))
}

func TestEmitUnion(t *testing.T) {
	result := &TypeDef{Kind: KindUnion, Name: "Result"}
	g := newTestGenerator(t, newTestSchema(t, result))

	out, warning := g.emitUnion(result)
	assert.Equal(t, `// "Result" is a union type and not supported`, out)
	assert.Equal(t, `Skipping union type "Result". Union types are not supported yet.`, warning)
}

func TestEmitInterface(t *testing.T) {
	node := iface("Node",
		field("id", NonNullOf(Named("ID"))),
		field("parent", Named("Node")),
	)
	g := newTestGenerator(t, newTestSchema(t, node))

	out, err := g.emitInterface(node)
	require.NoError(t, err)
	assert.Equal(t, `export interface INode {
  __typename: string;
  id: string;
  parent: INode;
}

export const Node = {
  id: () => new Field("id"),
  parent: <T extends Array<Field<any, any, any>>>(
    select: (t: typeof Node) => T
  ) => new Field("parent", [], new SelectionSet(select(Node))),
};`, out)
}

func TestEmitObject(t *testing.T) {
	node := iface("Node", field("id", NonNullOf(Named("ID"))))
	named := iface("Named", field("name", Named("String")))

	t.Run("implements interfaces", func(t *testing.T) {
		book := object("Book",
			field("id", NonNullOf(Named("ID"))),
			field("name", Named("String")),
			field("pages", NonNullOf(Named("Int"))),
		)
		book.Interfaces = []string{"Node", "Named"}
		g := newTestGenerator(t, newTestSchema(t, node, named, book))

		out, err := g.emitObject(book)
		require.NoError(t, err)
		assert.Equal(t, `export interface IBook extends INode, INamed {
  __typename: "Book";
  pages: number;
}

export const Book = {
  id: () => new Field("id"),
  name: () => new Field("name"),
  pages: () => new Field("pages"),
};`, out)
	})

	t.Run("all fields inherited", func(t *testing.T) {
		leaf := object("Leaf", field("id", NonNullOf(Named("ID"))))
		leaf.Interfaces = []string{"Node"}
		g := newTestGenerator(t, newTestSchema(t, node, leaf))

		out, err := g.emitObject(leaf)
		require.NoError(t, err)
		assert.Contains(t, out, "export interface ILeaf extends INode {\n  __typename: \"Leaf\";\n}")
		assert.Contains(t, out, `id: () => new Field("id"),`)
	})

	t.Run("plain object", func(t *testing.T) {
		author := object("Author", field("name", NonNullOf(Named("String"))))
		g := newTestGenerator(t, newTestSchema(t, author))

		out, err := g.emitObject(author)
		require.NoError(t, err)
		assert.Equal(t, `export interface IAuthor {
  name: string;
}

export const Author = {
  name: () => new Field("name"),
};`, out)
	})

	t.Run("no fields", func(t *testing.T) {
		empty := object("Empty")
		g := newTestGenerator(t, newTestSchema(t, empty))

		out, err := g.emitObject(empty)
		require.NoError(t, err)
		assert.Equal(t, "export interface IEmpty {}\n\nexport const Empty = {};", out)
	})

	t.Run("typename feature", func(t *testing.T) {
		author := object("Author", field("name", Named("String")))
		g := newTestGenerator(t, newTestSchema(t, author), WithFeatures(FeatureTypename))

		out, err := g.emitObject(author)
		require.NoError(t, err)
		assert.Contains(t, out, "export const Author = {\n  __typename: () => new Field(\"__typename\"),\n  name: () => new Field(\"name\"),\n};")
	})

	t.Run("typename feature with a declared __typename field", func(t *testing.T) {
		query := object("Query", field("__typename", NonNullOf(Named("String"))), field("n", Named("Int")))
		g := newTestGenerator(t, newTestSchema(t, query), WithFeatures(FeatureTypename))

		out, err := g.emitObject(query)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, `__typename: () => new Field("__typename"),`))
	})
}

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldSchema(t *testing.T) *Schema {
	return newTestSchema(t,
		&TypeDef{Kind: KindEnum, Name: "Genre", EnumValues: []*EnumValue{{Name: "FICTION", Value: "FICTION"}}},
		&TypeDef{Kind: KindScalar, Name: "Date"},
		&TypeDef{Kind: KindInputObject, Name: "Filter"},
		&TypeDef{Kind: KindUnion, Name: "Result", PossibleTypes: []string{"Author"}},
		iface("Node", field("id", NonNullOf(Named("ID")))),
		object("Author", field("name", NonNullOf(Named("String")))),
	)
}

func TestRenderOutputField(t *testing.T) {
	s := fieldSchema(t)
	tests := []struct {
		name string
		f    *Field
		want string
	}{
		{"required id", field("id", NonNullOf(Named("ID"))), "id: string"},
		{"nullable string", field("title", Named("String")), "title: string"},
		{"boolean", field("ok", Named("Boolean")), "ok: boolean"},
		{"int list", field("counts", NonNullOf(ListOf(NonNullOf(Named("Int"))))), "counts: number[]"},
		{"float", field("score", Named("Float")), "score: number"},
		{"custom scalar", field("at", Named("Date")), "at: unknown"},
		{"enum", field("genre", Named("Genre")), "genre: Genre"},
		{"enum list", field("genres", ListOf(Named("Genre"))), "genres: Genre[]"},
		{"object", field("author", Named("Author")), "author: IAuthor"},
		{"interface list", field("nodes", ListOf(Named("Node"))), "nodes: INode[]"},
		{"union", field("result", Named("Result")), "result: any"},
		{"union list", field("results", ListOf(Named("Result"))), "results: any"},
		{"nested list", field("grid", ListOf(ListOf(Named("Int")))), "grid: number[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderOutputField(s, tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderSelectorEntry(t *testing.T) {
	s := fieldSchema(t)
	tests := []struct {
		name string
		f    *Field
		want string
	}{
		{
			name: "scalar",
			f:    field("id", NonNullOf(Named("ID"))),
			want: `id: () => new Field("id"),`,
		},
		{
			name: "enum",
			f:    field("genre", Named("Genre")),
			want: `genre: () => new Field("genre"),`,
		},
		{
			name: "scalar with arguments",
			f:    field("bio", Named("String"), arg("format", Named("String")), arg("max", NonNullOf(Named("Int")))),
			want: `bio: (variables: { format: unknown, max: unknown }) => new Field<"bio", []>("bio"),`,
		},
		{
			name: "object without arguments",
			f:    field("author", Named("Author")),
			want: `author: <T extends Array<Field<any, any, any>>>(
  select: (t: typeof Author) => T
) => new Field("author", [], new SelectionSet(select(Author))),`,
		},
		{
			name: "object with arguments",
			f: field("author", Named("Author"),
				arg("id", NonNullOf(Named("ID"))),
				arg("genre", Named("Genre")),
				arg("filter", NonNullOf(Named("Filter"))),
				arg("since", Named("Date")),
			),
			want: `author: <T extends Array<Field<any, any, any>>>(
  variables: { id: Variable<"id"> | string, genre?: Variable<"genre"> | Genre, filter: Variable<"filter"> | unknown, since?: Variable<"since"> | unknown },
  select: (t: typeof Author) => T
) => new Field("author", [new Argument("id", variables.id), new Argument("genre", variables.genre, Genre), new Argument("filter", variables.filter), new Argument("since", variables.since)], new SelectionSet(select(Author))),`,
		},
		{
			name: "list argument",
			f:    field("nodes", ListOf(Named("Node")), arg("ids", NonNullOf(ListOf(NonNullOf(Named("ID")))))),
			want: `nodes: <T extends Array<Field<any, any, any>>>(
  variables: { ids: Variable<"ids"> | string },
  select: (t: typeof Node) => T
) => new Field("nodes", [new Argument("ids", variables.ids)], new SelectionSet(select(Node))),`,
		},
		{
			name: "union",
			f:    field("result", Named("Result")),
			want: `// "result" returns union type "Result" and is not supported`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderSelectorEntry(s, tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderSelectorEntry_Deprecated(t *testing.T) {
	s := fieldSchema(t)

	t.Run("reason precedes the entry", func(t *testing.T) {
		f := field("isbn", Named("String"))
		f.DeprecationReason = "Use identifiers."
		got, err := RenderSelectorEntry(s, f)
		require.NoError(t, err)
		assert.Equal(t, "/**\n * @deprecated Use identifiers.\n */\nisbn: () => new Field(\"isbn\"),", got)
	})

	t.Run("multi-line reason", func(t *testing.T) {
		f := field("author", Named("Author"))
		f.DeprecationReason = "Moved.\nUse writer instead."
		got, err := RenderSelectorEntry(s, f)
		require.NoError(t, err)
		assert.Contains(t, got, "/**\n * @deprecated Moved.\n * Use writer instead.\n */\nauthor: <T")
	})

	t.Run("whitespace kept", func(t *testing.T) {
		f := field("isbn", Named("String"))
		f.DeprecationReason = "use y   "
		got, err := RenderSelectorEntry(s, f)
		require.NoError(t, err)
		assert.Contains(t, got, " * @deprecated use y   \n")
	})

	t.Run("comment terminator is escaped", func(t *testing.T) {
		f := field("isbn", Named("String"))
		f.DeprecationReason = "see */ here"
		got, err := RenderSelectorEntry(s, f)
		require.NoError(t, err)
		assert.Contains(t, got, `@deprecated see *\/ here`)
	})
}

func TestRenderField_Errors(t *testing.T) {
	s := fieldSchema(t)
	tests := []struct {
		name string
		f    *Field
	}{
		{"invalid field name", field("my-field", Named("String"))},
		{"invalid argument name", field("author", Named("Author"), arg("1st", Named("Int")))},
		{"unknown type", field("x", Named("Missing"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderSelectorEntry(s, tt.f)
			require.Error(t, err)
			assert.True(t, IsSchemaError(err))
		})
	}

	_, err := RenderOutputField(s, field("my-field", Named("String")))
	assert.True(t, IsSchemaError(err))
}

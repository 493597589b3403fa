package load

import (
	"sort"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/syssam/gqlselect/compiler/gen"
)

// SDL loads a schema from SDL sources. The sources are validated together
// with the built-in prelude. The type-map order is the declaration order of
// the sources, with extensions merged into their definition, followed by the
// built-in types sorted by name.
func SDL(sources ...*ast.Source) (*gen.Schema, error) {
	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, gen.NewSchemaError("", "", "invalid schema", err)
	}
	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, gen.NewSchemaError("", "", "invalid schema", err)
	}
	var (
		names []string
		seen  = make(map[string]struct{}, len(s.Types))
	)
	add := func(name string) {
		if _, ok := seen[name]; ok || introspection(name) {
			return
		}
		if _, ok := s.Types[name]; !ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, d := range doc.Definitions {
		add(d.Name)
	}
	for _, d := range doc.Extensions {
		add(d.Name)
	}
	var rest []string
	for name := range s.Types {
		if _, ok := seen[name]; !ok && !introspection(name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		add(name)
	}

	types := make([]*gen.TypeDef, 0, len(names))
	for _, name := range names {
		t, err := convertDefinition(s.Types[name])
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	var roots gen.Roots
	if s.Query != nil {
		roots.Query = s.Query.Name
	}
	if s.Mutation != nil {
		roots.Mutation = s.Mutation.Name
	}
	if s.Subscription != nil {
		roots.Subscription = s.Subscription.Name
	}
	return gen.NewSchema(roots, types...)
}

func convertDefinition(d *ast.Definition) (*gen.TypeDef, error) {
	t := &gen.TypeDef{Name: d.Name}
	switch d.Kind {
	case ast.Scalar:
		t.Kind = gen.KindScalar
	case ast.Enum:
		t.Kind = gen.KindEnum
		for _, v := range d.EnumValues {
			t.EnumValues = append(t.EnumValues, &gen.EnumValue{Name: v.Name, Value: v.Name})
		}
	case ast.Object, ast.Interface:
		t.Kind = gen.KindObject
		if d.Kind == ast.Interface {
			t.Kind = gen.KindInterface
		}
		t.Interfaces = d.Interfaces
		for _, f := range d.Fields {
			if introspection(f.Name) {
				continue
			}
			field := &gen.Field{
				Name:              f.Name,
				Type:              typeRef(f.Type),
				DeprecationReason: deprecation(f.Directives),
			}
			for _, a := range f.Arguments {
				field.Arguments = append(field.Arguments, &gen.Argument{Name: a.Name, Type: typeRef(a.Type)})
			}
			t.Fields = append(t.Fields, field)
		}
	case ast.InputObject:
		t.Kind = gen.KindInputObject
		for _, f := range d.Fields {
			t.InputFields = append(t.InputFields, &gen.InputField{Name: f.Name, Type: typeRef(f.Type)})
		}
	case ast.Union:
		t.Kind = gen.KindUnion
		t.PossibleTypes = d.Types
	default:
		return nil, gen.NewSchemaError(d.Name, "", "unsupported definition kind "+string(d.Kind), nil)
	}
	return t, nil
}

func typeRef(t *ast.Type) *gen.TypeRef {
	var ref *gen.TypeRef
	if t.Elem != nil {
		ref = gen.ListOf(typeRef(t.Elem))
	} else {
		ref = gen.Named(t.NamedType)
	}
	if t.NonNull {
		ref = gen.NonNullOf(ref)
	}
	return ref
}

// deprecation returns the reason of the @deprecated directive, if any.
func deprecation(directives ast.DirectiveList) string {
	d := directives.ForName("deprecated")
	if d == nil {
		return ""
	}
	if a := d.Arguments.ForName("reason"); a != nil && a.Value != nil && a.Value.Raw != "" {
		return a.Value.Raw
	}
	return DefaultDeprecationReason
}

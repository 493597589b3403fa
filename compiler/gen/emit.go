package gen

import (
	"fmt"

	"github.com/syssam/gqlselect/compiler/gen/tsgen"
)

// Each emitter is a pure function of its definition and the schema; the
// assembler owns the returned fragments.

func (g *Generator) emitEnum(t *TypeDef) (string, error) {
	d := &tsgen.Enum{Name: t.Name}
	for _, v := range t.EnumValues {
		d.Members = append(d.Members, tsgen.EnumMember{Name: v.Name, Value: v.Value})
	}
	return render(t.Name, d)
}

// emitInputObject renders an input object. Field types are not resolved;
// only the required-versus-optional marker follows the schema.
func (g *Generator) emitInputObject(t *TypeDef) (string, error) {
	d := &tsgen.Interface{Name: t.Name}
	for _, f := range t.InputFields {
		if err := tsgen.Ident(f.Name); err != nil {
			return "", NewSchemaError(t.Name, f.Name, "invalid input field name", err)
		}
		if f.IsNonNull() {
			d.Members = append(d.Members, f.Name+": unknown")
		} else {
			d.Members = append(d.Members, f.Name+"?: unknown")
		}
	}
	return render(t.Name, d)
}

// emitUnion refuses to render a union. It returns the placeholder comment
// and the diagnostic to surface.
func (g *Generator) emitUnion(t *TypeDef) (fragment, warning string) {
	return tsgen.LineComment(fmt.Sprintf(`"%s" is a union type and not supported`, t.Name)),
		fmt.Sprintf(`Skipping union type "%s". Union types are not supported yet.`, t.Name)
}

func (g *Generator) emitInterface(t *TypeDef) (string, error) {
	r := renderer{schema: g.schema, owner: t.Name}
	shape := &tsgen.Interface{
		Name:    interfacePrefix + t.Name,
		Members: []string{"__typename: string"},
	}
	for _, f := range t.Fields {
		sig, err := r.outputField(f)
		if err != nil {
			return "", err
		}
		shape.Members = append(shape.Members, sig)
	}
	return g.withSelector(r, t, shape)
}

// emitObject renders an object. When it implements interfaces, the shape
// extends them, narrows __typename and lists only the fields no implemented
// interface declares. The selector always lists every field.
func (g *Generator) emitObject(t *TypeDef) (string, error) {
	r := renderer{schema: g.schema, owner: t.Name}
	shape := &tsgen.Interface{Name: interfacePrefix + t.Name}
	inherited := make(map[string]struct{})
	if len(t.Interfaces) > 0 {
		for _, name := range t.Interfaces {
			shape.Extends = append(shape.Extends, interfacePrefix+name)
			if i, ok := g.schema.Type(name); ok {
				for _, f := range i.Fields {
					inherited[f.Name] = struct{}{}
				}
			}
		}
		shape.Members = append(shape.Members, "__typename: "+tsgen.Quote(t.Name))
	}
	for _, f := range t.Fields {
		if _, ok := inherited[f.Name]; ok {
			continue
		}
		sig, err := r.outputField(f)
		if err != nil {
			return "", err
		}
		shape.Members = append(shape.Members, sig)
	}
	return g.withSelector(r, t, shape)
}

// withSelector renders shape followed by the selector value of t.
func (g *Generator) withSelector(r renderer, t *TypeDef, shape *tsgen.Interface) (string, error) {
	decl, err := render(t.Name, shape)
	if err != nil {
		return "", err
	}
	sel := &tsgen.Const{Name: t.Name}
	if g.cfg.featureEnabled(FeatureTypename) && !declaresTypename(t) {
		sel.Entries = append(sel.Entries, `__typename: () => new Field("__typename"),`)
	}
	for _, f := range t.Fields {
		entry, err := r.selectorEntry(f)
		if err != nil {
			return "", err
		}
		sel.Entries = append(sel.Entries, entry)
	}
	value, err := render(t.Name, sel)
	if err != nil {
		return "", err
	}
	return decl + "\n\n" + value, nil
}

// declaresTypename reports whether t lists its own __typename field.
func declaresTypename(t *TypeDef) bool {
	for _, f := range t.Fields {
		if f.Name == "__typename" {
			return true
		}
	}
	return false
}

type renderable interface {
	Render() (string, error)
}

// render renders d and reports invalid names as schema errors.
func render(typeName string, d renderable) (string, error) {
	out, err := d.Render()
	if err != nil {
		return "", NewSchemaError(typeName, "", "cannot emit declaration", err)
	}
	return out, nil
}

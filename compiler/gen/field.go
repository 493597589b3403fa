package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/gqlselect/compiler/gen/tsgen"
)

// interfacePrefix prefixes the shape declaration of an object or interface.
const interfacePrefix = "I"

// fieldGeneric is the type parameter list of object-valued selector entries.
const fieldGeneric = "<T extends Array<Field<any, any, any>>>"

// RenderOutputField renders the shape signature of f, e.g. "author: IAuthor".
// Nullability is not reflected in the signature.
func RenderOutputField(s *Schema, f *Field) (string, error) {
	return renderer{schema: s}.outputField(f)
}

// RenderSelectorEntry renders the selector member of f, including the
// deprecation comment when f carries a reason. The entry ends in a comma.
func RenderSelectorEntry(s *Schema, f *Field) (string, error) {
	return renderer{schema: s}.selectorEntry(f)
}

// renderer renders the fields of the owner type.
type renderer struct {
	schema *Schema
	owner  string
}

func (r renderer) errorf(field string, cause error, format string, args ...any) error {
	return NewSchemaError(r.owner, field, fmt.Sprintf(format, args...), cause)
}

// base classifies ref and resolves its named type.
func (r renderer) base(field string, ref *TypeRef) (*TypeDef, bool, error) {
	name, isList, _ := Classify(ref)
	t, ok := r.schema.Type(name)
	if !ok {
		return nil, false, r.errorf(field, nil, "unknown type %q", name)
	}
	return t, isList, nil
}

func (r renderer) outputField(f *Field) (string, error) {
	if err := tsgen.Ident(f.Name); err != nil {
		return "", r.errorf(f.Name, err, "invalid field name")
	}
	t, isList, err := r.base(f.Name, f.Type)
	if err != nil {
		return "", err
	}
	var typ string
	switch t.Kind {
	case KindScalar:
		typ = string(ToPrimitive(t.Name))
	case KindEnum:
		typ = t.Name
	case KindObject, KindInterface:
		typ = interfacePrefix + t.Name
	default:
		return f.Name + ": any", nil
	}
	if isList {
		typ += "[]"
	}
	return f.Name + ": " + typ, nil
}

func (r renderer) selectorEntry(f *Field) (string, error) {
	if err := tsgen.Ident(f.Name); err != nil {
		return "", r.errorf(f.Name, err, "invalid field name")
	}
	t, _, err := r.base(f.Name, f.Type)
	if err != nil {
		return "", err
	}
	for _, a := range f.Arguments {
		if err := tsgen.Ident(a.Name); err != nil {
			return "", r.errorf(f.Name, err, "invalid argument name")
		}
	}
	var w tsgen.Writer
	if f.DeprecationReason != "" {
		w.Lines(tsgen.Deprecated(f.DeprecationReason))
	}
	name := tsgen.Quote(f.Name)
	switch t.Kind {
	case KindScalar, KindEnum:
		if len(f.Arguments) == 0 {
			w.Linef("%s: () => new Field(%s),", f.Name, name)
			break
		}
		params := make([]string, len(f.Arguments))
		for i, a := range f.Arguments {
			params[i] = a.Name + ": unknown"
		}
		w.Linef("%s: (variables: { %s }) => new Field<%s, []>(%s),", f.Name, strings.Join(params, ", "), name, name)
	case KindObject, KindInterface:
		vars, ctors, err := r.arguments(f)
		if err != nil {
			return "", err
		}
		w.Linef("%s: %s(", f.Name, fieldGeneric)
		w.Indent()
		if len(f.Arguments) > 0 {
			w.Linef("variables: { %s },", vars)
		}
		w.Linef("select: (t: typeof %s) => T", t.Name)
		w.Dedent()
		w.Linef(") => new Field(%s, [%s], new SelectionSet(select(%s))),", name, ctors, t.Name)
	default:
		w.Line(tsgen.LineComment(fmt.Sprintf(`"%s" returns %s type "%s" and is not supported`,
			f.Name, strings.ToLower(t.Kind.String()), t.Name)))
	}
	return w.String(), nil
}

// arguments renders the variables parameter type and the argument
// constructors of an object-valued field.
func (r renderer) arguments(f *Field) (vars, ctors string, err error) {
	vs := make([]string, len(f.Arguments))
	cs := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		t, _, err := r.base(f.Name+"."+a.Name, a.Type)
		if err != nil {
			return "", "", err
		}
		prop := a.Name
		if !a.IsNonNull() {
			prop += "?"
		}
		vs[i] = fmt.Sprintf("%s: Variable<%s> | %s", prop, tsgen.Quote(a.Name), inputType(t))
		if t.Kind == KindEnum {
			cs[i] = fmt.Sprintf("new Argument(%s, variables.%s, %s)", tsgen.Quote(a.Name), a.Name, t.Name)
		} else {
			cs[i] = fmt.Sprintf("new Argument(%s, variables.%s)", tsgen.Quote(a.Name), a.Name)
		}
	}
	return strings.Join(vs, ", "), strings.Join(cs, ", "), nil
}

// inputType resolves the value type of an argument. Input objects are not
// resolved and fall back to unknown.
func inputType(t *TypeDef) string {
	switch t.Kind {
	case KindScalar:
		return string(ToPrimitive(t.Name))
	case KindEnum:
		return t.Name
	default:
		return string(PrimitiveUnknown)
	}
}

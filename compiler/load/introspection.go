package load

import (
	"encoding/json"
	"fmt"

	"github.com/syssam/gqlselect/compiler/gen"
)

type (
	// introspectionResult accepts both the full response of an
	// introspection query and its bare data member.
	introspectionResult struct {
		Data *struct {
			Schema *introspectionSchema `json:"__schema"`
		} `json:"data"`
		Schema *introspectionSchema `json:"__schema"`
	}

	introspectionSchema struct {
		QueryType        *typeName         `json:"queryType"`
		MutationType     *typeName         `json:"mutationType"`
		SubscriptionType *typeName         `json:"subscriptionType"`
		Types            []*introspectType `json:"types"`
	}

	typeName struct {
		Name string `json:"name"`
	}

	introspectType struct {
		Kind          string             `json:"kind"`
		Name          string             `json:"name"`
		Fields        []*introspectField `json:"fields"`
		InputFields   []*inputValue      `json:"inputFields"`
		Interfaces    []*typeRefJSON     `json:"interfaces"`
		EnumValues    []*enumValue       `json:"enumValues"`
		PossibleTypes []*typeRefJSON     `json:"possibleTypes"`
	}

	introspectField struct {
		Name              string        `json:"name"`
		Args              []*inputValue `json:"args"`
		Type              *typeRefJSON  `json:"type"`
		IsDeprecated      bool          `json:"isDeprecated"`
		DeprecationReason *string       `json:"deprecationReason"`
	}

	inputValue struct {
		Name string       `json:"name"`
		Type *typeRefJSON `json:"type"`
	}

	enumValue struct {
		Name string `json:"name"`
	}

	typeRefJSON struct {
		Kind   string       `json:"kind"`
		Name   *string      `json:"name"`
		OfType *typeRefJSON `json:"ofType"`
	}
)

// Introspection loads a schema from the JSON result of an introspection
// query. The type-map order is the order of the "types" array.
func Introspection(data []byte) (*gen.Schema, error) {
	var res introspectionResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, gen.NewSchemaError("", "", "invalid introspection JSON", err)
	}
	is := res.Schema
	if res.Data != nil && res.Data.Schema != nil {
		is = res.Data.Schema
	}
	if is == nil {
		return nil, gen.NewSchemaError("", "", `introspection result has no "__schema" member`, nil)
	}
	types := make([]*gen.TypeDef, 0, len(is.Types))
	for _, it := range is.Types {
		if it == nil || introspection(it.Name) {
			continue
		}
		t, err := it.convert()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	var roots gen.Roots
	if is.QueryType != nil {
		roots.Query = is.QueryType.Name
	}
	if is.MutationType != nil {
		roots.Mutation = is.MutationType.Name
	}
	if is.SubscriptionType != nil {
		roots.Subscription = is.SubscriptionType.Name
	}
	return gen.NewSchema(roots, types...)
}

func (it *introspectType) convert() (*gen.TypeDef, error) {
	t := &gen.TypeDef{Name: it.Name}
	switch it.Kind {
	case "SCALAR":
		t.Kind = gen.KindScalar
	case "ENUM":
		t.Kind = gen.KindEnum
		for _, v := range it.EnumValues {
			t.EnumValues = append(t.EnumValues, &gen.EnumValue{Name: v.Name, Value: v.Name})
		}
	case "OBJECT", "INTERFACE":
		t.Kind = gen.KindObject
		if it.Kind == "INTERFACE" {
			t.Kind = gen.KindInterface
		}
		for _, i := range it.Interfaces {
			if i.Name != nil {
				t.Interfaces = append(t.Interfaces, *i.Name)
			}
		}
		for _, f := range it.Fields {
			if introspection(f.Name) {
				continue
			}
			ref, err := f.Type.convert()
			if err != nil {
				return nil, gen.NewSchemaError(it.Name, f.Name, "invalid type reference", err)
			}
			field := &gen.Field{Name: f.Name, Type: ref}
			if f.IsDeprecated {
				field.DeprecationReason = DefaultDeprecationReason
				if f.DeprecationReason != nil && *f.DeprecationReason != "" {
					field.DeprecationReason = *f.DeprecationReason
				}
			}
			for _, a := range f.Args {
				ref, err := a.Type.convert()
				if err != nil {
					return nil, gen.NewSchemaError(it.Name, f.Name+"."+a.Name, "invalid type reference", err)
				}
				field.Arguments = append(field.Arguments, &gen.Argument{Name: a.Name, Type: ref})
			}
			t.Fields = append(t.Fields, field)
		}
	case "INPUT_OBJECT":
		t.Kind = gen.KindInputObject
		for _, f := range it.InputFields {
			ref, err := f.Type.convert()
			if err != nil {
				return nil, gen.NewSchemaError(it.Name, f.Name, "invalid type reference", err)
			}
			t.InputFields = append(t.InputFields, &gen.InputField{Name: f.Name, Type: ref})
		}
	case "UNION":
		t.Kind = gen.KindUnion
		for _, p := range it.PossibleTypes {
			if p.Name != nil {
				t.PossibleTypes = append(t.PossibleTypes, *p.Name)
			}
		}
	default:
		return nil, gen.NewSchemaError(it.Name, "", fmt.Sprintf("unknown type kind %q", it.Kind), nil)
	}
	return t, nil
}

func (r *typeRefJSON) convert() (*gen.TypeRef, error) {
	if r == nil {
		return nil, fmt.Errorf("missing type reference")
	}
	switch r.Kind {
	case "LIST", "NON_NULL":
		of, err := r.OfType.convert()
		if err != nil {
			return nil, err
		}
		if r.Kind == "LIST" {
			return gen.ListOf(of), nil
		}
		return gen.NonNullOf(of), nil
	default:
		if r.Name == nil || *r.Name == "" {
			return nil, fmt.Errorf("named type reference of kind %q has no name", r.Kind)
		}
		return gen.Named(*r.Name), nil
	}
}

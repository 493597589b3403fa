package gen

import "fmt"

// Kind is the tag of a TypeDef variant.
type Kind uint8

// Type definition kinds.
const (
	_ Kind = iota
	KindScalar
	KindEnum
	KindObject
	KindInterface
	KindInputObject
	KindUnion
)

var kindNames = [...]string{
	KindScalar:      "SCALAR",
	KindEnum:        "ENUM",
	KindObject:      "OBJECT",
	KindInterface:   "INTERFACE",
	KindInputObject: "INPUT_OBJECT",
	KindUnion:       "UNION",
}

// String returns the GraphQL introspection name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// RefKind is the tag of a TypeRef node.
type RefKind uint8

// Type reference node kinds.
const (
	_ RefKind = iota
	RefNamed
	RefList
	RefNonNull
)

// The following types describe the schema the generator reads. They are
// constructed once by a loader and never mutated during generation.
type (
	// Schema holds every type definition in type-map order.
	Schema struct {
		// QueryType, MutationType and SubscriptionType name the root types.
		// Empty means the schema has no such root.
		QueryType        string
		MutationType     string
		SubscriptionType string
		// Types holds the definitions in deterministic type-map order.
		Types []*TypeDef
		types map[string]*TypeDef
	}

	// TypeDef is a tagged variant over the schema type kinds. Only the
	// members that belong to Kind are populated.
	TypeDef struct {
		Kind Kind
		Name string
		// Fields of an Object or Interface, in declaration order.
		Fields []*Field
		// InputFields of an InputObject, in declaration order.
		InputFields []*InputField
		// EnumValues of an Enum, in declaration order.
		EnumValues []*EnumValue
		// Interfaces an Object implements.
		Interfaces []string
		// PossibleTypes of a Union.
		PossibleTypes []string
	}

	// TypeRef is a recursive reference to a named type, optionally wrapped
	// in List and NonNull layers.
	TypeRef struct {
		Kind   RefKind
		Name   string   // set for RefNamed
		OfType *TypeRef // set for RefList and RefNonNull
	}

	// Field is an output field of an Object or Interface.
	Field struct {
		Name      string
		Type      *TypeRef
		Arguments []*Argument
		// DeprecationReason is non-empty when the field is deprecated.
		DeprecationReason string
	}

	// Argument is a field argument in input position.
	Argument struct {
		Name string
		Type *TypeRef
	}

	// InputField is a field of an InputObject.
	InputField struct {
		Name string
		Type *TypeRef
	}

	// EnumValue is one enum member and its underlying value.
	EnumValue struct {
		Name  string
		Value string
	}
)

// Named returns a reference to the named type.
func Named(name string) *TypeRef {
	return &TypeRef{Kind: RefNamed, Name: name}
}

// ListOf wraps the reference in a List.
func ListOf(t *TypeRef) *TypeRef {
	return &TypeRef{Kind: RefList, OfType: t}
}

// NonNullOf wraps the reference in a NonNull.
func NonNullOf(t *TypeRef) *TypeRef {
	return &TypeRef{Kind: RefNonNull, OfType: t}
}

// String returns the reference in GraphQL notation, e.g. "[ID!]!".
func (t *TypeRef) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case RefList:
		return "[" + t.OfType.String() + "]"
	case RefNonNull:
		return t.OfType.String() + "!"
	default:
		return t.Name
	}
}

// IsNonNull reports whether the outermost node is NonNull.
func (a *Argument) IsNonNull() bool {
	return a.Type != nil && a.Type.Kind == RefNonNull
}

// IsNonNull reports whether the outermost node is NonNull.
func (f *InputField) IsNonNull() bool {
	return f.Type != nil && f.Type.Kind == RefNonNull
}

// Roots names the operation root types of a schema.
type Roots struct {
	Query        string
	Mutation     string
	Subscription string
}

// NewSchema indexes the given definitions and validates the preconditions
// the generator relies on: unique names, well-formed type references that
// resolve to a declared type, and implemented names that are interfaces.
// An empty Roots.Query defaults to "Query" when such a type exists.
func NewSchema(roots Roots, types ...*TypeDef) (*Schema, error) {
	s := &Schema{
		QueryType:        roots.Query,
		MutationType:     roots.Mutation,
		SubscriptionType: roots.Subscription,
		Types:            types,
		types:            make(map[string]*TypeDef, len(types)),
	}
	for _, t := range types {
		if t == nil || t.Name == "" {
			return nil, NewSchemaError("", "", "type definition without a name", nil)
		}
		if _, ok := s.types[t.Name]; ok {
			return nil, NewSchemaError(t.Name, "", "duplicate type name", nil)
		}
		s.types[t.Name] = t
	}
	if s.QueryType == "" {
		if _, ok := s.types["Query"]; ok {
			s.QueryType = "Query"
		}
	}
	for _, name := range []string{s.QueryType, s.MutationType, s.SubscriptionType} {
		if name == "" {
			continue
		}
		if t, ok := s.types[name]; !ok || t.Kind != KindObject {
			return nil, NewSchemaError(name, "", "root operation type must be a declared object type", nil)
		}
	}
	for _, t := range types {
		if err := s.check(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Type returns the definition with the given name.
func (s *Schema) Type(name string) (*TypeDef, bool) {
	t, ok := s.types[name]
	return t, ok
}

// check validates a single definition against the schema index.
func (s *Schema) check(t *TypeDef) error {
	switch t.Kind {
	case KindScalar:
	case KindEnum:
		for _, v := range t.EnumValues {
			if v == nil || v.Name == "" {
				return NewSchemaError(t.Name, "", "enum value without a name", nil)
			}
		}
	case KindObject, KindInterface:
		seen := make(map[string]struct{}, len(t.Fields))
		for _, f := range t.Fields {
			if f == nil || f.Name == "" {
				return NewSchemaError(t.Name, "", "field without a name", nil)
			}
			if _, ok := seen[f.Name]; ok {
				return NewSchemaError(t.Name, f.Name, "duplicate field name", nil)
			}
			seen[f.Name] = struct{}{}
			if err := s.checkRef(t.Name, f.Name, f.Type); err != nil {
				return err
			}
			for _, a := range f.Arguments {
				if err := s.checkRef(t.Name, f.Name+"."+a.Name, a.Type); err != nil {
					return err
				}
			}
		}
		for _, name := range t.Interfaces {
			if i, ok := s.types[name]; !ok || i.Kind != KindInterface {
				return NewSchemaError(t.Name, "", fmt.Sprintf("implements %q which is not a declared interface", name), nil)
			}
		}
	case KindInputObject:
		for _, f := range t.InputFields {
			if err := s.checkRef(t.Name, f.Name, f.Type); err != nil {
				return err
			}
		}
	case KindUnion:
	default:
		return NewSchemaError(t.Name, "", fmt.Sprintf("unknown type kind %s", t.Kind), nil)
	}
	return nil
}

// checkRef reports cyclic, truncated and dangling references.
func (s *Schema) checkRef(typeName, fieldName string, ref *TypeRef) error {
	seen := make(map[*TypeRef]struct{})
	for r := ref; ; r = r.OfType {
		if r == nil {
			return NewSchemaError(typeName, fieldName, "type reference has no named leaf", nil)
		}
		if _, ok := seen[r]; ok {
			return NewSchemaError(typeName, fieldName, "cyclic type reference", nil)
		}
		seen[r] = struct{}{}
		switch r.Kind {
		case RefNamed:
			if _, ok := s.types[r.Name]; !ok {
				return NewSchemaError(typeName, fieldName, fmt.Sprintf("unknown type %q", r.Name), nil)
			}
			return nil
		case RefList, RefNonNull:
		default:
			return NewSchemaError(typeName, fieldName, fmt.Sprintf("malformed type reference node %d", r.Kind), nil)
		}
	}
}

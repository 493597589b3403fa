package gen

// Primitive is the output category a scalar maps to.
type Primitive string

// Output primitive categories.
const (
	PrimitiveString  Primitive = "string"
	PrimitiveBoolean Primitive = "boolean"
	PrimitiveNumber  Primitive = "number"
	PrimitiveUnknown Primitive = "unknown"
)

// Classify strips the NonNull and List layers of ref. It reports the name of
// the innermost named type, whether the reference is a list (List at the top
// or NonNull directly wrapping a List) and whether the outermost node is
// NonNull. ref must be well formed; see Schema.
func Classify(ref *TypeRef) (base string, isList, isNonNull bool) {
	isNonNull = ref.Kind == RefNonNull
	isList = ref.Kind == RefList || (isNonNull && ref.OfType.Kind == RefList)
	for ref.Kind != RefNamed {
		ref = ref.OfType
	}
	return ref.Name, isList, isNonNull
}

// ToPrimitive maps a scalar name to its primitive category. Custom scalars
// map to PrimitiveUnknown.
func ToPrimitive(scalar string) Primitive {
	switch scalar {
	case "ID", "String":
		return PrimitiveString
	case "Boolean":
		return PrimitiveBoolean
	case "Int", "Float":
		return PrimitiveNumber
	default:
		return PrimitiveUnknown
	}
}

package linear

// Kind is the scalar kind of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Schema describes a record: an ordered list of named fields.
type Schema struct {
	Name   string
	Fields []Field
}

// Field describes one record field: a scalar, a nested record, or a list.
// Exactly one of the scalar Kind (default), Record, or List applies.
type Field struct {
	Name   string
	Kind   Kind
	Record *Schema
	List   *ListField
}

// ListField describes a list-valued field: the element shape plus a length
// policy. Policies are mutually exclusive and checked in priority order:
// Fixed, then Parameter, then Func.
type ListField struct {
	// Elem describes each list element; its Name is ignored.
	Elem Field
	// Fixed is the list length when it is the same for every record.
	Fixed int
	// Parameter names a previously parsed sibling field holding the length.
	Parameter string
	// Func produces the length, invoked once per list.
	Func func() (int, error)
}

// --- Field constructors ---

// String declares a string scalar field.
func String(name string) Field { return Field{Name: name, Kind: KindString} }

// Int declares an integer scalar field.
func Int(name string) Field { return Field{Name: name, Kind: KindInt} }

// Float declares a float scalar field.
func Float(name string) Field { return Field{Name: name, Kind: KindFloat} }

// Bool declares a boolean scalar field.
func Bool(name string) Field { return Field{Name: name, Kind: KindBool} }

// RecordField declares a nested record field.
func RecordField(name string, schema *Schema) Field {
	return Field{Name: name, Record: schema}
}

// FixedList declares a list field with a constant length.
func FixedList(name string, elem Field, length int) Field {
	return Field{Name: name, List: &ListField{Elem: elem, Fixed: length}}
}

// ParamList declares a list field whose length was parsed into a sibling field.
func ParamList(name string, elem Field, parameter string) Field {
	return Field{Name: name, List: &ListField{Elem: elem, Parameter: parameter}}
}

// FuncList declares a list field whose length comes from a callable.
func FuncList(name string, elem Field, fn func() (int, error)) Field {
	return Field{Name: name, List: &ListField{Elem: elem, Func: fn}}
}

package analysis

const (
	IntTypeName     = "int"
	BooleanTypeName = "boolean"
	StringTypeName  = "String"
	VoidTypeName    = "void"
	// UnknownTypeName is given to nodes the checker doesn't know how to type.
	UnknownTypeName = "Unknown"
)

// Type is a semantic type: a name plus whether it's an array of that name.
// There is no implicit widening, two types are compatible only when they are equal.
type Type struct {
	Name  string `json:"name"`
	Array bool   `json:"isArray"`
}

func NewType(name string, array bool) *Type {
	return &Type{Name: name, Array: array}
}

func (t Type) Equal(other Type) bool {
	return t.Name == other.Name && t.Array == other.Array
}

func (t Type) IsInt() bool {
	return t.Name == IntTypeName && !t.Array
}

func (t Type) IsBoolean() bool {
	return t.Name == BooleanTypeName && !t.Array
}

// Element is the type of an element of t.
func (t Type) Element() Type {
	return Type{Name: t.Name}
}

func (t Type) String() string {
	if t.Array {
		return t.Name + "[]"
	}
	return t.Name
}

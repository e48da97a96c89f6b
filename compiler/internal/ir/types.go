package ir

// ElementType is the category of an IR value. It decides which load, store and return opcodes apply.
type ElementType int

const (
	Int32 ElementType = iota
	Boolean
	ArrayRef
	ObjectRef
	// ClassRef is a class used as the target of a static call or of new.
	ClassRef
	This
	String
	Void
)

var elementTypeNames = map[ElementType]string{
	Int32:     "int32",
	Boolean:   "boolean",
	ArrayRef:  "array",
	ObjectRef: "objectref",
	ClassRef:  "class",
	This:      "this",
	String:    "string",
	Void:      "void",
}

func (tp ElementType) String() string {
	name, ok := elementTypeNames[tp]
	if !ok {
		return "unknown"
	}
	return name
}

// Type is an IR type. Name is the class name for ObjectRef, ClassRef and This; array types carry their
// element type and number of dimensions.
type Type struct {
	TP         ElementType
	Name       string
	Dimensions int
	Element    *Type
}

func IntType() Type     { return Type{TP: Int32} }
func BooleanType() Type { return Type{TP: Boolean} }
func StringType() Type  { return Type{TP: String} }
func VoidType() Type    { return Type{TP: Void} }

func ObjectType(className string) Type { return Type{TP: ObjectRef, Name: className} }
func ClassType(className string) Type  { return Type{TP: ClassRef, Name: className} }
func ThisType(className string) Type   { return Type{TP: This, Name: className} }

func ArrayType(element Type, dimensions int) Type {
	return Type{TP: ArrayRef, Dimensions: dimensions, Element: &element}
}

// IsIntegral is true for values kept in int slots: integers and booleans.
func (t Type) IsIntegral() bool {
	return t.TP == Int32 || t.TP == Boolean
}

func (t Type) IsReference() bool {
	switch t.TP {
	case ArrayRef, ObjectRef, ClassRef, This, String:
		return true
	}
	return false
}

func (t Type) String() string {
	switch t.TP {
	case ArrayRef:
		ret := "array"
		if t.Element != nil {
			ret = t.Element.String()
		}
		for i := 0; i < t.Dimensions; i++ {
			ret += "[]"
		}
		return ret
	case ObjectRef, ClassRef, This:
		return t.TP.String() + "(" + t.Name + ")"
	}
	return t.TP.String()
}

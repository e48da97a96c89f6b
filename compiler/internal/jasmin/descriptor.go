package jasmin

import (
	"strings"

	"github.com/xiaobogaga/jmm/compiler/internal/ir"
	"github.com/xiaobogaga/jmm/util"
)

const (
	objectClass = "java/lang/Object"
	stringClass = "java/lang/String"
)

// DescriptorEncoder writes types in the descriptor syntax, qualifying class names through the
// imports of the unit being generated.
type DescriptorEncoder struct {
	imports []string
}

func NewDescriptorEncoder(imports []string) DescriptorEncoder {
	return DescriptorEncoder{imports: imports}
}

// FullyQualify returns the import whose last segment is name, in a/b/C form. Names that match no
// import are returned unchanged.
func (encoder DescriptorEncoder) FullyQualify(name string) string {
	for _, imported := range encoder.imports {
		if util.LastSegment(imported, '.') == name {
			return strings.ReplaceAll(imported, ".", "/")
		}
	}
	return name
}

// Descriptor encodes t, or returns "" when t has no descriptor: an unknown category or an array
// without an element type.
func (encoder DescriptorEncoder) Descriptor(t ir.Type) string {
	switch t.TP {
	case ir.Void:
		return "V"
	case ir.Int32:
		return "I"
	case ir.Boolean:
		return "Z"
	case ir.String:
		return "L" + stringClass + ";"
	case ir.ObjectRef, ir.ClassRef, ir.This:
		return "L" + encoder.FullyQualify(t.Name) + ";"
	case ir.ArrayRef:
		if t.Element == nil {
			return ""
		}
		element := encoder.Descriptor(*t.Element)
		if element == "" {
			return ""
		}
		return strings.Repeat("[", t.Dimensions) + element
	}
	return ""
}

// descriptorOf is Descriptor for generated code, where a type without a descriptor fails the build.
func (encoder DescriptorEncoder) descriptorOf(t ir.Type) (string, error) {
	d := encoder.Descriptor(t)
	if d == "" {
		return "", notImplemented("descriptor of %s", t)
	}
	return d, nil
}

// signature is the method descriptor "(params)ret".
func (encoder DescriptorEncoder) signature(params []ir.Type, ret ir.Type) (string, error) {
	b := &strings.Builder{}
	b.WriteString("(")
	for _, param := range params {
		d, err := encoder.descriptorOf(param)
		if err != nil {
			return "", err
		}
		b.WriteString(d)
	}
	b.WriteString(")")
	d, err := encoder.descriptorOf(ret)
	if err != nil {
		return "", err
	}
	b.WriteString(d)
	return b.String(), nil
}

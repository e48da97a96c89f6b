package ir

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON encoding of a ClassUnit as written by the front end. Instructions and elements carry a
// "kind" tag naming their variant.

type rawType struct {
	Kind       string   `json:"kind"`
	Name       string   `json:"name"`
	Dimensions int      `json:"dimensions"`
	Element    *rawType `json:"element"`
}

type rawElement struct {
	Kind    string        `json:"kind"`
	Name    string        `json:"name"`
	Literal string        `json:"literal"`
	Type    rawType       `json:"type"`
	Index   []*rawElement `json:"index"`
}

type rawInstruction struct {
	Kind       string          `json:"kind"`
	Dest       *rawElement     `json:"dest"`
	Rhs        *rawInstruction `json:"rhs"`
	Operand    *rawElement     `json:"operand"`
	Left       *rawElement     `json:"left"`
	Right      *rawElement     `json:"right"`
	Op         string          `json:"op"`
	Type       *rawType        `json:"type"`
	Caller     *rawElement     `json:"caller"`
	Invocation string          `json:"invocation"`
	MethodName *rawElement     `json:"methodName"`
	Arguments  []*rawElement   `json:"arguments"`
	ReturnType *rawType        `json:"returnType"`
	Object     *rawElement     `json:"object"`
	Field      *rawElement     `json:"field"`
	Value      *rawElement     `json:"value"`
	Label      string          `json:"label"`
	Condition  *rawInstruction `json:"condition"`
}

type rawDescriptor struct {
	VirtualReg int     `json:"virtualReg"`
	Type       rawType `json:"type"`
}

type rawField struct {
	Name         string  `json:"name"`
	Type         rawType `json:"type"`
	Access       string  `json:"access"`
	Static       bool    `json:"static"`
	Final        bool    `json:"final"`
	InitialValue *string `json:"initialValue"`
}

type rawMethod struct {
	Name         string                   `json:"name"`
	Access       string                   `json:"access"`
	Static       bool                     `json:"static"`
	Final        bool                     `json:"final"`
	Construct    bool                     `json:"construct"`
	Params       []*rawElement            `json:"params"`
	ReturnType   rawType                  `json:"returnType"`
	Instructions []*rawInstruction        `json:"instructions"`
	VarTable     map[string]rawDescriptor `json:"varTable"`
}

type rawClassUnit struct {
	Package    string       `json:"package"`
	ClassName  string       `json:"className"`
	SuperClass string       `json:"superClass"`
	Access     string       `json:"access"`
	Static     bool         `json:"static"`
	Final      bool         `json:"final"`
	Fields     []*rawField  `json:"fields"`
	Methods    []*rawMethod `json:"methods"`
	Imports    []string     `json:"imports"`
}

var accessModifiers = map[string]AccessModifier{
	"":          DefaultAccess,
	"default":   DefaultAccess,
	"public":    Public,
	"private":   Private,
	"protected": Protected,
}

// DecodeClassUnit reads one JSON encoded ClassUnit.
func DecodeClassUnit(r io.Reader) (*ClassUnit, error) {
	raw := &rawClassUnit{}
	err := json.NewDecoder(r).Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode class unit: %w", err)
	}
	unit, err := raw.toClassUnit()
	if err != nil {
		return nil, fmt.Errorf("decode class unit %s: %w", raw.ClassName, err)
	}
	return unit, nil
}

func lookUpAccess(name string) (AccessModifier, error) {
	access, ok := accessModifiers[name]
	if !ok {
		return DefaultAccess, fmt.Errorf("unknown access modifier %q", name)
	}
	return access, nil
}

func lookUpName[T comparable](names map[T]string, name, what string) (T, error) {
	for k, v := range names {
		if v == name {
			return k, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", what, name)
}

func (raw *rawClassUnit) toClassUnit() (*ClassUnit, error) {
	access, err := lookUpAccess(raw.Access)
	if err != nil {
		return nil, err
	}
	unit := &ClassUnit{
		Package:    raw.Package,
		ClassName:  raw.ClassName,
		SuperClass: raw.SuperClass,
		Access:     access,
		Static:     raw.Static,
		Final:      raw.Final,
		Imports:    raw.Imports,
	}
	for _, f := range raw.Fields {
		field, err := f.toField()
		if err != nil {
			return nil, err
		}
		unit.Fields = append(unit.Fields, field)
	}
	for _, m := range raw.Methods {
		method, err := m.toMethod()
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, err)
		}
		unit.Methods = append(unit.Methods, method)
	}
	return unit, nil
}

func (raw *rawField) toField() (*Field, error) {
	access, err := lookUpAccess(raw.Access)
	if err != nil {
		return nil, err
	}
	tp, err := raw.Type.toType()
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", raw.Name, err)
	}
	field := &Field{Name: raw.Name, TP: tp, Access: access, Static: raw.Static, Final: raw.Final}
	if raw.InitialValue != nil {
		field.Initialized, field.InitialValue = true, *raw.InitialValue
	}
	return field, nil
}

func (raw *rawMethod) toMethod() (*Method, error) {
	access, err := lookUpAccess(raw.Access)
	if err != nil {
		return nil, err
	}
	returnTP, err := raw.ReturnType.toType()
	if err != nil {
		return nil, err
	}
	method := &Method{
		Name:      raw.Name,
		Access:    access,
		Static:    raw.Static,
		Final:     raw.Final,
		Construct: raw.Construct,
		ReturnTP:  returnTP,
		VarTable:  map[string]Descriptor{},
	}
	for _, p := range raw.Params {
		param, err := p.toOperand()
		if err != nil {
			return nil, err
		}
		method.Params = append(method.Params, param)
	}
	for name, d := range raw.VarTable {
		tp, err := d.Type.toType()
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		method.VarTable[name] = Descriptor{VirtualReg: d.VirtualReg, TP: tp}
	}
	for i, inst := range raw.Instructions {
		instruction, err := inst.toInstruction()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		method.Instructions = append(method.Instructions, instruction)
	}
	return method, nil
}

func (raw *rawType) toType() (Type, error) {
	tp, err := lookUpName(elementTypeNames, raw.Kind, "type")
	if err != nil {
		return Type{}, err
	}
	if tp != ArrayRef {
		return Type{TP: tp, Name: raw.Name}, nil
	}
	if raw.Element == nil {
		return Type{}, fmt.Errorf("array type without element type")
	}
	element, err := raw.Element.toType()
	if err != nil {
		return Type{}, err
	}
	dimensions := raw.Dimensions
	if dimensions == 0 {
		dimensions = 1
	}
	return ArrayType(element, dimensions), nil
}

func (raw *rawElement) toElement() (Element, error) {
	if raw == nil {
		return nil, nil
	}
	tp, err := raw.Type.toType()
	if err != nil {
		return nil, err
	}
	switch raw.Kind {
	case "operand":
		return &Operand{Name: raw.Name, TP: tp}, nil
	case "literal":
		return &LiteralElement{Literal: raw.Literal, TP: tp}, nil
	case "arrayOperand":
		index, err := toElements(raw.Index)
		if err != nil {
			return nil, err
		}
		return &ArrayOperand{Name: raw.Name, Index: index, TP: tp}, nil
	}
	return nil, fmt.Errorf("unknown element kind %q", raw.Kind)
}

func (raw *rawElement) toOperand() (*Operand, error) {
	e, err := raw.toElement()
	if err != nil {
		return nil, err
	}
	operand, ok := e.(*Operand)
	if !ok {
		return nil, fmt.Errorf("expected operand but got %q", raw.Kind)
	}
	return operand, nil
}

func toElements(raws []*rawElement) ([]Element, error) {
	var ret []Element
	for _, raw := range raws {
		e, err := raw.toElement()
		if err != nil {
			return nil, err
		}
		ret = append(ret, e)
	}
	return ret, nil
}

func (raw *rawInstruction) toInstruction() (Instruction, error) {
	if raw == nil {
		return nil, fmt.Errorf("missing instruction")
	}
	switch raw.Kind {
	case "assign":
		dest, err := raw.Dest.toElement()
		if err != nil {
			return nil, err
		}
		rhs, err := raw.Rhs.toInstruction()
		if err != nil {
			return nil, err
		}
		return &AssignInstruction{Dest: dest, Rhs: rhs}, nil
	case "singleOp":
		operand, err := raw.Operand.toElement()
		if err != nil {
			return nil, err
		}
		return &SingleOpInstruction{Operand: operand}, nil
	case "binaryOp":
		return raw.toBinaryOp()
	case "unaryOp":
		operand, err := raw.Operand.toElement()
		if err != nil {
			return nil, err
		}
		op, err := lookUpName(operationTypeNames, raw.Op, "operation")
		if err != nil {
			return nil, err
		}
		tp, err := raw.optionalType()
		if err != nil {
			return nil, err
		}
		return &UnaryOpInstruction{Operand: operand, Op: op, TP: tp}, nil
	case "return":
		operand, err := raw.Operand.toElement()
		if err != nil {
			return nil, err
		}
		return &ReturnInstruction{Operand: operand}, nil
	case "call":
		return raw.toCall()
	case "getField", "putField":
		return raw.toFieldInstruction()
	case "goto":
		return &GotoInstruction{Label: raw.Label}, nil
	case "branch":
		condition, err := raw.Condition.toInstruction()
		if err != nil {
			return nil, err
		}
		return &CondBranchInstruction{Condition: condition, Label: raw.Label}, nil
	}
	return nil, fmt.Errorf("unknown instruction kind %q", raw.Kind)
}

func (raw *rawInstruction) optionalType() (Type, error) {
	if raw.Type == nil {
		return Type{}, nil
	}
	return raw.Type.toType()
}

func (raw *rawInstruction) toBinaryOp() (Instruction, error) {
	left, err := raw.Left.toElement()
	if err != nil {
		return nil, err
	}
	right, err := raw.Right.toElement()
	if err != nil {
		return nil, err
	}
	op, err := lookUpName(operationTypeNames, raw.Op, "operation")
	if err != nil {
		return nil, err
	}
	tp, err := raw.optionalType()
	if err != nil {
		return nil, err
	}
	return &BinaryOpInstruction{Left: left, Right: right, Op: op, TP: tp}, nil
}

func (raw *rawInstruction) toCall() (Instruction, error) {
	if raw.Caller == nil {
		return nil, fmt.Errorf("call without caller")
	}
	caller, err := raw.Caller.toElement()
	if err != nil {
		return nil, err
	}
	invocation, err := lookUpName(callTypeNames, raw.Invocation, "invocation")
	if err != nil {
		return nil, err
	}
	methodName, err := raw.MethodName.toElement()
	if err != nil {
		return nil, err
	}
	args, err := toElements(raw.Arguments)
	if err != nil {
		return nil, err
	}
	returnTP := VoidType()
	if raw.ReturnType != nil {
		returnTP, err = raw.ReturnType.toType()
		if err != nil {
			return nil, err
		}
	}
	return &CallInstruction{
		Caller:     caller,
		Invocation: invocation,
		MethodName: methodName,
		Arguments:  args,
		ReturnTP:   returnTP,
	}, nil
}

func (raw *rawInstruction) toFieldInstruction() (Instruction, error) {
	object, err := raw.Object.toElement()
	if err != nil {
		return nil, err
	}
	if raw.Field == nil {
		return nil, fmt.Errorf("%s without field", raw.Kind)
	}
	field, err := raw.Field.toOperand()
	if err != nil {
		return nil, err
	}
	if raw.Kind == "getField" {
		return &GetFieldInstruction{Object: object, Field: field}, nil
	}
	value, err := raw.Value.toElement()
	if err != nil {
		return nil, err
	}
	return &PutFieldInstruction{Object: object, Field: field, Value: value}, nil
}

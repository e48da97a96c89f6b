package jasmin

import "github.com/xiaobogaga/jmm/compiler/internal/ir"

func intOperand(name string) *ir.Operand {
	return &ir.Operand{Name: name, TP: ir.IntType()}
}

func literal(text string, tp ir.Type) *ir.LiteralElement {
	return &ir.LiteralElement{Literal: text, TP: tp}
}

func methodName(name string) *ir.LiteralElement {
	return literal("\""+name+"\"", ir.StringType())
}

func registers(names ...string) map[string]ir.Descriptor {
	table := map[string]ir.Descriptor{"this": {VirtualReg: 0, TP: ir.ThisType("Simple")}}
	for i, name := range names {
		table[name] = ir.Descriptor{VirtualReg: i + 1, TP: ir.IntType()}
	}
	return table
}

func testMethod(name string, returnTP ir.Type, varTable map[string]ir.Descriptor, instructions ...ir.Instruction) *ir.Method {
	return &ir.Method{
		Name:         name,
		Access:       ir.Public,
		ReturnTP:     returnTP,
		Instructions: instructions,
		VarTable:     varTable,
	}
}

func testUnit(methods ...*ir.Method) *ir.ClassUnit {
	constructor := &ir.Method{Name: "<init>", Access: ir.Public, Construct: true, ReturnTP: ir.VoidType()}
	return &ir.ClassUnit{
		ClassName: "Simple",
		Access:    ir.Public,
		Methods:   append([]*ir.Method{constructor}, methods...),
	}
}

func build(unit *ir.ClassUnit) (string, error) {
	return NewGenerator(unit, DefaultOptions()).Build()
}

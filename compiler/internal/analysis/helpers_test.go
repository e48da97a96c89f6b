package analysis

func named(name string) map[string]string {
	return map[string]string{"name": name}
}

func varRef(name string) *Node {
	return NewNode(VarRefExpr, named(name))
}

func intLit() *Node {
	return NewNode(IntegerLiteral, map[string]string{"value": "1"})
}

func trueLit() *Node {
	return NewNode(TrueLiteral, nil)
}

func binary(op string, left, right *Node) *Node {
	return NewNode(BinaryExpr, map[string]string{"op": op}, left, right)
}

func call(name string, receiver *Node, args ...*Node) *Node {
	return NewNode(MethodCallExpr, named(name), append([]*Node{receiver}, args...)...)
}

func exprStmt(expr *Node) *Node {
	return NewNode(ExprStmt, nil, expr)
}

func assign(target, value *Node) *Node {
	return NewNode(AssignStmt, nil, target, value)
}

func returnStmt(expr *Node) *Node {
	return NewNode(ReturnStmt, nil, expr)
}

func method(name string, body ...*Node) *Node {
	return NewNode(MethodDecl, named(name), body...)
}

func program(className string, methods ...*Node) *Node {
	return NewNode(Program, nil, NewNode(ClassDecl, named(className), methods...))
}

func intType() Type {
	return Type{Name: IntTypeName}
}

func boolType() Type {
	return Type{Name: BooleanTypeName}
}

// testTable is class Test with a method foo(int p) returning int, with locals a int, b boolean,
// flags boolean[] and x int, and fields x boolean and count int.
func testTable(super string, imports ...string) *ClassTable {
	table := NewClassTable("Test", super, imports...)
	table.AddField("x", boolType()).AddField("count", intType())
	table.AddMethod(&MethodSymbols{
		Name:       "foo",
		ReturnType: intType(),
		Parameters: []Symbol{{Name: "p", Type: intType()}},
		Locals: []Symbol{
			{Name: "a", Type: intType()},
			{Name: "b", Type: boolType()},
			{Name: "flags", Type: Type{Name: BooleanTypeName, Array: true}},
			{Name: "x", Type: intType()},
			{Name: "p", Type: boolType()},
		},
	})
	return table
}

func messages(root *Node, table SymbolTable, passes ...Pass) []string {
	var ret []string
	for _, r := range Analyze(root, table, passes...) {
		ret = append(ret, r.Message)
	}
	return ret
}

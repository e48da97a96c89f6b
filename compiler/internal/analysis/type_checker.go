package analysis

import "github.com/xiaobogaga/jmm/compiler/internal/report"

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true}

var logicalOps = map[string]bool{"&&": true, "||": true}

// typeChecker computes node types and collects the reports found while doing so.
// Types are memoized per node, so a node is checked, and reported on, at most once however
// many times its type is asked for.
type typeChecker struct {
	scope
	policy  Policy
	types   map[*Node]*Type
	reports []report.Report
}

func newTypeChecker(table SymbolTable, policy Policy) *typeChecker {
	return &typeChecker{
		scope:  scope{table: table},
		policy: policy,
		types:  map[*Node]*Type{},
	}
}

func (checker *typeChecker) addReport(node *Node, format string, args ...interface{}) {
	checker.reports = append(checker.reports, report.NewError(report.SemanticStage, node.Line, node.Column, format, args...))
}

// typeOf returns the type of node, nil if it can't be resolved.
func (checker *typeChecker) typeOf(node *Node) *Type {
	if node == nil {
		return nil
	}
	if t, ok := checker.types[node]; ok {
		return t
	}
	t := checker.computeType(node)
	checker.types[node] = t
	return t
}

func (checker *typeChecker) computeType(node *Node) *Type {
	switch node.Kind {
	case TrueLiteral, FalseLiteral, NotExpr:
		return NewType(BooleanTypeName, false)
	case IntegerLiteral, ArrayLengthExpr:
		return NewType(IntTypeName, false)
	case VarRefExpr, LengthLiteral, MainLiteral:
		return checker.varType(node.Get("name"), node.MethodName())
	case ThisLiteral:
		return NewType(checker.table.ClassName(), false)
	case NewClassObjExpr:
		return NewType(node.Get("name"), false)
	case NewArrayExpr:
		return NewType(node.Get("name"), true)
	case ArrayInitExpr:
		if len(node.Children) == 0 {
			return NewType(UnknownTypeName, true)
		}
		first := checker.typeOf(node.Child(0))
		if first == nil {
			return nil
		}
		return NewType(first.Name, true)
	case ArrayAccessExpr:
		array := checker.typeOf(node.Child(0))
		if array == nil {
			return nil
		}
		element := array.Element()
		return &element
	case MethodCallExpr:
		return checker.returnType(node)
	case ReturnStmt, ParenExpr:
		return checker.typeOf(node.Child(0))
	case BinaryExpr:
		checker.checkOperation(node)
		if arithmeticOps[node.Get("op")] {
			return NewType(IntTypeName, false)
		}
		return NewType(BooleanTypeName, false)
	case MethodDecl:
		return checker.table.ReturnType(node.Get("name"))
	}
	return NewType(UnknownTypeName, false)
}

// checkOperation checks the operands of a binary expression. Every broken rule gets its own report.
func (checker *typeChecker) checkOperation(node *Node) {
	left, right := checker.typeOf(node.Child(0)), checker.typeOf(node.Child(1))
	if left == nil || right == nil {
		return
	}
	op := node.Get("op")
	if !left.Equal(*right) {
		checker.addReport(node, "Incompatible types in operation %s", op)
	}
	switch {
	case logicalOps[op]:
		if !left.IsBoolean() || !right.IsBoolean() {
			checker.addReport(node, "Incompatible types in logical operation %s", op)
		}
	case arithmeticOps[op]:
		if !left.IsInt() || !right.IsInt() {
			checker.addReport(node, "Incompatible types in arithmetic operation %s", op)
		}
	}
}

// returnType resolves the type of a method call. The first child of the call is the receiver.
// Methods the class declares are looked up in the table; calls on imported classes and, when there
// is a super class, on the super class or this class are accepted as returning the receiver's type.
func (checker *typeChecker) returnType(node *Node) *Type {
	name := node.Get("name")
	receiver := checker.typeOf(node.Child(0))
	if t := checker.table.ReturnType(name); t != nil {
		return t
	}
	if receiver == nil {
		return nil
	}
	if checker.policy.TrustImports && checker.hasImport(receiver.Name) {
		return NewType(receiver.Name, false)
	}
	if checker.policy.TrustSuperclass && checker.table.Super() != "" &&
		(checker.isSuper(receiver.Name) || receiver.Name == checker.table.ClassName()) {
		return NewType(receiver.Name, false)
	}
	checker.addReport(node, "Method %s is not declared", name)
	return nil
}

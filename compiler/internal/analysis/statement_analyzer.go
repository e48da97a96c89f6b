package analysis

import "github.com/xiaobogaga/jmm/compiler/internal/report"

// StatementAnalyzer walks the tree in pre-order, checking conditions, returns and assignments and
// typing every expression it meets. It never stops at an error.
type StatementAnalyzer struct {
	Policy Policy
}

func NewStatementAnalyzer(policy Policy) *StatementAnalyzer {
	return &StatementAnalyzer{Policy: policy}
}

func (analyzer *StatementAnalyzer) Analyze(root *Node, table SymbolTable) []report.Report {
	checker := newTypeChecker(table, analyzer.Policy)
	checker.visit(root)
	return checker.reports
}

func (checker *typeChecker) visit(node *Node) {
	if node == nil {
		return
	}
	switch node.Kind {
	case AssignStmt:
		checker.visitAssignStmt(node)
	case IfStmt:
		checker.visitCondition(node, "if")
	case WhileStmt:
		checker.visitCondition(node, "while")
	case ReturnStmt:
		checker.visitReturnStmt(node)
	default:
		if node.Kind.IsExpression() {
			checker.typeOf(node)
		}
	}
	for _, child := range node.Children {
		checker.visit(child)
	}
}

// The first child of if and while is the condition; the body is checked by the normal traversal.
func (checker *typeChecker) visitCondition(node *Node, statement string) {
	condition := node.Child(0)
	t := checker.typeOf(condition)
	if t == nil || t.IsBoolean() {
		return
	}
	checker.addReport(condition, "Condition of %s statement must be of type boolean", statement)
}

func (checker *typeChecker) visitReturnStmt(node *Node) {
	expr := node.Child(0)
	if expr == nil {
		return
	}
	returnType := checker.typeOf(node)
	declared := checker.typeOf(node.Ancestor(MethodDecl))
	if returnType == nil || declared == nil {
		return
	}
	if checker.policy.TrustImports && checker.hasImport(returnType.Name) {
		return
	}
	if !returnType.Equal(*declared) {
		checker.addReport(expr, "Return type does not match method return type")
	}
}

// An assignment either has the target and the value as children, or names the target in its
// "name" attribute and has the value as its only child.
func (checker *typeChecker) visitAssignStmt(node *Node) {
	var left, right *Type
	if len(node.Children) == 1 {
		left = checker.varType(node.Get("name"), node.MethodName())
		right = checker.typeOf(node.Child(0))
	} else {
		left, right = checker.typeOf(node.Child(0)), checker.typeOf(node.Child(1))
	}
	if left == nil || right == nil {
		return
	}
	if checker.policy.TrustImports && (checker.hasImport(left.Name) || checker.hasImport(right.Name)) {
		return
	}
	if checker.policy.TrustSuperclass && (checker.isSuper(left.Name) || checker.isSuper(right.Name)) {
		return
	}
	if !left.Equal(*right) {
		checker.addReport(node, "Incompatible types in assignment")
	}
}

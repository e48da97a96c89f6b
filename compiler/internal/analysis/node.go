package analysis

// Kind tags a syntax node. The names follow the front end's grammar rules.
type Kind string

const (
	Program         Kind = "Program"
	ImportDecl      Kind = "ImportDecl"
	ClassDecl       Kind = "ClassDecl"
	VarDecl         Kind = "VarDecl"
	MethodDecl      Kind = "MethodDecl"
	Param           Kind = "Param"
	CurlyStmt       Kind = "CurlyStmt"
	ExprStmt        Kind = "ExprStmt"
	AssignStmt      Kind = "AssignStmt"
	IfStmt          Kind = "IfStmt"
	WhileStmt       Kind = "WhileStmt"
	ReturnStmt      Kind = "ReturnStmt"
	TrueLiteral     Kind = "TrueLiteral"
	FalseLiteral    Kind = "FalseLiteral"
	NotExpr         Kind = "NotExpr"
	IntegerLiteral  Kind = "IntegerLiteral"
	ArrayLengthExpr Kind = "ArrayLengthExpr"
	VarRefExpr      Kind = "VarRefExpr"
	LengthLiteral   Kind = "LengthLiteral"
	MainLiteral     Kind = "MainLiteral"
	ThisLiteral     Kind = "ThisLiteral"
	NewClassObjExpr Kind = "NewClassObjExpr"
	NewArrayExpr    Kind = "NewArrayExpr"
	ArrayInitExpr   Kind = "ArrayInitExpr"
	ArrayAccessExpr Kind = "ArrayAccessExpr"
	MethodCallExpr  Kind = "MethodCallExpr"
	BinaryExpr      Kind = "BinaryExpr"
	ParenExpr       Kind = "ParenExpr"
)

var expressionKinds = map[Kind]bool{
	TrueLiteral:     true,
	FalseLiteral:    true,
	NotExpr:         true,
	IntegerLiteral:  true,
	ArrayLengthExpr: true,
	VarRefExpr:      true,
	LengthLiteral:   true,
	MainLiteral:     true,
	ThisLiteral:     true,
	NewClassObjExpr: true,
	NewArrayExpr:    true,
	ArrayInitExpr:   true,
	ArrayAccessExpr: true,
	MethodCallExpr:  true,
	BinaryExpr:      true,
	ParenExpr:       true,
}

func (k Kind) IsExpression() bool {
	return expressionKinds[k]
}

// Node is a syntax tree node handed over by the front end. It's never modified by the analysis.
// Attributes carry things like "name" for identifiers and declarations, and "op" for binary expressions.
type Node struct {
	Kind       Kind              `json:"kind"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Line       int               `json:"line"`
	Column     int               `json:"column"`
	Children   []*Node           `json:"children,omitempty"`

	parent *Node
}

// NewNode builds a node and links the children to it.
func NewNode(kind Kind, attributes map[string]string, children ...*Node) *Node {
	node := &Node{Kind: kind, Attributes: attributes, Children: children}
	node.link()
	return node
}

// At sets the source position of the node, returning the node so calls can be chained.
func (node *Node) At(line, column int) *Node {
	node.Line, node.Column = line, column
	return node
}

func (node *Node) link() {
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		child.parent = node
		child.link()
	}
}

func (node *Node) Get(attribute string) string {
	return node.Attributes[attribute]
}

func (node *Node) Parent() *Node {
	return node.parent
}

// Child returns the i-th child, or nil when there is no such child.
func (node *Node) Child(i int) *Node {
	if i < 0 || i >= len(node.Children) {
		return nil
	}
	return node.Children[i]
}

// Ancestor returns the closest enclosing node of the given kind.
func (node *Node) Ancestor(kind Kind) *Node {
	for p := node.parent; p != nil; p = p.parent {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

// MethodName is the name of the method enclosing node, or "" outside of any method.
func (node *Node) MethodName() string {
	if node.Kind == MethodDecl {
		return node.Get("name")
	}
	method := node.Ancestor(MethodDecl)
	if method == nil {
		return ""
	}
	return method.Get("name")
}

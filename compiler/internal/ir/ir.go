package ir

// The IR handed to the back end: one ClassUnit per class, lowered close to bytecode. Everything here is
// produced upstream; the back end only reads it.

type AccessModifier int

const (
	DefaultAccess AccessModifier = iota
	Public
	Private
	Protected
)

func (m AccessModifier) String() string {
	switch m {
	case Public:
		return "public"
	case Private:
		return "private"
	case Protected:
		return "protected"
	}
	return "default"
}

type ClassUnit struct {
	Package    string
	ClassName  string
	SuperClass string // "" when the class doesn't extend anything.
	Access     AccessModifier
	Static     bool
	Final      bool
	Fields     []*Field
	Methods    []*Method
	Imports    []string
}

type Field struct {
	Name         string
	TP           Type
	Access       AccessModifier
	Static       bool
	Final        bool
	Initialized  bool
	InitialValue string
}

type Method struct {
	Name   string
	Access AccessModifier
	Static bool
	Final  bool
	// Construct marks the constructor the front end synthesizes; the back end writes its own.
	Construct    bool
	Params       []*Operand
	ReturnTP     Type
	Instructions []Instruction
	// VarTable maps every variable the method uses to its virtual register. It's filled by the
	// front end before code generation.
	VarTable map[string]Descriptor
}

type Descriptor struct {
	VirtualReg int
	TP         Type
}

// Element is a value operand: a variable or a literal.
type Element interface {
	Type() Type
	element()
}

// Operand is a named variable, "this", or a class name used as a call target.
type Operand struct {
	Name string
	TP   Type
}

// ArrayOperand is an indexed array variable, like a[i].
type ArrayOperand struct {
	Name  string
	Index []Element
	TP    Type
}

type LiteralElement struct {
	Literal string
	TP      Type
}

func (o *Operand) Type() Type        { return o.TP }
func (o *ArrayOperand) Type() Type   { return o.TP }
func (l *LiteralElement) Type() Type { return l.TP }

func (*Operand) element()        {}
func (*ArrayOperand) element()   {}
func (*LiteralElement) element() {}

type InstructionType int

const (
	AssignInstType InstructionType = iota
	CallInstType
	GotoInstType
	BranchInstType
	ReturnInstType
	PutFieldInstType
	GetFieldInstType
	UnaryOperInstType
	BinaryOperInstType
	NoOperInstType
)

func (tp InstructionType) String() string {
	switch tp {
	case AssignInstType:
		return "ASSIGN"
	case CallInstType:
		return "CALL"
	case GotoInstType:
		return "GOTO"
	case BranchInstType:
		return "BRANCH"
	case ReturnInstType:
		return "RETURN"
	case PutFieldInstType:
		return "PUTFIELD"
	case GetFieldInstType:
		return "GETFIELD"
	case UnaryOperInstType:
		return "UNARYOPER"
	case BinaryOperInstType:
		return "BINARYOPER"
	case NoOperInstType:
		return "NOPER"
	}
	return "UNKNOWN"
}

type Instruction interface {
	InstType() InstructionType
	instruction()
}

type AssignInstruction struct {
	Dest Element
	Rhs  Instruction
}

// SingleOpInstruction wraps a single element so it can stand where an instruction is expected.
type SingleOpInstruction struct {
	Operand Element
}

type OperationType int

const (
	Add OperationType = iota
	Sub
	Mul
	Div
	And
	Or
	Lth
	Gth
	Eq
	Neq
	Lte
	Gte
	Not
	AndB
	OrB
	NotB
)

var operationTypeNames = map[OperationType]string{
	Add: "ADD", Sub: "SUB", Mul: "MUL", Div: "DIV", And: "AND", Or: "OR", Lth: "LTH", Gth: "GTH",
	Eq: "EQ", Neq: "NEQ", Lte: "LTE", Gte: "GTE", Not: "NOT", AndB: "ANDB", OrB: "ORB", NotB: "NOTB",
}

func (op OperationType) String() string {
	name, ok := operationTypeNames[op]
	if !ok {
		return "UNKNOWN"
	}
	return name
}

type BinaryOpInstruction struct {
	Left  Element
	Right Element
	Op    OperationType
	TP    Type
}

type UnaryOpInstruction struct {
	Operand Element
	Op      OperationType
	TP      Type
}

// ReturnInstruction returns Operand, or nothing when Operand is nil.
type ReturnInstruction struct {
	Operand Element
}

// ReturnType is the type of the returned value, void when there is none.
func (r *ReturnInstruction) ReturnType() Type {
	if r.Operand == nil {
		return VoidType()
	}
	return r.Operand.Type()
}

type CallType int

const (
	New CallType = iota
	InvokeVirtual
	InvokeStatic
	InvokeSpecial
	InvokeInterface
	ArrayLength
	Ldc
)

var callTypeNames = map[CallType]string{
	New:             "new",
	InvokeVirtual:   "invokevirtual",
	InvokeStatic:    "invokestatic",
	InvokeSpecial:   "invokespecial",
	InvokeInterface: "invokeinterface",
	ArrayLength:     "arraylength",
	Ldc:             "ldc",
}

func (tp CallType) String() string {
	name, ok := callTypeNames[tp]
	if !ok {
		return "unknown"
	}
	return name
}

// CallInstruction calls MethodName on Caller. For static calls and new, Caller names a class.
// MethodName is a quoted literal and is nil for new.
type CallInstruction struct {
	Caller     Element
	Invocation CallType
	MethodName Element
	Arguments  []Element
	ReturnTP   Type
}

type GetFieldInstruction struct {
	Object Element
	Field  *Operand
}

type PutFieldInstruction struct {
	Object Element
	Field  *Operand
	Value  Element
}

type GotoInstruction struct {
	Label string
}

type CondBranchInstruction struct {
	Condition Instruction
	Label     string
}

func (*AssignInstruction) InstType() InstructionType     { return AssignInstType }
func (*SingleOpInstruction) InstType() InstructionType   { return NoOperInstType }
func (*BinaryOpInstruction) InstType() InstructionType   { return BinaryOperInstType }
func (*UnaryOpInstruction) InstType() InstructionType    { return UnaryOperInstType }
func (*ReturnInstruction) InstType() InstructionType     { return ReturnInstType }
func (*CallInstruction) InstType() InstructionType       { return CallInstType }
func (*GetFieldInstruction) InstType() InstructionType   { return GetFieldInstType }
func (*PutFieldInstruction) InstType() InstructionType   { return PutFieldInstType }
func (*GotoInstruction) InstType() InstructionType       { return GotoInstType }
func (*CondBranchInstruction) InstType() InstructionType { return BranchInstType }

func (*AssignInstruction) instruction()     {}
func (*SingleOpInstruction) instruction()   {}
func (*BinaryOpInstruction) instruction()   {}
func (*UnaryOpInstruction) instruction()    {}
func (*ReturnInstruction) instruction()     {}
func (*CallInstruction) instruction()       {}
func (*GetFieldInstruction) instruction()   {}
func (*PutFieldInstruction) instruction()   {}
func (*GotoInstruction) instruction()       {}
func (*CondBranchInstruction) instruction() {}

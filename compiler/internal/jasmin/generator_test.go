package jasmin

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaobogaga/jmm/compiler/internal/ir"
)

const simpleClass = `.class public Simple
.super java/lang/Object

.field private count I

;default constructor
.method public <init>()V
   aload_0
   invokespecial java/lang/Object/<init>()V
   return
.end method

.method public add(I)I
   .limit stack 99
   .limit locals 99
   iload 1
   ireturn
.end method
`

func TestBuildClass(t *testing.T) {
	add := testMethod("add", ir.IntType(), registers("a"), &ir.ReturnInstruction{Operand: intOperand("a")})
	add.Params = []*ir.Operand{intOperand("a")}
	unit := testUnit(add)
	unit.Fields = []*ir.Field{{Name: "count", TP: ir.IntType(), Access: ir.Private}}
	code, err := build(unit)
	require.Nil(t, err)
	assert.Equal(t, simpleClass, code)
}

func TestBuildIsIdempotent(t *testing.T) {
	unit := testUnit(testMethod("run", ir.VoidType(), registers(), &ir.ReturnInstruction{}))
	generator := NewGenerator(unit, DefaultOptions())
	first, err := generator.Build()
	require.Nil(t, err)
	// Changes to the unit after the first build don't show up: the result is cached.
	unit.ClassName = "Other"
	second, err := generator.Build()
	require.Nil(t, err)
	assert.Equal(t, first, second)
	assert.Empty(t, generator.Reports())
}

func TestClassHeader(t *testing.T) {
	testData := []struct {
		unit *ir.ClassUnit
		want string
	}{
		{
			&ir.ClassUnit{ClassName: "A", SuperClass: "Object"},
			".class A\n.super java/lang/Object\n",
		},
		{
			&ir.ClassUnit{ClassName: "A", Package: "pkg.sub", Access: ir.Public, Final: true, SuperClass: "Base",
				Imports: []string{"other.Base"}},
			".class public final pkg/sub/A\n.super other/Base\n",
		},
		{
			&ir.ClassUnit{ClassName: "A", Static: true, SuperClass: "Base"},
			".class static A\n.super Base\n",
		},
	}
	for _, test := range testData {
		code, err := build(test.unit)
		require.Nil(t, err)
		assert.True(t, strings.HasPrefix(code, test.want), code)
	}
}

func TestDefaultConstructorCallsSuper(t *testing.T) {
	unit := &ir.ClassUnit{ClassName: "A", SuperClass: "Base", Imports: []string{"lib.Base"}}
	code, err := build(unit)
	require.Nil(t, err)
	assert.Contains(t, code, "   aload_0\n   invokespecial lib/Base/<init>()V\n   return\n.end method\n")
}

func TestFieldDeclarations(t *testing.T) {
	unit := testUnit()
	unit.Imports = []string{"geo.Point"}
	unit.Fields = []*ir.Field{
		{Name: "LIMIT", TP: ir.IntType(), Access: ir.Public, Static: true, Final: true, Initialized: true, InitialValue: "10"},
		{Name: "origin", TP: ir.ObjectType("Point")},
		{Name: "grid", TP: ir.ArrayType(ir.BooleanType(), 2), Access: ir.Protected},
	}
	code, err := build(unit)
	require.Nil(t, err)
	assert.Contains(t, code, ".field public static final LIMIT I = 10\n"+
		".field origin Lgeo/Point;\n"+
		".field protected grid [[Z\n")
}

func TestBytecodeDirective(t *testing.T) {
	testData := []struct {
		version string
		want    string
	}{
		{"49.0", ".bytecode 49.0\n.class "},
		{"52", ".bytecode 52.0\n.class "},
		{"", ".class "},
	}
	for _, test := range testData {
		options := DefaultOptions()
		options.BytecodeVersion = test.version
		code, err := NewGenerator(testUnit(), options).Build()
		require.Nil(t, err)
		assert.True(t, strings.HasPrefix(code, test.want), code)
	}

	options := DefaultOptions()
	options.BytecodeVersion = "java8"
	code, err := NewGenerator(testUnit(), options).Build()
	assert.NotNil(t, err)
	assert.Equal(t, "", code)
}

func TestOptionsLimitsAndIndent(t *testing.T) {
	options := Options{StackLimit: 4, LocalsLimit: 3, Indent: "\t"}
	code, err := NewGenerator(testUnit(testMethod("run", ir.VoidType(), registers(), &ir.ReturnInstruction{})), options).Build()
	require.Nil(t, err)
	assert.Contains(t, code, ".method public run()V\n\t.limit stack 4\n\t.limit locals 3\n\treturn\n.end method\n")
	assert.Contains(t, code, "\taload_0\n")
}

func TestMethodModifiers(t *testing.T) {
	main := testMethod("main", ir.VoidType(), registers(), &ir.ReturnInstruction{})
	main.Static = true
	main.Params = []*ir.Operand{{Name: "args", TP: ir.ArrayType(ir.StringType(), 1)}}
	private := testMethod("check", ir.BooleanType(), registers(), &ir.ReturnInstruction{Operand: literal("1", ir.BooleanType())})
	private.Access = ir.Private
	private.Final = true
	code, err := build(testUnit(main, private))
	require.Nil(t, err)
	assert.Contains(t, code, ".method public static main([Ljava/lang/String;)V\n")
	assert.Contains(t, code, ".method private final check()Z\n")
	assert.Contains(t, code, "   ldc 1\n   ireturn\n")
}

func TestUnsupportedInstructionAbortsBuild(t *testing.T) {
	testData := []ir.Instruction{
		&ir.AssignInstruction{
			Dest: intOperand("x"),
			Rhs:  &ir.BinaryOpInstruction{Left: intOperand("a"), Right: intOperand("b"), Op: ir.Lth, TP: ir.BooleanType()},
		},
		&ir.GotoInstruction{Label: "loop"},
		&ir.CondBranchInstruction{Condition: &ir.SingleOpInstruction{Operand: intOperand("a")}, Label: "end"},
		&ir.UnaryOpInstruction{Operand: intOperand("a"), Op: ir.NotB, TP: ir.BooleanType()},
		&ir.SingleOpInstruction{Operand: &ir.ArrayOperand{Name: "a", Index: []ir.Element{literal("0", ir.IntType())}, TP: ir.IntType()}},
		&ir.AssignInstruction{
			Dest: &ir.ArrayOperand{Name: "a", Index: []ir.Element{literal("0", ir.IntType())}, TP: ir.IntType()},
			Rhs:  &ir.SingleOpInstruction{Operand: literal("1", ir.IntType())},
		},
		&ir.CallInstruction{Caller: intOperand("a"), Invocation: ir.ArrayLength, ReturnTP: ir.IntType()},
		&ir.CallInstruction{Invocation: ir.InvokeStatic, MethodName: methodName("read"), ReturnTP: ir.IntType()},
		&ir.CallInstruction{Invocation: ir.New, ReturnTP: ir.ObjectType("Foo")},
		&ir.CallInstruction{Invocation: ir.InvokeVirtual, MethodName: methodName("run"), ReturnTP: ir.VoidType()},
		&ir.GetFieldInstruction{Object: &ir.Operand{Name: "this", TP: ir.ThisType("Simple")},
			Field: &ir.Operand{Name: "grid", TP: ir.Type{TP: ir.ArrayRef, Dimensions: 1}}},
		&ir.CallInstruction{
			Caller:     &ir.Operand{Name: "io", TP: ir.ClassType("io")},
			Invocation: ir.InvokeStatic,
			MethodName: methodName("read"),
			ReturnTP:   ir.Type{TP: ir.ArrayRef, Dimensions: 2},
		},
	}
	for _, inst := range testData {
		unit := testUnit(testMethod("run", ir.VoidType(), registers("a", "b", "x"), inst, &ir.ReturnInstruction{}))
		code, err := build(unit)
		assert.Equal(t, "", code)
		var notImplemented *NotImplementedError
		assert.True(t, errors.As(err, &notImplemented), inst.InstType().String())
	}
}

func TestFailedBuildIsCached(t *testing.T) {
	unit := testUnit(testMethod("run", ir.VoidType(), registers(), &ir.GotoInstruction{Label: "end"}))
	generator := NewGenerator(unit, DefaultOptions())
	_, first := generator.Build()
	code, second := generator.Build()
	assert.Equal(t, "", code)
	assert.Same(t, first, second)
	assert.Contains(t, first.Error(), "class Simple: method run: not implemented: instruction GOTO")
}

func TestMissingRegister(t *testing.T) {
	unit := testUnit(testMethod("run", ir.IntType(), registers(), &ir.ReturnInstruction{Operand: intOperand("y")}))
	code, err := build(unit)
	assert.Equal(t, "", code)
	var missing *MissingRegisterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "y", missing.Variable)
	assert.Equal(t, "run", missing.Method)
}

func TestThisWithoutRegisterIsSlotZero(t *testing.T) {
	ret := &ir.ReturnInstruction{Operand: &ir.Operand{Name: "this", TP: ir.ThisType("Simple")}}
	unit := testUnit(testMethod("self", ir.ObjectType("Simple"), map[string]ir.Descriptor{}, ret))
	code, err := build(unit)
	require.Nil(t, err)
	assert.Contains(t, code, "   aload 0\n   areturn\n")
}

func TestTypeWithoutDescriptorAbortsBuild(t *testing.T) {
	elementless := ir.Type{TP: ir.ArrayRef, Dimensions: 1}
	nested := ir.ArrayType(elementless, 1)

	withField := testUnit()
	withField.Fields = []*ir.Field{{Name: "grid", TP: elementless}}
	withParam := testMethod("run", ir.VoidType(), registers(), &ir.ReturnInstruction{})
	withParam.Params = []*ir.Operand{{Name: "grid", TP: nested}}
	withReturn := testMethod("grid", elementless, registers(), &ir.ReturnInstruction{})

	for _, unit := range []*ir.ClassUnit{withField, testUnit(withParam), testUnit(withReturn)} {
		code, err := build(unit)
		assert.Equal(t, "", code)
		var notImplemented *NotImplementedError
		assert.True(t, errors.As(err, &notImplemented), err)
	}
}

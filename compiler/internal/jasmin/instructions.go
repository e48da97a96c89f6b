package jasmin

import (
	"fmt"
	"strings"

	"github.com/xiaobogaga/jmm/compiler/internal/ir"
	"github.com/xiaobogaga/jmm/util"
)

// methodContext is what lowering needs to know about where it happens.
type methodContext struct {
	// className is the qualified name of the class being generated.
	className string
	method    *ir.Method
}

func (ctx methodContext) register(name string) (int, error) {
	d, ok := ctx.method.VarTable[name]
	if ok {
		return d.VirtualReg, nil
	}
	if name == "this" {
		return 0, nil
	}
	return 0, &MissingRegisterError{Method: ctx.method.Name, Variable: name}
}

var binaryOpCodes = map[ir.OperationType]string{
	ir.Add: "iadd",
	ir.Sub: "isub",
	ir.Mul: "imul",
	ir.Div: "idiv",
}

// generateInstruction lowers inst to jasmin, one instruction per line.
func (g *Generator) generateInstruction(ctx methodContext, inst ir.Instruction) (string, error) {
	switch inst := inst.(type) {
	case *ir.AssignInstruction:
		return g.generateAssign(ctx, inst)
	case *ir.SingleOpInstruction:
		return g.generateElement(ctx, inst.Operand)
	case *ir.BinaryOpInstruction:
		return g.generateBinaryOp(ctx, inst)
	case *ir.ReturnInstruction:
		return g.generateReturn(ctx, inst)
	case *ir.CallInstruction:
		return g.generateCall(ctx, inst)
	case *ir.GetFieldInstruction:
		return g.generateGetField(ctx, inst)
	case *ir.PutFieldInstruction:
		return g.generatePutField(ctx, inst)
	case nil:
		return "", notImplemented("nil instruction")
	}
	return "", notImplemented("instruction %s", inst.InstType())
}

func (g *Generator) generateElement(ctx methodContext, e ir.Element) (string, error) {
	switch e := e.(type) {
	case *ir.Operand:
		return g.generateLoad(ctx, e)
	case *ir.LiteralElement:
		return "ldc " + e.Literal + nl, nil
	case *ir.ArrayOperand:
		return "", notImplemented("array operand %s", e.Name)
	}
	return "", notImplemented("element %T", e)
}

func (g *Generator) generateLoad(ctx methodContext, operand *ir.Operand) (string, error) {
	reg, err := ctx.register(operand.Name)
	if err != nil {
		return "", err
	}
	switch {
	case operand.TP.IsIntegral():
		return fmt.Sprintf("iload %d%s", reg, nl), nil
	case operand.TP.IsReference():
		return fmt.Sprintf("aload %d%s", reg, nl), nil
	}
	return "", notImplemented("load of %s %s", operand.TP, operand.Name)
}

func (g *Generator) generateAssign(ctx methodContext, assign *ir.AssignInstruction) (string, error) {
	dest, ok := assign.Dest.(*ir.Operand)
	if !ok {
		return "", notImplemented("assignment to %T", assign.Dest)
	}
	rhs, err := g.generateInstruction(ctx, assign.Rhs)
	if err != nil {
		return "", err
	}
	reg, err := ctx.register(dest.Name)
	if err != nil {
		return "", err
	}
	switch {
	case dest.TP.IsIntegral():
		return fmt.Sprintf("%sistore %d%s", rhs, reg, nl), nil
	case dest.TP.IsReference():
		return fmt.Sprintf("%sastore %d%s", rhs, reg, nl), nil
	}
	return "", notImplemented("store of %s %s", dest.TP, dest.Name)
}

func (g *Generator) generateBinaryOp(ctx methodContext, binaryOp *ir.BinaryOpInstruction) (string, error) {
	op, ok := binaryOpCodes[binaryOp.Op]
	if !ok {
		return "", notImplemented("binary operation %s", binaryOp.Op)
	}
	left, err := g.generateElement(ctx, binaryOp.Left)
	if err != nil {
		return "", err
	}
	right, err := g.generateElement(ctx, binaryOp.Right)
	if err != nil {
		return "", err
	}
	return left + right + op + nl, nil
}

func (g *Generator) generateReturn(ctx methodContext, ret *ir.ReturnInstruction) (string, error) {
	code := ""
	if ret.Operand != nil {
		operand, err := g.generateElement(ctx, ret.Operand)
		if err != nil {
			return "", err
		}
		code = operand
	}
	tp := ret.ReturnType()
	switch {
	case tp.TP == ir.Void:
		return code + "return" + nl, nil
	case tp.IsIntegral():
		return code + "ireturn" + nl, nil
	case tp.IsReference():
		return code + "areturn" + nl, nil
	}
	return "", notImplemented("return of %s", tp)
}

// fieldOwner is the class holding a field accessed through object.
func (g *Generator) fieldOwner(ctx methodContext, object ir.Element) string {
	if operand, ok := object.(*ir.Operand); ok && operand.Name == "this" {
		return ctx.className
	}
	if object.Type().TP == ir.This {
		return ctx.className
	}
	return g.encoder.FullyQualify(object.Type().Name)
}

func (g *Generator) fieldReference(ctx methodContext, object ir.Element, field *ir.Operand) (string, error) {
	descriptor, err := g.encoder.descriptorOf(field.TP)
	if err != nil {
		return "", err
	}
	return g.fieldOwner(ctx, object) + "/" + field.Name + " " + descriptor, nil
}

func (g *Generator) generateGetField(ctx methodContext, getField *ir.GetFieldInstruction) (string, error) {
	object, err := g.generateElement(ctx, getField.Object)
	if err != nil {
		return "", err
	}
	reference, err := g.fieldReference(ctx, getField.Object, getField.Field)
	if err != nil {
		return "", err
	}
	return object + "getfield " + reference + nl, nil
}

func (g *Generator) generatePutField(ctx methodContext, putField *ir.PutFieldInstruction) (string, error) {
	object, err := g.generateElement(ctx, putField.Object)
	if err != nil {
		return "", err
	}
	value, err := g.generateElement(ctx, putField.Value)
	if err != nil {
		return "", err
	}
	reference, err := g.fieldReference(ctx, putField.Object, putField.Field)
	if err != nil {
		return "", err
	}
	return object + value + "putfield " + reference + nl, nil
}

// generateCall lowers a call. The caller is only loaded for virtual and special calls; for static calls
// and new it names a class and pushes nothing.
func (g *Generator) generateCall(ctx methodContext, call *ir.CallInstruction) (string, error) {
	if call.Caller == nil {
		return "", notImplemented("%s call without caller", call.Invocation)
	}
	code := &strings.Builder{}
	switch call.Invocation {
	case ir.InvokeVirtual, ir.InvokeSpecial:
		caller, err := g.generateElement(ctx, call.Caller)
		if err != nil {
			return "", err
		}
		code.WriteString(caller)
	case ir.New, ir.InvokeStatic:
	default:
		return "", notImplemented("call type %s", call.Invocation)
	}
	for _, arg := range call.Arguments {
		argCode, err := g.generateElement(ctx, arg)
		if err != nil {
			return "", err
		}
		code.WriteString(argCode)
	}
	if call.Invocation == ir.New {
		code.WriteString("new " + callerName(call.Caller) + nl)
		return code.String(), nil
	}
	methodName, ok := call.MethodName.(*ir.LiteralElement)
	if !ok {
		return "", notImplemented("method name %T", call.MethodName)
	}
	args := make([]ir.Type, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		args = append(args, arg.Type())
	}
	signature, err := g.encoder.signature(args, call.ReturnTP)
	if err != nil {
		return "", err
	}
	code.WriteString(call.Invocation.String() + " " + g.callOwner(ctx, call) + "/" + util.StripQuotes(methodName.Literal) + signature + nl)
	return code.String(), nil
}

func callerName(caller ir.Element) string {
	if operand, ok := caller.(*ir.Operand); ok {
		return operand.Name
	}
	return caller.Type().Name
}

// callOwner is the class a call is resolved against: the named class for static calls, the caller's
// class otherwise.
func (g *Generator) callOwner(ctx methodContext, call *ir.CallInstruction) string {
	if call.Invocation == ir.InvokeStatic {
		return g.encoder.FullyQualify(callerName(call.Caller))
	}
	if call.Caller.Type().TP == ir.This {
		return ctx.className
	}
	return g.encoder.FullyQualify(call.Caller.Type().Name)
}

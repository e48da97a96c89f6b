package jasmin

import (
	"fmt"
	"strings"

	"github.com/xiaobogaga/jmm/compiler/internal/ir"
	"github.com/xiaobogaga/jmm/compiler/internal/logger"
	"github.com/xiaobogaga/jmm/compiler/internal/report"
	"github.com/xiaobogaga/jmm/util"
)

const nl = "\n"

// Generator writes the jasmin code of one ClassUnit. The code is built on the first call to Build
// and the same result is returned afterwards. A Generator isn't safe for concurrent use.
type Generator struct {
	unit    *ir.ClassUnit
	options Options
	encoder DescriptorEncoder
	reports []report.Report

	built bool
	code  string
	err   error
}

func NewGenerator(unit *ir.ClassUnit, options Options) *Generator {
	return &Generator{
		unit:    unit,
		options: options.withDefaults(),
		encoder: NewDescriptorEncoder(unit.Imports),
		reports: []report.Report{},
	}
}

// Reports returns the reports of code generation. Generation problems are returned as errors by
// Build, so this is currently always empty.
func (g *Generator) Reports() []report.Report {
	return g.reports
}

// Build returns the jasmin code of the unit. Any IR the generator can't lower fails the whole build
// and no code is returned.
func (g *Generator) Build() (string, error) {
	if !g.built {
		g.code, g.err = g.generateClassCode()
		if g.err != nil {
			g.code = ""
		}
		g.built = true
	}
	return g.code, g.err
}

func (g *Generator) generateClassCode() (string, error) {
	code := &strings.Builder{}
	directive, err := g.options.bytecodeDirective()
	if err != nil {
		return "", err
	}
	code.WriteString(directive)
	className := g.appendClassDeclaration(code)
	superClass := g.superClass()
	code.WriteString(".super " + superClass + nl + nl)
	for _, field := range g.unit.Fields {
		declaration, err := g.generateFieldDeclaration(field)
		if err != nil {
			return "", fmt.Errorf("class %s: field %s: %w", className, field.Name, err)
		}
		code.WriteString(declaration + nl)
	}
	code.WriteString(nl)
	code.WriteString(g.generateDefaultConstructor(superClass))
	methods := 0
	for _, method := range g.unit.Methods {
		if method.Construct {
			continue
		}
		methodCode, err := g.generateMethodCode(methodContext{className: className, method: method})
		if err != nil {
			return "", fmt.Errorf("class %s: method %s: %w", className, method.Name, err)
		}
		code.WriteString(methodCode)
		methods++
	}
	logger.Debug("jasmin: class generated", "class", className, "methods", methods)
	return code.String(), nil
}

func modifiers(access ir.AccessModifier, static, final bool) string {
	ret := ""
	if access != ir.DefaultAccess {
		ret += access.String() + " "
	}
	if static {
		ret += "static "
	}
	if final {
		ret += "final "
	}
	return ret
}

// appendClassDeclaration writes the .class directive and returns the qualified class name.
func (g *Generator) appendClassDeclaration(code *strings.Builder) string {
	className := g.unit.ClassName
	if g.unit.Package != "" {
		className = strings.ReplaceAll(g.unit.Package, ".", "/") + "/" + className
	}
	code.WriteString(".class " + modifiers(g.unit.Access, g.unit.Static, g.unit.Final) + className + nl)
	return className
}

func (g *Generator) superClass() string {
	superClass := g.unit.SuperClass
	if superClass == "" || superClass == "Object" {
		return objectClass
	}
	return g.encoder.FullyQualify(superClass)
}

func (g *Generator) generateFieldDeclaration(field *ir.Field) (string, error) {
	descriptor, err := g.encoder.descriptorOf(field.TP)
	if err != nil {
		return "", err
	}
	code := ".field " + modifiers(field.Access, field.Static, field.Final) + field.Name + " " + descriptor
	if field.Initialized {
		code += " = " + field.InitialValue
	}
	return code, nil
}

func (g *Generator) generateDefaultConstructor(superClass string) string {
	indent := g.options.Indent
	return ";default constructor" + nl +
		".method public <init>()V" + nl +
		indent + "aload_0" + nl +
		indent + "invokespecial " + superClass + "/<init>()V" + nl +
		indent + "return" + nl +
		".end method" + nl
}

func (g *Generator) generateMethodCode(ctx methodContext) (string, error) {
	method, indent := ctx.method, g.options.Indent
	code := &strings.Builder{}
	params := make([]ir.Type, 0, len(method.Params))
	for _, param := range method.Params {
		params = append(params, param.Type())
	}
	signature, err := g.encoder.signature(params, method.ReturnTP)
	if err != nil {
		return "", err
	}
	code.WriteString(nl + ".method " + modifiers(method.Access, method.Static, method.Final) + method.Name + signature + nl)

	code.WriteString(fmt.Sprintf("%s.limit stack %d%s", indent, g.options.StackLimit, nl))
	code.WriteString(fmt.Sprintf("%s.limit locals %d%s", indent, g.options.LocalsLimit, nl))
	for _, inst := range method.Instructions {
		instCode, err := g.generateInstruction(ctx, inst)
		if err != nil {
			return "", err
		}
		code.WriteString(util.IndentLines(instCode, indent))
		if discardsResult(inst) {
			code.WriteString(indent + "pop" + nl)
		}
	}
	code.WriteString(".end method" + nl)
	return code.String(), nil
}

// discardsResult is true for a call statement whose result nobody uses: the value it pushed has to be
// popped.
func discardsResult(inst ir.Instruction) bool {
	call, ok := inst.(*ir.CallInstruction)
	if !ok {
		return false
	}
	return call.ReturnTP.TP != ir.Void && call.Invocation != ir.New
}

package analysis

// SymbolTable is what the front end knows about the class being checked.
type SymbolTable interface {
	ClassName() string
	// Super is the declared super class, "" when the class extends nothing.
	Super() string
	Imports() []string
	Fields() []Symbol
	Methods() []string
	// ReturnType is nil when the method isn't declared in this class.
	ReturnType(method string) *Type
	Parameters(method string) []Symbol
	LocalVariables(method string) []Symbol
}

type Symbol struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

type MethodSymbols struct {
	Name       string   `json:"name"`
	ReturnType Type     `json:"returnType"`
	Parameters []Symbol `json:"parameters,omitempty"`
	Locals     []Symbol `json:"locals,omitempty"`
}

// ClassTable is a SymbolTable kept in memory.
type ClassTable struct {
	Class        string           `json:"className"`
	SuperClass   string           `json:"super,omitempty"`
	ImportPaths  []string         `json:"imports,omitempty"`
	FieldSymbols []Symbol         `json:"fields,omitempty"`
	MethodList   []*MethodSymbols `json:"methods,omitempty"`
}

func NewClassTable(className, superClass string, imports ...string) *ClassTable {
	return &ClassTable{Class: className, SuperClass: superClass, ImportPaths: imports}
}

func (table *ClassTable) AddField(name string, tp Type) *ClassTable {
	table.FieldSymbols = append(table.FieldSymbols, Symbol{Name: name, Type: tp})
	return table
}

func (table *ClassTable) AddMethod(method *MethodSymbols) *ClassTable {
	table.MethodList = append(table.MethodList, method)
	return table
}

func (table *ClassTable) lookUpMethod(name string) *MethodSymbols {
	for _, m := range table.MethodList {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (table *ClassTable) ClassName() string { return table.Class }
func (table *ClassTable) Super() string     { return table.SuperClass }
func (table *ClassTable) Imports() []string { return table.ImportPaths }
func (table *ClassTable) Fields() []Symbol  { return table.FieldSymbols }

func (table *ClassTable) Methods() []string {
	ret := make([]string, 0, len(table.MethodList))
	for _, m := range table.MethodList {
		ret = append(ret, m.Name)
	}
	return ret
}

func (table *ClassTable) ReturnType(method string) *Type {
	m := table.lookUpMethod(method)
	if m == nil {
		return nil
	}
	tp := m.ReturnType
	return &tp
}

func (table *ClassTable) Parameters(method string) []Symbol {
	m := table.lookUpMethod(method)
	if m == nil {
		return nil
	}
	return m.Parameters
}

func (table *ClassTable) LocalVariables(method string) []Symbol {
	m := table.lookUpMethod(method)
	if m == nil {
		return nil
	}
	return m.Locals
}

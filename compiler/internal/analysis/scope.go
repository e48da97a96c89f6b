package analysis

import "github.com/xiaobogaga/jmm/util"

// Policy groups the places where the checker gives up instead of reporting. The checker can't see
// the members of imported classes or of the super class, so by default anything typed by one of
// them is trusted.
type Policy struct {
	// TrustImports accepts calls on imported classes, and skips return/assignment checks involving them.
	TrustImports bool
	// TrustSuperclass accepts calls on the super class or the class itself when a super class is
	// declared, and skips assignment checks involving the super class.
	TrustSuperclass bool
}

func DefaultPolicy() Policy {
	return Policy{TrustImports: true, TrustSuperclass: true}
}

// scope resolves names against a symbol table.
type scope struct {
	table SymbolTable
}

// hasImport reports whether name is the last segment of an imported path.
func (s scope) hasImport(name string) bool {
	for _, imported := range s.table.Imports() {
		if util.LastSegment(imported, '.') == name {
			return true
		}
	}
	return false
}

func (s scope) isSuper(name string) bool {
	super := s.table.Super()
	return super != "" && super == name
}

// varType resolves name as seen from inside methodName. The search order is imports, the super class,
// parameters, locals and then fields; the first hit wins. nil means the name can't be resolved, callers
// treat that as "nothing to conclude" rather than as an error.
func (s scope) varType(name, methodName string) *Type {
	if s.hasImport(name) || s.isSuper(name) {
		return NewType(name, false)
	}
	if t := lookUpSymbol(s.table.Parameters(methodName), name); t != nil {
		return t
	}
	if t := lookUpSymbol(s.table.LocalVariables(methodName), name); t != nil {
		return t
	}
	return lookUpSymbol(s.table.Fields(), name)
}

func lookUpSymbol(symbols []Symbol, name string) *Type {
	for _, symbol := range symbols {
		if symbol.Name == name {
			tp := symbol.Type
			return &tp
		}
	}
	return nil
}

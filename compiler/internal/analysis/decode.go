package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Unit is what the front end produces for one source file: the syntax tree and the symbol table.
type Unit struct {
	Root  *Node       `json:"root"`
	Table *ClassTable `json:"table"`
}

// DecodeUnit reads a JSON encoded Unit and links the tree's parent pointers.
func DecodeUnit(r io.Reader) (*Unit, error) {
	unit := &Unit{}
	err := json.NewDecoder(r).Decode(unit)
	if err != nil {
		return nil, fmt.Errorf("decode analysis unit: %w", err)
	}
	if unit.Root == nil {
		return nil, errors.New("decode analysis unit: missing root")
	}
	if unit.Table == nil {
		return nil, errors.New("decode analysis unit: missing table")
	}
	if err := checkChildren(unit.Root); err != nil {
		return nil, fmt.Errorf("decode analysis unit: %w", err)
	}
	unit.Root.link()
	return unit, nil
}

func checkChildren(node *Node) error {
	for i, child := range node.Children {
		if child == nil {
			return fmt.Errorf("%s at %d:%d: child %d is null", node.Kind, node.Line, node.Column, i)
		}
		if err := checkChildren(child); err != nil {
			return err
		}
	}
	return nil
}

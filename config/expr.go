package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kernelexpr/encoding"
	"github.com/katalvlaran/kernelexpr/kernel"
)

// Combinator keys.
const (
	OpSum     = "sum"
	OpProduct = "product"
)

// Node is one YAML expression node: a leaf label such as "SE0", or a
// combinator ("sum"/"product") over Parts.
type Node struct {
	Label string
	Op    string
	Parts []Node
}

// IsLeaf reports whether n is a label.
func (n Node) IsLeaf() bool { return n.Op == "" }

// UnmarshalYAML implements yaml.Unmarshaler for scalar labels and
// single-key combinator mappings.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "" {
			return fmt.Errorf("line %d: empty label: %w", value.Line, ErrBadNode)
		}
		*n = Node{Label: value.Value}
		return nil

	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: combinator must have exactly one key: %w", value.Line, ErrBadNode)
		}
		key := value.Content[0].Value
		if key != OpSum && key != OpProduct {
			return fmt.Errorf("line %d: unknown combinator %q: %w", value.Line, key, ErrBadNode)
		}
		var parts []Node
		if err := value.Content[1].Decode(&parts); err != nil {
			return err
		}
		if len(parts) == 0 {
			return fmt.Errorf("line %d: %s without parts: %w", value.Line, key, ErrBadNode)
		}
		*n = Node{Op: key, Parts: parts}
		return nil
	}

	return fmt.Errorf("line %d: expected label or mapping: %w", value.Line, ErrBadNode)
}

// MarshalYAML implements yaml.Marshaler, mirroring UnmarshalYAML.
func (n Node) MarshalYAML() (interface{}, error) {
	if n.IsLeaf() {
		return n.Label, nil
	}
	return map[string][]Node{n.Op: n.Parts}, nil
}

// Build resolves n against reg into a kernel expression.
func (n Node) Build(reg *kernel.Registry) (kernel.Expr, error) {
	switch n.Op {
	case "":
		k, err := reg.ParseLabel(n.Label)
		if err != nil {
			return nil, err
		}
		return k, nil
	case OpSum, OpProduct:
		parts := make([]kernel.Expr, 0, len(n.Parts))
		for _, p := range n.Parts {
			e, err := p.Build(reg)
			if err != nil {
				return nil, err
			}
			parts = append(parts, e)
		}
		if n.Op == OpSum {
			return kernel.NewSum(parts...), nil
		}
		return kernel.NewProduct(parts...), nil
	}
	return nil, fmt.Errorf("combinator %q: %w", n.Op, ErrBadNode)
}

// FromExpr converts a kernel expression into its YAML node form,
// labelling leaves with reg.
func FromExpr(e kernel.Expr, reg *kernel.Registry) (Node, error) {
	switch x := e.(type) {
	case *kernel.Sum:
		return fromParts(OpSum, x.Parts(), reg)
	case *kernel.Product:
		return fromParts(OpProduct, x.Parts(), reg)
	case kernel.Kernel:
		l, err := encoding.Label(reg, x)
		if err != nil {
			return Node{}, err
		}
		return Node{Label: l}, nil
	}
	return Node{}, fmt.Errorf("FromExpr(%T): %w", e, ErrBadNode)
}

func fromParts(op string, parts []kernel.Expr, reg *kernel.Registry) (Node, error) {
	n := Node{Op: op, Parts: make([]Node, 0, len(parts))}
	for _, p := range parts {
		c, err := FromExpr(p, reg)
		if err != nil {
			return Node{}, err
		}
		n.Parts = append(n.Parts, c)
	}
	return n, nil
}

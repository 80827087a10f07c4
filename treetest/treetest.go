// Package treetest provides yaml-defined tree fixtures that satisfy the
// snapmeta node contracts. It exists for tests: a fixture tree is declared as
// a yaml document instead of a pyramid of struct literals.
//
//	root := treetest.MustParse(t, `
//	name: root
//	children:
//	  - name: left
//	  - name: right
//	    children:
//	      - name: leaf
//	`)
package treetest

import (
	"fmt"
	"testing"

	"github.com/structmerge/snapmeta"
	"gopkg.in/yaml.v3"
)

// Node is a yaml-constructible tree node implementing snapmeta.Node.
// Nodes are used as pointers, so annotations key on object identity.
type Node struct {
	Name     string  `yaml:"name"`
	Children []*Node `yaml:"children,omitempty"`
}

// ChildNodes returns the node's children in order, satisfying snapmeta.Node.
func (n *Node) ChildNodes() []snapmeta.Node {
	children := make([]snapmeta.Node, len(n.Children))
	for i, child := range n.Children {
		children[i] = child
	}
	return children
}

// String returns the node's name.
func (n *Node) String() string { return n.Name }

// Find returns the first node named name in a depth-first walk of n, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	Walk(n, func(node *Node) {
		if found == nil && node.Name == name {
			found = node
		}
	})
	return found
}

// Definition is a yaml-constructible root implementing snapmeta.Definition.
type Definition struct {
	Diff *Differential `yaml:"differential,omitempty"`
}

// Differential returns the definition's differential component, or nil when
// the fixture declares none.
func (d *Definition) Differential() snapmeta.Differential {
	if d == nil || d.Diff == nil {
		return nil
	}
	return d.Diff
}

// Differential is a yaml-constructible differential component implementing
// snapmeta.Differential.
type Differential struct {
	Elems []*Node `yaml:"elements"`
}

// Elements returns the differential's elements in order.
func (d *Differential) Elements() []snapmeta.Node {
	elements := make([]snapmeta.Node, len(d.Elems))
	for i, elem := range d.Elems {
		elements[i] = elem
	}
	return elements
}

// Parse decodes a yaml document rooted at a single node.
func Parse(src []byte) (*Node, error) {
	var n Node
	if err := yaml.Unmarshal(src, &n); err != nil {
		return nil, fmt.Errorf("parse tree fixture: %w", err)
	}
	return &n, nil
}

// MustParse decodes a yaml tree fixture, failing the test on error.
func MustParse(t *testing.T, src string) *Node {
	t.Helper()
	n, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("treetest: %v", err)
	}
	return n
}

// ParseDefinition decodes a yaml document rooted at a definition.
func ParseDefinition(src []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(src, &d); err != nil {
		return nil, fmt.Errorf("parse definition fixture: %w", err)
	}
	return &d, nil
}

// MustParseDefinition decodes a yaml definition fixture, failing the test on
// error.
func MustParseDefinition(t *testing.T, src string) *Definition {
	t.Helper()
	d, err := ParseDefinition([]byte(src))
	if err != nil {
		t.Fatalf("treetest: %v", err)
	}
	return d
}

// Walk applies fn to n and every descendant, depth-first in child order.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Flatten returns n and every descendant in Walk order.
func Flatten(n *Node) []*Node {
	var nodes []*Node
	Walk(n, func(node *Node) {
		nodes = append(nodes, node)
	})
	return nodes
}

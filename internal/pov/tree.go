// Package pov re-roots labeled trees and finds paths between their nodes.
//
// A tree is treated as an undirected graph: re-rooting at a node keeps every
// edge and only changes which end of each edge is the parent.
package pov

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNodeNotFound indicates that no node carries the requested label.
	ErrNodeNotFound = errors.New("node not found")
	// ErrDuplicateLabel indicates that a label appears more than once.
	ErrDuplicateLabel = errors.New("duplicate node label")
	// ErrInvalidTree indicates a decoded tree with missing nodes.
	ErrInvalidTree = errors.New("invalid tree")
)

// Tree is a labeled rooted tree.
type Tree struct {
	label    string
	children []*Tree
}

// New returns a tree with the given root label and children.
func New(label string, children ...*Tree) *Tree {
	return &Tree{label: label, children: children}
}

// Label returns the root label.
func (t *Tree) Label() string {
	return t.label
}

// Children returns the direct children of the root.
func (t *Tree) Children() []*Tree {
	return t.children
}

// Find returns the subtree rooted at label.
func (t *Tree) Find(label string) (*Tree, error) {
	if t.label == label {
		return t, nil
	}

	for _, c := range t.children {
		if found, err := c.Find(label); err == nil {
			return found, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
}

// Labels returns the labels in pre-order.
func (t *Tree) Labels() []string {
	out := []string{t.label}
	for _, c := range t.children {
		out = append(out, c.Labels()...)
	}

	return out
}

// FromPov returns a new tree with the same edges rooted at label.
// The receiver is left untouched.
func (t *Tree) FromPov(label string) (*Tree, error) {
	g, err := newGraph(t)
	if err != nil {
		return nil, err
	}

	if !g.has(label) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}

	return g.rootAt(label, nil), nil
}

// PathTo returns the labels on the path from one node to another, both
// ends included.
func (t *Tree) PathTo(from, to string) ([]string, error) {
	g, err := newGraph(t)
	if err != nil {
		return nil, err
	}

	for _, l := range []string{from, to} {
		if !g.has(l) {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, l)
		}
	}

	return g.path(from, to), nil
}

// Equal reports whether both trees have the same shape and labels,
// ignoring the order of children.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.String() == other.String()
}

// String returns the canonical form {"label":[children sorted by label]}.
func (t *Tree) String() string {
	b, _ := json.Marshal(t.canonical())
	return string(b)
}

func (t *Tree) canonical() map[string][]any {
	children := make([]*Tree, len(t.children))
	copy(children, t.children)
	sort.Slice(children, func(i, j int) bool {
		return children[i].label < children[j].label
	})

	nested := make([]any, 0, len(children))
	for _, c := range children {
		nested = append(nested, c.canonical())
	}

	return map[string][]any{t.label: nested}
}

type treeJSON struct {
	Label    string  `json:"label"`
	Children []*Tree `json:"children,omitempty"`
}

// MarshalJSON encodes the tree as {"label":"x","children":[...]}.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(treeJSON{Label: t.label, Children: t.children})
}

// UnmarshalJSON decodes the tree from {"label":"x","children":[...]}.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var in treeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	for _, c := range in.Children {
		if c == nil {
			return fmt.Errorf("%w: null child of %q", ErrInvalidTree, in.Label)
		}
	}

	t.label = in.Label
	t.children = in.Children

	return nil
}

// Package vfs is the in-memory virtual filesystem the terminal browses.
//
// A Tree is built once from the content index and never mutated afterwards;
// new content produces a new Tree. Children keep the order in which they
// were added, which is the order listings and tree drawings use.
package vfs

import "strings"

// Kind distinguishes files from directories.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// Node is one entry of the virtual filesystem.
type Node struct {
	Kind     Kind
	Name     string
	Content  string
	URL      string
	Metadata map[string]interface{}

	children []*Node
	index    map[string]int
}

// NewFile creates a file node.
func NewFile(name, content string) *Node {
	return &Node{Kind: File, Name: name, Content: content}
}

// NewDir creates a directory node holding children in the given order. A
// later child with an existing name replaces the earlier one in place.
func NewDir(name string, children ...*Node) *Node {
	n := &Node{Kind: Directory, Name: name, index: make(map[string]int)}
	for _, c := range children {
		n.add(c)
	}
	return n
}

func (n *Node) add(c *Node) {
	if i, ok := n.index[c.Name]; ok {
		n.children[i] = c
		return
	}
	n.index[c.Name] = len(n.children)
	n.children = append(n.children, c)
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool {
	return n != nil && n.Kind == Directory
}

// Children returns the node's children in insertion order. Callers must not
// modify the returned slice.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Child returns the named child.
func (n *Node) Child(name string) (*Node, bool) {
	if !n.IsDir() {
		return nil, false
	}
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.children[i], true
}

// DisplayName is the name with a trailing slash for directories.
func (n *Node) DisplayName() string {
	if n.IsDir() {
		return n.Name + "/"
	}
	return n.Name
}

// List returns the display names of n's children in insertion order.
func (n *Node) List() []string {
	names := make([]string, 0, len(n.Children()))
	for _, c := range n.Children() {
		names = append(names, c.DisplayName())
	}
	return names
}

// Tree is an immutable virtual filesystem.
type Tree struct {
	root *Node
}

// NewTree builds a tree whose root directory holds top.
func NewTree(top ...*Node) *Tree {
	return &Tree{root: NewDir("/", top...)}
}

// Root returns the synthetic root directory.
func (t *Tree) Root() *Node {
	return t.root
}

// Lookup finds the node at an absolute path. "/" and "" name the root. A
// missing segment, or a segment below a file, means not found.
func (t *Tree) Lookup(path string) (*Node, bool) {
	if t == nil || t.root == nil {
		return nil, false
	}
	if path == "/" || path == "" {
		return t.root, true
	}

	current := t.root
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		if !current.IsDir() {
			return nil, false
		}
		child, ok := current.Child(part)
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// Walk visits every node below the root depth-first in insertion order.
func (t *Tree) Walk(fn func(path string, n *Node)) {
	var walk func(prefix string, n *Node)
	walk = func(prefix string, n *Node) {
		for _, c := range n.Children() {
			p := JoinPath(prefix, c.Name)
			fn(p, c)
			if c.IsDir() {
				walk(p, c)
			}
		}
	}
	walk("/", t.root)
}

// Count returns the number of files and directories below the root.
func (t *Tree) Count() (files, dirs int) {
	t.Walk(func(_ string, n *Node) {
		if n.IsDir() {
			dirs++
		} else {
			files++
		}
	})
	return files, dirs
}

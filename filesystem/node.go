package filesystem

import "fmt"

// Kind discriminates the two node variants.
type Kind uint8

const (
	KindDirectory Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Node is one entry in the namespace tree. Identity (name, parent
// back-reference, registry handle) is shared by both variants; the payload
// differs: directories own an ordered children sequence, files own a content
// string. The parent link is a non-owning back-reference used only for path
// derivation and detach; ownership flows parent -> children.
type Node struct {
	name   string
	parent *Node // nil for the root and for detached nodes
	kind   Kind
	id     uint64 // registry handle; 0 if not registered

	children []*Node // directory payload, insertion order
	content  string  // file payload
}

// NewDirectory creates a detached, empty directory node.
//
// NOTE: The caller links it into the tree via [Node.AddChild] on the parent.
func NewDirectory(name string) *Node {
	return &Node{name: name, kind: KindDirectory}
}

// NewFile creates a detached, empty file node.
func NewFile(name string) *Node {
	return &Node{name: name, kind: KindFile}
}

// Name returns the node's name, the last element of its path. Names are
// fixed at construction.
func (n *Node) Name() string { return n.name }

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == KindDirectory }

// Parent returns the enclosing directory; nil for the root and for
// detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// ID returns the registry handle assigned when the node was attached;
// 0 if the node was never registered or has been removed.
func (n *Node) ID() uint64 { return n.id }

// IsRoot reports whether the node is the tree root: the empty-named
// directory with no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil && n.name == "" && n.kind == KindDirectory
}

// Path derives the full path of the node by walking parent references to
// the root and joining names with "/". The root's path is "/"; a directory's
// path carries a trailing "/", a file's does not. Nothing is cached: the
// path is recomputed from the ownership chain on every call.
//
// A detached node yields its bare name.
func (n *Node) Path() string {
	if n.kind == KindDirectory {
		if n.parent == nil {
			if n.name == "" {
				return "/"
			}
			return n.name + "/"
		}
		return n.parent.Path() + n.name + "/"
	}
	if n.parent == nil {
		return n.name
	}
	return n.parent.Path() + n.name
}

// Lookup scans the children sequence in insertion order for an exact,
// case-sensitive name match.
func (n *Node) Lookup(name string) (*Node, bool) {
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// InsertChild appends child to the children sequence, failing with
// ErrAlreadyExists when a sibling of the same name is present. Insertion
// does not adopt: the child's parent reference is the caller's
// responsibility (see [Node.AddChild]).
func (n *Node) InsertChild(child *Node) error {
	if _, ok := n.Lookup(child.name); ok {
		return fmt.Errorf("%s: %w", child.name, ErrAlreadyExists)
	}
	n.children = append(n.children, child)
	return nil
}

// AddChild inserts child and sets its parent back-reference.
func (n *Node) AddChild(child *Node) error {
	if err := n.InsertChild(child); err != nil {
		return err
	}
	child.parent = n
	return nil
}

// Remove detaches the node from its parent's children sequence and clears
// the parent reference. A non-empty directory fails with ErrNotEmpty and
// stays attached; files always succeed. Removal is shallow: it never
// recurses into a directory's contents.
func (n *Node) Remove() error {
	if n.kind == KindDirectory && !n.IsEmpty() {
		return fmt.Errorf("%s: %w", n.name, ErrNotEmpty)
	}
	if n.parent != nil {
		n.parent.detachChild(n)
	}
	n.parent = nil
	return nil
}

// detachChild drops child from the children sequence, preserving the order
// of the remaining siblings. The child's parent reference is untouched.
func (n *Node) detachChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// IsEmpty reports whether the directory has no children. True for files.
func (n *Node) IsEmpty() bool { return len(n.children) == 0 }

// Children returns the children sequence in insertion order. The slice is
// shared with the node; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Content returns the file's content; a file never written reads as "".
func (n *Node) Content() string { return n.content }

// SetContent overwrites the file's content completely. There is no append
// mode.
func (n *Node) SetContent(content string) { n.content = content }

// Size returns the length of the file's content; 0 when never written.
func (n *Node) Size() int { return len(n.content) }

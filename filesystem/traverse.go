package filesystem

import (
	"fmt"
	"strings"
)

// The three recursive traversals. All are depth-first, pre-order, and
// unsorted: children are emitted in insertion order, a directory's own
// recursive output follows its line as a flat concatenation with no
// indentation. They accumulate into a single multi-line string, never fail,
// and never short-circuit.

// List emits the bare name of every entry beneath the directory, one per
// line.
func (n *Node) List() string {
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.name)
		b.WriteByte('\n')
		if c.kind == KindDirectory {
			b.WriteString(c.List())
		}
	}
	return b.String()
}

// ListLong emits one annotated line per entry: "f <name> (size <N>)" for
// files, "d <name> (empty)" or "d <name> (not empty)" for directories based
// on their children sequence.
func (n *Node) ListLong() string {
	var b strings.Builder
	for _, c := range n.children {
		switch c.kind {
		case KindFile:
			fmt.Fprintf(&b, "f %s (size %d)\n", c.name, c.Size())
		case KindDirectory:
			if c.IsEmpty() {
				fmt.Fprintf(&b, "d %s (empty)\n", c.name)
			} else {
				fmt.Fprintf(&b, "d %s (not empty)\n", c.name)
			}
			b.WriteString(c.ListLong())
		}
	}
	return b.String()
}

// Find emits the full derived path of every entry beneath the directory,
// one per line.
func (n *Node) Find() string {
	return n.FindContaining("")
}

// FindContaining emits the full path of every entry whose bare name contains
// term as a substring. Recursion into a directory's descendants always
// proceeds, whether or not the directory itself matched. The empty term
// matches every entry.
func (n *Node) FindContaining(term string) string {
	var b strings.Builder
	for _, c := range n.children {
		if strings.Contains(c.name, term) {
			b.WriteString(c.Path())
			b.WriteByte('\n')
		}
		if c.kind == KindDirectory {
			b.WriteString(c.FindContaining(term))
		}
	}
	return b.String()
}

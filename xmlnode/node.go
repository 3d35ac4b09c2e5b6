package xmlnode

import "strings"

// Node is one element in a parsed XML tree. Name keeps the namespace prefix
// as written in the source ("a:srgbClr"); Attrs keys are the full attribute
// names. Trees are built once by Parse and read-only afterwards.
type Node struct {
	Name     string
	Attrs    map[string]string
	Children []*Node
	Text     string
}

// localName returns the part of an XML name after its namespace prefix.
func localName(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Local returns the node's name without its namespace prefix.
func (n *Node) Local() string {
	return localName(n.Name)
}

// Attr returns the value of the named attribute, comparing local names only,
// and "" when the attribute is absent. An exact full-name match wins over a
// prefixed one, so Attr("id") on a node carrying both id and r:id returns the
// unprefixed value; among prefixed candidates the lexicographically first
// full name is chosen so lookups stay deterministic.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	if v, ok := n.Attrs[name]; ok {
		return v
	}
	want := localName(name)
	best := ""
	found := false
	for k := range n.Attrs {
		if localName(k) != want {
			continue
		}
		if !found || k < best {
			best = k
			found = true
		}
	}
	if !found {
		return ""
	}
	return n.Attrs[best]
}

// HasAttr reports whether the named attribute is present, comparing local
// names only.
func (n *Node) HasAttr(name string) bool {
	if n == nil {
		return false
	}
	if _, ok := n.Attrs[name]; ok {
		return true
	}
	want := localName(name)
	for k := range n.Attrs {
		if localName(k) == want {
			return true
		}
	}
	return false
}

// TextContent returns the concatenation of all text in the subtree rooted at
// n, in document order.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.appendText(&b)
	return b.String()
}

func (n *Node) appendText(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.appendText(b)
	}
}

// Child returns the first direct child whose local name matches, or nil.
// Unlike FindNode it does not descend, which matters when the same local
// name recurs at deeper levels (sp inside grpSp inside spTree).
func (n *Node) Child(local string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Local() == local {
			return c
		}
	}
	return nil
}

// ChildAll returns every direct child whose local name matches, in document
// order.
func (n *Node) ChildAll(local string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Local() == local {
			out = append(out, c)
		}
	}
	return out
}

// FindNode returns the first node in a pre-order walk of root (root included)
// whose local name matches, or nil when there is none.
func FindNode(root *Node, local string) *Node {
	if root == nil {
		return nil
	}
	if root.Local() == local {
		return root
	}
	for _, c := range root.Children {
		if m := FindNode(c, local); m != nil {
			return m
		}
	}
	return nil
}

// FindNodes returns every node in a pre-order walk of root (root included)
// whose local name matches, in document order.
func FindNodes(root *Node, local string) []*Node {
	var out []*Node
	collectNodes(root, local, &out)
	return out
}

func collectNodes(n *Node, local string, out *[]*Node) {
	if n == nil {
		return
	}
	if n.Local() == local {
		*out = append(*out, n)
	}
	for _, c := range n.Children {
		collectNodes(c, local, out)
	}
}

// FindPath descends from root through a chain of local names, taking the
// first matching direct child at each step. It returns nil as soon as one
// step is missing.
func FindPath(root *Node, locals ...string) *Node {
	n := root
	for _, l := range locals {
		n = n.Child(l)
		if n == nil {
			return nil
		}
	}
	return n
}

package dom

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

// Selection is an ordered list of element nodes.
type Selection struct {
	nodes []*html.Node
}

// From wraps nodes in a selection. Nil nodes are dropped.
func From(nodes ...*html.Node) *Selection {
	s := &Selection{}
	for _, n := range nodes {
		if n != nil {
			s.nodes = append(s.nodes, n)
		}
	}
	return s
}

// Select returns the first descendant of root matching selector.
// The selection is empty when nothing matches.
func Select(root *html.Node, selector string) (*Selection, error) {
	return From(root).Query(selector)
}

// Query returns, for each node, the first descendant matching selector.
func (s *Selection) Query(selector string) (*Selection, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid selector %q", selector)
	}
	out := &Selection{}
	for _, n := range s.nodes {
		if found := cascadia.Query(n, m); found != nil {
			out.nodes = append(out.nodes, found)
		}
	}
	return out, nil
}

// Child returns, for each node, its first child element named tag.
func (s *Selection) Child(tag string) *Selection {
	out := &Selection{}
	for _, n := range s.nodes {
		if c := firstChild(n, tag); c != nil {
			out.nodes = append(out.nodes, c)
		}
	}
	return out
}

// Children returns all child elements named tag, in document order.
func (s *Selection) Children(tag string) *Selection {
	out := &Selection{}
	for _, n := range s.nodes {
		out.nodes = append(out.nodes, children(n, tag)...)
	}
	return out
}

// Empty reports whether the selection has no nodes.
func (s *Selection) Empty() bool { return len(s.nodes) == 0 }

// Len returns the number of selected nodes.
func (s *Selection) Len() int { return len(s.nodes) }

// Nodes returns the selected nodes.
func (s *Selection) Nodes() []*html.Node { return s.nodes }

// Node returns the first selected node, or nil.
func (s *Selection) Node() *html.Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[0]
}

// Append adds a new child element named tag to every node and returns the
// new elements.
func (s *Selection) Append(tag string) *Selection {
	out := &Selection{nodes: make([]*html.Node, 0, len(s.nodes))}
	for _, n := range s.nodes {
		out.nodes = append(out.nodes, appendElement(n, tag))
	}
	return out
}

// Insert adds a new child element named tag to every node, placed before ref
// when ref is a child of that node and appended otherwise.
func (s *Selection) Insert(tag string, ref *html.Node) *Selection {
	out := &Selection{nodes: make([]*html.Node, 0, len(s.nodes))}
	for _, n := range s.nodes {
		c := newElement(n, tag)
		if ref != nil && ref.Parent == n {
			n.InsertBefore(c, ref)
		} else {
			n.AppendChild(c)
		}
		out.nodes = append(out.nodes, c)
	}
	return out
}

// Attr sets an attribute on every node.
func (s *Selection) Attr(name, value string) *Selection {
	for _, n := range s.nodes {
		setAttr(n, name, value)
	}
	return s
}

// RemoveAttr removes an attribute from every node.
func (s *Selection) RemoveAttr(name string) *Selection {
	for _, n := range s.nodes {
		removeAttr(n, name)
	}
	return s
}

// Style sets an inline style property on every node. An empty value removes
// the property.
func (s *Selection) Style(prop, value string) *Selection {
	for _, n := range s.nodes {
		setStyle(n, prop, value, value != "")
	}
	return s
}

// Classed adds or removes class on every node.
func (s *Selection) Classed(class string, on bool) *Selection {
	for _, n := range s.nodes {
		classed(n, class, on)
	}
	return s
}

// Text replaces the children of every node with a single text node.
func (s *Selection) Text(text string) *Selection {
	for _, n := range s.nodes {
		setText(n, text)
	}
	return s
}

// Clear removes all children of every node.
func (s *Selection) Clear() *Selection {
	for _, n := range s.nodes {
		removeChildren(n)
	}
	return s
}

// Remove detaches every node from its parent.
func (s *Selection) Remove() {
	for _, n := range s.nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

// AttrValue returns the value of an attribute on the first node.
func (s *Selection) AttrValue(name string) (string, bool) {
	if n := s.Node(); n != nil {
		return getAttr(n, name)
	}
	return "", false
}

// StyleValue returns the value of an inline style property on the first node.
func (s *Selection) StyleValue(prop string) (string, bool) {
	if n := s.Node(); n != nil {
		return getStyle(n, prop)
	}
	return "", false
}

// TextContent returns the concatenated text of the first node's descendants.
func (s *Selection) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	if n := s.Node(); n != nil {
		walk(n)
	}
	return b.String()
}

// Render writes n and its descendants as markup.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// OuterHTML returns the markup of n and its descendants.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

func firstChild(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

func children(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
	}
	return out
}

func newElement(parent *html.Node, tag string) *html.Node {
	ns := ""
	if tag == "svg" || (parent != nil && parent.Namespace == "svg") {
		ns = "svg"
	}
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: ns,
	}
}

func appendElement(parent *html.Node, tag string) *html.Node {
	c := newElement(parent, tag)
	parent.AppendChild(c)
	return c
}

func setText(n *html.Node, text string) {
	removeChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// FilterClass keeps the nodes whose class attribute contains class.
func (s *Selection) FilterClass(class string) *Selection {
	out := &Selection{}
	for _, n := range s.nodes {
		v, _ := getAttr(n, "class")
		for _, f := range strings.Fields(v) {
			if f == class {
				out.nodes = append(out.nodes, n)
				break
			}
		}
	}
	return out
}

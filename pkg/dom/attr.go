package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// splitName maps "xlink:href" to ("xlink", "href") the way the HTML parser
// stores foreign attributes. Other names carry no namespace.
func splitName(name string) (ns, key string) {
	if prefix, local, ok := strings.Cut(name, ":"); ok && (prefix == "xlink" || prefix == "xmlns" || prefix == "xml") {
		return prefix, local
	}
	return "", name
}

func attrIndex(n *html.Node, name string) int {
	ns, key := splitName(name)
	for i, a := range n.Attr {
		if a.Namespace == ns && a.Key == key {
			return i
		}
	}
	return -1
}

func getAttr(n *html.Node, name string) (string, bool) {
	if i := attrIndex(n, name); i >= 0 {
		return n.Attr[i].Val, true
	}
	return "", false
}

func setAttr(n *html.Node, name, value string) {
	if i := attrIndex(n, name); i >= 0 {
		n.Attr[i].Val = value
		return
	}
	ns, key := splitName(name)
	n.Attr = append(n.Attr, html.Attribute{Namespace: ns, Key: key, Val: value})
}

func removeAttr(n *html.Node, name string) {
	if i := attrIndex(n, name); i >= 0 {
		n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
	}
}

func classed(n *html.Node, class string, on bool) {
	current, _ := getAttr(n, "class")
	fields := strings.Fields(current)
	out := fields[:0]
	found := false
	for _, f := range fields {
		if f == class {
			found = true
			if !on {
				continue
			}
		}
		out = append(out, f)
	}
	if on && !found {
		out = append(out, class)
	}
	if len(out) == 0 {
		removeAttr(n, "class")
		return
	}
	setAttr(n, "class", strings.Join(out, " "))
}

package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestSelect(t *testing.T) {
	doc := parse(t, `<html><body><div id="a"></div><div class="b"></div></body></html>`)

	sel, err := Select(doc, "#a")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if sel.Len() != 1 {
		t.Fatalf("Select(#a) len = %d, want 1", sel.Len())
	}
	if v, _ := sel.AttrValue("id"); v != "a" {
		t.Errorf("id = %q, want a", v)
	}

	sel, err = Select(doc, "#missing")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !sel.Empty() {
		t.Error("Select(#missing) should be empty")
	}

	if _, err := Select(doc, "div[["); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("invalid selector error = %v, want INVALID_INPUT", err)
	}
}

func TestAppendNamespaces(t *testing.T) {
	doc := parse(t, `<div id="c"></div>`)
	c, _ := Select(doc, "#c")

	svg := c.Append("svg")
	circle := svg.Append("circle")

	if ns := c.Node().Namespace; ns != "" {
		t.Errorf("div namespace = %q, want empty", ns)
	}
	if ns := svg.Node().Namespace; ns != "svg" {
		t.Errorf("svg namespace = %q, want svg", ns)
	}
	if ns := circle.Node().Namespace; ns != "svg" {
		t.Errorf("circle namespace = %q, want svg", ns)
	}
	if got := c.Child("svg").Child("circle").Len(); got != 1 {
		t.Errorf("Child(svg).Child(circle) len = %d, want 1", got)
	}
}

func TestInsert(t *testing.T) {
	doc := parse(t, `<svg id="s"><g class="b"></g></svg>`)
	root, _ := Select(doc, "#s")
	b := root.Child("g")

	root.Insert("g", b.Node()).Classed("a", true)
	root.Insert("g", nil).Classed("c", true)
	root.Insert("defs", parse(t, `<p></p>`))

	var got []string
	for c := root.Node().FirstChild; c != nil; c = c.NextSibling {
		if cls, ok := From(c).AttrValue("class"); ok {
			got = append(got, cls)
		} else {
			got = append(got, c.Data)
		}
	}
	if want := "a b c defs"; strings.Join(got, " ") != want {
		t.Errorf("children = %q, want %q", strings.Join(got, " "), want)
	}
	if ns := root.Node().FirstChild.Namespace; ns != "svg" {
		t.Errorf("inserted namespace = %q, want svg", ns)
	}
}

func TestAttr(t *testing.T) {
	doc := parse(t, `<div id="c"></div>`)
	c, _ := Select(doc, "#c")
	img := c.Append("svg").Append("image")

	img.Attr("xlink:href", "a.png").Attr("x", "1")
	img.Attr("x", "2")

	n := img.Node()
	if len(n.Attr) != 2 {
		t.Fatalf("attr count = %d, want 2", len(n.Attr))
	}
	if n.Attr[0].Namespace != "xlink" || n.Attr[0].Key != "href" {
		t.Errorf("xlink attr = %+v", n.Attr[0])
	}
	if v, _ := img.AttrValue("x"); v != "2" {
		t.Errorf("x = %q, want 2", v)
	}
	if out := OuterHTML(n); !strings.Contains(out, `xlink:href="a.png"`) {
		t.Errorf("OuterHTML() = %s", out)
	}

	img.RemoveAttr("x")
	if _, ok := img.AttrValue("x"); ok {
		t.Error("x should be removed")
	}
}

func TestStyle(t *testing.T) {
	doc := parse(t, `<div id="c" style="color: red"></div>`)
	c, _ := Select(doc, "#c")

	c.Style("fill", "black").Style("color", "blue")
	if v, _ := c.AttrValue("style"); v != "color: blue; fill: black;" {
		t.Errorf("style = %q", v)
	}
	if v, ok := c.StyleValue("fill"); !ok || v != "black" {
		t.Errorf("StyleValue(fill) = %q,%v", v, ok)
	}

	c.Style("color", "").Style("fill", "")
	if _, ok := c.AttrValue("style"); ok {
		t.Error("empty style attribute should be removed")
	}
}

func TestClassed(t *testing.T) {
	doc := parse(t, `<div id="c" class="x"></div>`)
	c, _ := Select(doc, "#c")

	c.Classed("edges", true).Classed("edges", true)
	if v, _ := c.AttrValue("class"); v != "x edges" {
		t.Errorf("class = %q, want %q", v, "x edges")
	}
	c.Classed("x", false).Classed("edges", false)
	if _, ok := c.AttrValue("class"); ok {
		t.Error("class attribute should be removed when empty")
	}
}

func TestTextClearRemove(t *testing.T) {
	doc := parse(t, `<div id="c"><p>a</p><p>b</p></div>`)
	c, _ := Select(doc, "#c")

	if got := c.Children("p").Len(); got != 2 {
		t.Fatalf("Children(p) = %d, want 2", got)
	}
	c.Children("p").Remove()
	if got := c.Children("p").Len(); got != 0 {
		t.Errorf("after Remove, Children(p) = %d", got)
	}

	c.Text("a < b")
	if got := c.TextContent(); got != "a < b" {
		t.Errorf("TextContent() = %q", got)
	}
	if out := OuterHTML(c.Node()); !strings.Contains(out, "a &lt; b") {
		t.Errorf("text should be escaped: %s", out)
	}

	c.Clear()
	if c.Node().FirstChild != nil {
		t.Error("Clear() should remove all children")
	}
}

func TestFilterClass(t *testing.T) {
	doc := parse(t, `<div id="c"><g class="edges"></g><g class="vertices big"></g></div>`)
	c, _ := Select(doc, "#c")

	if got := c.Children("g").FilterClass("big").Len(); got != 1 {
		t.Errorf("FilterClass(big) len = %d, want 1", got)
	}
	if got := c.Children("g").FilterClass("edge").Len(); got != 0 {
		t.Errorf("FilterClass(edge) len = %d, want 0", got)
	}
}

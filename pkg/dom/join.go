package dom

import (
	"golang.org/x/net/html"
)

// KeyAttr is the attribute that stores the join key of keyed elements.
const KeyAttr = "data-key"

// Keyer returns the identity of datum d at index i.
type Keyer[T any] func(d T, i int) string

// Join is the result of binding data to the child elements of a parent.
type Join[T any] struct {
	parent  *html.Node
	tag     string
	key     Keyer[T]
	data    []T
	nodes   []*html.Node // one slot per datum; nil until entered
	matched []bool       // slot was filled by an existing element
	exit    []*html.Node
}

// Data binds data to the children of the first node of parent named tag.
// A nil key joins by position. Data panics if parent is empty.
func Data[T any](parent *Selection, tag string, data []T, key Keyer[T]) *Join[T] {
	p := parent.Node()
	if p == nil {
		panic("dom: data join on empty selection")
	}
	j := &Join[T]{
		parent: p,
		tag:    tag,
		key:    key,
		data:   data,
		nodes:  make([]*html.Node, len(data)),
	}
	existing := children(p, tag)
	if key == nil {
		j.joinByIndex(existing)
	} else {
		j.joinByKey(existing)
	}
	j.matched = make([]bool, len(data))
	for i, n := range j.nodes {
		j.matched[i] = n != nil
	}
	return j
}

func (j *Join[T]) joinByIndex(existing []*html.Node) {
	for i, n := range existing {
		if i < len(j.data) {
			j.nodes[i] = n
		} else {
			j.exit = append(j.exit, n)
		}
	}
}

func (j *Join[T]) joinByKey(existing []*html.Node) {
	byKey := make(map[string]*html.Node, len(existing))
	for _, n := range existing {
		k, ok := getAttr(n, KeyAttr)
		if _, dup := byKey[k]; !ok || dup {
			j.exit = append(j.exit, n)
			continue
		}
		byKey[k] = n
	}
	for i, d := range j.data {
		k := j.key(d, i)
		if n, ok := byKey[k]; ok {
			j.nodes[i] = n
			delete(byKey, k)
		}
	}
	// Leftovers keep document order in the exit set.
	for _, n := range existing {
		if k, _ := getAttr(n, KeyAttr); byKey[k] == n {
			j.exit = append(j.exit, n)
		}
	}
}

// Update returns the existing elements that matched a datum.
func (j *Join[T]) Update() *Bound[T] {
	return j.bound(func(i int) bool { return j.matched[i] })
}

// All returns every bound element: updated ones and, after
// [Enter.Append], entered ones, in data order.
func (j *Join[T]) All() *Bound[T] {
	return j.bound(func(i int) bool { return j.nodes[i] != nil })
}

// Enter returns the placeholders for data without an element.
func (j *Join[T]) Enter() *Enter[T] {
	e := &Enter[T]{join: j}
	for i, n := range j.nodes {
		if n == nil {
			e.slots = append(e.slots, i)
		}
	}
	return e
}

// Exit returns the elements that matched no datum.
func (j *Join[T]) Exit() *Selection {
	return &Selection{nodes: j.exit}
}

// Order moves the bound elements so that document order follows data order.
func (j *Join[T]) Order() *Join[T] {
	var next *html.Node
	for i := len(j.nodes) - 1; i >= 0; i-- {
		n := j.nodes[i]
		if n == nil {
			continue
		}
		if next != nil && n.NextSibling != next {
			n.Parent.RemoveChild(n)
			next.Parent.InsertBefore(n, next)
		}
		next = n
	}
	return j
}

func (j *Join[T]) bound(keep func(i int) bool) *Bound[T] {
	b := &Bound[T]{}
	for i, n := range j.nodes {
		if keep(i) {
			b.nodes = append(b.nodes, n)
			b.data = append(b.data, j.data[i])
			b.index = append(b.index, i)
		}
	}
	return b
}

// Enter holds the data that have no element yet.
type Enter[T any] struct {
	join  *Join[T]
	slots []int
}

// Len returns the number of entering data.
func (e *Enter[T]) Len() int { return len(e.slots) }

// Append creates one element per entering datum, appended to the parent,
// and binds it into the join.
func (e *Enter[T]) Append() *Bound[T] {
	j := e.join
	b := &Bound[T]{}
	for _, i := range e.slots {
		n := appendElement(j.parent, j.tag)
		if j.key != nil {
			setAttr(n, KeyAttr, j.key(j.data[i], i))
		}
		j.nodes[i] = n
		b.nodes = append(b.nodes, n)
		b.data = append(b.data, j.data[i])
		b.index = append(b.index, i)
	}
	e.slots = nil
	return b
}

// Bound is a selection whose nodes each carry a datum and its index in the
// joined data.
type Bound[T any] struct {
	nodes []*html.Node
	data  []T
	index []int
}

// Len returns the number of bound nodes.
func (b *Bound[T]) Len() int { return len(b.nodes) }

// Nodes returns the bound nodes.
func (b *Bound[T]) Nodes() []*html.Node { return b.nodes }

// Data returns the bound data.
func (b *Bound[T]) Data() []T { return b.data }

// Selection drops the data.
func (b *Bound[T]) Selection() *Selection { return &Selection{nodes: b.nodes} }

// Attr sets an attribute to a constant on every node.
func (b *Bound[T]) Attr(name, value string) *Bound[T] {
	b.Selection().Attr(name, value)
	return b
}

// AttrFunc sets an attribute from each datum. ok == false removes it.
func (b *Bound[T]) AttrFunc(name string, fn func(d T, i int) (string, bool)) *Bound[T] {
	for k, n := range b.nodes {
		if v, ok := fn(b.data[k], b.index[k]); ok {
			setAttr(n, name, v)
		} else {
			removeAttr(n, name)
		}
	}
	return b
}

// Style sets an inline style property to a constant on every node.
func (b *Bound[T]) Style(prop, value string) *Bound[T] {
	b.Selection().Style(prop, value)
	return b
}

// StyleFunc sets an inline style property from each datum. ok == false
// removes it.
func (b *Bound[T]) StyleFunc(prop string, fn func(d T, i int) (string, bool)) *Bound[T] {
	for k, n := range b.nodes {
		v, ok := fn(b.data[k], b.index[k])
		setStyle(n, prop, v, ok)
	}
	return b
}

// TextFunc replaces each node's children with text derived from its datum.
func (b *Bound[T]) TextFunc(fn func(d T, i int) string) *Bound[T] {
	for k, n := range b.nodes {
		setText(n, fn(b.data[k], b.index[k]))
	}
	return b
}

// Filter keeps the nodes whose datum satisfies fn.
func (b *Bound[T]) Filter(fn func(d T, i int) bool) *Bound[T] {
	out := &Bound[T]{}
	for k, n := range b.nodes {
		if fn(b.data[k], b.index[k]) {
			out.nodes = append(out.nodes, n)
			out.data = append(out.data, b.data[k])
			out.index = append(out.index, b.index[k])
		}
	}
	return out
}

// Append adds a child element to every node; the child inherits the datum.
func (b *Bound[T]) Append(tag string) *Bound[T] {
	out := &Bound[T]{
		data:  b.data,
		index: b.index,
		nodes: make([]*html.Node, len(b.nodes)),
	}
	for k, n := range b.nodes {
		out.nodes[k] = appendElement(n, tag)
	}
	return out
}

// Children returns the child elements named tag of every node.
func (b *Bound[T]) Children(tag string) *Selection {
	return b.Selection().Children(tag)
}

// Clear removes all children of every node.
func (b *Bound[T]) Clear() *Bound[T] {
	b.Selection().Clear()
	return b
}

// Each calls fn for every node with its datum.
func (b *Bound[T]) Each(fn func(n *html.Node, d T, i int)) {
	for k, n := range b.nodes {
		fn(n, b.data[k], b.index[k])
	}
}

// Remove detaches every node from its parent.
func (b *Bound[T]) Remove() { b.Selection().Remove() }

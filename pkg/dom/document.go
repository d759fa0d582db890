package dom

import (
	"io"

	"github.com/vango-dev/notifier/pkg/render"
	"github.com/vango-dev/notifier/pkg/vdom"
)

// MutationType identifies a document change.
type MutationType uint8

const (
	MutationAppend MutationType = iota + 1
	MutationRemove
	MutationUpdate
)

// String returns the string representation of the MutationType.
func (m MutationType) String() string {
	switch m {
	case MutationAppend:
		return "append"
	case MutationRemove:
		return "remove"
	case MutationUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Mutation describes one change to the document.
type Mutation struct {
	Type MutationType
	Node *vdom.VNode
}

// Document is an in-memory page with a head and a body.
type Document struct {
	head      *vdom.VNode
	body      *vdom.VNode
	observers []func(Mutation)
}

// New creates an empty document.
func New() *Document {
	return &Document{
		head: vdom.Head(),
		body: vdom.Body(),
	}
}

// Head returns the head element.
func (d *Document) Head() *vdom.VNode { return d.head }

// Body returns the body element.
func (d *Document) Body() *vdom.VNode { return d.body }

// Observe registers fn to be called after every mutation.
func (d *Document) Observe(fn func(Mutation)) {
	if fn != nil {
		d.observers = append(d.observers, fn)
	}
}

func (d *Document) notify(m Mutation) {
	for _, fn := range d.observers {
		fn(m)
	}
}

// Append attaches node as the last child of the body.
func (d *Document) Append(node *vdom.VNode) {
	if node == nil {
		return
	}
	d.body.Children = append(d.body.Children, node)
	d.notify(Mutation{Type: MutationAppend, Node: node})
}

// AppendHead attaches node as the last child of the head.
func (d *Document) AppendHead(node *vdom.VNode) {
	if node == nil {
		return
	}
	d.head.Children = append(d.head.Children, node)
	d.notify(Mutation{Type: MutationAppend, Node: node})
}

// Remove detaches node from wherever it is attached.
// It reports whether the node was attached.
func (d *Document) Remove(node *vdom.VNode) bool {
	if node == nil || node == d.head || node == d.body {
		return false
	}
	if !vdom.RemoveChild(d.body, node) && !vdom.RemoveChild(d.head, node) {
		return false
	}
	d.notify(Mutation{Type: MutationRemove, Node: node})
	return true
}

// Contains reports whether node is attached to the document.
func (d *Document) Contains(node *vdom.VNode) bool {
	return vdom.Contains(d.body, node) || vdom.Contains(d.head, node)
}

// SetStyle replaces the inline style of node.
func (d *Document) SetStyle(node *vdom.VNode, css string) {
	if node == nil {
		return
	}
	node.SetAttr("style", css)
	if d.Contains(node) {
		d.notify(Mutation{Type: MutationUpdate, Node: node})
	}
}

// FindByClass returns every attached body element carrying class.
func (d *Document) FindByClass(class string) []*vdom.VNode {
	return vdom.FindByClass(d.body, class)
}

// FindByID returns the attached element with the given id, or nil.
func (d *Document) FindByID(id string) *vdom.VNode {
	if n := vdom.FindByID(d.head, id); n != nil {
		return n
	}
	return vdom.FindByID(d.body, id)
}

// Click dispatches a click to node. Detached nodes don't receive events.
// It reports whether a handler ran.
func (d *Document) Click(node *vdom.VNode) bool {
	if !d.Contains(node) {
		return false
	}
	switch fn := node.Handler("click").(type) {
	case func():
		fn()
		return true
	case func(any):
		fn(node)
		return true
	default:
		return false
	}
}

// Render writes the document as a complete HTML page.
func (d *Document) Render(w io.Writer, r *render.Renderer, title string) error {
	if r == nil {
		r = render.NewRenderer(render.RendererConfig{})
	}
	return r.RenderPage(w, render.PageData{
		Title: title,
		Head:  d.head.Children,
		Body:  d.body,
	})
}

// RenderBody renders only the body element.
func (d *Document) RenderBody(r *render.Renderer) (string, error) {
	if r == nil {
		r = render.NewRenderer(render.RendererConfig{})
	}
	return r.RenderToString(d.body)
}

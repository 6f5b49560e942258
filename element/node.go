// Package element is the drawable tree produced by a chart render.
//
// The tree is handed to a host layer (HTML, the browser DOM) that paints it.
// A node keeps its region styles apart from its computed geometry so the host
// can tell which properties came from the cascade.
package element

import "github.com/tinywasm/chart/style"

// Attr is a markup attribute such as an svg viewBox or a circle radius.
type Attr struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// Node is one drawable element.
type Node struct {
	Tag    string `json:"tag"`
	Region string `json:"region,omitempty"`
	// Style is the resolved property list of Region, verbatim.
	Style []style.Property `json:"style,omitempty"`
	// Layout holds per-element geometry (width, height, transform...).
	Layout []style.Property `json:"layout,omitempty"`
	Attrs  []Attr           `json:"attrs,omitempty"`
	Text   string           `json:"text,omitempty"`
	// Raw is markup produced by a delegated renderer, written unescaped.
	Raw      string  `json:"raw,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// New returns a node styled with the properties of region.
func New(tag, region string, props []style.Property) *Node {
	if props == nil {
		props = []style.Property{}
	}
	return &Node{Tag: tag, Region: region, Style: props}
}

// Append adds children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// SetText sets the text content.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// SetRaw sets markup that is written as is, after Text and before Children.
func (n *Node) SetRaw(markup string) *Node {
	n.Raw = markup
	return n
}

// SetAttr adds or replaces an attribute.
func (n *Node) SetAttr(key, val string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

// Attr returns the value of attribute key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetLayout adds or replaces a computed geometry property.
func (n *Node) SetLayout(name, value string) *Node {
	for i := range n.Layout {
		if n.Layout[i].Name == name {
			n.Layout[i].Value = value
			return n
		}
	}
	n.Layout = append(n.Layout, style.P(name, value))
	return n
}

// LayoutValue returns the computed geometry property name.
func (n *Node) LayoutValue(name string) (string, bool) {
	for _, p := range n.Layout {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns every node in the tree tagged with region, in document order.
func (n *Node) Find(region string) []*Node {
	var out []*Node
	n.Walk(func(e *Node) bool {
		if e.Region == region {
			out = append(out, e)
		}
		return true
	})
	return out
}

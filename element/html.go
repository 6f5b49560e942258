package element

import (
	"bytes"
	"io"

	"golang.org/x/net/html"

	"github.com/tinywasm/chart/style"
)

var svgTags = map[string]bool{
	"svg":      true,
	"circle":   true,
	"g":        true,
	"polyline": true,
	"line":     true,
	"text":     true,
}

// ToHTML converts the tree into an x/net/html node tree. The region becomes
// the class attribute and the style attribute lists Style then Layout, so a
// computed geometry property wins over a region property of the same name.
func ToHTML(n *Node) *html.Node {
	if n == nil {
		return nil
	}
	e := &html.Node{
		Type: html.ElementNode,
		Data: n.Tag,
	}
	if svgTags[n.Tag] {
		e.Namespace = "svg"
	}
	if n.Region != "" {
		e.Attr = append(e.Attr, html.Attribute{Key: "class", Val: n.Region})
	}
	if css := style.Inline(n.Style, n.Layout); css != "" {
		e.Attr = append(e.Attr, html.Attribute{Key: "style", Val: css})
	}
	for _, a := range n.Attrs {
		e.Attr = append(e.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if n.Text != "" {
		e.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	if n.Raw != "" {
		e.AppendChild(&html.Node{Type: html.RawNode, Data: n.Raw})
	}
	for _, c := range n.Children {
		e.AppendChild(ToHTML(c))
	}
	return e
}

// WriteHTML renders the tree as markup into w.
func WriteHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	return html.Render(w, ToHTML(n))
}

// HTML returns the markup of the tree.
func HTML(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

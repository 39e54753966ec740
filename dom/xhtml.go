package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Mirror is a copy of a node tree as golang.org/x/net/html nodes, so that
// the tree can be queried with selector engines and rendered as HTML.
// Element and attribute names are lower cased like the x/net/html parser
// does. Empty nodes have no counterpart.
type Mirror struct {
	// Root is an html.DocumentNode whose only child is the mirrored root.
	Root   *html.Node
	origin map[*html.Node]*Node
}

// NewMirror builds the x/net/html copy of the tree rooted at n.
func NewMirror(n *Node) *Mirror {
	m := &Mirror{
		Root:   &html.Node{Type: html.DocumentNode},
		origin: make(map[*html.Node]*Node),
	}
	if h := m.convert(n); h != nil {
		m.Root.AppendChild(h)
	}
	return m
}

// Origin returns the node h was created from, or nil.
func (m *Mirror) Origin(h *html.Node) *Node {
	return m.origin[h]
}

// Render writes the mirrored tree as HTML to w.
func (m *Mirror) Render(w io.Writer) error {
	return html.Render(w, m.Root)
}

// Render writes the tree rooted at n as HTML to w.
func Render(w io.Writer, n *Node) error {
	return NewMirror(n).Render(w)
}

func (m *Mirror) convert(n *Node) *html.Node {
	var h *html.Node
	switch t := n.Type.(type) {
	case *Text:
		h = &html.Node{Type: html.TextNode, Data: t.Data}
	case *Comment:
		h = &html.Node{Type: html.CommentNode, Data: t.Data}
	case *Doctype:
		h = &html.Node{Type: html.DoctypeNode, Data: t.Data}
	case *Style:
		h = newElementNode("style", nil)
		h.AppendChild(&html.Node{Type: html.TextNode, Data: t.Stylesheet.String()})
	case *Element:
		h = newElementNode(t.TagName, t.Attrs)
	default:
		return nil
	}
	m.origin[h] = n
	for _, c := range n.Children {
		if hc := m.convert(c); hc != nil {
			h.AppendChild(hc)
		}
	}
	return h
}

func newElementNode(name string, attrs AttrMap) *html.Node {
	name = strings.ToLower(name)
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	for _, k := range attrs.SortedKeys() {
		h.Attr = append(h.Attr, html.Attribute{Key: strings.ToLower(k), Val: attrs[k]})
	}
	return h
}

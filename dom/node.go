package dom

import "github.com/boxesandglue/pageparse/css"

// Node is a node of the document tree. Nodes are built bottom up by the
// parser and not changed afterwards.
type Node struct {
	Children []*Node
	Type     NodeType
}

// NodeType is the kind specific part of a node: *Text, *Element, *Comment,
// *Doctype, *Style or *Empty.
type NodeType interface {
	isNodeType()
}

// Text is a run of character data.
type Text struct {
	Data string
}

// Element is a tag with its attributes.
type Element struct {
	TagName string
	Attrs   AttrMap
}

// Comment holds the text between <!-- and -->.
type Comment struct {
	Data string
}

// Doctype holds the text following <!DOCTYPE.
type Doctype struct {
	Data string
}

// Style is a <style> element whose content has been parsed as CSS.
type Style struct {
	Stylesheet *css.Stylesheet
}

// Empty is a placeholder node without content.
type Empty struct{}

func (*Text) isNodeType()    {}
func (*Element) isNodeType() {}
func (*Comment) isNodeType() {}
func (*Doctype) isNodeType() {}
func (*Style) isNodeType()   {}
func (*Empty) isNodeType()   {}

// AttrMap maps attribute names to values.
type AttrMap map[string]string

// NewText returns a text node.
func NewText(data string) *Node {
	return &Node{Type: &Text{Data: data}}
}

// NewElement returns an element node with the given children.
func NewElement(name string, attrs AttrMap, children []*Node) *Node {
	return &Node{
		Children: children,
		Type:     &Element{TagName: name, Attrs: attrs},
	}
}

// NewComment returns a comment node.
func NewComment(data string) *Node {
	return &Node{Type: &Comment{Data: data}}
}

// NewDoctype returns a doctype node.
func NewDoctype(data string) *Node {
	return &Node{Type: &Doctype{Data: data}}
}

// NewStyle returns a node holding a parsed embedded stylesheet.
func NewStyle(sheet *css.Stylesheet) *Node {
	return &Node{Type: &Style{Stylesheet: sheet}}
}

// NewEmpty returns an empty placeholder node.
func NewEmpty() *Node {
	return &Node{Type: &Empty{}}
}

// TagName returns the tag name of an element node and "" for all other nodes.
func (n *Node) TagName() string {
	if e, ok := n.Type.(*Element); ok {
		return e.TagName
	}
	return ""
}

// Attr returns the value of the named attribute of an element node.
func (n *Node) Attr(name string) (string, bool) {
	if e, ok := n.Type.(*Element); ok {
		v, ok := e.Attrs[name]
		return v, ok
	}
	return "", false
}

// Walk calls fn for n and all its descendants in document order. Returning
// false from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Indent prefixes every line of s with four spaces.
func Indent(s string) string {
	ret := []string{}
	for _, line := range strings.Split(s, "\n") {
		ret = append(ret, "    "+line)
	}
	return strings.Join(ret, "\n")
}

// SortedKeys returns the attribute names in natural order.
func (a AttrMap) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return natural.Less(keys[i], keys[j]) })
	return keys
}

func (a AttrMap) String() string {
	ret := []string{}
	for _, k := range a.SortedKeys() {
		ret = append(ret, fmt.Sprintf("%s=%q", k, a[k]))
	}
	return strings.Join(ret, " ")
}

// Label returns a one line description of the node without its children.
func (n *Node) Label() string {
	switch t := n.Type.(type) {
	case *Text:
		return fmt.Sprintf("text %q", t.Data)
	case *Element:
		if len(t.Attrs) == 0 {
			return "element " + t.TagName
		}
		return "element " + t.TagName + " " + t.Attrs.String()
	case *Comment:
		return fmt.Sprintf("comment %q", t.Data)
	case *Doctype:
		return fmt.Sprintf("doctype %q", t.Data)
	case *Style:
		return fmt.Sprintf("style (%d rules)", len(t.Stylesheet.Rules))
	case *Empty:
		return "empty"
	}
	return "unknown"
}

// String returns an indented dump of the tree rooted at n.
func (n *Node) String() string {
	ret := []string{n.Label()}
	if s, ok := n.Type.(*Style); ok && len(s.Stylesheet.Rules) > 0 {
		ret = append(ret, Indent(strings.TrimSuffix(s.Stylesheet.String(), "\n")))
	}
	for _, c := range n.Children {
		ret = append(ret, Indent(c.String()))
	}
	return strings.Join(ret, "\n")
}

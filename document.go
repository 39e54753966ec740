package pageparse

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/boxesandglue/pageparse/css"
	"github.com/boxesandglue/pageparse/dom"
)

// Document is a parsed node tree together with a parsed stylesheet. It is
// read only.
type Document struct {
	node       *dom.Node
	stylesheet *css.Stylesheet

	mirrorOnce sync.Once
	mirror     *dom.Mirror
}

// NewDocument bundles node and sheet. Nil arguments are replaced by an empty
// node and an empty stylesheet.
func NewDocument(node *dom.Node, sheet *css.Stylesheet) *Document {
	if node == nil {
		node = dom.NewEmpty()
	}
	if sheet == nil {
		sheet = &css.Stylesheet{}
	}
	return &Document{node: node, stylesheet: sheet}
}

// Node returns the root of the node tree.
func (d *Document) Node() *dom.Node {
	return d.node
}

// Stylesheet returns the stylesheet.
func (d *Document) Stylesheet() *css.Stylesheet {
	return d.stylesheet
}

// String returns a dump of the node tree followed by the stylesheet.
func (d *Document) String() string {
	ret := []string{"HTML:", dom.Indent(d.node.String()), "", "CSS:"}
	if len(d.stylesheet.Rules) > 0 {
		ret = append(ret, dom.Indent(strings.TrimSuffix(d.stylesheet.String(), "\n")))
	}
	return strings.Join(ret, "\n") + "\n"
}

func (d *Document) html() *dom.Mirror {
	d.mirrorOnce.Do(func() {
		d.mirror = dom.NewMirror(d.node)
	})
	return d.mirror
}

// Find returns the element nodes matching the CSS selector query in document
// order. Element and attribute names are compared in lower case.
func (d *Document) Find(query string) ([]*dom.Node, error) {
	sel, err := cascadia.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", query, err)
	}
	return d.find(sel), nil
}

// Match returns the element nodes matched by sel in document order.
func (d *Document) Match(sel css.Selector) ([]*dom.Node, error) {
	return d.Find(sel.String())
}

func (d *Document) find(m goquery.Matcher) []*dom.Node {
	mirror := d.html()
	var ret []*dom.Node
	goquery.NewDocumentFromNode(mirror.Root).FindMatcher(m).Each(func(_ int, sel *goquery.Selection) {
		if n := mirror.Origin(sel.Get(0)); n != nil {
			ret = append(ret, n)
		}
	})
	return ret
}

// MatchingRules returns the rules of the stylesheet with at least one
// selector matching n, in stylesheet order. n must be part of the document
// tree.
func (d *Document) MatchingRules(n *dom.Node) ([]css.Rule, error) {
	var ret []css.Rule
	for _, rule := range d.stylesheet.Rules {
		for _, sel := range rule.Selectors {
			nodes, err := d.Match(sel)
			if err != nil {
				return nil, err
			}
			if containsNode(nodes, n) {
				ret = append(ret, rule)
				break
			}
		}
	}
	return ret, nil
}

func containsNode(nodes []*dom.Node, n *dom.Node) bool {
	for _, c := range nodes {
		if c == n {
			return true
		}
	}
	return false
}

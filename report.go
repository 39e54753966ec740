package pageparse

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"gopkg.in/yaml.v3"

	"github.com/boxesandglue/pageparse/css"
	"github.com/boxesandglue/pageparse/dom"
)

type (
	yamlNode struct {
		Type     string            `yaml:"type"`
		Tag      string            `yaml:"tag,omitempty"`
		Attrs    map[string]string `yaml:"attrs,omitempty"`
		Data     string            `yaml:"data,omitempty"`
		Rules    []yamlRule        `yaml:"rules,omitempty"`
		Children []yamlNode        `yaml:"children,omitempty"`
	}

	yamlRule struct {
		Selectors    []string   `yaml:"selectors"`
		Declarations []yamlDecl `yaml:"declarations"`
	}

	yamlDecl struct {
		Name  string `yaml:"name"`
		Value string `yaml:"value"`
	}

	yamlDocument struct {
		HTML yamlNode   `yaml:"html"`
		CSS  []yamlRule `yaml:"css"`
	}
)

func toYAMLNode(n *dom.Node) yamlNode {
	var y yamlNode
	switch t := n.Type.(type) {
	case *dom.Text:
		y = yamlNode{Type: "text", Data: t.Data}
	case *dom.Element:
		y = yamlNode{Type: "element", Tag: t.TagName, Attrs: t.Attrs}
	case *dom.Comment:
		y = yamlNode{Type: "comment", Data: t.Data}
	case *dom.Doctype:
		y = yamlNode{Type: "doctype", Data: t.Data}
	case *dom.Style:
		y = yamlNode{Type: "style", Rules: toYAMLRules(t.Stylesheet)}
	default:
		y = yamlNode{Type: "empty"}
	}
	for _, c := range n.Children {
		y.Children = append(y.Children, toYAMLNode(c))
	}
	return y
}

func toYAMLRules(sheet *css.Stylesheet) []yamlRule {
	ret := []yamlRule{}
	for _, rule := range sheet.Rules {
		yr := yamlRule{Selectors: []string{}, Declarations: []yamlDecl{}}
		for _, sel := range rule.Selectors {
			yr.Selectors = append(yr.Selectors, sel.String())
		}
		for _, decl := range rule.Declarations {
			yr.Declarations = append(yr.Declarations, yamlDecl{Name: decl.Name, Value: decl.Value.String()})
		}
		ret = append(ret, yr)
	}
	return ret
}

// WriteYAML writes both trees of the document as YAML to w.
func (d *Document) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlDocument{
		HTML: toYAMLNode(d.node),
		CSS:  toYAMLRules(d.stylesheet),
	}); err != nil {
		return err
	}
	return enc.Close()
}

// WriteMarkdown writes a Markdown report of the document to w: the node tree
// as a code block, one table per stylesheet rule and the rules as CSS.
func (d *Document) WriteMarkdown(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1("Document")
	md.PlainText("")

	md.H2("HTML")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlight("text"), d.node.String())
	md.PlainText("")

	md.H2("CSS")
	md.PlainText("")
	if len(d.stylesheet.Rules) == 0 {
		md.PlainText("No rules.")
		md.PlainText("")
		return md.Build()
	}
	for i, rule := range d.stylesheet.Rules {
		md.H3("Rule " + strconv.Itoa(i+1) + ": `" + rule.SelectorText() + "`")
		md.PlainText("")
		rows := [][]string{}
		for _, sel := range rule.Selectors {
			spec := sel.Specificity()
			rows = append(rows, []string{"`" + sel.String() + "`", specificityText(spec)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Selector", "Specificity"},
			Rows:   rows,
		})
		md.PlainText("")
		rows = [][]string{}
		for _, decl := range rule.Declarations {
			rows = append(rows, []string{decl.Name, "`" + decl.Value.String() + "`"})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Property", "Value"},
			Rows:   rows,
		})
		md.PlainText("")
	}
	md.CodeBlocks(markdown.SyntaxHighlight("css"), strings.TrimSuffix(d.stylesheet.String(), "\n"))
	return md.Build()
}

func specificityText(s css.Specificity) string {
	return "(" + strconv.Itoa(s[0]) + "," + strconv.Itoa(s[1]) + "," + strconv.Itoa(s[2]) + ")"
}

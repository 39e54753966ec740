package dom

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/boxesandglue/pageparse/css"
	"github.com/boxesandglue/pageparse/internal/scan"
)

// Parse errors. Errors returned by Parse wrap exactly one of these.
var (
	ErrUnexpectedCharacter = scan.ErrUnexpectedCharacter
	ErrMismatch            = scan.ErrMismatch
	ErrMalformedLiteral    = scan.ErrMalformedLiteral
	ErrEndOfInput          = scan.ErrEndOfInput
)

const styleTag = "style"

// StyleParser turns the content of a <style> element into a stylesheet.
type StyleParser func(source string) (*css.Stylesheet, error)

// Parser parses HTML source into a node tree.
type Parser struct {
	log         *zap.Logger
	styles      StyleParser
	stripStyles bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger of the parser.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log.Named("html-parser")
		}
	}
}

// WithStyleWhitespaceStripping makes the parser drop all white space from
// <style> content before it is handed to the style parser. By default the
// content is passed on unchanged.
func WithStyleWhitespaceStripping(strip bool) Option {
	return func(p *Parser) {
		p.stripStyles = strip
	}
}

// NewParser creates an HTML parser that hands <style> content to styles. If
// styles is nil, css.Parse is used.
func NewParser(styles StyleParser, opts ...Option) *Parser {
	if styles == nil {
		styles = css.Parse
	}
	p := &Parser{log: zap.NewNop(), styles: styles}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses source with a parser that uses css.Parse for style blocks.
func Parse(source string) (*Node, error) {
	return NewParser(nil).Parse(source)
}

// Parse parses source into a node tree. A single top level node is returned
// as is; zero or several top level nodes are wrapped in an html element.
// Any grammar violation aborts the parse and no tree is returned.
func (p *Parser) Parse(source string) (root *Node, err error) {
	p.log.Debug("Parsing HTML", zap.Int("bytes", len(source)))
	dp := &docParser{Cursor: scan.New(source), Parser: p}
	defer func() {
		if err != nil {
			root = nil
			p.log.Debug("HTML parse error", zap.Error(err))
		}
	}()
	defer scan.Recover(&err)

	nodes := dp.parseNodes()
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return NewElement("html", AttrMap{}, nodes), nil
}

// docParser holds the cursor for one Parse call.
type docParser struct {
	*scan.Cursor
	*Parser
}

// parseNodes reads sibling nodes up to the end of input or a closing tag.
func (p *docParser) parseNodes() []*Node {
	var nodes []*Node
	for {
		p.ConsumeWhitespace()
		if p.EOF() || p.StartsWith("</") {
			return nodes
		}
		nodes = append(nodes, p.parseNode())
	}
}

func (p *docParser) parseNode() *Node {
	if p.Next() == '<' {
		return p.parseElement()
	}
	return p.parseText()
}

func (p *docParser) parseText() *Node {
	return NewText(p.ConsumeWhile(func(c rune) bool { return c != '<' }))
}

func (p *docParser) parseElement() *Node {
	p.Expect('<')
	if p.Next() == '!' {
		return p.parseSpecial()
	}
	return p.parseTagged()
}

func (p *docParser) parseTagged() *Node {
	name := p.parseTagName()
	attrs := p.parseAttributes()
	p.Expect('>')

	if name == styleTag {
		return p.parseStyle()
	}

	children := p.parseNodes()
	p.closeTag(name)
	return NewElement(name, attrs, children)
}

// closeTag consumes </name>. The name must equal the open tag exactly.
func (p *docParser) closeTag(name string) {
	p.Expect('<')
	p.Expect('/')
	at := p.Pos()
	if got := p.parseTagName(); got != name {
		p.FailAt(at, ErrMismatch, "closing tag %q does not match <%s>", got, name)
	}
	p.Expect('>')
}

func (p *docParser) parseTagName() string {
	return p.ConsumeWhile(func(c rune) bool {
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	})
}

// parseAttributes reads name="value" pairs up to the closing >. A later
// attribute replaces an earlier one with the same name.
func (p *docParser) parseAttributes() AttrMap {
	attrs := AttrMap{}
	for {
		p.ConsumeWhitespace()
		if p.Next() == '>' {
			return attrs
		}
		name, value := p.parseAttr()
		attrs[name] = value
	}
}

func (p *docParser) parseAttr() (string, string) {
	name := p.parseTagName()
	p.Expect('=')
	return name, p.parseAttrValue()
}

func (p *docParser) parseAttrValue() string {
	at := p.Pos()
	open := p.Consume()
	if open != '"' && open != '\'' {
		p.FailAt(at, ErrMismatch, "expected quote, found %q", open)
	}
	value := p.ConsumeWhile(func(c rune) bool { return c != open })
	p.Expect(open)
	return value
}

// parseSpecial handles <!DOCTYPE ...> and <!-- ... -->. Anything else after
// <! yields an Empty node and the rest is read as ordinary content.
func (p *docParser) parseSpecial() *Node {
	p.Expect('!')
	switch p.Next() {
	case 'D', 'd':
		return p.parseDoctype()
	case '-':
		return p.parseComment()
	}
	return NewEmpty()
}

func (p *docParser) parseDoctype() *Node {
	at := p.Pos()
	keyword := p.ConsumeWhile(func(c rune) bool { return !unicode.IsSpace(c) })
	if !strings.EqualFold(keyword, "DOCTYPE") {
		p.FailAt(at, ErrMismatch, "expected DOCTYPE, found %q", keyword)
	}
	p.ConsumeWhitespace()
	value := p.ConsumeWhile(func(c rune) bool { return c != '>' })
	p.Expect('>')
	return NewDoctype(value)
}

func (p *docParser) parseComment() *Node {
	p.Expect('-')
	p.Expect('-')
	p.ConsumeWhitespace()

	start := p.Pos()
	for !p.StartsWith("-->") {
		p.Consume()
	}
	data := p.Since(start)

	p.Expect('-')
	p.Expect('-')
	p.Expect('>')
	return NewComment(data)
}

// parseStyle reads the content of a <style> element, parses it as CSS and
// consumes the closing tag.
func (p *docParser) parseStyle() *Node {
	start := p.Pos()
	var source string
	if p.stripStyles {
		var sb strings.Builder
		for {
			p.ConsumeWhitespace()
			if p.EOF() || p.StartsWith("</") {
				break
			}
			sb.WriteRune(p.Consume())
		}
		source = sb.String()
	} else {
		for !p.EOF() && !p.StartsWith("</") {
			p.Consume()
		}
		source = p.Since(start)
	}

	sheet, err := p.styles(source)
	if err != nil {
		scan.Abort(fmt.Errorf("style block at offset %d: %w", start, err))
	}
	if sheet == nil {
		sheet = &css.Stylesheet{}
	}
	p.log.Debug("Parsed style block", zap.Int("offset", start), zap.Int("rules", len(sheet.Rules)))

	p.closeTag(styleTag)
	return NewStyle(sheet)
}

package css

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/boxesandglue/pageparse/internal/scan"
)

// Parse errors. Errors returned by Parse wrap exactly one of these.
var (
	ErrUnexpectedCharacter = scan.ErrUnexpectedCharacter
	ErrMismatch            = scan.ErrMismatch
	ErrMalformedLiteral    = scan.ErrMalformedLiteral
	ErrEndOfInput          = scan.ErrEndOfInput
)

// Parser parses CSS source into a Stylesheet. A Parser keeps no state between
// calls and can be used from several goroutines.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser. A nil logger disables logging.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS source with a parser that does not log.
func Parse(source string) (*Stylesheet, error) {
	return NewParser(nil).Parse(source)
}

// Parse parses source into a stylesheet. Any grammar violation aborts the
// parse and no stylesheet is returned.
func (p *Parser) Parse(source string) (sheet *Stylesheet, err error) {
	p.log.Debug("Parsing CSS", zap.Int("bytes", len(source)))
	sp := &sheetParser{Cursor: scan.New(source)}
	defer func() {
		if err != nil {
			sheet = nil
			p.log.Debug("CSS parse error", zap.Error(err))
		}
	}()
	defer scan.Recover(&err)
	sheet = &Stylesheet{Rules: sp.parseRules()}
	p.log.Debug("Parsed CSS", zap.Int("rules", len(sheet.Rules)))
	return sheet, nil
}

// sheetParser holds the cursor for one Parse call.
type sheetParser struct {
	*scan.Cursor
}

func (p *sheetParser) parseRules() []Rule {
	rules := []Rule{}
	for {
		p.ConsumeWhitespace()
		if p.EOF() {
			return rules
		}
		rules = append(rules, p.parseRule())
	}
}

func (p *sheetParser) parseRule() Rule {
	return Rule{
		Selectors:    p.parseSelectors(),
		Declarations: p.parseDeclarations(),
	}
}

// parseSelectors reads a comma separated selector list up to (not including)
// the opening brace.
func (p *sheetParser) parseSelectors() []Selector {
	var sels []Selector
	for {
		sels = append(sels, Simple{p.parseSimpleSelector()})
		p.ConsumeWhitespace()
		switch c := p.Next(); c {
		case ',':
			p.Consume()
			p.ConsumeWhitespace()
		case '{':
			SortSelectors(sels)
			return sels
		default:
			p.Fail(ErrUnexpectedCharacter, "%q in selector list", c)
		}
	}
}

// parseSimpleSelector reads tag, #id, .class and * parts until something else
// shows up. A later tag name or id replaces an earlier one.
func (p *sheetParser) parseSimpleSelector() SimpleSelector {
	var sel SimpleSelector
	for !p.EOF() {
		switch c := p.Next(); {
		case c == '.':
			p.Consume()
			sel.Classes = append(sel.Classes, p.parseIdentifier())
		case c == '#':
			p.Consume()
			sel.ID = p.parseIdentifier()
		case c == '*':
			p.Consume()
		case isIdentifierChar(c):
			sel.TagName = p.parseIdentifier()
		default:
			return sel
		}
	}
	return sel
}

func (p *sheetParser) parseDeclarations() []Declaration {
	p.Expect('{')
	decls := []Declaration{}
	for {
		p.ConsumeWhitespace()
		if p.Next() == '}' {
			p.Consume()
			return decls
		}
		decls = append(decls, p.parseDeclaration())
	}
}

func (p *sheetParser) parseDeclaration() Declaration {
	name := p.parseIdentifier()
	p.ConsumeWhitespace()
	p.Expect(':')
	p.ConsumeWhitespace()
	value := p.parseValue()
	p.ConsumeWhitespace()
	p.Expect(';')
	return Declaration{Name: name, Value: value}
}

func (p *sheetParser) parseValue() Value {
	switch c := p.Next(); {
	case c >= '0' && c <= '9':
		return p.parseLength()
	case c == '#':
		return p.parseColor()
	default:
		return p.parseKeyword()
	}
}

func (p *sheetParser) parseLength() Value {
	return Length{Magnitude: p.parseFloat(), Unit: p.parseUnit()}
}

func (p *sheetParser) parseFloat() float64 {
	at := p.Pos()
	s := p.ConsumeWhile(func(c rune) bool {
		return (c >= '0' && c <= '9') || c == '.'
	})
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.FailAt(at, ErrMalformedLiteral, "number %q", s)
	}
	return f
}

func (p *sheetParser) parseUnit() Unit {
	at := p.Pos()
	switch u := strings.ToLower(p.parseIdentifier()); u {
	case "px":
		return Px
	default:
		p.FailAt(at, ErrUnexpectedCharacter, "unsupported unit %q", u)
	}
	return 0
}

func (p *sheetParser) parseColor() Value {
	p.Expect('#')
	return ColorValue{Color{
		R: p.parseHexPair(),
		G: p.parseHexPair(),
		B: p.parseHexPair(),
		A: 255,
	}}
}

func (p *sheetParser) parseHexPair() uint8 {
	at := p.Pos()
	s := p.Take(2)
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		p.FailAt(at, ErrMalformedLiteral, "hex pair %q", s)
	}
	return uint8(v)
}

// parseKeyword reads an identifier. The named colors become ColorConstValue,
// everything else is a Keyword.
func (p *sheetParser) parseKeyword() Value {
	ident := p.parseIdentifier()
	if cc, ok := LookupColorConst(ident); ok {
		return ColorConstValue{Name: ident, Const: cc}
	}
	return Keyword(ident)
}

func (p *sheetParser) parseIdentifier() string {
	return p.ConsumeWhile(isIdentifierChar)
}

func isIdentifierChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}

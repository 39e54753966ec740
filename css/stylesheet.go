package css

// Stylesheet is the result of parsing one CSS source.
type Stylesheet struct {
	Rules []Rule
}

// Rule is a selector list with its declarations. Selectors are sorted most
// specific first; declarations keep their source order.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Selector is a CSS selector. Simple is the only implementation.
type Selector interface {
	// Specificity returns the [id, class, tag] counts of the selector.
	Specificity() Specificity
	// String returns the selector in CSS syntax.
	String() string
	isSelector()
}

// Simple is a selector consisting of one simple selector.
type Simple struct {
	SimpleSelector
}

func (Simple) isSelector() {}

// SimpleSelector matches on an optional tag name, an optional id and any
// number of classes. An empty TagName or ID means the part is absent; the
// universal selector * is the zero value.
type SimpleSelector struct {
	TagName string
	ID      string
	Classes []string
}

// Declaration is a single "name: value" pair.
type Declaration struct {
	Name  string
	Value Value
}

// Value is a declaration value. The concrete types are Keyword, Length,
// ColorValue, ColorConstValue, PseudoClassValue and PseudoElementValue.
type Value interface {
	String() string
	isValue()
}

// Keyword is a bare identifier such as "auto" or "block".
type Keyword string

// Length is a number with a unit.
type Length struct {
	Magnitude float64
	Unit      Unit
}

// ColorValue is a literal #rrggbb color.
type ColorValue struct {
	Color Color
}

// ColorConstValue is one of the named color keywords. Name is the identifier
// as written in the source.
type ColorConstValue struct {
	Name  string
	Const ColorConst
}

// PseudoClassValue is reserved for pseudo-class values. PseudoClass has no
// implementations yet, so the parser never produces one.
type PseudoClassValue struct {
	Class PseudoClass
}

// PseudoElementValue is reserved for pseudo-element values. PseudoElement has
// no implementations yet, so the parser never produces one.
type PseudoElementValue struct {
	Element PseudoElement
}

// PseudoClass is the closed set of pseudo-classes. It is currently empty.
type PseudoClass interface {
	isPseudoClass()
}

// PseudoElement is the closed set of pseudo-elements. It is currently empty.
type PseudoElement interface {
	isPseudoElement()
}

func (Keyword) isValue()            {}
func (Length) isValue()             {}
func (ColorValue) isValue()         {}
func (ColorConstValue) isValue()    {}
func (PseudoClassValue) isValue()   {}
func (PseudoElementValue) isValue() {}

// Unit is a length unit.
type Unit int

const (
	// Px is the CSS pixel.
	Px Unit = iota
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	}
	return "unknown"
}

// ToPx returns the magnitude of a pixel length and 0 for every other value.
func ToPx(v Value) float64 {
	if l, ok := v.(Length); ok && l.Unit == Px {
		return l.Magnitude
	}
	return 0
}

// ToColor returns the color of a literal or named color value. ok is false
// for all other values.
func ToColor(v Value) (c Color, ok bool) {
	switch t := v.(type) {
	case ColorValue:
		return t.Color, true
	case ColorConstValue:
		return t.Const.Color(), true
	}
	return Color{}, false
}

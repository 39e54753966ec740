package css

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (k Keyword) String() string { return string(k) }

func (l Length) String() string {
	return strconv.FormatFloat(l.Magnitude, 'f', -1, 64) + l.Unit.String()
}

func (c ColorValue) String() string { return c.Color.String() }

func (c ColorConstValue) String() string { return c.Name }

// PseudoClassValue and PseudoElementValue cannot hold a value yet.
func (PseudoClassValue) String() string   { return "" }
func (PseudoElementValue) String() string { return "" }

// String returns the selector in CSS syntax: tag, then id, then classes.
// The universal selector is written as *.
func (s SimpleSelector) String() string {
	var sb strings.Builder
	sb.WriteString(s.TagName)
	if s.ID != "" {
		sb.WriteString("#" + s.ID)
	}
	for _, c := range s.Classes {
		sb.WriteString("." + c)
	}
	if sb.Len() == 0 {
		return "*"
	}
	return sb.String()
}

// String returns the declaration as "name: value".
func (d Declaration) String() string {
	return d.Name + ": " + d.Value.String()
}

// SelectorText returns the comma separated selector list of the rule.
func (r Rule) SelectorText() string {
	parts := make([]string, 0, len(r.Selectors))
	for _, sel := range r.Selectors {
		parts = append(parts, sel.String())
	}
	return strings.Join(parts, ", ")
}

// WriteTo writes the stylesheet as CSS text to w, implementing io.WriterTo.
// Rules keep their order, selectors are written in specificity order.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		if i > 0 {
			n, err := fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeRule(w, rule)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb)
	return sb.String()
}

func writeRule(w io.Writer, rule Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.SelectorText())
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "  %s;\n", d)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

package css

import (
	"slices"

	"github.com/andybalholm/cascadia"
)

// Specificity is the [id, class, tag] triple used to rank selectors. It is the
// same type cascadia reports for compiled selectors.
type Specificity = cascadia.Specificity

// Specificity counts the id, the classes and the tag name of the selector.
func (s SimpleSelector) Specificity() Specificity {
	var spec Specificity
	if s.ID != "" {
		spec[0] = 1
	}
	spec[1] = len(s.Classes)
	if s.TagName != "" {
		spec[2] = 1
	}
	return spec
}

// SortSelectors orders sels by descending specificity. Selectors with equal
// specificity keep their relative order.
func SortSelectors(sels []Selector) {
	slices.SortStableFunc(sels, func(a, b Selector) int {
		sa, sb := a.Specificity(), b.Specificity()
		switch {
		case sb.Less(sa):
			return -1
		case sa.Less(sb):
			return 1
		}
		return 0
	})
}

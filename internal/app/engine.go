package app

import (
	"strings"

	"lombok_paradise/internal/domain"
)

// freeThreshold is the price (in rupiah) under which a destination counts as
// budget-friendly for price-filter rules.
const freeThreshold = 50000

// Evaluate runs the recommendation and filter engine over records: it
// computes the triggered rules from the keyword alone, then keeps every
// record that passes all four predicates (category, location, transport,
// keyword/smart). Pure and total: no I/O, input order preserved, safe to
// call on every query-state change.
//
// When any rule triggers ("smart mode"), plain substring matching on
// name/desc is suppressed entirely, even where it would have accepted more
// records. That is the contract, not an accident.
func Evaluate(records []domain.Destination, q domain.QueryState) domain.Evaluation {
	lower := strings.ToLower(q.Keyword)
	triggered := TriggeredRules(q.Keyword)
	smart := len(triggered) > 0

	results := make([]domain.Destination, 0, len(records))
	for _, d := range records {
		if !passFilter(d.TypeURI, q.Category, false) {
			continue
		}
		if !passFilter(d.Location, q.Location, false) {
			continue
		}
		if !passFilter(d.Transport, q.Transport, true) {
			continue
		}
		if smart {
			if !matchesAnyRule(d, triggered) {
				continue
			}
		} else if lower != "" {
			if !strings.Contains(strings.ToLower(d.Name), lower) &&
				!strings.Contains(strings.ToLower(d.Desc), lower) {
				continue
			}
		}
		results = append(results, d)
	}
	return domain.Evaluation{Results: results, TriggeredRules: triggered}
}

// passFilter implements one of the three AND-composed selection predicates:
// "all" (or empty) passes everything, otherwise the selected fragment must
// appear in the field as a substring.
func passFilter(field, selected string, fold bool) bool {
	if selected == "" || selected == "all" {
		return true
	}
	if fold {
		return strings.Contains(strings.ToLower(field), strings.ToLower(selected))
	}
	return strings.Contains(field, selected)
}

// matchesAnyRule applies the triggered rules to one record; the first match
// wins and no further rules are checked.
func matchesAnyRule(d domain.Destination, rules []domain.Rule) bool {
	for _, r := range rules {
		for _, frag := range r.Types {
			if strings.Contains(d.TypeURI, frag) {
				return true
			}
		}
		if r.PriceFilter && isBudgetPrice(d.Price) {
			return true
		}
	}
	return false
}

// isBudgetPrice reports whether a raw price string counts as cheap or free:
// explicit "free"/"gratis", an empty price, or a numeric value under the
// threshold. Unparsable prices parse to 0 and therefore pass; they are
// never treated as disqualifying.
func isBudgetPrice(price string) bool {
	if price == "" {
		return true
	}
	lower := strings.ToLower(price)
	if strings.Contains(lower, "free") || strings.Contains(lower, "gratis") {
		return true
	}
	return parsePriceDigits(price) < freeThreshold
}

// parsePriceDigits strips every non-ASCII-digit character and parses the
// remainder; an empty remainder is 0.
func parsePriceDigits(price string) int {
	n := 0
	seen := false
	for i := 0; i < len(price); i++ {
		c := price[i]
		if c < '0' || c > '9' {
			continue
		}
		seen = true
		n = n*10 + int(c-'0')
		if n >= freeThreshold {
			// magnitude is all the threshold check needs
			return n
		}
	}
	if !seen {
		return 0
	}
	return n
}

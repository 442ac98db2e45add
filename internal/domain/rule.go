package domain

// Rule is one static keyword-to-recommendation mapping of the smart search.
// Keywords are matched by case-insensitive substring containment against the
// whole search string. Types, when non-empty, is an allowlist of typeURI
// fragments; PriceFilter switches the rule to the cheap/free price predicate.
type Rule struct {
	ID          string   `json:"id"`
	Keywords    []string `json:"-"`
	Types       []string `json:"-"`
	PriceFilter bool     `json:"-"`
	BadgeEN     string   `json:"badgeEn"`
	BadgeID     string   `json:"badgeId"`
}

// Badge returns the localized badge label for lang.
func (r Rule) Badge(lang Lang) string {
	if lang == LangID {
		return r.BadgeID
	}
	return r.BadgeEN
}

package app

import (
	"strings"

	"lombok_paradise/internal/domain"
)

// Rules is the fixed smart-search table, evaluated in declaration order.
// Type fragments follow the ontology's spelling (including "Forrest").
// No runtime mutation; triggered-rule order mirrors this slice.
var Rules = []domain.Rule{
	{
		ID:       "holiday",
		Keywords: []string{"liburan", "holiday", "summer", "vacation", "libur", "rekreasi"},
		Types:    []string{"Marine", "Island", "Park", "Natural"},
		BadgeEN:  "✨ Holiday Choice",
		BadgeID:  "✨ Pilihan Liburan",
	},
	{
		ID:          "budget",
		Keywords:    []string{"murah", "cheap", "budget", "hemat", "gratis", "free", "affordable"},
		PriceFilter: true,
		BadgeEN:     "💰 Budget Friendly",
		BadgeID:     "💰 Hemat Budget",
	},
	{
		ID:       "family",
		Keywords: []string{"keluarga", "family", "kids", "anak", "children"},
		Types:    []string{"Park", "Waterfall", "Bathing", "Island"},
		BadgeEN:  "👨‍👩‍👧‍👦 Family Friendly",
		BadgeID:  "👨‍👩‍👧‍👦 Ramah Keluarga",
	},
	{
		ID:       "adventure",
		Keywords: []string{"petualangan", "adventure", "hiking", "trekking", "pendakian", "extreme"},
		Types:    []string{"Mountain", "Cave", "Natural", "Forrest"},
		BadgeEN:  "🧗 Adventure Spot",
		BadgeID:  "🧗 Spot Petualangan",
	},
	{
		ID:       "culture",
		Keywords: []string{"budaya", "culture", "sejarah", "history", "tradisi", "sasak", "religion"},
		Types:    []string{"Cultural", "Religious", "Village"},
		BadgeEN:  "🏛️ Cultural Heritage",
		BadgeID:  "🏛️ Warisan Budaya",
	},
	{
		ID:       "nature",
		Keywords: []string{"alam", "nature", "eco", "green", "hijau", "forest", "hutan"},
		Types:    []string{"Natural", "Forrest", "Eco", "Park"},
		BadgeEN:  "🌿 Nature Escape",
		BadgeID:  "🌿 Wisata Alam",
	},
	{
		ID:       "relax",
		Keywords: []string{"relax", "santai", "spa", "wellness", "healing", "pemandian", "istirahat"},
		Types:    []string{"Bathing", "Park", "Island"},
		BadgeEN:  "🧘 Relaxation",
		BadgeID:  "🧘 Relaksasi",
	},
	{
		ID:       "photo",
		Keywords: []string{"foto", "photo", "instagram", "scenic", "view", "pemandangan", "sunset"},
		Types:    []string{"Marine", "Mountain", "Island", "Valley", "Savana", "Waterfall"},
		BadgeEN:  "📸 Instagrammable",
		BadgeID:  "📸 Spot Foto",
	},
	{
		ID:       "water",
		Keywords: []string{"air", "water", "swim", "berenang", "snorkeling", "diving", "surfing", "laut"},
		Types:    []string{"Marine", "Island", "Waterfall", "Bathing", "Lake"},
		BadgeEN:  "🌊 Water Activities",
		BadgeID:  "🌊 Wisata Air",
	},
	{
		ID:       "food",
		Keywords: []string{"makanan", "food", "kuliner", "culinary", "makan", "eat", "restaurant", "kopi"},
		Types:    []string{"Culinary"},
		BadgeEN:  "🍜 Culinary Tour",
		BadgeID:  "🍜 Wisata Kuliner",
	},
}

// TriggeredRules returns every rule whose keyword set has a substring match
// in keyword, in table order. Matching is over the whole lower-cased search
// string, not tokenized: "myholidaytrip" triggers "holiday".
func TriggeredRules(keyword string) []domain.Rule {
	lower := strings.ToLower(keyword)
	if lower == "" {
		return nil
	}
	var out []domain.Rule
	for _, r := range Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

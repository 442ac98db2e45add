package app

import (
	"strings"

	"github.com/rs/zerolog/log"

	"lombok_paradise/internal/domain"
)

/********** fallback chains (single source of truth) **********/

// Chains are ordered candidate keys into the attribute bag, most specific
// first. Localized fields resolve lang-specific -> other language -> legacy
// single-language value; the literal default applies when every candidate is
// absent or blank.

// name is the stable record key (TourismName); it does not localize. The
// events query has no TourismName, so its bags carry a synthesized name.
var nameChain = []string{"name", "nameEn", "nameId"}

var enChains = map[string][]string{
	"typeLabel":    {"labelEn"},
	"desc":         {"descriptionEn", "description"},
	"price":        {"priceValEn", "priceVal"},
	"activity":     {"activityValEn", "activityVal"},
	"facility":     {"facilityValEn", "facilityVal"},
	"openingHours": {"openingHoursValEn", "openingHoursVal"},
	"location":     {"locationsEn", "locationsId"},
}

var idChains = map[string][]string{
	"typeLabel":    {"labelId", "labelEn"},
	"desc":         {"descriptionId", "descriptionEn", "description"},
	"price":        {"priceValId", "priceValEn", "priceVal"},
	"activity":     {"activityValId", "activityValEn", "activityVal"},
	"facility":     {"facilityValId", "facilityValEn", "facilityVal"},
	"openingHours": {"openingHoursValId", "openingHoursValEn", "openingHoursVal"},
	"location":     {"locationsId", "locationsEn"},
}

// Literal defaults when a whole chain comes up empty.
const (
	defaultTypeLabel    = "Destination"
	defaultDesc         = "No description available."
	defaultPrice        = "Free"
	defaultLocation     = "Lombok"
	defaultActivity     = "Various activities available."
	defaultFacility     = "Basic facilities available."
	defaultOpeningHours = "Open daily"
	defaultTransportEN  = "Private Vehicle"
	defaultTransportID  = "Kendaraan Pribadi"
)

/********** tiny helpers **********/

// firstNonEmpty walks candidate keys in priority order.
func firstNonEmpty(bag domain.AttributeBag, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(bag[k]); v != "" {
			return v
		}
	}
	return ""
}

func chainOr(bag domain.AttributeBag, chain []string, def string) string {
	if v := firstNonEmpty(bag, chain...); v != "" {
		return v
	}
	return def
}

// TypeLabelFromURI derives a human-readable label from the fragment after
// the last '#': a space is inserted before every uppercase letter that is
// not the first character. "MarineTourism" -> "Marine Tourism".
func TypeLabelFromURI(uri string) string {
	i := strings.LastIndexByte(uri, '#')
	if i < 0 {
		return ""
	}
	frag := uri[i+1:]
	if frag == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(frag) + 4)
	for i, r := range frag {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func defaultTransport(lang domain.Lang) string {
	if lang == domain.LangID {
		return defaultTransportID
	}
	return defaultTransportEN
}

/********** normalizer **********/

// Normalize converts one raw attribute bag into a canonical Destination for
// lang. It is pure: no I/O, no mutation of the bag. Bags without a usable
// name or typeURI, or typed only as the generic individual marker, yield
// domain.ErrMalformedRecord.
func Normalize(bag domain.AttributeBag, lang domain.Lang) (domain.Destination, error) {
	chains := enChains
	if lang == domain.LangID {
		chains = idChains
	}

	name := firstNonEmpty(bag, nameChain...)
	typeURI := strings.TrimSpace(bag["typeURI"])
	if name == "" || typeURI == "" || typeURI == domain.NamedIndividualURI {
		return domain.Destination{}, domain.ErrMalformedRecord
	}

	typeLabel := firstNonEmpty(bag, chains["typeLabel"]...)
	if typeLabel == "" {
		typeLabel = TypeLabelFromURI(typeURI)
	}
	if typeLabel == "" {
		typeLabel = defaultTypeLabel
	}

	return domain.Destination{
		Name:         name,
		TypeURI:      typeURI,
		TypeLabel:    typeLabel,
		Desc:         chainOr(bag, chains["desc"], defaultDesc),
		Img:          strings.TrimSpace(bag["image"]),
		Price:        chainOr(bag, chains["price"], defaultPrice),
		Location:     chainOr(bag, chains["location"], defaultLocation),
		Transport:    chainOr(bag, []string{"transports"}, defaultTransport(lang)),
		Rating:       strings.TrimSpace(bag["ratingVal"]), // genuinely optional, no default
		Activity:     chainOr(bag, chains["activity"], defaultActivity),
		Facility:     chainOr(bag, chains["facility"], defaultFacility),
		OpeningHours: chainOr(bag, chains["openingHours"], defaultOpeningHours),
		Video:        strings.TrimSpace(bag["videoUrl"]),
		TimeEvents:   strings.TrimSpace(bag["timeEventsVal"]),
		Language:     lang,
	}, nil
}

// NormalizeBatch normalizes every bag for lang, dropping malformed records
// instead of failing the batch. Dropped bags are logged and returned by
// count so the caller can record the misses.
func NormalizeBatch(bags []domain.AttributeBag, lang domain.Lang) ([]domain.Destination, int) {
	out := make([]domain.Destination, 0, len(bags))
	dropped := 0
	for _, bag := range bags {
		d, err := Normalize(bag, lang)
		if err != nil {
			dropped++
			log.Warn().
				Str("name", bag["name"]).
				Str("typeURI", bag["typeURI"]).
				Msg("skipping malformed record")
			continue
		}
		out = append(out, d)
	}
	return out, dropped
}

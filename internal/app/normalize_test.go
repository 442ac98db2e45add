package app_test

import (
	"errors"
	"testing"

	"lombok_paradise/internal/app"
	"lombok_paradise/internal/domain"
)

const marineURI = "http://www.semanticweb.org/harto/ontologies/2025/3/protegetesis#MarineTourism"

func TestNormalize_DefaultsWhenAllOptionalAbsent(t *testing.T) {
	bag := domain.AttributeBag{
		"name":    "Pantai Kuta",
		"typeURI": marineURI,
	}
	d, err := app.Normalize(bag, domain.LangEN)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	want := map[string]string{
		"TypeLabel":    "Marine Tourism", // derived from the URI fragment
		"Desc":         "No description available.",
		"Img":          "",
		"Price":        "Free",
		"Location":     "Lombok",
		"Transport":    "Private Vehicle",
		"Activity":     "Various activities available.",
		"Facility":     "Basic facilities available.",
		"OpeningHours": "Open daily",
	}
	got := map[string]string{
		"TypeLabel":    d.TypeLabel,
		"Desc":         d.Desc,
		"Img":          d.Img,
		"Price":        d.Price,
		"Location":     d.Location,
		"Transport":    d.Transport,
		"Activity":     d.Activity,
		"Facility":     d.Facility,
		"OpeningHours": d.OpeningHours,
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s = %q, want %q", k, got[k], w)
		}
	}
	if d.Rating != "" {
		t.Errorf("Rating should stay absent, got %q", d.Rating)
	}
}

func TestNormalize_TransportDefaultIsLocalized(t *testing.T) {
	bag := domain.AttributeBag{"name": "Pantai Kuta", "typeURI": marineURI}
	d, err := app.Normalize(bag, domain.LangID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Transport != "Kendaraan Pribadi" {
		t.Fatalf("Transport = %q, want Kendaraan Pribadi", d.Transport)
	}
}

func TestNormalize_FallbackChainPriority(t *testing.T) {
	bag := domain.AttributeBag{
		"name":          "Pantai Kuta",
		"typeURI":       marineURI,
		"description":   "legacy desc",
		"descriptionEn": "english desc",
		"descriptionId": "deskripsi indonesia",
	}

	// Indonesian-first: id wins over en while present.
	d, err := app.Normalize(bag, domain.LangID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Desc != "deskripsi indonesia" {
		t.Fatalf("id Desc = %q, want the Indonesian variant", d.Desc)
	}

	// English view prefers en over legacy.
	d, err = app.Normalize(bag, domain.LangEN)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Desc != "english desc" {
		t.Fatalf("en Desc = %q, want the English variant", d.Desc)
	}

	// Without either localized variant the legacy single value wins.
	delete(bag, "descriptionEn")
	delete(bag, "descriptionId")
	d, err = app.Normalize(bag, domain.LangID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Desc != "legacy desc" {
		t.Fatalf("legacy Desc = %q", d.Desc)
	}
}

func TestTypeLabelFromURI(t *testing.T) {
	cases := []struct{ uri, want string }{
		{marineURI, "Marine Tourism"},
		{"http://x#CulturalandReligiousTourism", "Culturaland Religious Tourism"},
		{"http://x#Agrotourism", "Agrotourism"},
		{"noFragment", ""},
		{"http://x#", ""},
	}
	for _, c := range cases {
		if got := app.TypeLabelFromURI(c.uri); got != c.want {
			t.Errorf("TypeLabelFromURI(%q) = %q, want %q", c.uri, got, c.want)
		}
	}
}

func TestNormalize_RejectsMalformed(t *testing.T) {
	cases := []domain.AttributeBag{
		{"typeURI": marineURI},   // no name
		{"name": "Pantai Kuta"},  // no typeURI
		{"name": "Pantai Kuta", "typeURI": domain.NamedIndividualURI}, // generic marker only
	}
	for i, bag := range cases {
		if _, err := app.Normalize(bag, domain.LangEN); !errors.Is(err, domain.ErrMalformedRecord) {
			t.Errorf("case %d: err = %v, want ErrMalformedRecord", i, err)
		}
	}
}

func TestNormalizeBatch_DropsBadRecordsAndContinues(t *testing.T) {
	bags := []domain.AttributeBag{
		{"name": "Pantai Kuta", "typeURI": marineURI},
		{"typeURI": marineURI}, // malformed
		{"name": "Gunung Rinjani", "typeURI": "http://x#MountainTourism"},
	}
	out, dropped := app.NormalizeBatch(bags, domain.LangEN)
	if len(out) != 2 || dropped != 1 {
		t.Fatalf("got %d records, %d dropped; want 2 and 1", len(out), dropped)
	}
	if out[0].Name != "Pantai Kuta" || out[1].Name != "Gunung Rinjani" {
		t.Fatalf("unexpected order: %q, %q", out[0].Name, out[1].Name)
	}
}

func TestNormalize_TypeLabelDefaultWhenNoFragment(t *testing.T) {
	bag := domain.AttributeBag{"name": "Mystery", "typeURI": "http://x#"}
	d, err := app.Normalize(bag, domain.LangEN)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.TypeLabel != "Destination" {
		t.Fatalf("TypeLabel = %q, want Destination", d.TypeLabel)
	}
}

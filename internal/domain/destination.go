package domain

// NamedIndividualURI is the generic OWL individual marker. Every entity in the
// triple store carries it alongside its real tourism class; records where it
// is the only type are unusable and must be rejected.
const NamedIndividualURI = "http://www.w3.org/2002/07/owl#NamedIndividual"

// EventsTypeURI is the fixed class of event individuals. Events are stored
// under rdfs:label instead of to:TourismName and are fetched by a separate
// query, so the SPARQL adapter stamps this type on their bags.
const EventsTypeURI = "http://www.semanticweb.org/harto/ontologies/2025/3/protegetesis#Events"

// Lang selects which localized variant wins during normalization and reads.
type Lang string

const (
	LangEN Lang = "en"
	LangID Lang = "id"
)

// AttributeBag is one raw, sparse record from the SPARQL endpoint: a flat
// mapping of result-variable name to literal value. Multi-valued attributes
// (locations, transports) arrive pre-joined with ", ". Absent variables are
// simply missing keys.
type AttributeBag map[string]string

// Destination is the canonical, fully-defaulted record consumed by the
// filter engine and the API. After normalization every field except Rating,
// Video and TimeEvents is guaranteed non-empty.
type Destination struct {
	Name         string `json:"name"`
	TypeURI      string `json:"typeURI"`
	TypeLabel    string `json:"typeLabel"`
	Desc         string `json:"desc"`
	Img          string `json:"img"`
	Price        string `json:"price"`
	Location     string `json:"location"`
	Transport    string `json:"transport"`
	Rating       string `json:"rating,omitempty"`
	Activity     string `json:"activity"`
	Facility     string `json:"facility"`
	OpeningHours string `json:"openingHours"`
	Video        string `json:"video,omitempty"`
	TimeEvents   string `json:"timeEvents,omitempty"`
	Language     Lang   `json:"language"`
}

// DestinationI18n holds the language-dependent slice of a destination for
// storage; the base row keeps the language-agnostic fields.
type DestinationI18n struct {
	Name         string
	TypeURI      string
	Lang         Lang
	TypeLabel    string
	Desc         string
	Price        string
	Location     string
	Transport    string
	Activity     string
	Facility     string
	OpeningHours string
}

// QueryState is the immutable input of one engine evaluation: the free-text
// keyword plus the three filter selections. "all" (or empty) disables a
// filter.
type QueryState struct {
	Keyword   string
	Category  string
	Location  string
	Transport string
}

// Evaluation is what the engine hands to the presentation layer.
type Evaluation struct {
	Results        []Destination
	TriggeredRules []Rule
}

package fuseki

// destinationsQuery groups by entity, samples one value per optional
// attribute, and concatenates multi-valued locations/transports with ", ".
// owl:NamedIndividual rows are filtered at the source; the normalizer still
// rejects any that slip through.
const destinationsQuery = `
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX to: <http://www.semanticweb.org/harto/ontologies/2025/3/protegetesis#>

SELECT ?name ?typeURI
  (SAMPLE(?nameLabelEn) as ?nameEn)
  (SAMPLE(?nameLabelId) as ?nameId)
  (SAMPLE(?typeLabelEn) as ?labelEn)
  (SAMPLE(?typeLabelId) as ?labelId)
  (SAMPLE(?desc) as ?description)
  (SAMPLE(?descEn) as ?descriptionEn)
  (SAMPLE(?descId) as ?descriptionId)
  (SAMPLE(?img) as ?image)
  (SAMPLE(?price) as ?priceVal)
  (SAMPLE(?priceEn) as ?priceValEn)
  (SAMPLE(?priceId) as ?priceValId)
  (SAMPLE(?rating) as ?ratingVal)
  (SAMPLE(?activity) as ?activityVal)
  (SAMPLE(?activityEn) as ?activityValEn)
  (SAMPLE(?activityId) as ?activityValId)
  (SAMPLE(?facility) as ?facilityVal)
  (SAMPLE(?facilityEn) as ?facilityValEn)
  (SAMPLE(?facilityId) as ?facilityValId)
  (SAMPLE(?openHours) as ?openingHoursVal)
  (SAMPLE(?openHoursEn) as ?openingHoursValEn)
  (SAMPLE(?openHoursId) as ?openingHoursValId)
  (SAMPLE(?video) as ?videoUrl)
  (SAMPLE(?eventTime) as ?timeEventsVal)
  (GROUP_CONCAT(DISTINCT ?locNameEn; separator=", ") as ?locationsEn)
  (GROUP_CONCAT(DISTINCT ?locNameId; separator=", ") as ?locationsId)
  (GROUP_CONCAT(DISTINCT ?transName; separator=", ") as ?transports)
WHERE {
  ?s to:TourismName ?name .
  ?s rdf:type ?typeURI .
  FILTER(?typeURI != owl:NamedIndividual)

  OPTIONAL { ?s rdfs:label ?nameLabelEn . FILTER(lang(?nameLabelEn) = "en" || lang(?nameLabelEn) = "") }
  OPTIONAL { ?s rdfs:label ?nameLabelId . FILTER(lang(?nameLabelId) = "id") }

  OPTIONAL { ?typeURI rdfs:label ?typeLabelEn . FILTER(lang(?typeLabelEn) = "en" || lang(?typeLabelEn) = "") }
  OPTIONAL { ?typeURI rdfs:label ?typeLabelId . FILTER(lang(?typeLabelId) = "id") }

  OPTIONAL { ?s to:Description ?desc . }
  OPTIONAL { ?s to:meaningdescription ?descEn . FILTER(lang(?descEn) = "en") }
  OPTIONAL { ?s to:meaningdescription ?descId . FILTER(lang(?descId) = "id") }

  OPTIONAL { ?s to:Images ?img . }
  OPTIONAL { ?s to:Price ?price . }
  OPTIONAL { ?s to:pricedescription ?priceEn . FILTER(lang(?priceEn) = "en") }
  OPTIONAL { ?s to:pricedescription ?priceId . FILTER(lang(?priceId) = "id") }
  OPTIONAL { ?s to:Ratings ?rating . }

  OPTIONAL { ?s to:Activity ?activity . }
  OPTIONAL { ?s to:activitydescprition ?activityEn . FILTER(lang(?activityEn) = "en") }
  OPTIONAL { ?s to:activitydescprition ?activityId . FILTER(lang(?activityId) = "id") }

  OPTIONAL { ?s to:Facility ?facility . }
  OPTIONAL { ?s to:facilitydescription ?facilityEn . FILTER(lang(?facilityEn) = "en") }
  OPTIONAL { ?s to:facilitydescription ?facilityId . FILTER(lang(?facilityId) = "id") }

  OPTIONAL { ?s to:OpeningHours ?openHours . }
  OPTIONAL { ?s to:openinghoursdescription ?openHoursEn . FILTER(lang(?openHoursEn) = "en") }
  OPTIONAL { ?s to:openinghoursdescription ?openHoursId . FILTER(lang(?openHoursId) = "id") }

  OPTIONAL {
    ?s to:Locatedin ?loc .
    ?loc rdf:type ?locType .
    FILTER(?locType != owl:NamedIndividual)
    OPTIONAL { ?locType rdfs:label ?locLabelEn . FILTER(lang(?locLabelEn) = "en" || lang(?locLabelEn) = "") }
    OPTIONAL { ?locType rdfs:label ?locLabelId . FILTER(lang(?locLabelId) = "id") }
    BIND(COALESCE(?locLabelEn, STRAFTER(STR(?locType), "#")) as ?locNameEn)
    BIND(COALESCE(?locLabelId, STRAFTER(STR(?locType), "#")) as ?locNameId)
  }

  OPTIONAL {
    ?trans to:used_to_reach ?s .
    BIND(STRAFTER(STR(?trans), "#") as ?transName)
  }

  OPTIONAL { ?s to:Video ?video . }
  OPTIONAL { ?s to:TimeEvents ?eventTime . }
}
GROUP BY ?name ?typeURI
LIMIT 300
`

const eventsQuery = `
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX to: <http://www.semanticweb.org/harto/ontologies/2025/3/protegetesis#>

SELECT ?eventNameEn ?eventNameId ?desc ?descEn ?descId ?img ?time ?video
WHERE {
  ?s rdf:type to:Events .
  OPTIONAL { ?s rdfs:label ?eventNameEn . FILTER(lang(?eventNameEn) = "en" || lang(?eventNameEn) = "") }
  OPTIONAL { ?s rdfs:label ?eventNameId . FILTER(lang(?eventNameId) = "id") }
  OPTIONAL { ?s to:Description ?desc }
  OPTIONAL { ?s to:meaningdescription ?descEn . FILTER(lang(?descEn) = "en") }
  OPTIONAL { ?s to:meaningdescription ?descId . FILTER(lang(?descId) = "id") }
  OPTIONAL { ?s to:Images ?img }
  OPTIONAL { ?s to:TimeEvents ?time }
  OPTIONAL { ?s to:Video ?video }
}
`

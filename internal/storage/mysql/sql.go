package mysql

const upsertDestinationSQL = `
INSERT INTO destinations
  (name, type_uri, img, rating, video, time_events)
VALUES
  (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  img         = VALUES(img),
  rating      = VALUES(rating),
  video       = VALUES(video),
  time_events = VALUES(time_events),
  updated_at  = CURRENT_TIMESTAMP
`

const upsertI18nSQL = `
INSERT INTO destination_i18n
  (name, type_uri, lang, type_label, description, price, location, transport, activity, facility, opening_hours)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  type_label    = VALUES(type_label),
  description   = VALUES(description),
  price         = VALUES(price),
  location      = VALUES(location),
  transport     = VALUES(transport),
  activity      = VALUES(activity),
  facility      = VALUES(facility),
  opening_hours = VALUES(opening_hours)
`

const insertMissSQL = `
INSERT INTO ingest_misses (name, type_uri, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// One row per destination in the requested language. i18n rows are written
// for both languages at ingest time, so the join is effectively inner; the
// LEFT JOIN only guards partially-ingested rows.
const listDestinationsSQL = `
SELECT
  d.name,
  d.type_uri,
  d.img,
  d.rating,
  d.video,
  d.time_events,
  i.type_label,
  i.description,
  i.price,
  i.location,
  i.transport,
  i.activity,
  i.facility,
  i.opening_hours
FROM destinations d
LEFT JOIN destination_i18n i
  ON i.name = d.name AND i.type_uri = d.type_uri AND i.lang = ?
ORDER BY d.name, d.type_uri
`

package mysql

import (
	"context"
	"database/sql"

	"lombok_paradise/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertDestination(ctx context.Context, d domain.Destination) error {
	_, err := r.db.ExecContext(ctx, upsertDestinationSQL,
		d.Name,
		d.TypeURI,
		d.Img,
		d.Rating,
		d.Video,
		d.TimeEvents,
	)
	return err
}

func (r *Repo) UpsertI18n(ctx context.Context, i domain.DestinationI18n) error {
	_, err := r.db.ExecContext(ctx, upsertI18nSQL,
		i.Name,
		i.TypeURI,
		string(i.Lang),
		i.TypeLabel,
		i.Desc,
		i.Price,
		i.Location,
		i.Transport,
		i.Activity,
		i.Facility,
		i.OpeningHours,
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, name, typeURI, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, name, typeURI, reason)
	return err
}

func (r *Repo) ListDestinations(ctx context.Context, lang domain.Lang) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsSQL, string(lang))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		var d domain.Destination
		var typeLabel, desc, price, location, transport sql.NullString
		var activity, facility, openingHours sql.NullString
		if err := rows.Scan(
			&d.Name,
			&d.TypeURI,
			&d.Img,
			&d.Rating,
			&d.Video,
			&d.TimeEvents,
			&typeLabel,
			&desc,
			&price,
			&location,
			&transport,
			&activity,
			&facility,
			&openingHours,
		); err != nil {
			return nil, err
		}
		d.TypeLabel = typeLabel.String
		d.Desc = desc.String
		d.Price = price.String
		d.Location = location.String
		d.Transport = transport.String
		d.Activity = activity.String
		d.Facility = facility.String
		d.OpeningHours = openingHours.String
		d.Language = lang
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"butler/internal/adapters/observability"
	"butler/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertService(ctx context.Context, s domain.ServiceRecord) error {
	menu, _ := json.Marshal(s.Menu)
	_, err := r.db.ExecContext(ctx, upsertServiceSQL,
		s.ID,
		s.Name,
		s.Description,
		valF64(s.Price),
		s.Duration,
		valStr(s.Vendor),
		valStr(s.Location),
		string(s.Type),
		valStr(s.Cuisine),
		string(menu),
	)
	return err
}

// Fetch loads all service rows and groups them into a snapshot: every row
// goes into hotel.services; restaurants, spa_services and attractions are
// the per-category views (attractions cover tours and entertainment).
func (r *Repo) Fetch(ctx context.Context) (domain.CatalogSnapshot, error) {
	start := time.Now()
	snap, err := r.fetch(ctx)
	observability.ObserveCatalogFetch("mysql", err, time.Since(start))
	return snap, err
}

func (r *Repo) fetch(ctx context.Context) (domain.CatalogSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, listServicesSQL)
	if err != nil {
		return domain.CatalogSnapshot{}, err
	}
	defer rows.Close()

	snap := domain.EmptyCatalog()
	for rows.Next() {
		var (
			s        domain.ServiceRecord
			price    sql.NullFloat64
			duration sql.NullInt64
			vendor   sql.NullString
			location sql.NullString
			category sql.NullString
			cuisine  sql.NullString
			menuRaw  sql.RawBytes
		)
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&price,
			&duration,
			&vendor,
			&location,
			&category,
			&cuisine,
			&menuRaw,
		); err != nil {
			return domain.CatalogSnapshot{}, err
		}

		if price.Valid {
			p := price.Float64
			s.Price = &p
		}
		if duration.Valid {
			s.Duration = int(duration.Int64)
		}
		if vendor.Valid {
			s.Vendor = vendor.String
		}
		if location.Valid {
			s.Location = location.String
		}
		if cuisine.Valid {
			s.Cuisine = cuisine.String
		}
		s.Type = domain.Category("general")
		if category.Valid && category.String != "" {
			s.Type = domain.Category(category.String)
		}
		if len(menuRaw) > 0 {
			_ = json.Unmarshal(menuRaw, &s.Menu)
		}

		snap.Hotel.Services = append(snap.Hotel.Services, s)
		switch s.Type {
		case domain.CategoryRestaurant:
			snap.Restaurants = append(snap.Restaurants, s)
		case domain.CategorySpa:
			snap.SpaServices = append(snap.SpaServices, s)
		case domain.CategoryTour, domain.CategoryEntertainment:
			snap.Attractions = append(snap.Attractions, s)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.CatalogSnapshot{}, err
	}
	return snap, nil
}

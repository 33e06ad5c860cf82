package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"tunisiaclean/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// PostgresRepository reads the catalog from a PostgreSQL table
type PostgresRepository struct {
	db *sqlx.DB
}

// locationRow is the flat table layout of a location
type locationRow struct {
	ID               string             `db:"id"`
	Position         int                `db:"position"`
	Name             string             `db:"name"`
	Type             string             `db:"type"`
	Address          string             `db:"address"`
	City             string             `db:"city"`
	Region           string             `db:"region"`
	Latitude         float64            `db:"latitude"`
	Longitude        float64            `db:"longitude"`
	CleanlinessScore float64            `db:"cleanliness_score"`
	RatingOverall    float64            `db:"rating_overall"`
	TotalReviews     int                `db:"total_reviews"`
	Amenities        model.JSONArray    `db:"amenities"`
	OpeningHours     model.OpeningHours `db:"opening_hours"`
	Images           model.JSONArray    `db:"images"`
	Description      sql.NullString     `db:"description"`
	Tags             model.JSONArray    `db:"tags"`
	PriceLevel       int                `db:"price_level"`
	Featured         bool               `db:"featured"`
}

const locationColumns = `
	id, position, name, type, address, city, region, latitude, longitude,
	cleanliness_score, rating_overall, total_reviews, amenities, opening_hours,
	images, description, tags, price_level, featured`

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the locations table when it does not exist
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadLocations reads every location in catalog order
func (r *PostgresRepository) LoadLocations(ctx context.Context) ([]model.Location, error) {
	query := fmt.Sprintf("SELECT %s FROM locations ORDER BY position, id", locationColumns)

	var rows []locationRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}

	locs := make([]model.Location, 0, len(rows))
	for _, row := range rows {
		locs = append(locs, row.toLocation())
	}
	return locs, nil
}

// UpsertLocations writes locs into the table, keeping their order in position
func (r *PostgresRepository) UpsertLocations(ctx context.Context, locs []model.Location) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	cols := strings.Fields(strings.ReplaceAll(locationColumns, ",", " "))
	updates := make([]string, 0, len(cols)-1)
	for _, col := range cols[1:] {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	query := fmt.Sprintf(
		"INSERT INTO locations (%s) VALUES (:%s) ON CONFLICT (id) DO UPDATE SET %s",
		strings.Join(cols, ", "),
		strings.Join(cols, ", :"),
		strings.Join(updates, ", "),
	)

	for i, loc := range locs {
		row := fromLocation(loc, i)
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("failed to upsert location %s: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (row locationRow) toLocation() model.Location {
	return model.Location{
		ID:               row.ID,
		Name:             row.Name,
		Type:             model.LocationType(row.Type),
		Address:          row.Address,
		City:             row.City,
		Region:           row.Region,
		Coordinates:      model.Coordinates{Lat: row.Latitude, Lng: row.Longitude},
		CleanlinessScore: row.CleanlinessScore,
		Ratings:          model.Ratings{Overall: row.RatingOverall, TotalReviews: row.TotalReviews},
		Amenities:        nonNil(row.Amenities),
		OpeningHours:     row.OpeningHours,
		Images:           []string(row.Images),
		Description:      row.Description.String,
		Tags:             nonNil(row.Tags),
		PriceLevel:       row.PriceLevel,
		Featured:         row.Featured,
	}
}

func fromLocation(l model.Location, position int) locationRow {
	return locationRow{
		ID:               l.ID,
		Position:         position,
		Name:             l.Name,
		Type:             string(l.Type),
		Address:          l.Address,
		City:             l.City,
		Region:           l.Region,
		Latitude:         l.Coordinates.Lat,
		Longitude:        l.Coordinates.Lng,
		CleanlinessScore: l.CleanlinessScore,
		RatingOverall:    l.Ratings.Overall,
		TotalReviews:     l.Ratings.TotalReviews,
		Amenities:        nonNil(l.Amenities),
		OpeningHours:     l.OpeningHours,
		Images:           nonNil(l.Images),
		Description:      sql.NullString{String: l.Description, Valid: l.Description != ""},
		Tags:             nonNil(l.Tags),
		PriceLevel:       l.PriceLevel,
		Featured:         l.Featured,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

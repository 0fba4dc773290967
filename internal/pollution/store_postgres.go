// Copyright (c) 2026 Aeris Labs. All rights reserved.

package pollution

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aeris-labs/aeris/internal/platform/apperr"
)

// # PostgreSQL Repository

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const readingColumns = `id, location, locationkey, pm25, pm10, no2, aqi, createdby, recordedat`

/*
Create persists a new reading into the pollution.reading table.

Parameters:
  - context: context.Context
  - reading: *Reading (Entity to persist; RecordedAt is set by the database)

Returns:
  - error: Database connectivity or execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, reading *Reading) error {
	const query = `
		INSERT INTO pollution.reading (
			id, location, locationkey, pm25, pm10, no2, aqi, createdby
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING recordedat`

	err := repository.pool.QueryRow(context, query,
		reading.ID,
		reading.Location,
		reading.LocationKey,
		reading.PM25,
		reading.PM10,
		reading.NO2,
		reading.AQI,
		reading.CreatedBy,
	).Scan(&reading.RecordedAt)

	if err != nil {
		return fmt.Errorf("postgres_reading_create_failed: %w", err)
	}

	return nil
}

/*
List returns a filtered, paginated slice of readings and the total count.

Description: Uses COUNT(*) OVER() to retrieve the total matching count
without a second query. Location filtering matches the normalized key, so
"São Paulo", "sao paulo", and "SAO-PAULO" all hit the same rows.

Parameters:
  - context: context.Context
  - filter: ListFilter

Returns:
  - []*Reading: Page of readings, newest first
  - int: Total count matching the filter
  - error: Database execution errors
*/
func (repository *PostgresRepository) List(context context.Context, filter ListFilter) ([]*Reading, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(`
		SELECT ` + readingColumns + `,
			COUNT(*) OVER() AS total_count
		FROM pollution.reading
		WHERE TRUE
	`)

	if filter.Location != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND locationkey LIKE '%%' || $%d || '%%'", argID))
		args = append(args, filter.Location)
		argID++
	}

	queryBuilder.WriteString(" ORDER BY recordedat DESC")

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_reading_list_failed: %w", err)
	}
	defer rows.Close()

	var readings []*Reading
	var total int

	for rows.Next() {
		var reading Reading
		if err := rows.Scan(
			&reading.ID,
			&reading.Location,
			&reading.LocationKey,
			&reading.PM25,
			&reading.PM10,
			&reading.NO2,
			&reading.AQI,
			&reading.CreatedBy,
			&reading.RecordedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_reading_scan_failed: %w", err)
		}
		readings = append(readings, &reading)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_reading_rows_failed: %w", err)
	}

	return readings, total, nil
}

/*
FindByID retrieves a single reading by its unique ID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Reading: Loaded entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Reading, error) {
	const query = `
		SELECT ` + readingColumns + `
		FROM pollution.reading
		WHERE id = $1`

	var reading Reading
	err := repository.pool.QueryRow(context, query, id).Scan(
		&reading.ID,
		&reading.Location,
		&reading.LocationKey,
		&reading.PM25,
		&reading.PM10,
		&reading.NO2,
		&reading.AQI,
		&reading.CreatedBy,
		&reading.RecordedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Reading")
		}
		return nil, fmt.Errorf("postgres_reading_find_failed: %w", err)
	}

	return &reading, nil
}

/*
Delete permanently removes a reading.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound if no row was removed
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM pollution.reading WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_reading_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Reading")
	}

	return nil
}

/*
Summarize computes the aggregate AQI statistics over all readings.

Description: AVG and MAX both return NULL over an empty table, which maps
cleanly onto the Summary's nullable fields.

Parameters:
  - context: context.Context

Returns:
  - *Summary: Aggregates (nil fields when no readings exist)
  - error: Execution errors
*/
func (repository *PostgresRepository) Summarize(context context.Context) (*Summary, error) {
	const query = `
		SELECT
			AVG(aqi)::float8,
			MAX(aqi)
		FROM pollution.reading`

	var summary Summary
	if err := repository.pool.QueryRow(context, query).Scan(&summary.AverageAQI, &summary.WorstAQI); err != nil {
		return nil, fmt.Errorf("postgres_reading_summarize_failed: %w", err)
	}

	return &summary, nil
}

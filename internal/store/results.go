package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spindle-tools/cli/internal/domain"
)

const resultColumns = `
	id,
	disc_id,
	device,
	read_offset,
	track_count,
	tracks_ripped,
	status,
	output_dir,
	created_at,
	updated_at
`

// Insert adds a new result record. Zero timestamps are filled with the
// current time.
func (s *Store) Insert(result domain.RipResult) error {
	now := time.Now().UTC()
	if result.CreatedAt.IsZero() {
		result.CreatedAt = now
	}
	if result.UpdatedAt.IsZero() {
		result.UpdatedAt = result.CreatedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO rip_results (`+resultColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID.String(),
		result.DiscID,
		result.Device,
		result.ReadOffset,
		result.TrackCount,
		result.TracksRipped,
		result.Status.String(),
		result.OutputDir,
		result.CreatedAt.Format(time.RFC3339),
		result.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// List returns results matching the filter, newest first.
func (s *Store) List(filter domain.ResultFilter) ([]domain.RipResult, error) {
	query := "SELECT " + resultColumns + " FROM rip_results"

	var conds []string
	var args []any
	if filter.DiscID != "" {
		conds = append(conds, "disc_id = ?")
		args = append(args, filter.DiscID)
	}
	if filter.HasStatus {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.Device != "" {
		conds = append(conds, "device = ?")
		args = append(args, filter.Device)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []domain.RipResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// Latest returns the most recent result for a disc id.
func (s *Store) Latest(discID string) (domain.RipResult, bool, error) {
	results, err := s.List(domain.ResultFilter{DiscID: discID, Limit: 1})
	if err != nil {
		return domain.RipResult{}, false, err
	}
	if len(results) == 0 {
		return domain.RipResult{}, false, nil
	}
	return results[0], true, nil
}

// UpdateStatus rewrites the outcome of one record.
func (s *Store) UpdateStatus(id uuid.UUID, status domain.RipStatus, tracksRipped int) error {
	res, err := s.db.Exec(
		`UPDATE rip_results
		 SET status = ?, tracks_ripped = ?, updated_at = ?
		 WHERE id = ?`,
		status.String(),
		tracksRipped,
		time.Now().UTC().Format(time.RFC3339),
		id.String(),
	)
	if err != nil {
		return fmt.Errorf("update result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("update result: no record with id %s", id)
	}
	return nil
}

// scanResult reads one row into a RipResult.
func scanResult(rows *sql.Rows) (domain.RipResult, error) {
	var (
		result               domain.RipResult
		id, status           string
		createdAt, updatedAt string
	)

	err := rows.Scan(
		&id,
		&result.DiscID,
		&result.Device,
		&result.ReadOffset,
		&result.TrackCount,
		&result.TracksRipped,
		&status,
		&result.OutputDir,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return result, fmt.Errorf("scan result: %w", err)
	}

	if result.ID, err = uuid.Parse(id); err != nil {
		return result, fmt.Errorf("parse result id %q: %w", id, err)
	}
	if result.Status, err = domain.ParseRipStatus(status); err != nil {
		return result, err
	}
	if result.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return result, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if result.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return result, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	return result, nil
}

// Package store persists conversion history in Postgres.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kritsw/bankconv/internal/history"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanConversion reads a conversion row from the scanner.
// Expected column order: id, filename, output_filename, bank_code, total_rows, valid_transactions, invalid_rows, created_at
func scanConversion(s scanner) (*history.Conversion, error) {
	var c history.Conversion

	var invalidRows sql.NullString

	if err := s.Scan(
		&c.ID, &c.Filename, &c.OutputFilename, &c.BankCode,
		&c.TotalRows, &c.ValidTransactions, &invalidRows, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.InvalidRows = decodeRows(invalidRows.String)

	return &c, nil
}

const selectConversionColumns = `
	id, filename, output_filename, bank_code, total_rows, valid_transactions, invalid_rows, created_at
`

func (s *Store) CreateConversion(ctx context.Context, c *history.Conversion) error {
	query := `
		INSERT INTO conversions (filename, output_filename, bank_code, total_rows, valid_transactions, invalid_rows, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Filename,
		c.OutputFilename,
		c.BankCode,
		c.TotalRows,
		c.ValidTransactions,
		encodeRows(c.InvalidRows),
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating conversion: %w", err)
	}

	return nil
}

func (s *Store) GetConversion(ctx context.Context, id uuid.UUID) (*history.Conversion, error) {
	query := `SELECT ` + selectConversionColumns + `
		FROM conversions
		WHERE id = $1`

	c, err := scanConversion(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, history.ErrNotFound
		}

		return nil, fmt.Errorf("getting conversion: %w", err)
	}

	return c, nil
}

func (s *Store) ListConversions(ctx context.Context, filter history.ListFilter) ([]*history.Conversion, error) {
	query := `SELECT ` + selectConversionColumns + `
		FROM conversions
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.BankCode != nil {
		query += fmt.Sprintf(" AND bank_code = $%d", argIdx)

		args = append(args, *filter.BankCode)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing conversions: %w", err)
	}
	defer rows.Close()

	var cs []*history.Conversion

	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}

		cs = append(cs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversion rows: %w", err)
	}

	return cs, nil
}

func (s *Store) DeleteConversion(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM conversions WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting conversion: %w", err)
	}

	return nil
}

// encodeRows joins row numbers into the comma-separated form stored in the
// invalid_rows column.
func encodeRows(rows []int) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strconv.Itoa(r)
	}

	return strings.Join(parts, ",")
}

func decodeRows(s string) []int {
	if s == "" {
		return nil
	}

	var rows []int

	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}

		rows = append(rows, n)
	}

	return rows
}

package leads

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, lead Lead) error {
	const query = `
INSERT INTO leads (id, name, email, company, message, source, priority_label, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullableString(lead.Company),
		lead.Message,
		lead.Source,
		nullableString(lead.PriorityLabel),
		lead.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Lead, error) {
	const query = `
SELECT id, name, email, company, message, source, priority_label, created_at
FROM leads
WHERE id = $1
LIMIT 1`
	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		return Lead{}, err
	}
	return lead, nil
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]Lead, error) {
	const query = `
SELECT id, name, email, company, message, source, priority_label, created_at
FROM leads
ORDER BY created_at DESC
LIMIT $1`
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lead)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (Lead, error) {
	var lead Lead
	var company sql.NullString
	var priority sql.NullString
	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&company,
		&lead.Message,
		&lead.Source,
		&priority,
		&lead.CreatedAt,
	)
	if err != nil {
		return Lead{}, err
	}
	if company.Valid {
		lead.Company = company.String
	}
	if priority.Valid {
		lead.PriorityLabel = priority.String
	}
	return lead, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tradecargo/internal/domain"
	"tradecargo/pkg/platform/sentinel"
	"tradecargo/pkg/platform/tx"
)

// PostgresStore persists cargo movements in PostgreSQL, same shape as the
// trade store: key columns plus a JSONB body with the canonical entity.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) q(ctx context.Context) querier {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return s.db
}

func (s *PostgresStore) Create(ctx context.Context, cargo domain.Cargo) (string, error) {
	cargo.ID = uuid.NewString()
	now := time.Now()
	cargo.CreatedAt = now
	cargo.UpdatedAt = now
	body, err := json.Marshal(cargo)
	if err != nil {
		return "", fmt.Errorf("marshal cargo: %w", err)
	}
	_, err = s.q(ctx).ExecContext(ctx, `
		INSERT INTO cargos (id, source, source_id, cargo_id, status, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cargo.ID, cargo.Source, cargo.SourceID, cargo.CargoID, cargo.Status,
		body, cargo.CreatedAt, cargo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", sentinel.ErrConflict
		}
		return "", fmt.Errorf("insert cargo: %w", err)
	}
	return cargo.ID, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, cargo domain.Cargo) (domain.Cargo, error) {
	existing, err := s.Get(ctx, id, cargo.Source)
	if err != nil {
		return domain.Cargo{}, err
	}
	cargo.ID = existing.ID
	cargo.CreatedAt = existing.CreatedAt
	cargo.UpdatedAt = time.Now()
	body, err := json.Marshal(cargo)
	if err != nil {
		return domain.Cargo{}, fmt.Errorf("marshal cargo: %w", err)
	}
	res, err := s.q(ctx).ExecContext(ctx, `
		UPDATE cargos
		SET source_id = $2, cargo_id = $3, status = $4, body = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`,
		cargo.ID, cargo.SourceID, cargo.CargoID, cargo.Status, body, cargo.UpdatedAt,
	)
	if err != nil {
		return domain.Cargo{}, fmt.Errorf("update cargo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Cargo{}, sentinel.ErrNotFound
	}
	return cargo, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string, source domain.Source) (domain.Cargo, error) {
	row := s.q(ctx).QueryRowContext(ctx, `
		SELECT body, created_at, updated_at FROM cargos
		WHERE id = $1 AND source = $2 AND deleted_at IS NULL`, id, source)
	return scanCargo(row)
}

func (s *PostgresStore) FindOne(ctx context.Context, query Query) (domain.Cargo, error) {
	where, args := buildWhere(query)
	row := s.q(ctx).QueryRowContext(ctx, fmt.Sprintf(`
		SELECT body, created_at, updated_at FROM cargos %s LIMIT 1`, where), args...)
	return scanCargo(row)
}

func (s *PostgresStore) Find(ctx context.Context, query Query, opts Options) ([]domain.Cargo, error) {
	where, args := buildWhere(query)
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	args = append(args, limit, opts.Skip)
	rows, err := s.q(ctx).QueryContext(ctx, fmt.Sprintf(`
		SELECT body, created_at, updated_at FROM cargos
		%s ORDER BY created_at LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, fmt.Errorf("find cargos: %w", err)
	}
	defer rows.Close()
	var cargos []domain.Cargo
	for rows.Next() {
		cargo, err := scanCargo(rows)
		if err != nil {
			return nil, err
		}
		cargos = append(cargos, cargo)
	}
	return cargos, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context, query Query) (int64, error) {
	where, args := buildWhere(query)
	var n int64
	err := s.q(ctx).QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM cargos %s`, where), args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count cargos: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string, source domain.Source) error {
	res, err := s.q(ctx).ExecContext(ctx, `
		UPDATE cargos SET deleted_at = NOW()
		WHERE id = $1 AND source = $2 AND deleted_at IS NULL`, id, source)
	if err != nil {
		return fmt.Errorf("delete cargo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanCargo(row scannable) (domain.Cargo, error) {
	var body []byte
	var createdAt, updatedAt time.Time
	if err := row.Scan(&body, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Cargo{}, sentinel.ErrNotFound
		}
		return domain.Cargo{}, fmt.Errorf("scan cargo: %w", err)
	}
	var cargo domain.Cargo
	if err := json.Unmarshal(body, &cargo); err != nil {
		return domain.Cargo{}, fmt.Errorf("unmarshal cargo body: %w", err)
	}
	cargo.CreatedAt = createdAt
	cargo.UpdatedAt = updatedAt
	return cargo, nil
}

func buildWhere(query Query) (string, []any) {
	where := "WHERE deleted_at IS NULL"
	var args []any
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		where += fmt.Sprintf(" AND %s = $%d", column, len(args))
	}
	add("source", string(query.Source))
	add("source_id", query.SourceID)
	add("cargo_id", query.CargoID)
	return where, args
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

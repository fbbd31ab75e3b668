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

// PostgresStore persists trades in PostgreSQL. Lookup fields are real columns
// backed by partial unique indexes over non-deleted rows; the rest of the
// canonical entity rides in a JSONB body column.
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

func (s *PostgresStore) Create(ctx context.Context, trade domain.Trade) (string, error) {
	trade.ID = uuid.NewString()
	now := time.Now()
	trade.CreatedAt = now
	trade.UpdatedAt = now
	body, err := json.Marshal(trade)
	if err != nil {
		return "", fmt.Errorf("marshal trade: %w", err)
	}
	_, err = s.q(ctx).ExecContext(ctx, `
		INSERT INTO trades (id, source, source_id, status, buyer, seller,
			buyer_etrm_id, seller_etrm_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11)`,
		trade.ID, trade.Source, trade.SourceID, trade.Status, trade.Buyer, trade.Seller,
		trade.BuyerEtrmID, trade.SellerEtrmID, body, trade.CreatedAt, trade.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", sentinel.ErrConflict
		}
		return "", fmt.Errorf("insert trade: %w", err)
	}
	return trade.ID, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, trade domain.Trade) (domain.Trade, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.Trade{}, err
	}
	trade.ID = existing.ID
	trade.CreatedAt = existing.CreatedAt
	trade.UpdatedAt = time.Now()
	body, err := json.Marshal(trade)
	if err != nil {
		return domain.Trade{}, fmt.Errorf("marshal trade: %w", err)
	}
	res, err := s.q(ctx).ExecContext(ctx, `
		UPDATE trades
		SET source = $2, source_id = $3, status = $4, buyer = $5, seller = $6,
			buyer_etrm_id = NULLIF($7, ''), seller_etrm_id = NULLIF($8, ''),
			body = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL`,
		trade.ID, trade.Source, trade.SourceID, trade.Status, trade.Buyer, trade.Seller,
		trade.BuyerEtrmID, trade.SellerEtrmID, body, trade.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Trade{}, sentinel.ErrConflict
		}
		return domain.Trade{}, fmt.Errorf("update trade: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Trade{}, sentinel.ErrNotFound
	}
	return trade, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (domain.Trade, error) {
	row := s.q(ctx).QueryRowContext(ctx, `
		SELECT body, created_at, updated_at FROM trades
		WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanTrade(row)
}

func (s *PostgresStore) FindOne(ctx context.Context, sourceID string, source domain.Source) (domain.Trade, error) {
	row := s.q(ctx).QueryRowContext(ctx, `
		SELECT body, created_at, updated_at FROM trades
		WHERE source_id = $1 AND source = $2 AND deleted_at IS NULL`, sourceID, source)
	return scanTrade(row)
}

func (s *PostgresStore) Find(ctx context.Context, query Query, opts Options) ([]domain.Trade, error) {
	where, args := buildWhere(query)
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	args = append(args, limit, opts.Skip)
	rows, err := s.q(ctx).QueryContext(ctx, fmt.Sprintf(`
		SELECT body, created_at, updated_at FROM trades
		%s ORDER BY created_at LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, fmt.Errorf("find trades: %w", err)
	}
	defer rows.Close()
	var trades []domain.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}
	return trades, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context, query Query) (int64, error) {
	where, args := buildWhere(query)
	var n int64
	err := s.q(ctx).QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM trades %s`, where), args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count trades: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.q(ctx).ExecContext(ctx, `
		UPDATE trades SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTrade(row scannable) (domain.Trade, error) {
	var body []byte
	var createdAt, updatedAt time.Time
	if err := row.Scan(&body, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Trade{}, sentinel.ErrNotFound
		}
		return domain.Trade{}, fmt.Errorf("scan trade: %w", err)
	}
	var trade domain.Trade
	if err := json.Unmarshal(body, &trade); err != nil {
		return domain.Trade{}, fmt.Errorf("unmarshal trade body: %w", err)
	}
	trade.CreatedAt = createdAt
	trade.UpdatedAt = updatedAt
	return trade, nil
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
	add("buyer_etrm_id", query.BuyerEtrmID)
	add("seller_etrm_id", query.SellerEtrmID)
	return where, args
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

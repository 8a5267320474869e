// Package quotecache stores fetched market quotes and FX rates with a
// time-to-live, so repeated scenario calculations do not hammer the remote
// endpoints. Calculation results themselves are never persisted.
package quotecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sandrolex/rsu/pkg/models/store"
)

// Store reads and writes cached quotes and rates. Get methods report a miss
// (ok == false) for absent rows and for rows older than ttl.
type Store interface {
	GetQuote(ctx context.Context, ticker string, day time.Time, ttl time.Duration) (store.QuoteRecord, bool, error)
	PutQuote(ctx context.Context, rec store.QuoteRecord) error
	GetRate(ctx context.Context, base, target string, ttl time.Duration) (store.RateRecord, bool, error)
	PutRate(ctx context.Context, rec store.RateRecord) error
}

type cacheStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &cacheStore{db: db, now: time.Now}, nil
}

func (s *cacheStore) GetQuote(
	ctx context.Context,
	ticker string,
	day time.Time,
	ttl time.Duration,
) (store.QuoteRecord, bool, error) {
	query := `SELECT ticker, day, close, fetched_at FROM quotes WHERE ticker = ? AND day = ?`

	var rec store.QuoteRecord
	err := s.db.QueryRowContext(ctx, query, ticker, day.UTC()).
		Scan(&rec.Ticker, &rec.Day, &rec.Close, &rec.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.QuoteRecord{}, false, nil
	}
	if err != nil {
		return store.QuoteRecord{}, false, fmt.Errorf("failed to query cached quote: %w", err)
	}
	if s.expired(rec.FetchedAt, ttl) {
		return store.QuoteRecord{}, false, nil
	}
	return rec, true, nil
}

func (s *cacheStore) PutQuote(ctx context.Context, rec store.QuoteRecord) error {
	query := `
		INSERT INTO quotes (ticker, day, close, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (ticker, day) DO UPDATE SET close = excluded.close, fetched_at = excluded.fetched_at`

	_, err := s.db.ExecContext(ctx, query, rec.Ticker, rec.Day.UTC(), rec.Close, rec.FetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to cache quote: %w", err)
	}
	return nil
}

func (s *cacheStore) GetRate(
	ctx context.Context,
	base, target string,
	ttl time.Duration,
) (store.RateRecord, bool, error) {
	query := `SELECT base, target, rate, fetched_at FROM fx_rates WHERE base = ? AND target = ?`

	var rec store.RateRecord
	err := s.db.QueryRowContext(ctx, query, base, target).
		Scan(&rec.Base, &rec.Target, &rec.Rate, &rec.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.RateRecord{}, false, nil
	}
	if err != nil {
		return store.RateRecord{}, false, fmt.Errorf("failed to query cached rate: %w", err)
	}
	if s.expired(rec.FetchedAt, ttl) {
		return store.RateRecord{}, false, nil
	}
	return rec, true, nil
}

func (s *cacheStore) PutRate(ctx context.Context, rec store.RateRecord) error {
	query := `
		INSERT INTO fx_rates (base, target, rate, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (base, target) DO UPDATE SET rate = excluded.rate, fetched_at = excluded.fetched_at`

	_, err := s.db.ExecContext(ctx, query, rec.Base, rec.Target, rec.Rate, rec.FetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to cache rate: %w", err)
	}
	return nil
}

func (s *cacheStore) expired(fetchedAt time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return s.now().After(fetchedAt.Add(ttl))
}

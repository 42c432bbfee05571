// README: Pricing store backed by PostgreSQL; the active tariff row overrides env rates at startup.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taxibook/internal/types"
)

const activeRatesSQL = `
SELECT day_rate_cents, night_rate_cents, day_start_hour, day_end_hour, currency
FROM pricing_rates
WHERE active
ORDER BY updated_at DESC
LIMIT 1`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ActiveRates returns the most recent active tariff; ok is false when none is stored.
func (s *Store) ActiveRates(ctx context.Context) (Rates, bool, error) {
	var (
		day, night int64
		start, end int
		currency   string
	)
	err := s.db.QueryRow(ctx, activeRatesSQL).Scan(&day, &night, &start, &end, &currency)
	if errors.Is(err, pgx.ErrNoRows) {
		return Rates{}, false, nil
	}
	if err != nil {
		return Rates{}, false, fmt.Errorf("query pricing_rates: %w", err)
	}
	if start < 0 || end > 24 || start >= end {
		return Rates{}, false, fmt.Errorf("pricing_rates: day window [%d,%d) is invalid", start, end)
	}
	return Rates{
		DayPerKm:   types.Money{Amount: day, Currency: currency},
		NightPerKm: types.Money{Amount: night, Currency: currency},
		DayStart:   start,
		DayEnd:     end,
	}, true, nil
}

// LoadRates returns the stored tariff when present, otherwise fallback.
func (s *Service) LoadRates(ctx context.Context, fallback Rates) (Rates, error) {
	if s.store == nil {
		return fallback, nil
	}
	r, ok, err := s.store.ActiveRates(ctx)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	s.rates = r
	return r, nil
}

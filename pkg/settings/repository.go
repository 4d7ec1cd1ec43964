package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Load returns ErrSettingsNotFound when nothing was saved yet.
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

// SQLiteRepositoryImpl keeps the settings as the only row of the settings table.
type SQLiteRepositoryImpl struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepositoryImpl {
	return &SQLiteRepositoryImpl{db: db}
}

func (r *SQLiteRepositoryImpl) Load(ctx context.Context) (Settings, error) {
	query := "SELECT police_rank, service_band, rate_133, rate_150, rate_200, tax_rate FROM settings WHERE id = 1"
	var (
		s                         Settings
		rank, band                string
		rate133, rate150, rate200 string
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&rank, &band, &rate133, &rate150, &rate200, &s.TaxRate)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, ErrSettingsNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not load settings: %w", err)
		log.Error(err)
		return Settings{}, err
	}
	s.Rank = rates.Rank(rank)
	s.ServiceBand = rates.ServiceBand(band)
	if s.Rates, err = parseRates(rate133, rate150, rate200); err != nil {
		log.Error(err)
		return Settings{}, err
	}
	return s, nil
}

func (r *SQLiteRepositoryImpl) Save(ctx context.Context, s Settings) error {
	query := `INSERT INTO settings (id, police_rank, service_band, rate_133, rate_150, rate_200, tax_rate)
				VALUES (1, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO UPDATE SET
					police_rank = excluded.police_rank,
					service_band = excluded.service_band,
					rate_133 = excluded.rate_133,
					rate_150 = excluded.rate_150,
					rate_200 = excluded.rate_200,
					tax_rate = excluded.tax_rate`
	_, err := r.db.ExecContext(ctx, query,
		string(s.Rank),
		string(s.ServiceBand),
		s.Rates.R133.String(),
		s.Rates.R150.String(),
		s.Rates.R200.String(),
		s.TaxRate,
	)
	if err != nil {
		err := fmt.Errorf("could not save settings: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func parseRates(r133, r150, r200 string) (rates.TierRates, error) {
	var result rates.TierRates
	var err error
	if result.R133, err = decimal.NewFromString(r133); err != nil {
		return rates.TierRates{}, fmt.Errorf("invalid stored rate %q: %w", r133, err)
	}
	if result.R150, err = decimal.NewFromString(r150); err != nil {
		return rates.TierRates{}, fmt.Errorf("invalid stored rate %q: %w", r150, err)
	}
	if result.R200, err = decimal.NewFromString(r200); err != nil {
		return rates.TierRates{}, fmt.Errorf("invalid stored rate %q: %w", r200, err)
	}
	return result, nil
}

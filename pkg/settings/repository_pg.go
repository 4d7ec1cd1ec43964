package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Load(ctx context.Context) (Settings, error) {
	query := `SELECT police_rank, service_band, rate_133::text, rate_150::text, rate_200::text, tax_rate
				FROM settings WHERE id = 1`
	var (
		s                         Settings
		rank, band                string
		rate133, rate150, rate200 string
	)
	err := r.db.QueryRow(ctx, query).Scan(&rank, &band, &rate133, &rate150, &rate200, &s.TaxRate)
	if errors.Is(err, pgx.ErrNoRows) {
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

func (r *RepositoryImpl) Save(ctx context.Context, s Settings) error {
	query := `INSERT INTO settings (id, police_rank, service_band, rate_133, rate_150, rate_200, tax_rate)
				VALUES (1, $1, $2, $3::numeric, $4::numeric, $5::numeric, $6)
				ON CONFLICT (id) DO UPDATE SET
					police_rank = EXCLUDED.police_rank,
					service_band = EXCLUDED.service_band,
					rate_133 = EXCLUDED.rate_133,
					rate_150 = EXCLUDED.rate_150,
					rate_200 = EXCLUDED.rate_200,
					tax_rate = EXCLUDED.tax_rate`
	_, err := r.db.Exec(ctx, query,
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

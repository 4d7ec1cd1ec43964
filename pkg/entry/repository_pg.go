package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// RepositoryImpl stores entries in PostgreSQL. Every write fires the entry_changes
// notification (see the postgres migrations) so other instances can refresh.
type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const pgEntryColumns = `id::text, entry_date, reason, hours_133::text, hours_150::text, hours_200::text, allowance, comments`

func (r *RepositoryImpl) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.Query(ctx, "SELECT "+pgEntryColumns+" FROM entry ORDER BY entry_date, created_at")
	if err != nil {
		err := fmt.Errorf("could not query entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0, 32)
	for rows.Next() {
		e, err := scanPgEntry(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return entries, nil
}

// Ids are uuid columns, so anything that does not parse as one cannot name a stored entry.
func validId(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *RepositoryImpl) Get(ctx context.Context, id string) (Entry, error) {
	if !validId(id) {
		return Entry{}, ErrEntryNotFound
	}
	e, err := scanPgEntry(r.db.QueryRow(ctx, "SELECT "+pgEntryColumns+" FROM entry WHERE id = $1::uuid", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Error(err)
		return Entry{}, err
	}
	return e, nil
}

func (r *RepositoryImpl) Create(ctx context.Context, entry Entry) (string, error) {
	query := `INSERT INTO entry (entry_date, reason, hours_133, hours_150, hours_200, allowance, comments)
				VALUES ($1, $2, $3::numeric, $4::numeric, $5::numeric, $6, $7) RETURNING id::text`

	var id string
	err := r.db.QueryRow(ctx, query,
		entry.Date,
		entry.Reason,
		entry.Hours133.String(),
		entry.Hours150.String(),
		entry.Hours200.String(),
		string(entry.Allowance),
		entry.Comments,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, entry Entry) error {
	if !validId(entry.Id) {
		return ErrEntryNotFound
	}
	query := `UPDATE entry SET
                 entry_date = $1,
                 reason = $2,
                 hours_133 = $3::numeric,
                 hours_150 = $4::numeric,
                 hours_200 = $5::numeric,
                 allowance = $6,
                 comments = $7
             WHERE id = $8::uuid`
	tag, err := r.db.Exec(ctx, query,
		entry.Date,
		entry.Reason,
		entry.Hours133.String(),
		entry.Hours150.String(),
		entry.Hours200.String(),
		string(entry.Allowance),
		entry.Comments,
		entry.Id,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validId(id) {
		return ErrEntryNotFound
	}
	tag, err := r.db.Exec(ctx, "DELETE FROM entry WHERE id = $1::uuid", id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func scanPgEntry(row pgx.Row) (Entry, error) {
	var (
		e                            Entry
		date                         time.Time
		hours133, hours150, hours200 string
		allowance                    string
	)
	if err := row.Scan(&e.Id, &date, &e.Reason, &hours133, &hours150, &hours200, &allowance, &e.Comments); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("could not scan entry: %w", err)
	}
	e.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	e.Hours133 = ParseHours(hours133)
	e.Hours150 = ParseHours(hours150)
	e.Hours200 = ParseHours(hours200)
	e.Allowance = rates.NormalizeAllowance(allowance)
	return e, nil
}

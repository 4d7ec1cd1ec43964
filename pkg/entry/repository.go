package entry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, id string) (Entry, error)
	Create(ctx context.Context, entry Entry) (string, error)
	Update(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, id string) error
}

// SQLiteRepositoryImpl keeps entries in a local SQLite file. Hours are stored as
// decimal text so no precision is lost between writes.
type SQLiteRepositoryImpl struct {
	db    *sql.DB
	nowFn func() time.Time
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepositoryImpl {
	return &SQLiteRepositoryImpl{db: db, nowFn: time.Now}
}

const sqliteEntryColumns = "id, entry_date, reason, hours_133, hours_150, hours_200, allowance, comments"

func (r *SQLiteRepositoryImpl) List(ctx context.Context) ([]Entry, error) {
	query := "SELECT " + sqliteEntryColumns + " FROM entry ORDER BY entry_date, created_at"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0, 32)
	for rows.Next() {
		e, err := scanSQLiteEntry(rows)
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

func (r *SQLiteRepositoryImpl) Get(ctx context.Context, id string) (Entry, error) {
	query := "SELECT " + sqliteEntryColumns + " FROM entry WHERE id = ?"
	e, err := scanSQLiteEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Error(err)
		return Entry{}, err
	}
	return e, nil
}

func (r *SQLiteRepositoryImpl) Create(ctx context.Context, entry Entry) (string, error) {
	query := `INSERT INTO entry (id, entry_date, reason, hours_133, hours_150, hours_200, allowance, comments, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return "", err
	}
	defer stmt.Close()

	id := uuid.NewString()
	_, err = stmt.ExecContext(ctx,
		id,
		entry.Date.Format(time.DateOnly),
		entry.Reason,
		entry.Hours133.String(),
		entry.Hours150.String(),
		entry.Hours200.String(),
		string(entry.Allowance),
		entry.Comments,
		r.nowFn().UnixNano(),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *SQLiteRepositoryImpl) Update(ctx context.Context, entry Entry) error {
	query := `UPDATE entry SET entry_date = ?, reason = ?, hours_133 = ?, hours_150 = ?, hours_200 = ?, allowance = ?, comments = ?
				WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		entry.Date.Format(time.DateOnly),
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
	return requireAffected(result)
}

func (r *SQLiteRepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM entry WHERE id = ?", id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteEntry(row rowScanner) (Entry, error) {
	var (
		e                            Entry
		date                         string
		hours133, hours150, hours200 string
		allowance                    string
	)
	if err := row.Scan(&e.Id, &date, &e.Reason, &hours133, &hours150, &hours200, &allowance, &e.Comments); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("could not scan entry: %w", err)
	}
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return Entry{}, fmt.Errorf("could not parse date %q of entry %s: %w", date, e.Id, err)
	}
	e.Date = parsed
	e.Hours133 = ParseHours(hours133)
	e.Hours150 = ParseHours(hours150)
	e.Hours200 = ParseHours(hours200)
	e.Allowance = rates.NormalizeAllowance(allowance)
	return e, nil
}

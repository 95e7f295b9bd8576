package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/user/moodlog/pkg/models"
)

// UpsertRecord inserts or overwrites the record keyed on (user_id, date).
// Conflicts resolve last-write-wins; created is preserved across overwrites.
func (r *SQLiteRepo) UpsertRecord(ctx context.Context, rec *models.Record) (*models.Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("record is nil")
	}

	ts := now()
	_, err := r.conn.Exec(ctx, `INSERT INTO records (user_id, date, fatigue, notes, created, updated) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET fatigue=excluded.fatigue, notes=excluded.notes, updated=excluded.updated`,
		rec.UserID, rec.Date, rec.Fatigue, rec.Notes, ts, ts)
	if err != nil {
		return nil, err
	}

	return r.GetByUserAndDate(ctx, rec.UserID, rec.Date)
}

func (r *SQLiteRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*models.Record, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user_id, date, fatigue, notes, created, updated FROM records WHERE user_id = ? AND date = ?`, userID, date)
	rec, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.Record, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, date, fatigue, notes, created, updated FROM records WHERE date >= ? AND date <= ? ORDER BY date ASC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (r *SQLiteRepo) ListByUserAndDateRange(ctx context.Context, userID, from, to string) ([]models.Record, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, date, fatigue, notes, created, updated FROM records WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date ASC`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func scanRecord(scan func(dest ...any) error) (*models.Record, error) {
	var rec models.Record
	var notes sql.NullString
	if err := scan(&rec.ID, &rec.UserID, &rec.Date, &rec.Fatigue, &notes, &rec.Created, &rec.Updated); err != nil {
		return nil, err
	}
	if notes.Valid {
		rec.Notes = &notes.String
	}
	return &rec, nil
}

func collectRecords(rows *sql.Rows) ([]models.Record, error) {
	var out []models.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/user/moodlog/pkg/models"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO users (email, name, password_hash, created) VALUES (?, ?, ?, ?)`,
		u.Email, u.Name, u.PasswordHash, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, email, name, password_hash, created FROM users WHERE email = ?`, email)
	var u models.User
	var pw sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &pw, &u.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if pw.Valid {
		u.PasswordHash = pw.String
	}

	return &u, nil
}

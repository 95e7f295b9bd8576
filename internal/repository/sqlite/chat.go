package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/user/moodlog/pkg/models"
)

func (r *SQLiteRepo) InsertMessage(ctx context.Context, m *models.ChatMessage) error {
	if m == nil {
		return fmt.Errorf("chat message is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO chat_messages (id, user, message, parent_message_id, created) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.User, m.Message, m.ParentMessageID, now())
	return err
}

func (r *SQLiteRepo) GetMessageByID(ctx context.Context, id string) (*models.ChatMessage, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user, message, parent_message_id, created FROM chat_messages WHERE id = ?`, id)
	var m models.ChatMessage
	var parent sql.NullString
	if err := row.Scan(&m.ID, &m.User, &m.Message, &parent, &m.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if parent.Valid {
		m.ParentMessageID = &parent.String
	}
	return &m, nil
}

func (r *SQLiteRepo) ListByUser(ctx context.Context, user string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, user, message, parent_message_id, created FROM chat_messages WHERE user = ? ORDER BY created DESC LIMIT ?`, user, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		var parent sql.NullString
		if err := rows.Scan(&m.ID, &m.User, &m.Message, &parent, &m.Created); err != nil {
			return nil, err
		}
		if parent.Valid {
			m.ParentMessageID = &parent.String
		}

		out = append(out, m)
	}

	return out, rows.Err()
}

package repository

import (
	"context"

	"github.com/user/moodlog/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type RecordRepo interface {
	// UpsertRecord inserts or overwrites the record keyed on (user_id, date)
	// and returns the stored row.
	UpsertRecord(ctx context.Context, rec *models.Record) (*models.Record, error)
	GetByUserAndDate(ctx context.Context, userID, date string) (*models.Record, error)
	// ListByDateRange returns all records with date in [from, to], ordered by
	// date ascending.
	ListByDateRange(ctx context.Context, from, to string) ([]models.Record, error)
	ListByUserAndDateRange(ctx context.Context, userID, from, to string) ([]models.Record, error)
}

type ChatRepo interface {
	InsertMessage(ctx context.Context, m *models.ChatMessage) error
	GetMessageByID(ctx context.Context, id string) (*models.ChatMessage, error)
	ListByUser(ctx context.Context, user string, limit int) ([]models.ChatMessage, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

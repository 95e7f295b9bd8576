package mock

import (
	"context"

	"github.com/user/moodlog/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Records *RecordRepo
	Chats   *ChatRepo
	Users   *UserRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Records: &RecordRepo{},
		Chats:   &ChatRepo{},
		Users:   &UserRepo{},
	}
}

// RecordRepo is an in-memory stand-in for the records store. Stored holds
// rows in insertion order; Err, when set, is returned by every method.
type RecordRepo struct {
	Stored []models.Record
	Err    error

	nextID int64
}

func (m *RecordRepo) UpsertRecord(ctx context.Context, rec *models.Record) (*models.Record, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].UserID == rec.UserID && m.Stored[i].Date == rec.Date {
			m.Stored[i].Fatigue = rec.Fatigue
			m.Stored[i].Notes = rec.Notes
			return &m.Stored[i], nil
		}
	}
	m.nextID++
	stored := *rec
	stored.ID = m.nextID
	m.Stored = append(m.Stored, stored)
	return &m.Stored[len(m.Stored)-1], nil
}

func (m *RecordRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*models.Record, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].UserID == userID && m.Stored[i].Date == date {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

func (m *RecordRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.Record, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Record
	for _, r := range m.Stored {
		if r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *RecordRepo) ListByUserAndDateRange(ctx context.Context, userID, from, to string) ([]models.Record, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Record
	for _, r := range m.Stored {
		if r.UserID == userID && r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

// ChatRepo collects inserted messages in order.
type ChatRepo struct {
	Stored []models.ChatMessage
	Err    error
}

func (m *ChatRepo) InsertMessage(ctx context.Context, msg *models.ChatMessage) error {
	if m.Err != nil {
		return m.Err
	}
	m.Stored = append(m.Stored, *msg)
	return nil
}

func (m *ChatRepo) GetMessageByID(ctx context.Context, id string) (*models.ChatMessage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

func (m *ChatRepo) ListByUser(ctx context.Context, user string, limit int) ([]models.ChatMessage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.ChatMessage
	for _, msg := range m.Stored {
		if msg.User == user {
			out = append(out, msg)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// UserRepo stores a single user, which is enough for the auth handlers.
type UserRepo struct {
	Stored    *models.User
	CreateErr error
}

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.User{ID: 1, Email: u.Email, Name: u.Name, PasswordHash: u.PasswordHash}
	return 1, nil
}

func (m *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	Name         string `json:"name" db:"name" validate:"required"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
}

// Record is one user's self-reported state for one calendar day. At most one
// row exists per (user_id, date); repeated writes are last-write-wins upserts.
type Record struct {
	ID      int64   `json:"id" db:"id"`
	UserID  string  `json:"user_id" db:"user_id"`
	Date    string  `json:"date" db:"date"`
	Fatigue int     `json:"fatigue" db:"fatigue"`
	Notes   *string `json:"notes,omitempty" db:"notes"`
	Created int64   `json:"created" db:"created"`
	Updated int64   `json:"updated" db:"updated"`
}

// ChatMessage is one turn of a conversation. Rows are append-only; an AI
// reply carries a back-reference to the user message that produced it.
type ChatMessage struct {
	ID              string  `json:"id" db:"id"`
	User            string  `json:"user" db:"user"`
	Message         string  `json:"message" db:"message"`
	ParentMessageID *string `json:"parent_message_id,omitempty" db:"parent_message_id"`
	Created         int64   `json:"created" db:"created"`
}

// WeeklyStatus is derived from the record set on demand and never persisted.
type WeeklyStatus struct {
	IsComplete   bool      `json:"isComplete"`
	WeekRange    WeekRange `json:"weekRange"`
	RecordedDays int       `json:"recordedDays"`
	TotalDays    int       `json:"totalDays"`
}

type WeekRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

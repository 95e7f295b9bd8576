package sqlite

import (
	"io"
	"log/slog"
	"time"

	"github.com/user/moodlog/internal/db"
	"github.com/user/moodlog/pkg/repository"
)

// SQLiteRepo implements the repository interfaces using the internal DB
// wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.RecordRepo = (*SQLiteRepo)(nil)
var _ repository.ChatRepo = (*SQLiteRepo)(nil)
var _ repository.UserRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

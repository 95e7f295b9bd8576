package api_test

import (
	"context"
	"errors"
	"testing"

	dbfs "github.com/user/moodlog/db"
	dbpkg "github.com/user/moodlog/internal/db"
	"github.com/user/moodlog/pkg/models"
)

var (
	errStore = errors.New("store unavailable")
	errModel = errors.New("model unavailable")
)

// stubEngine is a canned analysis engine for handler tests.
type stubEngine struct {
	analyzeResult string
	analyzeErr    error
	chatReply     string
	chatErr       error

	analyzeCalls int
	gotRecords   []models.Record
	gotMessage   string
}

func (s *stubEngine) AnalyzeRecords(ctx context.Context, recs []models.Record) (string, error) {
	s.analyzeCalls++
	s.gotRecords = recs
	return s.analyzeResult, s.analyzeErr
}

func (s *stubEngine) Chat(ctx context.Context, message string) (string, error) {
	s.gotMessage = message
	return s.chatReply, s.chatErr
}

func setupDB(t *testing.T) (*dbpkg.DB, func()) {
	t.Helper()
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		d.Close()
		t.Fatalf("migrate: %v", err)
	}
	return d, func() { d.Close() }
}

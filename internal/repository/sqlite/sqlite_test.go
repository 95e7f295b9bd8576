package sqlite_test

import (
	"context"
	"testing"

	dbfs "github.com/user/moodlog/db"
	dbpkg "github.com/user/moodlog/internal/db"
	sqlite "github.com/user/moodlog/internal/repository/sqlite"
	"github.com/user/moodlog/pkg/models"
)

func setupRepo(t *testing.T) (*sqlite.SQLiteRepo, func()) {
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
	return sqlite.New(d, nil), func() { d.Close() }
}

func strptr(s string) *string { return &s }

func TestUpsertRecord_InsertThenOverwrite(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	first, err := repo.UpsertRecord(ctx, &models.Record{UserID: "u1", Date: "2025-09-01", Fatigue: 3, Notes: strptr("tired")})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == 0 || first.Fatigue != 3 {
		t.Fatalf("unexpected stored record: %+v", first)
	}

	second, err := repo.UpsertRecord(ctx, &models.Record{UserID: "u1", Date: "2025-09-01", Fatigue: 5, Notes: nil})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a second row: %d vs %d", second.ID, first.ID)
	}
	if second.Fatigue != 5 || second.Notes != nil {
		t.Fatalf("last write did not win: %+v", second)
	}

	// exactly one row remains
	recs, err := repo.ListByUserAndDateRange(ctx, "u1", "2025-09-01", "2025-09-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record after repeated upsert, got %d", len(recs))
	}
}

func TestGetByUserAndDate_NotFound(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()

	rec, err := repo.GetByUserAndDate(context.Background(), "nobody", "2025-01-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil for missing record, got %+v", rec)
	}
}

func TestListByDateRange_OrderedAndBounded(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	for _, d := range []string{"2025-09-03", "2025-09-01", "2025-09-05", "2025-08-31"} {
		if _, err := repo.UpsertRecord(ctx, &models.Record{UserID: "u1", Date: d, Fatigue: 2}); err != nil {
			t.Fatalf("upsert %s: %v", d, err)
		}
	}
	if _, err := repo.UpsertRecord(ctx, &models.Record{UserID: "u2", Date: "2025-09-02", Fatigue: 4}); err != nil {
		t.Fatalf("upsert u2: %v", err)
	}

	recs, err := repo.ListByDateRange(ctx, "2025-09-01", "2025-09-04")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records in range, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Date > recs[i].Date {
			t.Fatalf("records not ordered by date: %v", recs)
		}
	}

	byUser, err := repo.ListByUserAndDateRange(ctx, "u1", "2025-09-01", "2025-09-04")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("expected 2 records for u1 in range, got %d", len(byUser))
	}
}

func TestChatMessages_InsertAndThread(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	userMsg := &models.ChatMessage{ID: "m-1", User: "u1", Message: "hello"}
	if err := repo.InsertMessage(ctx, userMsg); err != nil {
		t.Fatalf("insert user message: %v", err)
	}
	aiMsg := &models.ChatMessage{ID: "m-2", User: "ai", Message: "hi!", ParentMessageID: strptr("m-1")}
	if err := repo.InsertMessage(ctx, aiMsg); err != nil {
		t.Fatalf("insert ai message: %v", err)
	}

	got, err := repo.GetMessageByID(ctx, "m-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ParentMessageID == nil || *got.ParentMessageID != "m-1" {
		t.Fatalf("thread reference lost: %+v", got)
	}

	ai, err := repo.ListByUser(ctx, "ai", 10)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(ai) != 1 || ai[0].ID != "m-2" {
		t.Fatalf("unexpected ai messages: %+v", ai)
	}
}

func TestChatMessages_DuplicateIDRejected(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	if err := repo.InsertMessage(ctx, &models.ChatMessage{ID: "dup", User: "u1", Message: "a"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := repo.InsertMessage(ctx, &models.ChatMessage{ID: "dup", User: "u1", Message: "b"}); err == nil {
		t.Fatalf("expected primary key violation for duplicate id")
	}
}

func TestUsers_CreateAndGetByEmail(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, &models.User{Email: "a@b.c", Name: "A", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero user id")
	}

	u, err := repo.GetUserByEmail(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u == nil || u.ID != id || u.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", u)
	}

	missing, err := repo.GetUserByEmail(ctx, "missing@x.y")
	if err != nil {
		t.Fatalf("get missing user: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing user")
	}
}

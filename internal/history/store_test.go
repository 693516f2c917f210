package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPaper(ownerID string) *PaperRecord {
	sel := 1
	return &PaperRecord{
		OwnerID:      ownerID,
		Subject:      "Physics",
		Topics:       []string{"Kinematics", "Laws of Motion"},
		Difficulty:   "Medium",
		NumQuestions: 2,
		Questions: []QuestionRecord{
			{
				Text:           "A body moves with $v = 3t^2$. Find $a$ at $t = 2$.",
				Options:        []string{"6", "12", "3", "9"},
				CorrectAnswer:  1,
				Explanation:    "$a = dv/dt = 6t$",
				SelectedAnswer: &sel,
			},
			{
				Text:          "Unanswered question",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: 0,
			},
		},
		Score:     1,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"papers", "users", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestPaperSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	owner, err := s.UserRepo().GetOrCreate(ctx, "atchuta")
	if err != nil {
		t.Fatalf("get or create user: %v", err)
	}

	repo := s.PaperRepo()
	rec := testPaper(owner.ID)
	id, err := repo.Save(ctx, rec)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected a record ID")
	}

	got, err := repo.GetByID(ctx, owner.ID, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Subject != "Physics" || got.Difficulty != "Medium" {
		t.Errorf("subject/difficulty = %s/%s", got.Subject, got.Difficulty)
	}
	if got.Score != 1 {
		t.Errorf("score = %d, want 1", got.Score)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(got.Questions))
	}
	if got.Questions[0].SelectedAnswer == nil || *got.Questions[0].SelectedAnswer != 1 {
		t.Error("first question lost its selected answer")
	}
	if got.Questions[1].SelectedAnswer != nil {
		t.Error("unanswered question gained a selected answer")
	}
	if got.CreatedAt.Location() != time.UTC {
		t.Errorf("created at not UTC: %v", got.CreatedAt.Location())
	}
	if got.DisplayTitle() != "Physics - Medium" {
		t.Errorf("display title = %q", got.DisplayTitle())
	}
}

func TestPaperSaveRequiresOwner(t *testing.T) {
	s := openTestStore(t)

	rec := testPaper("")
	_, err := s.PaperRepo().Save(context.Background(), rec)
	if !errors.Is(err, ErrNoOwner) {
		t.Fatalf("save without owner = %v, want ErrNoOwner", err)
	}
}

func TestPaperOwnerIsolation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	alice, err := s.UserRepo().GetOrCreate(ctx, "alice")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := s.UserRepo().GetOrCreate(ctx, "bob")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	repo := s.PaperRepo()
	id, err := repo.Save(ctx, testPaper(alice.ID))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// A foreign owner and a missing paper are indistinguishable.
	if _, err := repo.GetByID(ctx, bob.ID, id); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("foreign owner get = %v, want ErrNotAvailable", err)
	}
	if _, err := repo.GetByID(ctx, alice.ID, uuid.NewString()); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("missing paper get = %v, want ErrNotAvailable", err)
	}
	if _, err := repo.GetByID(ctx, alice.ID, "not-a-uuid"); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("malformed ID get = %v, want ErrNotAvailable", err)
	}

	lists, err := repo.ListByOwner(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lists) != 0 {
		t.Fatalf("bob sees %d of alice's papers", len(lists))
	}
}

func TestPaperListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	owner, err := s.UserRepo().GetOrCreate(ctx, "atchuta")
	if err != nil {
		t.Fatalf("get or create user: %v", err)
	}

	repo := s.PaperRepo()
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		rec := testPaper(owner.ID)
		rec.Title = []string{"first", "second", "third"}[i]
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if _, err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	summaries, err := repo.ListByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("summaries = %d, want 3", len(summaries))
	}
	if summaries[0].Title != "third" || summaries[2].Title != "first" {
		t.Errorf("order = %s..%s, want third..first", summaries[0].Title, summaries[2].Title)
	}
	if summaries[0].QuestionCount != 2 {
		t.Errorf("question count = %d, want 2", summaries[0].QuestionCount)
	}
}

func TestUserGetOrCreateIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u1, err := s.UserRepo().GetOrCreate(ctx, "atchuta")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	u2, err := s.UserRepo().GetOrCreate(ctx, "atchuta")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if u1.ID != u2.ID {
		t.Fatalf("IDs differ: %s vs %s", u1.ID, u2.ID)
	}

	if _, err := s.UserRepo().GetOrCreate(ctx, "   "); err == nil {
		t.Fatal("expected an error for a blank name")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "paper-gen",
			InputTokens:  100,
			OutputTokens: 500,
			LatencyMs:    1200,
			Success:      true,
			RequestBody:  "[user]\ngenerate",
			ResponseBody: `{"questions":[]}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("events not newest first")
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.RequestBody == "" || e.ResponseBody == "" {
		t.Fatal("event bodies not captured")
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for a missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "paper-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "paper-gen", InputTokens: 300, OutputTokens: 600, LatencyMs: 3000, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "paper-gen", InputTokens: 50, OutputTokens: 200, LatencyMs: 2000, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("purposes = %d, want 1", len(stats))
	}
	if stats[0].Calls != 3 || stats[0].InputTokens != 450 || stats[0].OutputTokens != 1200 {
		t.Errorf("stats = %+v", stats[0])
	}
	if stats[0].AvgLatencyMs != 2000 {
		t.Errorf("avg latency = %d, want 2000", stats[0].AvgLatencyMs)
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("models = %d, want 2", len(models))
	}
}

func TestPaperDeleteByOwner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	alice, err := s.UserRepo().GetOrCreate(ctx, "alice")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := s.UserRepo().GetOrCreate(ctx, "bob")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	repo := s.PaperRepo()
	for range 3 {
		if _, err := repo.Save(ctx, testPaper(alice.ID)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if _, err := repo.Save(ctx, testPaper(bob.ID)); err != nil {
		t.Fatalf("save: %v", err)
	}

	n, err := repo.DeleteByOwner(ctx, alice.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted %d papers, want 3", n)
	}

	left, err := repo.ListByOwner(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("alice still has %d papers", len(left))
	}

	// Deleting one profile must not touch another.
	bobs, err := repo.ListByOwner(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bobs) != 1 {
		t.Errorf("bob has %d papers, want 1", len(bobs))
	}
}

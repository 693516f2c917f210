package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/identity"
	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
)

// mockPaperRepo implements history.PaperRepo for testing.
type mockPaperRepo struct {
	summaries []history.PaperSummary
	err       error
}

func (m *mockPaperRepo) Save(_ context.Context, _ *history.PaperRecord) (string, error) {
	return "", errors.New("not implemented")
}

func (m *mockPaperRepo) ListByOwner(_ context.Context, _ string) ([]history.PaperSummary, error) {
	return m.summaries, m.err
}

func (m *mockPaperRepo) GetByID(_ context.Context, _, _ string) (*history.PaperRecord, error) {
	return nil, history.ErrNotAvailable
}

func (m *mockPaperRepo) DeleteByOwner(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func testSession() *identity.Session {
	return &identity.Session{UserID: "3f2d9c1e-0000-0000-0000-000000000001", Name: "atchuta"}
}

func loadedScreen(t *testing.T, repo *mockPaperRepo) *HistoryScreen {
	t.Helper()
	s := New(repo, testSession())
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should load papers")
	}
	s.Update(cmd())
	return s
}

func TestShowsEmptyState(t *testing.T) {
	s := loadedScreen(t, &mockPaperRepo{})
	view := s.View(100, 30)
	if !strings.Contains(view, "No papers yet") {
		t.Errorf("expected empty state, got:\n%s", view)
	}
}

func TestShowsLoadError(t *testing.T) {
	s := loadedScreen(t, &mockPaperRepo{err: errors.New("disk gone")})
	view := s.View(100, 30)
	if !strings.Contains(view, "disk gone") {
		t.Errorf("expected error message, got:\n%s", view)
	}
}

func TestListsPapersWithScores(t *testing.T) {
	repo := &mockPaperRepo{summaries: []history.PaperSummary{
		{ID: "a", Subject: "Physics", Difficulty: "Hard", Score: 7, QuestionCount: 10, CreatedAt: time.Now()},
		{ID: "b", Title: "Revision set", Subject: "Chemistry", Difficulty: "Easy", Score: 3, QuestionCount: 5, CreatedAt: time.Now()},
	}}
	s := loadedScreen(t, repo)

	view := s.View(100, 30)
	if !strings.Contains(view, "Physics - Hard") {
		t.Error("derived title missing")
	}
	if !strings.Contains(view, "Revision set") {
		t.Error("explicit title missing")
	}
	if !strings.Contains(view, "7/10") || !strings.Contains(view, "3/5") {
		t.Error("scores missing")
	}
}

func TestEnterOpensSelectedPaper(t *testing.T) {
	repo := &mockPaperRepo{summaries: []history.PaperSummary{
		{ID: "a", Subject: "Physics", Difficulty: "Hard", CreatedAt: time.Now()},
		{ID: "b", Subject: "Chemistry", Difficulty: "Easy", CreatedAt: time.Now()},
	}}
	s := loadedScreen(t, repo)

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should open the selected paper")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Fatal("pushed screen is nil")
	}
	if s.selected != 1 {
		t.Fatalf("selected = %d, want 1", s.selected)
	}
}

func TestEscNavigatesBack(t *testing.T) {
	s := loadedScreen(t, &mockPaperRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should navigate back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

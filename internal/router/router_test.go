package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/screen"
)

type fakeScreen struct {
	title    string
	initRan  bool
	received []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.title }
func (s *fakeScreen) Title() string        { return s.title }

func TestPushRunsInit(t *testing.T) {
	r := New(&fakeScreen{title: "home"})
	next := &fakeScreen{title: "setup"}
	r.Push(next)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "setup" {
		t.Errorf("active = %q, want setup", r.Active().Title())
	}
	if !next.initRan {
		t.Error("pushed screen's Init did not run")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r := New(&fakeScreen{title: "home"})
	r.Push(&fakeScreen{title: "setup"})
	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestPopKeepsLastScreen(t *testing.T) {
	r := New(&fakeScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at the bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{title: "home"})
	r.Push(&fakeScreen{title: "setup"})

	paper := &fakeScreen{title: "paper"}
	r.Replace(paper)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "paper" {
		t.Errorf("active = %q, want paper", r.Active().Title())
	}
	if !paper.initRan {
		t.Error("replacement screen's Init did not run")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{title: "home"})

	setup := &fakeScreen{title: "setup"}
	r.Update(PushScreenMsg{Screen: setup})
	if r.Active() != setup {
		t.Fatal("PushScreenMsg did not push")
	}

	paper := &fakeScreen{title: "paper"}
	r.Update(ReplaceScreenMsg{Screen: paper})
	if r.Active() != paper {
		t.Fatal("ReplaceScreenMsg did not replace")
	}
	if !paper.initRan {
		t.Error("ReplaceScreenMsg did not run Init")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("active = %q after pop, want home", r.Active().Title())
	}
}

func TestOtherMessagesReachActiveScreen(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if len(home.received) != 1 {
		t.Fatalf("active screen saw %d messages, want 1", len(home.received))
	}
}

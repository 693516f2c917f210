package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/router"
	"github.com/Atchuta30/JEE-Prep-AI/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestTaglineAppearsAfterFirstPhase(t *testing.T) {
	w, _ := newTestWelcome()

	view := w.View(100, 30)
	if strings.Contains(view, "JEE practice") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 6) // 600ms
	view = w.View(100, 30)
	if !strings.Contains(view, "JEE practice") {
		t.Error("tagline should be visible after phase 1")
	}
}

func TestContinueHintAppearsAtEnd(t *testing.T) {
	w, _ := newTestWelcome()

	sendTicks(w, 6)
	if strings.Contains(w.View(100, 30), "press any key") {
		t.Error("hint should not be visible mid-animation")
	}

	sendTicks(w, 30)
	if !strings.Contains(w.View(100, 30), "press any key") {
		t.Error("hint should be visible once the animation completes")
	}
}

func TestKeypressTransitionsToHome(t *testing.T) {
	w, callCount := newTestWelcome()

	sendTicks(w, 3)
	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestTransitionFiresOnlyOnce(t *testing.T) {
	w, callCount := newTestWelcome()

	_, first := w.Update(tea.KeyPressMsg{Code: 'x'})
	_, second := w.Update(tea.KeyPressMsg{Code: 'x'})
	if first == nil {
		t.Fatal("first keypress should transition")
	}
	if second != nil {
		t.Error("second keypress should be a no-op")
	}
	if *callCount != 1 {
		t.Errorf("factory called %d times, want 1", *callCount)
	}
}

func TestCompactBannerOnNarrowTerminal(t *testing.T) {
	w, _ := newTestWelcome()
	view := w.View(50, 24)
	if !strings.Contains(view, bannerCompact) {
		t.Error("narrow terminal should use the compact banner")
	}
}

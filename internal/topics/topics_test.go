package topics

import (
	"testing"

	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
)

func TestEverySubjectHasTopics(t *testing.T) {
	for _, s := range papergen.Subjects() {
		if len(ForSubject(s)) == 0 {
			t.Errorf("subject %s has no topics", s)
		}
	}
}

func TestUnknownSubject(t *testing.T) {
	if got := ForSubject("Biology"); got != nil {
		t.Errorf("ForSubject(Biology) = %v, want nil", got)
	}
}

func TestNoDuplicateTopics(t *testing.T) {
	for _, s := range papergen.Subjects() {
		seen := make(map[string]bool)
		for _, topic := range ForSubject(s) {
			if topic == "" {
				t.Errorf("%s: empty topic name", s)
			}
			if seen[topic] {
				t.Errorf("%s: duplicate topic %q", s, topic)
			}
			seen[topic] = true
		}
	}
}

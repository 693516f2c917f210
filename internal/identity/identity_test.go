package identity

import "testing"

func TestResolveName(t *testing.T) {
	t.Setenv("JEEPREP_USER", "")

	if got := ResolveName("  atchuta  "); got != "atchuta" {
		t.Errorf("explicit name = %q, want atchuta", got)
	}

	t.Setenv("JEEPREP_USER", "env-user")
	if got := ResolveName(""); got != "env-user" {
		t.Errorf("env name = %q, want env-user", got)
	}
	if got := ResolveName("flag-user"); got != "flag-user" {
		t.Errorf("flag should win over env, got %q", got)
	}

	t.Setenv("JEEPREP_USER", "")
	// Falls back to the OS login name or "default"; either way it
	// must not be empty.
	if got := ResolveName(""); got == "" {
		t.Error("fallback name is empty")
	}
}

// Package identity resolves which local profile the app is running
// as. There is no authentication: a profile is just a name, created
// on first use, and everything persisted is scoped to it.
package identity

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
)

// Session is the resolved profile for this run.
type Session struct {
	UserID string
	Name   string
}

// ResolveName picks the profile name in priority order:
// 1. the explicit name (--user flag)
// 2. JEEPREP_USER environment variable
// 3. the OS login name
func ResolveName(explicit string) string {
	if n := strings.TrimSpace(explicit); n != "" {
		return n
	}
	if n := strings.TrimSpace(os.Getenv("JEEPREP_USER")); n != "" {
		return n
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "default"
}

// Establish looks up or creates the named profile and returns the
// session for it.
func Establish(ctx context.Context, users history.UserRepo, name string) (*Session, error) {
	rec, err := users.GetOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("establish profile %q: %w", name, err)
	}
	return &Session{UserID: rec.ID, Name: rec.Name}, nil
}

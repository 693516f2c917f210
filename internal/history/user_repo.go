package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Atchuta30/JEE-Prep-AI/ent"
	"github.com/Atchuta30/JEE-Prep-AI/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) GetOrCreate(ctx context.Context, name string) (*UserRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile name must not be empty")
	}

	u, err := r.client.User.Query().
		Where(user.Name(name)).
		Only(ctx)
	switch {
	case err == nil:
		return toUserRecord(u), nil
	case ent.IsNotFound(err):
		// Fall through to create.
	default:
		return nil, fmt.Errorf("query profile: %w", err)
	}

	u, err = r.client.User.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		// A concurrent first use may have created it between the
		// query and the insert.
		if ent.IsConstraintError(err) {
			u, qerr := r.client.User.Query().
				Where(user.Name(name)).
				Only(ctx)
			if qerr == nil {
				return toUserRecord(u), nil
			}
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return toUserRecord(u), nil
}

func toUserRecord(u *ent.User) *UserRecord {
	return &UserRecord{
		ID:        u.ID.String(),
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

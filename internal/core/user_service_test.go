package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	creates int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]*models.User{}}
	for _, u := range users {
		r.byID[u.UID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(ctx context.Context, uid string) (*models.User, error) {
	if u, ok := r.byID[uid]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user '%s': %w", uid, db.ErrNotFound)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.creates++
	r.byID[user.UID] = user
	return nil
}

func TestGetOrCreateFirstSignIn(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	user, created, err := svc.GetOrCreate(context.Background(), Identity{
		UID:         "user-1",
		Email:       "user@example.com",
		DisplayName: "User One",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "user-1", user.UID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, 1, repo.creates)
}

func TestGetOrCreateExistingProfileUntouched(t *testing.T) {
	repo := newFakeUserRepo(&models.User{UID: "user-1", Email: "old@example.com", DisplayName: "Old Name"})
	svc := NewUserService(repo, zap.NewNop())

	// Changed Auth claims never overwrite the stored profile.
	user, created, err := svc.GetOrCreate(context.Background(), Identity{
		UID:         "user-1",
		Email:       "new@example.com",
		DisplayName: "New Name",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "old@example.com", user.Email)
	assert.Zero(t, repo.creates)
}

func TestGetOrCreateRequiresIdentity(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zap.NewNop())

	_, _, err := svc.GetOrCreate(context.Background(), Identity{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

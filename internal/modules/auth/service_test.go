package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nthanfp/vhiweb-assignment/internal/modules/user"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uuid.UUID]*user.User),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type fakeTokenRepo struct {
	revoked map[string]time.Time
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{revoked: make(map[string]time.Time)}
}

func (f *fakeTokenRepo) RevokeToken(_ context.Context, jti string, expiresAt time.Time) error {
	f.revoked[jti] = expiresAt
	return nil
}

func (f *fakeTokenRepo) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := f.revoked[jti]
	return ok, nil
}

func setup(t *testing.T) (Service, *user.User) {
	t.Helper()
	repo := newFakeUserRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &user.User{ID: uuid.New(), Email: "seller@example.com", PasswordHash: string(hash)}
	require.NoError(t, repo.CreateUser(context.Background(), u))

	return NewService(repo, newFakeTokenRepo(), "test-secret", time.Hour), u
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, u := setup(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "seller@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "seller@example.com", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "correct horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Authenticate(context.Background(), "not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateRejectsWrongSecret(t *testing.T) {
	svc, _ := setup(t)
	other := NewService(newFakeUserRepo(), newFakeTokenRepo(), "other-secret", time.Hour)

	token, err := svc.Login(context.Background(), "seller@example.com", "correct horse")
	require.NoError(t, err)

	_, err = other.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "seller@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

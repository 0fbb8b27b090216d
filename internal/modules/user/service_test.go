package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nthanfp/vhiweb-assignment/internal/validate"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	byEmail map[string]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*User)}
}

func (f *fakeRepo) CreateUser(_ context.Context, u *User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return ErrEmailTaken
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func TestRegisterUser(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.RegisterUser(context.Background(), RegisterRequest{
		Email:     "seller@example.com",
		Password:  "correct horse",
		FirstName: "Andi",
	})
	require.NoError(t, err)
	require.Equal(t, "seller@example.com", u.Email)

	// The password is stored hashed, never verbatim.
	require.NotEqual(t, "correct horse", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")))
}

func TestRegisterUserValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	cases := []struct {
		name  string
		req   RegisterRequest
		field string
	}{
		{"missing email", RegisterRequest{Password: "longenough"}, "email"},
		{"invalid email", RegisterRequest{Email: "not-an-email", Password: "longenough"}, "email"},
		{"missing password", RegisterRequest{Email: "a@b.com"}, "password"},
		{"short password", RegisterRequest{Email: "a@b.com", Password: "short"}, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tc.req)
			var verrs validate.Errors
			require.ErrorAs(t, err, &verrs)
			require.Contains(t, verrs, tc.field)
		})
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())
	req := RegisterRequest{Email: "seller@example.com", Password: "correct horse"}

	_, err := svc.RegisterUser(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), req)
	require.ErrorIs(t, err, ErrEmailTaken)
}

package authsvc

import (
	"context"
	"errors"
	"testing"

	"attirerental/model"
	userrepo "attirerental/repository/user"
	"attirerental/util/hash"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Register(ctx, model.RegisterReq{
		FirstName: "Maria",
		LastName:  "Dela Cruz",
		Email:     "admin@shop.test",
		Username:  "maria",
		Password:  "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), u.ID)
	require.NotEmpty(t, tok)
	require.NotEqual(t, "supersecret", u.PasswordHash)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{ID: 7, Email: "admin@shop.test", PasswordHash: mustHash(t, "supersecret")}
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) { return stored, nil },
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: "admin@shop.test", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)
	require.NotEmpty(t, tok)
}

func TestLogin_WrongPassword(t *testing.T) {
	stored := &model.User{ID: 7, PasswordHash: mustHash(t, "supersecret")}
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) { return stored, nil },
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{Email: "admin@shop.test", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_UnknownEmail(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, errors.New("no rows")
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{Email: "ghost@shop.test", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

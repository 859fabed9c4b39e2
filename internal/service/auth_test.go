package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pingstack/pingstack-go/internal/crypto"
	"github.com/pingstack/pingstack-go/internal/model"
	"github.com/pingstack/pingstack-go/internal/repository"
)

// fakeUserRepository is an in-memory UserRepository for service tests.
type fakeUserRepository struct {
	users  []*model.User
	nextID int64
}

func (f *fakeUserRepository) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepository) GetByUsernameOrEmail(_ context.Context, identifier string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

const testSecret = "test-secret"

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	hash, err := crypto.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	repo := &fakeUserRepository{}
	repo.users = append(repo.users, &model.User{
		ID:           1,
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
	})
	repo.nextID = 1

	return NewAuthService(repo, testSecret, time.Hour)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		UsernameOrEmail: "admin",
		Password:        "password123",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	if resp.User.Username != "admin" || resp.User.Email != "admin@example.com" {
		t.Errorf("Login() user = %+v, want admin/admin@example.com", resp.User)
	}

	claims, err := crypto.ValidateToken(resp.Token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != 1 {
		t.Errorf("token UserID = %d, want 1", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("token Username = %q, want %q", claims.Username, "admin")
	}
}

func TestLoginByEmail(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		UsernameOrEmail: "admin@example.com",
		Password:        "password123",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.User.ID != 1 {
		t.Errorf("Login() user ID = %d, want 1", resp.User.ID)
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t)

	_, wrongPassErr := svc.Login(context.Background(), model.LoginRequest{
		UsernameOrEmail: "admin",
		Password:        "wrong-password",
	})
	_, noUserErr := svc.Login(context.Background(), model.LoginRequest{
		UsernameOrEmail: "nobody",
		Password:        "password123",
	})

	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassErr)
	}
	if !errors.Is(noUserErr, ErrInvalidCredentials) {
		t.Errorf("missing user error = %v, want ErrInvalidCredentials", noUserErr)
	}
	if wrongPassErr != noUserErr {
		t.Error("wrong-password and missing-user failures must be identical")
	}
}

func TestLoginValidation(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{Password: "password123"})
	if !errors.Is(err, ErrUsernameRequired) {
		t.Errorf("empty identifier error = %v, want ErrUsernameRequired", err)
	}

	_, err = svc.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "admin"})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("empty password error = %v, want ErrPasswordRequired", err)
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "john",
		Email:    "john@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if resp.User.ID == 0 {
		t.Error("Register() did not assign a user ID")
	}

	// The new credentials must immediately work for login.
	if _, err := svc.Login(context.Background(), model.LoginRequest{
		UsernameOrEmail: "john",
		Password:        "secret",
	}); err != nil {
		t.Errorf("Login() after Register() unexpected error: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "admin",
		Email:    "other@example.com",
		Password: "secret",
	})
	if !errors.Is(err, ErrUserTaken) {
		t.Errorf("duplicate username error = %v, want ErrUserTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(t)

	cases := []struct {
		name string
		req  model.RegisterRequest
		want error
	}{
		{"missing username", model.RegisterRequest{Email: "a@b.c", Password: "x"}, ErrUsernameRequired},
		{"missing email", model.RegisterRequest{Username: "a", Password: "x"}, ErrEmailRequired},
		{"missing password", model.RegisterRequest{Username: "a", Email: "a@b.c"}, ErrPasswordRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.req); !errors.Is(err, tc.want) {
				t.Errorf("Register() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	svc := newTestAuthService(t)

	user, err := svc.GetUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUser() unexpected error: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("GetUser() username = %q, want %q", user.Username, "admin")
	}

	if _, err := svc.GetUser(context.Background(), 99); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("GetUser(99) error = %v, want ErrUserNotFound", err)
	}
}

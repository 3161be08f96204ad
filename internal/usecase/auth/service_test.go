package auth

import (
	"context"
	"errors"
	"testing"

	"talentgate/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]user.User{},
		byID:    map[uuid.UUID]user.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func TestService_Register_Login_Roundtrip(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	registered, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if registered.Email != "a@b.com" {
		t.Fatalf("unexpected email: %s", registered.Email)
	}
	if registered.Role != user.RoleRecruiter {
		t.Fatalf("expected recruiter role, got %s", registered.Role)
	}
	if registered.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}

	logged, err := svc.Login(context.Background(), LoginInput{Email: "A@B.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != registered.ID {
		t.Fatalf("login returned a different user")
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "password123"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "password456"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Register_InvalidInput(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	cases := []RegisterInput{
		{Email: "", Password: "password123"},
		{Email: "not-an-email", Password: "password123"},
		{Email: "a@b.com", Password: "short"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "password123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Login_UnknownEmail_SameError(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@b.com", Password: "password123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

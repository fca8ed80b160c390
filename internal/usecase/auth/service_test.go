package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/internal/domain/user"
	"devconnect/internal/pkg/token"
)

type mockUserRepo struct {
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User

	createErr error
	deleted   []uuid.UUID
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: map[string]user.User{},
		byID:    map[uuid.UUID]user.User{},
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.byEmail[u.Email]; exists {
		return user.ErrEmailTaken
	}
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func newTestService(repo *mockUserRepo) *Service {
	tokens := token.NewHMACService("test-secret", 3600*time.Second)
	return NewService(repo, tokens, zap.NewNop())
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := newTestService(newMockUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if u.Password == "" || u.Password == "secret1" {
		t.Fatalf("password must be a non-empty hash, got %q", u.Password)
	}
	if !strings.Contains(u.Avatar, "gravatar.com") {
		t.Fatalf("avatar not derived: %q", u.Avatar)
	}
	if u.ID == uuid.Nil {
		t.Fatalf("missing id")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	in := RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in.Name = "Someone Else"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "  A@X.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "a@x.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tok, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok == "" {
		t.Fatalf("empty token")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(newMockUserRepo())

	if _, err := svc.Login(context.Background(), "nobody@x.com", "pw"); !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), "a@x.com", "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestCurrent(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	created, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Current(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got.Email != "a@x.com" || got.Name != "A" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

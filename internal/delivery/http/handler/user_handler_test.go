package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"devconnect/internal/delivery/http/middleware"
	"devconnect/internal/domain/user"
	"devconnect/internal/pkg/token"
	ucauth "devconnect/internal/usecase/auth"
)

type mockAuthUsecase struct {
	registerErr error
	loginTok    string
	loginErr    error
	current     user.User
	currentErr  error
}

func (m *mockAuthUsecase) Register(_ context.Context, in ucauth.RegisterInput) (user.User, error) {
	if m.registerErr != nil {
		return user.User{}, m.registerErr
	}
	return user.User{ID: uuid.New(), Name: in.Name, Email: in.Email, Password: "$2a$10$hash"}, nil
}

func (m *mockAuthUsecase) Login(context.Context, string, string) (string, error) {
	return m.loginTok, m.loginErr
}

func (m *mockAuthUsecase) Current(context.Context, uuid.UUID) (user.User, error) {
	return m.current, m.currentErr
}

func newTestApp(uc ucauth.Usecase, tokens token.Service) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	authGate := middleware.NewAuthMiddleware(tokens).Middleware()
	NewUserHandler(uc, authGate).RegisterRoutes(app.Group("/api/users"))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, header map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestRegister_ValidationFailure(t *testing.T) {
	app := newTestApp(&mockAuthUsecase{}, token.NewHMACService("s", time.Hour))

	resp, body := doJSON(t, app, http.MethodPost, "/api/users/register", map[string]string{
		"email": "bad", "password": "short", "password2": "different",
	}, nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	for _, field := range []string{"name", "email", "password", "password2"} {
		if _, ok := body[field]; !ok {
			t.Fatalf("expected %q in error body, got %v", field, body)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := newTestApp(&mockAuthUsecase{registerErr: ucauth.ErrEmailTaken}, token.NewHMACService("s", time.Hour))

	resp, body := doJSON(t, app, http.MethodPost, "/api/users/register", map[string]string{
		"name": "Ada", "email": "a@x.com", "password": "secret1", "password2": "secret1",
	}, nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["email"] != "Email already exists" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_ResponseShape(t *testing.T) {
	app := newTestApp(&mockAuthUsecase{loginTok: "signed.jwt.here"}, token.NewHMACService("s", time.Hour))

	resp, body := doJSON(t, app, http.MethodPost, "/api/users/login", map[string]string{
		"email": "a@x.com", "password": "secret1",
	}, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body)
	}
	if body["token"] != "Bearer signed.jwt.here" {
		t.Fatalf("token must carry the Bearer prefix, got %v", body["token"])
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	app := newTestApp(&mockAuthUsecase{loginErr: ucauth.ErrEmailNotFound}, token.NewHMACService("s", time.Hour))

	resp, body := doJSON(t, app, http.MethodPost, "/api/users/login", map[string]string{
		"email": "a@x.com", "password": "secret1",
	}, nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["email"] != "User not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(&mockAuthUsecase{loginErr: ucauth.ErrPasswordMismatch}, token.NewHMACService("s", time.Hour))

	resp, body := doJSON(t, app, http.MethodPost, "/api/users/login", map[string]string{
		"email": "a@x.com", "password": "nope00",
	}, nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["password"] != "Password incorrect" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCurrent_RequiresToken(t *testing.T) {
	app := newTestApp(&mockAuthUsecase{}, token.NewHMACService("s", time.Hour))

	resp, _ := doJSON(t, app, http.MethodGet, "/api/users/current", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/api/users/current", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bogus token, got %d", resp.StatusCode)
	}
}

func TestCurrent_WithValidToken(t *testing.T) {
	tokens := token.NewHMACService("s", time.Hour)
	id := uuid.New()
	uc := &mockAuthUsecase{current: user.User{ID: id, Name: "Ada", Email: "a@x.com"}}
	app := newTestApp(uc, tokens)

	tok, err := tokens.Generate(id, "Ada", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/users/current", nil, map[string]string{
		"Authorization": "Bearer " + tok,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["name"] != "Ada" || body["email"] != "a@x.com" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tokens := token.NewHMACService("s", 1*time.Nanosecond)
	app := newTestApp(&mockAuthUsecase{}, tokens)

	tok, err := tokens.Generate(uuid.New(), "Ada", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	resp, body := doJSON(t, app, http.MethodGet, "/api/users/current", nil, map[string]string{
		"Authorization": "Bearer " + tok,
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.StatusCode)
	}
	if body["error"] != "Token expired" {
		t.Fatalf("unexpected body: %v", body)
	}
}

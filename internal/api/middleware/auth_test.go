package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
	"github.com/sustainalink/platform/internal/core/token"
)

// stubStore serves FindByID from a fixed map; the remaining methods are unused
// by the authenticator.
type stubStore struct {
	ports.CredentialStore
	users   map[string]*domain.User
	err     error
	lookups int
}

func (s *stubStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.lookups++
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func newTestManager(t *testing.T) *token.Manager {
	t.Helper()
	m, err := token.NewManager("secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m
}

func issue(t *testing.T, m *token.Manager, subject string) string {
	t.Helper()
	raw, err := m.Issue(subject)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}

func newAuthFixture(t *testing.T) (*Authenticator, *token.Manager, *stubStore) {
	t.Helper()
	m := newTestManager(t)
	store := &stubStore{users: map[string]*domain.User{
		"7":  {ID: "7", Email: "a@b.com", Role: domain.RoleConsumer, IsActive: true},
		"42": {ID: "42", Email: "off@b.com", Role: domain.RoleConsumer, IsActive: false},
	}}
	return NewAuthenticator(m, store, zerolog.Nop()), m, store
}

// serve runs h through the middleware, routing returned errors to Echo's
// error handler like the router does.
func serve(e *echo.Echo, h echo.HandlerFunc, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decodeRejection(t *testing.T, rec *httptest.ResponseRecorder) rejection {
	t.Helper()
	var body rejection
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestAuthenticator_ValidToken(t *testing.T) {
	a, m, _ := newAuthFixture(t)
	e := echo.New()

	called := 0
	h := a.Middleware()(func(c echo.Context) error {
		called++
		user := IdentityFrom(c)
		if user == nil || user.ID != "7" {
			t.Fatalf("identity not attached: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	rec := serve(e, h, "Bearer "+issue(t, m, "7"))
	if rec.Code != http.StatusOK || called != 1 {
		t.Fatalf("expected handler to run once with 200, got %d (called %d)", rec.Code, called)
	}
}

func TestAuthenticator_SchemeIsCaseInsensitive(t *testing.T) {
	a, m, _ := newAuthFixture(t)

	user, err := a.Resolve(context.Background(), "bearer "+issue(t, m, "7"))
	if err != nil || user.ID != "7" {
		t.Fatalf("expected identity 7, got %+v %v", user, err)
	}
}

func TestAuthenticator_Resolve_States(t *testing.T) {
	a, m, _ := newAuthFixture(t)
	foreign, err := token.NewManager("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   error
	}{
		{"no header", "", domain.ErrMissingCredential},
		{"wrong scheme", "Token abc", domain.ErrMissingCredential},
		{"empty token", "Bearer   ", domain.ErrMissingCredential},
		{"scheme only", "Bearer", domain.ErrMissingCredential},
		{"garbage", "Bearer not-a-token", domain.ErrInvalidToken},
		{"foreign secret", "Bearer " + issue(t, foreign, "7"), domain.ErrInvalidToken},
		{"unknown subject", "Bearer " + issue(t, m, "999"), domain.ErrUnknownSubject},
		{"deactivated", "Bearer " + issue(t, m, "42"), domain.ErrDeactivated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := a.Resolve(context.Background(), tc.header); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthenticator_ExpiredToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, err := token.NewManager("secret", time.Hour, token.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	store := &stubStore{users: map[string]*domain.User{"7": {ID: "7", IsActive: true}}}
	a := NewAuthenticator(m, store, zerolog.Nop())
	raw := issue(t, m, "7")

	now = now.Add(2 * time.Hour)
	if _, err := a.Resolve(context.Background(), "Bearer "+raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if store.lookups != 0 {
		t.Fatalf("store must not be consulted for an invalid token")
	}
}

func TestAuthenticator_RejectionsAreUniform(t *testing.T) {
	a, m, _ := newAuthFixture(t)
	e := echo.New()

	headers := []string{
		"",
		"Basic dXNlcjpwYXNz",
		"Bearer tampered.token.value",
		"Bearer " + issue(t, m, "999"),
		"Bearer " + issue(t, m, "42"),
	}

	var first string
	for _, header := range headers {
		h := a.Middleware()(func(c echo.Context) error {
			t.Fatalf("handler must not run for header %q", header)
			return nil
		})
		rec := serve(e, h, header)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %q, got %d", header, rec.Code)
		}
		body := decodeRejection(t, rec)
		if body.Success || body.Message != UnauthorizedMessage {
			t.Fatalf("unexpected body for %q: %+v", header, body)
		}
		if first == "" {
			first = rec.Body.String()
		} else if rec.Body.String() != first {
			t.Fatalf("response for %q differs: %s vs %s", header, rec.Body.String(), first)
		}
	}
}

func TestAuthenticator_DeactivatedSubjectWithValidToken(t *testing.T) {
	a, m, _ := newAuthFixture(t)
	raw := issue(t, m, "42")

	if _, err := m.Verify(raw); err != nil {
		t.Fatalf("token itself should be valid: %v", err)
	}
	if _, err := a.Resolve(context.Background(), "Bearer "+raw); !errors.Is(err, domain.ErrDeactivated) {
		t.Fatalf("expected ErrDeactivated, got %v", err)
	}
}

func TestAuthenticator_Idempotent(t *testing.T) {
	a, m, _ := newAuthFixture(t)
	header := "Bearer " + issue(t, m, "7")

	first, err := a.Resolve(context.Background(), header)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := a.Resolve(context.Background(), header)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identities differ: %+v vs %+v", first, second)
	}
}

func TestAuthenticator_StoreFaultPropagates(t *testing.T) {
	m := newTestManager(t)
	boom := errors.New("connection refused")
	a := NewAuthenticator(m, &stubStore{err: boom}, zerolog.Nop())
	e := echo.New()

	called := false
	h := a.Middleware()(func(c echo.Context) error {
		called = true
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, m, "7"))
	c := e.NewContext(req, httptest.NewRecorder())

	if err := h(c); !errors.Is(err, boom) {
		t.Fatalf("expected store fault to reach the error handler, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run on store fault")
	}
}

func TestAuthenticator_CancelledRequestStopsChain(t *testing.T) {
	a, m, _ := newAuthFixture(t)
	e := echo.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, m, "7"))
	c := e.NewContext(req, httptest.NewRecorder())

	h := a.Middleware()(func(c echo.Context) error {
		t.Fatalf("handler must not run after cancellation")
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthenticator_Require(t *testing.T) {
	a, m, _ := newAuthFixture(t)
	e := echo.New()

	if got := len(a.Require()); got != 1 {
		t.Fatalf("expected authentication only, got %d stages", got)
	}

	chain := a.Require(domain.RoleAdmin)
	if len(chain) != 2 {
		t.Fatalf("expected two stages, got %d", len(chain))
	}

	h := func(c echo.Context) error {
		t.Fatalf("consumer must not reach an admin handler")
		return nil
	}
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}

	rec := serve(e, h, "Bearer "+issue(t, m, "7"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

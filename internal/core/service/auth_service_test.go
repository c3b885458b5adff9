package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
	"github.com/sustainalink/platform/internal/core/token"
)

type stubCredentialStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubCredentialStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.seq++
		copy.ID = "u" + strconv.Itoa(r.seq)
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubCredentialStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == domain.NormalizeEmail(email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubCredentialStore) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Profile != nil {
		u.Profile = *upd.Profile
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	return cloneUser(u), nil
}

func (r *stubCredentialStore) List(_ context.Context, _ ports.UserFilter) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, int64(len(out)), nil
}

type stubResetStore struct {
	entries map[string]string
	ttl     time.Duration
}

func newStubResetStore() *stubResetStore {
	return &stubResetStore{entries: make(map[string]string)}
}

func (s *stubResetStore) Save(_ context.Context, digest, userID string, ttl time.Duration) error {
	s.entries[digest] = userID
	s.ttl = ttl
	return nil
}

func (s *stubResetStore) Consume(_ context.Context, digest string) (string, error) {
	id, ok := s.entries[digest]
	if !ok {
		return "", domain.ErrResetTokenInvalid
	}
	delete(s.entries, digest)
	return id, nil
}

type stubQueue struct {
	sent []ports.Notification
	err  error
}

func (q *stubQueue) Enqueue(_ context.Context, n ports.Notification) error {
	if q.err != nil {
		return q.err
	}
	q.sent = append(q.sent, n)
	return nil
}

type authFixture struct {
	svc    *AuthService
	repo   *stubCredentialStore
	resets *stubResetStore
	queue  *stubQueue
	tokens *token.Manager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	tokens, err := token.NewManager("secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	f := &authFixture{
		repo:   newStubCredentialStore(),
		resets: newStubResetStore(),
		queue:  &stubQueue{},
		tokens: tokens,
	}
	f.svc = NewAuthService(f.repo, tokens, f.resets, f.queue, AuthOptions{
		BcryptCost:  bcrypt.MinCost,
		ResetTTL:    30 * time.Minute,
		FrontendURL: "https://app.example.com/",
	}, zerolog.Nop())
	return f
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{Email: email, Password: "secret1", FirstName: "Ada", LastName: "Lovelace"}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t)

	res, err := f.svc.Register(context.Background(), registerInput("  Ada@Example.com "))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	user := res.User
	if user.Email != "ada@example.com" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleConsumer || !user.IsActive || user.Rewards.Level != 1 {
		t.Fatalf("unexpected defaults: %+v", user)
	}

	subject, err := f.tokens.Verify(res.Token)
	if err != nil || subject != user.ID {
		t.Fatalf("token does not verify to user id: %q %v", subject, err)
	}
	if res.ExpiresIn != time.Hour {
		t.Fatalf("expected token lifetime 1h, got %v", res.ExpiresIn)
	}
	if len(f.queue.sent) != 1 || f.queue.sent[0].Kind != ports.NotificationWelcome {
		t.Fatalf("expected welcome notification, got %+v", f.queue.sent)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	cases := map[string]ports.RegisterInput{
		"missing email":  {Password: "secret1", FirstName: "a", LastName: "b"},
		"short password": {Email: "a@b.com", Password: "123", FirstName: "a", LastName: "b"},
		"missing name":   {Email: "a@b.com", Password: "secret1", LastName: "b"},
		"long last name": {Email: "a@b.com", Password: "secret1", FirstName: "a", LastName: strings.Repeat("x", 51)},
		"admin role":     {Email: "a@b.com", Password: "secret1", FirstName: "a", LastName: "b", Role: domain.RoleAdmin},
		"unknown role":   {Email: "a@b.com", Password: "secret1", FirstName: "a", LastName: "b", Role: "root"},
	}
	for name, in := range cases {
		if _, err := f.svc.Register(ctx, in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	f := newAuthFixture(t)

	if _, err := f.svc.Register(context.Background(), registerInput("bob@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := f.svc.Register(context.Background(), registerInput("BOB@example.com")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	reg, err := f.svc.Register(context.Background(), registerInput("carol@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := f.svc.Login(context.Background(), "Carol@Example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.User.ID != reg.User.ID {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if subject, err := f.tokens.Verify(res.Token); err != nil || subject != reg.User.ID {
		t.Fatalf("token invalid: %v", err)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	f := newAuthFixture(t)
	_, _ = f.svc.Register(context.Background(), registerInput("dave@example.com"))

	if _, err := f.svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	f := newAuthFixture(t)

	if _, err := f.svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Deactivated(t *testing.T) {
	f := newAuthFixture(t)
	reg, _ := f.svc.Register(context.Background(), registerInput("erin@example.com"))
	inactive := false
	_, _ = f.repo.Update(context.Background(), reg.User.ID, ports.UserUpdate{IsActive: &inactive})

	if _, err := f.svc.Login(context.Background(), "erin@example.com", "wrong-pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password on inactive account must stay generic, got %v", err)
	}
	if _, err := f.svc.Login(context.Background(), "erin@example.com", "secret1"); err != domain.ErrDeactivated {
		t.Fatalf("expected ErrDeactivated, got %v", err)
	}
}

func TestAuthService_UpdatePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	reg, _ := f.svc.Register(ctx, registerInput("fay@example.com"))

	if _, err := f.svc.UpdatePassword(ctx, reg.User.ID, "nope", "newsecret"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := f.svc.UpdatePassword(ctx, reg.User.ID, "secret1", "123"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	res, err := f.svc.UpdatePassword(ctx, reg.User.ID, "secret1", "newsecret")
	if err != nil {
		t.Fatalf("update password: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a fresh token")
	}
	if _, err := f.svc.Login(ctx, "fay@example.com", "newsecret"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, err := f.svc.Login(ctx, "fay@example.com", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password still accepted: %v", err)
	}
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture(t)

	if err := f.svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(f.resets.entries) != 0 || len(f.queue.sent) != 0 {
		t.Fatalf("no reset should be issued for unknown email")
	}
}

func TestAuthService_ResetPassword_SingleUse(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	_, _ = f.svc.Register(ctx, registerInput("gus@example.com"))
	f.queue.sent = nil

	if err := f.svc.ForgotPassword(ctx, "gus@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if f.resets.ttl != 30*time.Minute {
		t.Fatalf("expected configured ttl, got %v", f.resets.ttl)
	}
	if len(f.queue.sent) != 1 || f.queue.sent[0].Kind != ports.NotificationPasswordReset {
		t.Fatalf("expected reset notification, got %+v", f.queue.sent)
	}

	link := f.queue.sent[0].Data["reset_url"]
	prefix := "https://app.example.com/reset-password/"
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("unexpected reset url %q", link)
	}
	raw := strings.TrimPrefix(link, prefix)
	for digest := range f.resets.entries {
		if digest == raw {
			t.Fatalf("raw token must not be stored")
		}
	}

	res, err := f.svc.ResetPassword(ctx, raw, "brandnew")
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token after reset")
	}
	if _, err := f.svc.Login(ctx, "gus@example.com", "brandnew"); err != nil {
		t.Fatalf("login after reset failed: %v", err)
	}

	if _, err := f.svc.ResetPassword(ctx, raw, "another1"); err != domain.ErrResetTokenInvalid {
		t.Fatalf("expected reused token to fail, got %v", err)
	}
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	f := newAuthFixture(t)

	if _, err := f.svc.ResetPassword(context.Background(), "bogus", "brandnew"); err != domain.ErrResetTokenInvalid {
		t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
	}
}

func TestAuthService_NotificationFailureDoesNotFailRegister(t *testing.T) {
	f := newAuthFixture(t)
	f.queue.err = errors.New("queue closed")

	if _, err := f.svc.Register(context.Background(), registerInput("hal@example.com")); err != nil {
		t.Fatalf("register should succeed, got %v", err)
	}
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

const (
	minPasswordLength = 6
	maxNameLength     = 50
	defaultResetTTL   = time.Hour
)

// AuthOptions tunes hashing and the password reset flow.
type AuthOptions struct {
	BcryptCost  int
	ResetTTL    time.Duration
	FrontendURL string
}

// AuthService implements registration, login and credential maintenance.
type AuthService struct {
	users         ports.CredentialStore
	tokens        ports.TokenIssuer
	resets        ports.ResetTokenStore
	notifications ports.NotificationQueue
	opts          AuthOptions
	log           zerolog.Logger
	now           func() time.Time
}

func NewAuthService(
	users ports.CredentialStore,
	tokens ports.TokenIssuer,
	resets ports.ResetTokenStore,
	notifications ports.NotificationQueue,
	opts AuthOptions,
	log zerolog.Logger,
) *AuthService {
	if opts.BcryptCost < bcrypt.MinCost || opts.BcryptCost > bcrypt.MaxCost {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.ResetTTL <= 0 {
		opts.ResetTTL = defaultResetTTL
	}
	return &AuthService{
		users:         users,
		tokens:        tokens,
		resets:        resets,
		notifications: notifications,
		opts:          opts,
		log:           log,
		now:           time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(input.Email)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)

	switch {
	case email == "":
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case len(input.Password) < minPasswordLength:
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	case firstName == "" || len(firstName) > maxNameLength:
		return nil, fmt.Errorf("%w: first name is required and must be less than %d characters", domain.ErrValidation, maxNameLength)
	case lastName == "" || len(lastName) > maxNameLength:
		return nil, fmt.Errorf("%w: last name is required and must be less than %d characters", domain.ErrValidation, maxNameLength)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleConsumer
	}
	if role != domain.RoleConsumer && role != domain.RoleSupplier {
		return nil, fmt.Errorf("%w: role must be one of: consumer supplier", domain.ErrValidation)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		Rewards:      domain.NewRewards(),
		Profile: domain.Profile{Preferences: domain.Preferences{
			SustainabilityGoals: []string{},
			Notifications:       domain.NotificationPreferences{Email: true, Push: true},
		}},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	s.notify(ctx, ports.Notification{
		Kind:      ports.NotificationWelcome,
		Recipient: created.Email,
		Subject:   "Welcome to SustainaLink",
		Data:      map[string]string{"name": created.FullName()},
	})

	return s.issue(created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: please provide an email and password", domain.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	// Deactivation is only disclosed to callers who proved the password.
	if !user.IsActive {
		return nil, domain.ErrDeactivated
	}

	return s.issue(user)
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (*ports.AuthResult, error) {
	if len(newPassword) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	updated, err := s.setPassword(ctx, user.ID, newPassword)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", updated.ID).Msg("password updated")
	return s.issue(updated)
}

// ForgotPassword starts a reset for known, active accounts. Unknown emails are
// not reported to the caller.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}
	if !user.IsActive {
		s.log.Debug().Str("user_id", user.ID).Msg("password reset requested for deactivated account")
		return nil
	}

	raw := uuid.NewString()
	if err := s.resets.Save(ctx, digest(raw), user.ID, s.opts.ResetTTL); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Dur("ttl", s.opts.ResetTTL).Msg("password reset issued")
	s.notify(ctx, ports.Notification{
		Kind:      ports.NotificationPasswordReset,
		Recipient: user.Email,
		Subject:   "Password Reset Request - SustainaLink",
		Data: map[string]string{
			"name":      user.FullName(),
			"reset_url": s.resetURL(raw),
			"expires":   s.now().Add(s.opts.ResetTTL).UTC().Format(time.RFC3339),
		},
	})
	return nil
}

// ResetPassword redeems a reset token once and sets the new password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (*ports.AuthResult, error) {
	if len(newPassword) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}
	if token == "" {
		return nil, domain.ErrResetTokenInvalid
	}

	userID, err := s.resets.Consume(ctx, digest(token))
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrDeactivated
	}

	updated, err := s.setPassword(ctx, user.ID, newPassword)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", updated.ID).Msg("password reset completed")
	return s.issue(updated)
}

func (s *AuthService) setPassword(ctx context.Context, userID, password string) (*domain.User, error) {
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	return s.users.Update(ctx, userID, ports.UserUpdate{PasswordHash: &hash})
}

func (s *AuthService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	tkn, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: tkn, ExpiresIn: s.tokens.TTL(), User: user}, nil
}

// notify is best effort: a failed enqueue never fails the request.
func (s *AuthService) notify(ctx context.Context, n ports.Notification) {
	if s.notifications == nil {
		return
	}
	if err := s.notifications.Enqueue(ctx, n); err != nil {
		s.log.Warn().Err(err).Str("kind", string(n.Kind)).Msg("notification not queued")
	}
}

func (s *AuthService) resetURL(raw string) string {
	base := strings.TrimRight(s.opts.FrontendURL, "/")
	return base + "/reset-password/" + url.PathEscape(raw)
}

func digest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

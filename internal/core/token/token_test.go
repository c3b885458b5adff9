package token

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainalink/platform/internal/core/domain"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	m, err := NewManager("test-secret", ttl, WithClock(clock.now))
	require.NoError(t, err)
	return m, clock
}

func TestNewManager_MissingSecret(t *testing.T) {
	m, err := NewManager("", time.Hour)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m, err := NewManager("s", 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, m.TTL())
}

func TestIssueVerify_RoundTripUntilExpiry(t *testing.T) {
	m, clock := newTestManager(t, time.Hour)

	raw, err := m.Issue("42")
	require.NoError(t, err)
	assert.Len(t, strings.Split(raw, "."), 3)

	subject, err := m.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)

	clock.t = clock.t.Add(59 * time.Minute)
	subject, err = m.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)

	clock.t = clock.t.Add(time.Minute)
	_, err = m.Verify(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerify_Idempotent(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)
	raw, err := m.Issue("user-1")
	require.NoError(t, err)

	first, err := m.Verify(raw)
	require.NoError(t, err)
	second, err := m.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerify_RejectsEverySingleBitFlipInSignature(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)
	raw, err := m.Issue("42")
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for i := 0; i < len(sig)*8; i++ {
		mutated := make([]byte, len(sig))
		copy(mutated, sig)
		mutated[i/8] ^= 1 << (i % 8)

		tampered := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(mutated)
		_, err := m.Verify(tampered)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("bit %d: expected ErrInvalidToken, got %v", i, err)
		}
	}
}

func TestVerify_RejectsForeignSecret(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)
	other, err := NewManager("another-secret", time.Hour)
	require.NoError(t, err)

	raw, err := other.Issue("42")
	require.NoError(t, err)

	_, err = m.Verify(raw)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerify_RejectsUnexpectedAlgorithms(t *testing.T) {
	m, clock := newTestManager(t, time.Hour)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
	}}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(none)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = m.Verify(hs512)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerify_RequiresExpiry(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Verify(raw)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerify_Garbage(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(raw)
		assert.True(t, errors.Is(err, domain.ErrInvalidToken), "input %q", raw)
	}
}

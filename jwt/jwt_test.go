package jwt

import (
	"context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

type memRevoker struct {
	mu  sync.Mutex
	ids map[string]time.Duration
}

func (m *memRevoker) Revoke(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids == nil {
		m.ids = map[string]time.Duration{}
	}
	m.ids[id] = ttl
	return nil
}

func (m *memRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[id]
	return ok, nil
}

func TestIssueAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := NewService("secret", time.Hour)

	token, err := svc.Issue(map[string]any{"email": "a@b.c", "name": "Ann"})
	require.NoError(t, err)

	claims, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestVerifyRejects(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService("secret", time.Hour, WithClock(func() time.Time { return issuedAt }))

	valid, err := svc.Issue(map[string]any{"email": "a@b.c"})
	require.NoError(t, err)

	otherKey, err := NewService("other", time.Hour, WithClock(func() time.Time { return issuedAt })).
		Issue(map[string]any{"email": "a@b.c"})
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "a@b.c",
		"exp":   issuedAt.Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.c",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		at    time.Time
	}{
		{"empty", "", issuedAt},
		{"garbage", "not.a.token", issuedAt},
		{"wrong key", otherKey, issuedAt},
		{"other signing method", hs512, issuedAt},
		{"no expiry", noExp, issuedAt},
		{"expired", valid, issuedAt.Add(time.Hour + time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := tt.at
			verifier := NewService("secret", time.Hour, WithClock(func() time.Time { return at }))
			_, err := verifier.Verify(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	t.Run("still valid before expiry", func(t *testing.T) {
		verifier := NewService("secret", time.Hour, WithClock(func() time.Time {
			return issuedAt.Add(59 * time.Minute)
		}))
		_, err := verifier.Verify(ctx, valid)
		assert.NoError(t, err)
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	revoker := &memRevoker{}
	svc := NewService("secret", time.Hour, WithRevoker(revoker), WithClock(func() time.Time { return now }))

	token, err := svc.Issue(map[string]any{"email": "a@b.c"})
	require.NoError(t, err)
	other, err := svc.Issue(map[string]any{"email": "a@b.c"})
	require.NoError(t, err)

	claims, err := svc.Verify(ctx, token)
	require.NoError(t, err)

	now = now.Add(10 * time.Minute)
	require.NoError(t, svc.Revoke(ctx, claims))
	assert.Equal(t, 50*time.Minute, revoker.ids[claims.ID])

	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrRevoked)

	_, err = svc.Verify(ctx, other)
	assert.NoError(t, err)
}

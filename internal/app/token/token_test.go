package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := NewService(testSecret, time.Hour, "kanban")

	tok, err := s.Issue(Payload{ID: 7, Email: "alice@example.com", IsAdmin: true})
	require.NoError(t, err)

	claims, err := s.Verify("Bearer " + tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "kanban", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyAcceptsAnyPrefixCase(t *testing.T) {
	s := NewService(testSecret, time.Hour, "kanban")
	tok, err := s.Issue(Payload{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	for _, header := range []string{tok, "bearer " + tok, "BEARER " + tok, "BeArEr " + tok} {
		claims, err := s.Verify(header)
		require.NoError(t, err, header)
		assert.Equal(t, uint(1), claims.UserID)
	}
}

func TestVerifyRejects(t *testing.T) {
	s := NewService(testSecret, time.Hour, "kanban")
	tok, err := s.Issue(Payload{ID: 1})
	require.NoError(t, err)

	other := NewService("another-secret-of-enough-length", time.Hour, "kanban")

	expired := NewService(testSecret, time.Hour, "kanban")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	oldTok, err := expired.Issue(Payload{ID: 1})
	require.NoError(t, err)

	cases := map[string]struct {
		svc    *Service
		header string
	}{
		"empty":        {s, ""},
		"prefix only":  {s, "Bearer "},
		"garbage":      {s, "Bearer not.a.jwt"},
		"wrong secret": {other, tok},
		"expired":      {s, oldTok},
		"tampered sig": {s, tok + "x"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.svc.Verify(tc.header)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestStripBearer(t *testing.T) {
	assert.Equal(t, "abc", StripBearer("Bearer abc"))
	assert.Equal(t, "abc", StripBearer("  bearer   abc "))
	assert.Equal(t, "abc", StripBearer("abc"))
	assert.Equal(t, "Bearerabc", StripBearer("Bearerabc"))
}

package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	id := Identity{UserID: uuid.New(), Email: "admin@admin.com", IsStaff: true}

	token, expiresAt, err := m.Issue(id)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	parsed, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestTokenManager_Parse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, _, err := m.Issue(Identity{UserID: uuid.New(), Email: "user@test.com"})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour)
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenManager("secret", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParse_Roundtrip(t *testing.T) {
	u := User{
		ID:    uuid.New(),
		Email: "maria@proxis.hn",
		Name:  "María López",
		Role:  model.RoleAdmin,
	}

	token, err := Sign("test-secret", u, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := Parse("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, model.RoleAdmin, got.Role)
}

func TestSign_NoSecret(t *testing.T) {
	_, err := Sign("", User{ID: uuid.New()}, time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestParse_NoSecret(t *testing.T) {
	_, err := Parse("", "whatever")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Sign("secret-a", User{ID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	_, err = Parse("secret-b", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	token, err := Sign("test-secret", User{ID: uuid.New()}, -time.Minute)
	require.NoError(t, err)

	_, err = Parse("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("test-secret", "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

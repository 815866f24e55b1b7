package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	token, err := mgr.Generate(42, "asha@hostel.test", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "asha@hostel.test", claims.Email)
	assert.Equal(t, "student", claims.Role)
}

func TestManager_Validate_Expired(t *testing.T) {
	mgr := NewManager("test-secret", -time.Minute)

	token, err := mgr.Generate(42, "asha@hostel.test", "student")
	require.NoError(t, err)

	_, err = mgr.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestManager_Validate_WrongSecret(t *testing.T) {
	token, err := NewManager("one-secret", time.Hour).Generate(42, "asha@hostel.test", "student")
	require.NoError(t, err)

	_, err = NewManager("other-secret", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Validate_Garbage(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	_, err := mgr.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = mgr.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

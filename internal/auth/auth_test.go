package auth

import (
	"testing"
	"time"

	"banarts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Admin@123", true},
		{"Sh0rt!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSpecial123", false},
		{"Aa1!" + "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", false},
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if tt.valid {
			assert.NoError(t, err, tt.password)
		} else {
			assert.ErrorIs(t, err, ErrWeakPassword, tt.password)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Secret#42")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Secret#42", hash))
	assert.False(t, CheckPasswordHash("secret#42", hash))
	assert.False(t, CheckPasswordHash("Secret#42", ""))
}

func TestSecurityAnswerIsCaseInsensitive(t *testing.T) {
	hash, err := HashSecurityAnswer("  Manila ")
	require.NoError(t, err)

	assert.True(t, CheckSecurityAnswer("manila", hash))
	assert.False(t, CheckSecurityAnswer("cebu", hash))
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	user := &models.User{ID: 12, Email: "ana@example.com", Role: models.UserRoleAdmin}

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, string(models.UserRoleAdmin), claims.Role)
}

func TestTokenManager_RejectsExpiredAndForeign(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateToken(&models.User{ID: 1, Role: models.UserRoleUser})
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokenManager("other", time.Hour)
	fresh, err := other.GenerateToken(&models.User{ID: 1})
	require.NoError(t, err)
	_, err = NewTokenManager("secret", time.Hour).ParseToken(fresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(models.UserRoleAdmin, PermContentDelete))
	assert.False(t, HasPermission(models.UserRoleUser, PermContentDelete))
	assert.True(t, HasPermission(models.UserRoleUser, PermContentWrite))
}

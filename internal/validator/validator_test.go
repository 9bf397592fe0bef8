package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,is-strong-password"`
	Role     string `json:"role" validate:"is-user-role"`
}

type eventInput struct {
	Name   string `form:"name" validate:"required"`
	Status string `form:"status" validate:"is-event-status"`
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signupInput{Email: "nope", Password: "weak", Role: "owner"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Contains(t, vErr.Errors["password"], "8-32 characters")
	assert.Equal(t, "Must be one of: admin, user", vErr.Errors["role"])
}

func TestValidate_Passes(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&signupInput{Email: "a@b.co", Password: "Admin@123"}))
	assert.NoError(t, v.Validate(&eventInput{Name: "Expo", Status: "ongoing"}))
}

func TestValidate_FormTagFallback(t *testing.T) {
	err := New().Validate(&eventInput{Status: "postponed"})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "This field is required", vErr.Errors["name"])
	assert.Contains(t, vErr.Errors, "status")
	assert.Contains(t, vErr.Error(), "field 'name'")
}

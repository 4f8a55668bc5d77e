package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopcore/shopcore-be/internal/models"
)

func validSignup() SignupPayload {
	return SignupPayload{
		Name:            "A",
		Email:           "a@x.com",
		Password:        "password1",
		ConfirmPassword: "password1",
	}
}

func TestSignupPayload_Valid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validSignup().Validate())
}

func TestSignupPayload_PasswordBoundary(t *testing.T) {
	t.Parallel()

	p := validSignup()
	p.Password = "12345678" // exactly 8 characters
	p.ConfirmPassword = p.Password
	assert.NoError(t, p.Validate())

	p.Password = "1234567"
	p.ConfirmPassword = p.Password
	assert.Error(t, p.Validate())
}

func TestSignupPayload_ConfirmMismatch(t *testing.T) {
	t.Parallel()

	p := validSignup()
	p.ConfirmPassword = "password2"
	assert.Error(t, p.Validate())

	p.ConfirmPassword = ""
	assert.Error(t, p.Validate())
}

func TestSignupPayload_RequiredFields(t *testing.T) {
	t.Parallel()

	p := validSignup()
	p.Name = ""
	assert.Error(t, p.Validate())

	p = validSignup()
	p.Email = ""
	assert.Error(t, p.Validate())

	p = validSignup()
	p.Email = "not-an-email"
	assert.Error(t, p.Validate())
}

func TestSignupPayload_Enums(t *testing.T) {
	t.Parallel()

	p := validSignup()
	p.Role = "superuser"
	assert.Error(t, p.Validate())

	p = validSignup()
	p.Status = "paused"
	assert.Error(t, p.Validate())

	p = validSignup()
	p.Role = models.RoleAdmin
	p.Status = models.StatusInactive
	assert.NoError(t, p.Validate())
}

func TestSignupPayload_NormalizeDefaults(t *testing.T) {
	t.Parallel()

	p := validSignup()
	p.Normalize()
	assert.Equal(t, models.RoleUser, p.Role)
	assert.Equal(t, models.StatusActive, p.Status)

	p = validSignup()
	p.Role = models.RoleAdmin
	p.Status = models.StatusInactive
	p.Normalize()
	assert.Equal(t, models.RoleAdmin, p.Role)
	assert.Equal(t, models.StatusInactive, p.Status)
}

func TestUpdateUserPayload_Validate(t *testing.T) {
	t.Parallel()

	role := "superuser"
	assert.Error(t, UpdateUserPayload{Role: &role}.Validate())

	admin := models.RoleAdmin
	assert.NoError(t, UpdateUserPayload{Role: &admin}.Validate())

	// Absent fields are fine.
	assert.NoError(t, UpdateUserPayload{}.Validate())

	email := "not-an-email"
	assert.Error(t, UpdateUserPayload{Email: &email}.Validate())
}

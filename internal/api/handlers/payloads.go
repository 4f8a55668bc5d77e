package handlers

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/shopcore/shopcore-be/internal/models"
)

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	Status          string `json:"status"`
}

// Validate runs the signup validation rules. Role and status are only
// checked when present; Normalize fills in their defaults.
func (p SignupPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(
			&p.ConfirmPassword,
			validation.Required,
			validation.By(stringEquals(p.Password, "must match password")),
		),
		validation.Field(&p.Role, validation.In(models.RoleAdmin, models.RoleUser)),
		validation.Field(&p.Status, validation.In(models.StatusActive, models.StatusInactive)),
	)
}

// Normalize defaults role and status when absent.
func (p *SignupPayload) Normalize() {
	if p.Role == "" {
		p.Role = models.RoleUser
	}
	if p.Status == "" {
		p.Status = models.StatusActive
	}
}

// LoginPayload defines the structure for login requests. Presence
// checks happen in the auth service so their ordering is preserved.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordPayload defines the structure for password changes.
type ChangePasswordPayload struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// UpdateUserPayload carries the permitted administrative user updates.
// Absent fields stay nil and are left unchanged.
type UpdateUserPayload struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// Validate checks the enum and email shape of any provided fields.
func (p UpdateUserPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, is.Email),
		validation.Field(&p.Role, validation.In(models.RoleAdmin, models.RoleUser)),
		validation.Field(&p.Status, validation.In(models.StatusActive, models.StatusInactive)),
	)
}

// UpdateProductPayload carries the updatable product fields for JSON
// update requests.
type UpdateProductPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Status      *string  `json:"status"`
}

func stringEquals(expected, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(message)
		}
		return nil
	}
}

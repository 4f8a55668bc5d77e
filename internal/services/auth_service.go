package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/shopcore/shopcore-be/internal/apperror"
	"github.com/shopcore/shopcore-be/internal/auth"
	"github.com/shopcore/shopcore-be/internal/models"
)

// SignupInput is a validated, normalized signup request: role and
// status carry their defaults and the password is still plaintext.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Status   string
}

// UserUpdate carries the permitted administrative field updates. Nil
// means "leave unchanged".
type UserUpdate struct {
	Name   *string
	Email  *string
	Role   *string
	Status *string
}

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Signup(input SignupInput) (models.User, string, error)
	Login(email, password string) (models.User, string, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	UpdateUser(id string, update UserUpdate) (models.User, error)
}

// AuthService orchestrates signup, login and the credential lifecycle.
// It holds no cross-request state; everything lives in the user store.
type AuthService struct {
	store  *UserStore
	hasher *auth.Hasher
	issuer *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *UserStore, hasher *auth.Hasher, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{store: store, hasher: hasher, issuer: issuer}
}

// Signup registers a new user and returns it along with a session
// token. The email uniqueness check and the insert are two separate
// statements; concurrent identical signups race and the loser surfaces
// the database's unique-constraint error.
func (s *AuthService) Signup(input SignupInput) (models.User, string, error) {
	_, err := s.store.FindByEmail(input.Email)
	switch {
	case err == nil:
		return models.User{}, "", apperror.DuplicateEmail(input.Email)
	case !errors.Is(err, ErrNoUser):
		return models.User{}, "", err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		Status:   input.Status,
	}
	if err := s.store.Create(user); err != nil {
		return models.User{}, "", err
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login authenticates a user by email and password. The account status
// is checked before the password so an inactive account never reaches
// the expensive hash comparison.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	if email == "" {
		return models.User{}, "", apperror.MissingField("please provide an email")
	}
	if password == "" {
		return models.User{}, "", apperror.MissingField("please provide a password")
	}

	user, err := s.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			// 401 rather than 404: the HTTP layer should not reveal
			// whether the email or the password was wrong.
			return models.User{}, "", apperror.NotFound(http.StatusUnauthorized, fmt.Sprintf("%s doesn't exist", email))
		}
		return models.User{}, "", err
	}

	if user.Status == models.StatusInactive {
		return models.User{}, "", apperror.InactiveAccount()
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return models.User{}, "", err
	}
	if !ok {
		return models.User{}, "", apperror.InvalidCredentials()
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// ChangePassword verifies the acting user's current password and
// replaces it. The user is resolved from the authenticated identity,
// never from a request-supplied ID. Account status is deliberately not
// checked here; the inactive gate applies only at login.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperror.MissingField("please provide current password and new password")
	}

	user, err := s.store.FindByID(userID)
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			return apperror.NotFound(http.StatusNotFound, "user not found")
		}
		return err
	}

	ok, err := s.hasher.Verify(currentPassword, user.Password)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.IncorrectPassword()
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	_, err = s.store.UpdateFields(userID, map[string]interface{}{"password": hashed})
	return err
}

// UpdateUser applies permitted administrative field updates to the
// target user and returns the updated record.
func (s *AuthService) UpdateUser(id string, update UserUpdate) (models.User, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Role != nil {
		fields["role"] = *update.Role
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}

	affected, err := s.store.UpdateFields(id, fields)
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, apperror.NotFound(http.StatusNotFound, "user not found")
	}
	return s.store.FindByID(id)
}

package services

import (
	"database/sql"
	"errors"

	"github.com/shopcore/shopcore-be/internal/models"
)

// ErrNoUser is returned by store lookups that match no row. Callers
// translate it to the operational error appropriate for their context.
var ErrNoUser = errors.New("user not found")

// UserStore is the persistence layer for user records.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// userUpdatableColumns is the fixed order in which permitted fields are
// applied, so the generated UPDATE statement is deterministic.
var userUpdatableColumns = []string{"name", "email", "password", "role", "status"}

// FindByEmail retrieves a single user by email, including the password hash.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	return s.scanOne("SELECT id, name, email, password, role, status, created_at FROM users WHERE email = ?", email)
}

// FindByID retrieves a single user by ID, including the password hash.
func (s *UserStore) FindByID(id string) (models.User, error) {
	return s.scanOne("SELECT id, name, email, password, role, status, created_at FROM users WHERE id = ?", id)
}

func (s *UserStore) scanOne(query string, arg interface{}) (models.User, error) {
	var user models.User
	row := s.db.QueryRow(query, arg)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Status, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNoUser
		}
		return models.User{}, err
	}
	return user, nil
}

// Create inserts a new user record.
func (s *UserStore) Create(user models.User) error {
	stmt, err := s.db.Prepare("INSERT INTO users(id, name, email, password, role, status) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Name, user.Email, user.Password, user.Role, user.Status)
	return err
}

// UpdateFields applies the given column values to a user row and
// returns the number of rows affected. Unknown columns are ignored.
func (s *UserStore) UpdateFields(id string, fields map[string]interface{}) (int64, error) {
	query := "UPDATE users SET "
	var args []interface{}
	for _, col := range userUpdatableColumns {
		val, ok := fields[col]
		if !ok {
			continue
		}
		if len(args) > 0 {
			query += ", "
		}
		query += col + " = ?"
		args = append(args, val)
	}
	if len(args) == 0 {
		return 0, nil
	}
	query += " WHERE id = ?"
	args = append(args, id)

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User roles. Sellers and agents can create listings; buyers save and
// inquire.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAgent  = "agent"
)

var UserRoles = []string{RoleBuyer, RoleSeller, RoleAgent}

// User is the account entity.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Phone        string
	CreatedAt    time.Time
}

// Claims are the data embedded into a JWT token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// NewUser creates a user with a bcrypt-hashed password.
func NewUser(email, password, name, role, phone string) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		Role:         role,
		Phone:        phone,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword compares a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanManageListings reports whether the role may create or modify
// properties.
func (u *User) CanManageListings() bool {
	return u.Role == RoleSeller || u.Role == RoleAgent
}

// IsValidRole reports whether r belongs to the closed role set.
func IsValidRole(r string) bool {
	for _, v := range UserRoles {
		if v == r {
			return true
		}
	}
	return false
}

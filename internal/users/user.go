package users

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
)

const MinPasswordLength = 6

var (
	ErrUserNotFound    = gymstats.NewNotFoundError("user not found")
	ErrEmailTaken      = gymstats.NewStateError("email already registered")
	ErrNameRequired    = gymstats.NewValidationError("name is required")
	ErrInvalidEmail    = gymstats.NewValidationError("invalid email")
	ErrPasswordTooWeak = gymstats.NewValidationError(fmt.Sprintf("password must have at least %d characters", MinPasswordLength))
	ErrEmptyPatch      = gymstats.NewValidationError("no fields to update")

	// ErrInvalidCredentials is answered with 401 and never says which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ImageURL string `json:"imageUrl"`
}

// Normalize trims the fields and lowercases the email. The password is left as is.
func (p *RegisterParams) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = normalizeEmail(p.Email)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
}

func (p RegisterParams) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if !validEmail(p.Email) {
		errs = append(errs, ErrInvalidEmail)
	}
	if err := ValidatePassword(p.Password); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}

// UserPatch is a partial profile update. Nil fields are kept.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.ImageURL == nil
}

// Apply returns u with the patch applied, validated.
func (p UserPatch) Apply(u User) (User, error) {
	if p.IsEmpty() {
		return User{}, ErrEmptyPatch
	}
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		u.Email = normalizeEmail(*p.Email)
	}
	if p.ImageURL != nil {
		u.ImageURL = strings.TrimSpace(*p.ImageURL)
	}

	var errs []error
	if u.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if !validEmail(u.Email) {
		errs = append(errs, ErrInvalidEmail)
	}
	if err := errors.Join(errs...); err != nil {
		return User{}, err
	}
	return u, nil
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail accepts a bare address only, no display name.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// Package forms validates HTML form submissions before they touch the
// database.
package forms

import (
	"errors"

	"github.com/westeastdesigns/ecom-2024/auth"
	"github.com/westeastdesigns/ecom-2024/models"
	"gorm.io/gorm"
)

// SignUpForm is the account-creation form: username, contact fields, and a
// password typed twice. Validate fills Errors per field; on success the
// cleaned username/password pair is used for the immediate login.
type SignUpForm struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password1 string
	Password2 string

	Errors map[string]string
}

func (f *SignUpForm) Validate(db *gorm.DB) bool {
	f.Errors = make(map[string]string)

	if f.Username == "" {
		f.Errors["username"] = "This field is required."
	} else if len(f.Username) > 150 {
		f.Errors["username"] = "Username must be 150 characters or fewer."
	}

	if f.Password1 == "" {
		f.Errors["password1"] = "This field is required."
	}
	if f.Password2 == "" {
		f.Errors["password2"] = "This field is required."
	} else if f.Password1 != f.Password2 {
		f.Errors["password2"] = "The two password fields didn't match."
	}

	if len(f.Errors) > 0 {
		return false
	}

	if err := auth.ValidatePassword(f.Password1, f.Username); err != nil {
		f.Errors["password1"] = err.Error()
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", f.Username).Count(&count).Error; err != nil {
		f.Errors["username"] = "Could not verify username availability."
	} else if count > 0 {
		f.Errors["username"] = "A user with that username already exists."
	}

	return len(f.Errors) == 0
}

// Save creates the account from the validated form.
func (f *SignUpForm) Save(db *gorm.DB) (*models.User, error) {
	if f.Errors == nil {
		f.Errors = make(map[string]string)
	}
	user, err := auth.CreateUser(db, f.Username, f.Email, f.FirstName, f.LastName, f.Password1)
	if errors.Is(err, auth.ErrUsernameTaken) {
		// Validate ran earlier; a race on the unique index lands here.
		f.Errors["username"] = "A user with that username already exists."
	}
	return user, err
}

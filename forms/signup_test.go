package forms

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/westeastdesigns/ecom-2024/auth"
	"github.com/westeastdesigns/ecom-2024/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func validForm() SignUpForm {
	return SignUpForm{
		Username:  "ada",
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password1: "engine-no9!",
		Password2: "engine-no9!",
	}
}

func TestValidateMismatchedPasswords(t *testing.T) {
	db := newTestDB(t)
	form := validForm()
	form.Password2 = "different-pass"

	require.False(t, form.Validate(db))
	require.Contains(t, form.Errors, "password2")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestValidateRequiredFields(t *testing.T) {
	db := newTestDB(t)
	form := SignUpForm{}

	require.False(t, form.Validate(db))
	require.Contains(t, form.Errors, "username")
	require.Contains(t, form.Errors, "password1")
	require.Contains(t, form.Errors, "password2")
}

func TestValidateWeakPassword(t *testing.T) {
	db := newTestDB(t)
	form := validForm()
	form.Password1 = "12344321"
	form.Password2 = "12344321"

	require.False(t, form.Validate(db))
	require.Contains(t, form.Errors, "password1")
}

func TestValidateDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	_, err := auth.CreateUser(db, "ada", "", "", "", "engine-no9!")
	require.NoError(t, err)

	form := validForm()
	require.False(t, form.Validate(db))
	require.Contains(t, form.Errors, "username")
}

func TestValidateAndSaveCreatesOneAccount(t *testing.T) {
	db := newTestDB(t)
	form := validForm()

	require.True(t, form.Validate(db))
	require.Empty(t, form.Errors)

	user, err := form.Save(db)
	require.NoError(t, err)
	require.Equal(t, "ada", user.Username)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	// The cleaned pair must work for the immediate login.
	_, err = auth.Authenticate(db, form.Username, form.Password1)
	require.NoError(t, err)
}

package accountcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/westeastdesigns/ecom-2024/auth"
	"github.com/westeastdesigns/ecom-2024/flash"
	"github.com/westeastdesigns/ecom-2024/forms"
	"github.com/westeastdesigns/ecom-2024/middleware"
	"gorm.io/gorm"
)

// LoginPage renders the login form.
// GET /login
func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"messages": flash.Take(c),
			"user":     middleware.CurrentUser(c),
		})
	}
}

// Login verifies credentials. Success establishes the session and lands on
// the catalog; failure goes back to the form with one generic message, never
// revealing whether the username or the password was wrong.
// POST /login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		user, err := auth.Authenticate(db, username, password)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
				return
			}
			flash.Add(c, "There was an error. Please try again.")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		auth.LoginSession(c, user)
		flash.Add(c, "You are now logged in. Welcome back!")
		c.Redirect(http.StatusFound, "/")
	}
}

// Logout clears the session whether or not anyone was logged in.
// GET|POST /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.LogoutSession(c)
		flash.Add(c, "You have been logged out... Thanks for visiting!")
		c.Redirect(http.StatusFound, "/")
	}
}

// RegisterPage renders the sign-up form. Field errors only appear here, on
// the direct render path.
// GET /register
func RegisterPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"form":     &forms.SignUpForm{},
			"messages": flash.Take(c),
			"user":     middleware.CurrentUser(c),
		})
	}
}

// Register validates the sign-up form, creates the account, and logs the new
// user straight in. A failed validation redirects back with a generic
// message only.
// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := forms.SignUpForm{
			Username:  c.PostForm("username"),
			Email:     c.PostForm("email"),
			FirstName: c.PostForm("first_name"),
			LastName:  c.PostForm("last_name"),
			Password1: c.PostForm("password1"),
			Password2: c.PostForm("password2"),
		}

		if !form.Validate(db) {
			flash.Add(c, "Uh oh, there was an error. Please check all of your entries and try to register again.")
			c.Redirect(http.StatusFound, "/register")
			return
		}

		user, err := form.Save(db)
		if err != nil {
			flash.Add(c, "Uh oh, there was an error. Please check all of your entries and try to register again.")
			c.Redirect(http.StatusFound, "/register")
			return
		}

		auth.LoginSession(c, user)
		flash.Add(c, "You have been registered... Welcome!")
		c.Redirect(http.StatusFound, "/")
	}
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"auth-api/internals/auth"
	"auth-api/internals/middleware"
	"auth-api/internals/models"
	"auth-api/internals/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Users      repository.Users
	Blacklist  repository.Blacklist
	Codec      *auth.TokenCodec
	BcryptCost int
}

func NewAuthController(users repository.Users, blacklist repository.Blacklist, codec *auth.TokenCodec, bcryptCost int) *AuthController {
	return &AuthController{
		Users:      users,
		Blacklist:  blacklist,
		Codec:      codec,
		BcryptCost: bcryptCost,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user account and hands back a fresh auth token.
// A duplicate email answers 202, not 409; callers depend on that.
func (a *AuthController) Register(c *gin.Context) {
	var body credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to read body."})
		return
	}

	if _, err := a.Users.FindByEmail(body.Email); err == nil {
		c.JSON(http.StatusAccepted, gin.H{
			"success": false,
			"message": "User already exists. Please Log in.",
		})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), a.BcryptCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to hash password."})
		return
	}

	user := models.User{Email: body.Email, Password: string(hash)}
	if err := a.Users.Insert(&user); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Some error occurred. Please try again.",
		})
		return
	}

	token, err := a.Codec.Encode(user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create auth token."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Successfully registered.",
		"auth_token": token,
	})
}

// Login verifies credentials and issues an auth token.
func (a *AuthController) Login(c *gin.Context) {
	var body credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to read body."})
		return
	}

	user, err := a.Users.FindByEmail(body.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User does not exist.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Wrong password.",
		})
		return
	}

	token, err := a.Codec.Encode(user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create auth token."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Successfully logged in.",
		"auth_token": token,
	})
}

// Status reports the authenticated user's account details.
func (a *AuthController) Status(c *gin.Context) {
	user := c.MustGet(middleware.CtxUser).(*models.User)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user_id":       user.ID,
			"email":         user.Email,
			"admin":         user.Admin,
			"registered_on": user.CreatedAt,
		},
	})
}

// Logout revokes the presented token by blacklisting it. The token has
// already survived the full auth decision, so a token that was blacklisted
// beforehand never reaches this handler.
func (a *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxAuthToken)

	if err := a.Blacklist.Add(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Some error occurred. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully logged out.",
	})
}

// Headers is a sample protected route.
func (a *AuthController) Headers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Access Granted",
	})
}

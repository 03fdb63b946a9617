package auth

import (
	"net/http"
	"strings"

	"github.com/courtline/shuttlescore/config"
	"github.com/courtline/shuttlescore/pkg/responses"
	"github.com/courtline/shuttlescore/pkg/token"
	"github.com/courtline/shuttlescore/utils"
	"github.com/gin-gonic/gin"
)

// AuthController handles operator authentication. There is no user table:
// the single venue operator is configured through the environment, and a
// signed token carried on each request replaces any server-side session.
type AuthController struct {
	appConfig *config.Config
}

// NewAuthController creates a new auth controller
func NewAuthController(appConfig *config.Config) *AuthController {
	return &AuthController{appConfig: appConfig}
}

// LoginRequest defines the request payload for operator login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the configured operator credentials and issues a JWT.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	admin := ac.appConfig.Admin
	if req.Username != admin.Username || !ac.passwordMatches(req.Password) {
		responses.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	signed, err := token.GenerateJWT(admin.Username, "admin", ac.appConfig.JWT.Secret, ac.appConfig.JWT.ExpiryMinutes)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to issue token: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   signed,
		"user": gin.H{
			"username": admin.Username,
			"role":     "admin",
		},
	})
}

// passwordMatches prefers the bcrypt hash when one is configured and only
// falls back to the plain dev password otherwise.
func (ac *AuthController) passwordMatches(password string) bool {
	admin := ac.appConfig.Admin
	if admin.PasswordHash != "" {
		return utils.CheckPasswordHash(password, admin.PasswordHash)
	}
	return password == admin.Password
}

// Check reports whether the request carries a valid token.
func (ac *AuthController) Check(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
		responses.SuccessResponse(c, http.StatusOK, gin.H{"authenticated": false})
		return
	}

	claims, err := token.ValidateJWT(bearerToken[1], ac.appConfig.JWT.Secret)
	if err != nil {
		responses.SuccessResponse(c, http.StatusOK, gin.H{"authenticated": false})
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}

// Logout acknowledges the request; tokens are stateless, so the client
// discards its copy and nothing is invalidated server-side.
func (ac *AuthController) Logout(c *gin.Context) {
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

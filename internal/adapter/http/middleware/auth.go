package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"smart_oficina/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Auth validates the Bearer token of the employee-facing routes and stores the
// user id claim in the gin context. The public approval routes never pass
// through here; for those the approval token itself is the credential.

type Auth struct {
	secret []byte
}

func NewAuth() *Auth {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}
	return &Auth{secret: []byte(secret)}
}

func (a *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := a.validate(c.GetHeader("Authorization"))
		if err != nil {
			appErr := pkg.NewDomainError("UNAUTHORIZED", "Missing or invalid credentials", err, http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func (a *Auth) validate(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrMissingToken
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

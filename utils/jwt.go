package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/tourguideapp/backend/models"
)

// TokenValidity is how long an access token stays usable.
const TokenValidity = 7 * 24 * time.Hour

func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

// SignToken issues an access token carrying the user's identity.
func SignToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID,
		"email":     user.Email,
		"user_type": string(user.UserType),
		"exp":       time.Now().Add(TokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(JWTSecret()))
}

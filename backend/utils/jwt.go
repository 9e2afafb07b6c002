package utils

import (
	"time"

	"github.com/dsgnbruno/member-area-v2/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SessionClaims is what the portal needs from a token on every
// request: identity plus the two authorization flags resolved at
// login time.
type SessionClaims struct {
	Email    string
	Admin    bool
	Lifetime bool
}

func GenerateJWTToken(claims SessionClaims, cfg *config.Config) (string, error) {
	mapClaims := jwt.MapClaims{
		"email":    claims.Email,
		"admin":    claims.Admin,
		"lifetime": claims.Lifetime,
		"exp":      time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func ExtractClaimsFromToken(c *fiber.Ctx, cfg *config.Config) (SessionClaims, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return SessionClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return SessionClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return SessionClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid email in token")
	}

	admin, _ := mapClaims["admin"].(bool)
	lifetime, _ := mapClaims["lifetime"].(bool)

	return SessionClaims{Email: email, Admin: admin, Lifetime: lifetime}, nil
}

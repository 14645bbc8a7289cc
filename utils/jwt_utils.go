package utils

import (
	"crypto/rand"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	randomSecretOnce sync.Once
	randomSecret     []byte
)

// tokenSecret prefers ADMIN_TOKEN_SECRET. Without it, tokens are signed with
// a key generated fresh for this process: sessions stay valid for the run,
// and there is no constant in the binary to forge against.
func tokenSecret() []byte {
	if s := os.Getenv("ADMIN_TOKEN_SECRET"); s != "" {
		return []byte(s)
	}
	randomSecretOnce.Do(func() {
		randomSecret = make([]byte, 32)
		if _, err := rand.Read(randomSecret); err != nil {
			randomSecret = []byte(uuid.NewString())
		}
		log.Println("ADMIN_TOKEN_SECRET not set, admin sessions will not survive a restart")
	})
	return randomSecret
}

// GenerateAdminToken signs a 24h admin session token. The token id (jti) is
// what the gate tracks, so logout can revoke a token before it expires.
func GenerateAdminToken() (token string, jti string, err error) {
	jti = uuid.NewString()
	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "legacy",
		Subject:   "admin",
		ID:        jti,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	token, err = claims.SignedString(tokenSecret())
	if err != nil {
		return "", "", err
	}
	return token, jti, nil
}

// ParseAdminToken validates the signature and expiry and returns the token id.
func ParseAdminToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return tokenSecret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject != "admin" {
		return "", fiber.ErrUnauthorized
	}
	return claims.ID, nil
}

func SetAdminCookie(c *fiber.Ctx, token string) {
	cookie := fiber.Cookie{
		Name:     "admin_session",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	}
	c.Cookie(&cookie)
}

func ClearAdminCookie(c *fiber.Ctx) {
	cookie := fiber.Cookie{
		Name:     "admin_session",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	}
	c.Cookie(&cookie)
}

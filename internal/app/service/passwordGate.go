package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// UnlockCookieName is the cookie carrying the signed unlock token after a
// successful password entry.
const UnlockCookieName = "link_unlock"

// unlockClaims binds an unlock token to one short code.
type unlockClaims struct {
	jwt.RegisteredClaims

	// Code is the short code the token unlocks.
	Code string `json:"code"`
}

// PasswordGate verifies link passwords and issues unlock tokens so a visitor
// who already entered the password is not prompted again within the TTL.
type PasswordGate struct {
	secret []byte
	ttl    time.Duration
}

func NewPasswordGate(secret string, ttl time.Duration) *PasswordGate {
	return &PasswordGate{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Hash derives the stored bcrypt hash for a new link password.
func (g *PasswordGate) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks a submitted password against the stored hash. Plaintext is
// never compared directly.
func (g *PasswordGate) Verify(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

// UnlockToken issues a signed token scoped to one code.
func (g *PasswordGate) UnlockToken(code string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, unlockClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(g.ttl)),
		},
		Code: code,
	})
	return token.SignedString(g.secret)
}

// ValidateUnlock reports whether the token is valid and scoped to the code.
func (g *PasswordGate) ValidateUnlock(tokenString, code string) bool {
	claims := &unlockClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}
	return claims.Code == code
}

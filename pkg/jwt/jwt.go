package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const csrfTokenType = "csrf"

var ErrNonceMismatch = errors.New("csrf token does not match session nonce")

// Claims binds a form token to the nonce stored in the visitor's cookie.
type Claims struct {
	Nonce string `json:"nonce"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// GenerateCSRFToken signs a form token for nonce.
func (m *Manager) GenerateCSRFToken(nonce string) (string, error) {
	now := m.now()
	claims := Claims{
		Nonce: nonce,
		Type:  csrfTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ValidateCSRFToken checks the signature, expiry and type of tokenString and
// that it was issued for nonce.
func (m *Manager) ValidateCSRFToken(tokenString, nonce string) error {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	if claims.Type != csrfTokenType {
		return fmt.Errorf("invalid token type: expected %s, got %s", csrfTokenType, claims.Type)
	}
	if nonce == "" || claims.Nonce != nonce {
		return ErrNonceMismatch
	}
	return nil
}

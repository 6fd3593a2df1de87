package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the signature checked out but the token is
	// past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidSignature covers tampered, malformed, or foreign-signed
	// tokens. Handlers surface both errors as a generic 401.
	ErrInvalidSignature = errors.New("invalid token signature")
)

// Session is the caller identity reconstructed from a verified token.
type Session struct {
	UserID  string
	IsAdmin bool
}

// Claims embeds the admin flag next to the registered claim set. The
// flag reflects the role at issuance time; role changes only take effect
// once the token expires.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed HS256 access tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue mints a signed token for the user with expiry = now + ttl.
func (t *TokenManager) Issue(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry, then rebuilds the session from the
// claims. No clock leeway is applied.
func (t *TokenManager) Verify(tokenString string) (Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(t.issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrTokenExpired
		}
		return Session{}, ErrInvalidSignature
	}
	if !token.Valid || claims.Subject == "" {
		return Session{}, ErrInvalidSignature
	}
	return Session{UserID: claims.Subject, IsAdmin: claims.IsAdmin}, nil
}

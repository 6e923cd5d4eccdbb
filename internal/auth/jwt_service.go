package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, format, or expiry checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the token subject (user id) and the registered expiry.
// Tokens are stateless: there is no token id and no revocation.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim into a user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// JWTService signs and validates access tokens with a process-wide secret.
type JWTService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewJWTService creates a JWT service. Only HMAC algorithms are supported;
// an unknown algorithm name falls back to HS256.
func NewJWTService(secret, algorithm string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		method: SigningMethod(algorithm),
		ttl:    ttl,
	}
}

// GenerateToken issues a token whose subject is the user id, expiring at
// now plus the configured TTL.
func (s *JWTService) GenerateToken(userID uint) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks signature and expiry and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SigningMethod resolves an algorithm name to its HMAC signing method.
// Issuing and verification must resolve through here so both sides agree;
// unknown names fall back to HS256.
func SigningMethod(algorithm string) *jwt.SigningMethodHMAC {
	switch algorithm {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

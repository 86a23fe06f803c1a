package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errTokenInvalid = errors.New("admin token invalid")

// JWTAdminTokenCodec signs stateless admin session tokens with HS256.
// Verify rejects anything older than maxAge regardless of signature.
type JWTAdminTokenCodec struct {
	secret []byte
	maxAge time.Duration
}

func NewJWTAdminTokenCodec(secret string, maxAge time.Duration) JWTAdminTokenCodec {
	if maxAge <= 0 {
		maxAge = 12 * time.Hour
	}
	return JWTAdminTokenCodec{secret: []byte(secret), maxAge: maxAge}
}

func (c JWTAdminTokenCodec) Sign(adminID string, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": adminID,
		"iat":     issuedAt.Unix(),
		"exp":     issuedAt.Add(c.maxAge).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c JWTAdminTokenCodec) Verify(token string, now time.Time) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errTokenInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return "", errTokenInvalid
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errTokenInvalid
	}
	adminID, _ := claims["user_id"].(string)
	if adminID == "" {
		return "", errTokenInvalid
	}
	issued, err := claims.GetIssuedAt()
	if err != nil || issued == nil || now.Sub(issued.Time) > c.maxAge {
		return "", errTokenInvalid
	}
	return adminID, nil
}

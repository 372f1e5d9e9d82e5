package middleware

import (
	"errors"
	"time"

	"NestEgg/config"
	appErrors "NestEgg/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// JwtService issues and verifies bearer tokens. Tokens carry only the user id
// as the subject claim; everything else must be re-resolved against the user
// store on each request.
type JwtService struct {
	secret    []byte
	expiresIn time.Duration
}

func NewJwtService(cfg config.JWTConfig) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt: signing secret is required")
	}
	// Only an unset expiry falls back to the default. A negative value is
	// taken as given and issues already-expired tokens.
	expiresIn := cfg.ExpiresIn
	if expiresIn == 0 {
		expiresIn = 7 * 24 * time.Hour
	}
	return &JwtService{
		secret:    []byte(cfg.Secret),
		expiresIn: expiresIn,
	}, nil
}

func (s *JwtService) GenerateToken(userID ulid.ULID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry and returns the user id carried
// in the subject claim. Expired, tampered, and malformed tokens all map to
// the same INVALID_TOKEN error.
func (s *JwtService) VerifyToken(tokenString string) (ulid.ULID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ulid.ULID{}, appErrors.ErrInvalidToken.WithError(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return ulid.ULID{}, appErrors.ErrInvalidToken
	}

	userID, err := ulid.Parse(claims.Subject)
	if err != nil {
		return ulid.ULID{}, appErrors.ErrInvalidToken.WithError(err)
	}
	return userID, nil
}

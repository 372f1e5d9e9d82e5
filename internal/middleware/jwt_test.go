package middleware_test

import (
	"strings"
	"testing"
	"time"

	"NestEgg/config"
	appErrors "NestEgg/internal/errors"
	"NestEgg/internal/middleware"

	"github.com/oklog/ulid/v2"
)

func newJwtService(t *testing.T, cfg config.JWTConfig) *middleware.JwtService {
	t.Helper()
	svc, err := middleware.NewJwtService(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestNewJwtServiceRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := middleware.NewJwtService(config.JWTConfig{}); err == nil {
		t.Fatalf("expected an error for an empty secret")
	}
}

func TestNewJwtServiceDefaultsExpiry(t *testing.T) {
	t.Parallel()

	// An unset expiry gets the 7-day default; the issued token must verify.
	svc := newJwtService(t, config.JWTConfig{Secret: "test-secret"})

	token, err := svc.GenerateToken(ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.VerifyToken(token); err != nil {
		t.Fatalf("token issued with the default expiry must verify: %v", err)
	}
}

func TestJwtRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newJwtService(t, config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour})
	userID := ulid.Make()

	token, err := svc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Fatalf("expected %s, got %s", userID, got)
	}
}

func TestJwtVerifyRejections(t *testing.T) {
	t.Parallel()

	svc := newJwtService(t, config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour})
	userID := ulid.Make()

	valid, err := svc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expiredSvc := newJwtService(t, config.JWTConfig{Secret: "test-secret", ExpiresIn: -time.Hour})
	expired, err := expiredSvc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	otherSvc := newJwtService(t, config.JWTConfig{Secret: "another-secret", ExpiresIn: time.Hour})
	otherSecret, err := otherSvc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"tampered signature", tampered},
		{"malformed", "not-a-token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyToken(tt.token)
			if err == nil {
				t.Fatalf("expected verification to fail")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != appErrors.ErrInvalidToken.Code {
				t.Fatalf("expected INVALID_TOKEN, got %v", err)
			}
		})
	}
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseValidToken(t *testing.T) {
	userID := uuid.New()
	raw := signToken(t, testSecret, jwt.MapClaims{
		"user_id": userID.String(),
		"role":    "ANALYST",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	principal, err := NewParser(testSecret).Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if principal.UserID != userID {
		t.Errorf("UserID = %s, want %s", principal.UserID, userID)
	}
	if principal.Role != "ANALYST" {
		t.Errorf("Role = %q, want ANALYST", principal.Role)
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	parser := NewParser(testSecret)
	userID := uuid.New().String()

	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", signToken(t, "other-secret", jwt.MapClaims{
			"user_id": userID, "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"expired", signToken(t, testSecret, jwt.MapClaims{
			"user_id": userID, "role": "ADMIN", "exp": time.Now().Add(-time.Hour).Unix(),
		})},
		{"missing role", signToken(t, testSecret, jwt.MapClaims{
			"user_id": userID, "exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"bad user id", signToken(t, testSecret, jwt.MapClaims{
			"user_id": "nope", "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix(),
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.Parse(tt.raw); err == nil {
				t.Error("expected error")
			}
		})
	}
}

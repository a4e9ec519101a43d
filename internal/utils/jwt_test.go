package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	email := "alice@x.com"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, email, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != email {
		t.Errorf("expected subject %q, got %s", email, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "a@b.com", time.Hour, "key"},
		{"empty email", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "a@b.com", 0, "key"},
		{"empty key", "iss", "a@b.com", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	email := "bob@x.com"
	key := "secret-key"
	duration := time.Minute * 5

	// First generate a valid token
	genToken, _ := GenerateJWTToken(issuer, email, duration, key)

	// Now validate it
	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Email != email {
		t.Errorf("expected email %q, got %q", email, parsedToken.Email)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, "a@b.com", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"

	genToken, _ := GenerateJWTToken("issuer-a", "a@b.com", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "issuer-b")
	if err == nil {
		t.Error("expected error due to issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	// Negative duration produces a token whose expiry is already in the past.
	genToken, err := GenerateJWTToken(issuer, "a@b.com", -time.Minute, key)
	if err != nil {
		t.Fatalf("expected token to be generated, got: %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "issuer")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

package helper

import (
	"testing"

	"kost_market/model"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	JwtSecret = []byte("test-secret")

	claim := model.TokenClaim{UserId: 42, Username: "renter42", Role: "RENTER"}
	signed, err := GenerateAccessToken(claim)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	token, err := ParseToken(signed)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Fatalf("expected valid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	if uint(claims["userId"].(float64)) != 42 {
		t.Fatalf("expected userId 42, got %v", claims["userId"])
	}
	if claims["username"].(string) != "renter42" {
		t.Fatalf("expected username renter42, got %v", claims["username"])
	}
	if claims["role"].(string) != "RENTER" {
		t.Fatalf("expected role RENTER, got %v", claims["role"])
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	JwtSecret = []byte("test-secret")
	signed, err := GenerateAccessToken(model.TokenClaim{UserId: 1, Username: "u"})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	JwtSecret = []byte("another-secret")
	token, err := ParseToken(signed)
	if err == nil && token.Valid {
		t.Fatalf("expected signature verification to fail")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

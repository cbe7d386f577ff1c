package helper

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/config"
)

func testUser() model.User {
	return model.User{
		ID:    uuid.New(),
		Name:  "Dosen Contoh",
		Email: "dosen@kampus.ac.id",
		Role:  model.RoleDosen,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	config.Env.JWTSecret = "test-secret"
	user := testUser()

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("expected user_id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %q, got %q", user.Email, claims.Email)
	}
	if claims.Role != model.RoleDosen {
		t.Errorf("expected role dosen, got %q", claims.Role)
	}
	if claims.Type != "access" {
		t.Errorf("expected type 'access', got %q", claims.Type)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	config.Env.JWTSecret = "secret-one"
	token, err := GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	config.Env.JWTSecret = "secret-two"
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	config.Env.JWTSecret = "test-secret"
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	config.Env.JWTSecret = "test-secret"
	token, err := GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	diff := time.Until(claims.ExpiresAt.Time) - TokenLifetime
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected lifetime: diff=%v", diff)
	}
}

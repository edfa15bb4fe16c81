package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"uniportal_backend/internals/configs"
	userModel "uniportal_backend/internals/features/users/user/model"
)

func TestIssueAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.AccessTokenTTL = time.Hour

	u := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "jdoe",
		Roles:    pq.StringArray{"Student"},
	}

	signed, expiresAt, err := IssueAccessToken(u)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > time.Hour {
		t.Errorf("expiry %v not about an hour out", expiresAt)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		t.Fatalf("parse signed token: %v", err)
	}
	if got := claims["user_id"]; got != u.ID.String() {
		t.Errorf("user_id claim = %v, want %v", got, u.ID)
	}
	if got := claims["user_name"]; got != "jdoe" {
		t.Errorf("user_name claim = %v", got)
	}

	if got := TokenExpiry(signed); got.Unix() != expiresAt.Unix() {
		t.Errorf("TokenExpiry() = %v, want %v", got, expiresAt)
	}
}

func TestIssueAccessTokenNoSecret(t *testing.T) {
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = "test-secret" }()

	if _, _, err := IssueAccessToken(&userModel.UserModel{ID: uuid.New()}); err == nil {
		t.Error("IssueAccessToken() succeeded without a secret")
	}
}

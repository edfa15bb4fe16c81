package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"uniportal_backend/internals/configs"
	userModel "uniportal_backend/internals/features/users/user/model"
)

// IssueAccessToken signs a bearer token carrying the identity claims the
// auth middleware reads back out.
func IssueAccessToken(u *userModel.UserModel) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, fmt.Errorf("JWT secret not configured")
	}

	expiresAt := time.Now().Add(configs.AccessTokenTTL)
	claims := jwt.MapClaims{
		"user_id":   u.ID.String(),
		"user_name": u.UserName,
		"roles":     []string(u.Roles),
		"iat":       time.Now().Unix(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// TokenExpiry parses exp out of a token without verifying it; used when
// blacklisting so rows can be purged once the token would have died anyway.
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(configs.AccessTokenTTL)
}

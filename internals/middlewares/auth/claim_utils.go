package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/constants"
	userModel "uniportal_backend/internals/features/users/user/model"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - no token provided")
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	default:
		return fmt.Errorf("invalid exp type")
	}

	now := time.Now().UTC()
	expTime := time.Unix(expUnix, 0).UTC()
	if now.After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fmt.Errorf("missing user_id claim")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user_id claim: %w", err)
	}
	return id, nil
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var u userModel.UserModel
	if err := db.Select("id", "is_active").First(&u, "id = ?", userID).Error; err != nil {
		return err
	}
	if !u.IsActive {
		return fmt.Errorf("user inactive")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, userID uuid.UUID, claims jwt.MapClaims) {
	c.Locals(constants.LocUserID, userID.String())
	if name, ok := claims["user_name"].(string); ok {
		c.Locals(constants.LocUserName, name)
	}
	c.Locals(constants.LocRoles, rolesFromClaims(claims))
}

func rolesFromClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok && s != "" {
			roles = append(roles, s)
		}
	}
	return roles
}

/* ======== Locals readers (used by controllers) ======== */

func UserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(constants.LocUserID).(string)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("no user in context")
	}
	return uuid.Parse(raw)
}

func UserNameFromLocals(c *fiber.Ctx) string {
	name, _ := c.Locals(constants.LocUserName).(string)
	return name
}

func RolesFromLocals(c *fiber.Ctx) []string {
	roles, _ := c.Locals(constants.LocRoles).([]string)
	return roles
}

func HasRole(c *fiber.Ctx, role string) bool {
	for _, r := range RolesFromLocals(c) {
		if r == role {
			return true
		}
	}
	return false
}

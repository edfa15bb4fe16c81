package auth

import (
	"github.com/gofiber/fiber/v2"

	"uniportal_backend/internals/constants"
)

// RequireRoles passes when the caller holds at least one of the given
// global roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, want := range roles {
			if HasRole(c, want) {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "insufficient role")
	}
}

// RequireAdmin gates the /api/a group.
func RequireAdmin() fiber.Handler {
	return RequireRoles(constants.RoleAdmin)
}

// RequireStaff allows lecturers, coordinators and admins.
func RequireStaff() fiber.Handler {
	return RequireRoles(constants.StaffRoles...)
}

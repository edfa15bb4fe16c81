package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDto "uniportal_backend/internals/features/users/auth/dto"
	authModel "uniportal_backend/internals/features/users/auth/model"
	authService "uniportal_backend/internals/features/users/auth/service"
	userModel "uniportal_backend/internals/features/users/user/model"
	helper "uniportal_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var user userModel.UserModel
	err := ctrl.DB.
		Where("user_name = ? OR email = ?", req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "login failed")
	}

	if !user.CheckPassword(req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account has been deactivated")
	}

	token, expiresAt, err := authService.IssueAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "login failed")
	}

	return helper.JsonOK(c, "login successful", authDto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        authDto.ToUserProfile(&user),
	})
}

// POST /api/auth/logout blacklists the presented token until its natural
// expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no token provided")
	}

	entry := authModel.TokenBlacklistModel{
		Token:     raw,
		ExpiresAt: authService.TokenExpiry(raw),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "logout failed")
	}
	return helper.JsonOK(c, "logged out", nil)
}

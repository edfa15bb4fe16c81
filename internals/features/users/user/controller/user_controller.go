package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	userDto "uniportal_backend/internals/features/users/user/dto"
	userModel "uniportal_backend/internals/features/users/user/model"
	helper "uniportal_backend/internals/helpers"
	ossHelper "uniportal_backend/internals/helpers/oss"
	authMw "uniportal_backend/internals/middlewares/auth"
)

type UserController struct {
	DB   *gorm.DB
	Blob ossHelper.BlobService
}

func NewUserController(db *gorm.DB, blob ossHelper.BlobService) *UserController {
	return &UserController{DB: db, Blob: blob}
}

// POST /api/a/users admin registration. The user row and its module
// links go in one transaction; a failure anywhere rolls everything back.
func (ctrl *UserController) Register(c *fiber.Ctx) error {
	var req userDto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var exists int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_name = ? OR email = ?", req.UserName, req.Email).
		Count(&exists).Error; err != nil {
		log.Printf("[ERROR] duplicate check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "registration failed")
	}
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "username or email already in use")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		FullName: strings.TrimSpace(req.FullName),
		Roles:    pq.StringArray(req.Roles),
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "registration failed")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		for _, link := range req.ModuleLinks {
			row := userModel.UserModuleModel{
				UserModuleUserID:      user.ID,
				UserModuleModuleID:    link.ModuleID,
				UserModuleRoleContext: link.RoleContext,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] register user: %v", err)
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "username or email already in use")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "registration failed: "+err.Error())
	}

	ctrl.DB.Preload("Modules").First(&user, "id = ?", user.ID)
	return helper.JsonCreated(c, "user registered", userDto.ToUserResponse(&user))
}

// GET /api/a/users
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&userModel.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count users")
	}

	var users []userModel.UserModel
	if err := q.Preload("Modules").
		Order("user_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list users")
	}

	return helper.JsonList(c, "users", userDto.ToUserResponseList(users),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/users/:id
func (ctrl *UserController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Preload("Modules").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	return helper.JsonOK(c, "user", userDto.ToUserResponse(&user))
}

// PUT /api/a/users/:id. Module links use replace semantics.
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var req userDto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.Email != nil {
			user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.FullName != nil {
			user.FullName = strings.TrimSpace(*req.FullName)
		}
		if req.Roles != nil {
			user.Roles = pq.StringArray(req.Roles)
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if req.ModuleLinks != nil {
			if err := tx.Where("user_module_user_id = ?", user.ID).
				Delete(&userModel.UserModuleModel{}).Error; err != nil {
				return err
			}
			for _, link := range *req.ModuleLinks {
				row := userModel.UserModuleModel{
					UserModuleUserID:      user.ID,
					UserModuleModuleID:    link.ModuleID,
					UserModuleRoleContext: link.RoleContext,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] update user: %v", err)
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "username or email already in use")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "update failed: "+err.Error())
	}

	ctrl.DB.Preload("Modules").First(&user, "id = ?", user.ID)
	return helper.JsonUpdated(c, "user updated", userDto.ToUserResponse(&user))
}

// DELETE /api/a/users/:id
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	if err := ctrl.DB.Delete(&user).Error; err != nil {
		log.Printf("[ERROR] delete user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "delete failed")
	}
	return helper.JsonDeleted(c, "user deleted", nil)
}

// POST /api/u/users/me/avatar. Multipart "file", re-encoded to WebP.
func (ctrl *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	return ctrl.uploadAvatarFor(c, userID)
}

// POST /api/a/users/:id/avatar
func (ctrl *UserController) UploadAvatarFor(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	var exists int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	return ctrl.uploadAvatarFor(c, userID)
}

func (ctrl *UserController) uploadAvatarFor(c *fiber.Ctx, userID uuid.UUID) error {
	if ctrl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "file storage is not configured")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}

	url, err := ctrl.Blob.UploadAvatar(c.UserContext(), userID, fh)
	if err != nil {
		log.Printf("[ERROR] avatar upload: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "avatar upload failed: "+err.Error())
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save avatar")
	}
	return helper.JsonUpdated(c, "avatar updated", fiber.Map{"avatar_url": url})
}

// GET /api/u/users/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Preload("Modules").First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	return helper.JsonOK(c, "profile", userDto.ToUserResponse(&user))
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key")
}

package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/constants"
	notifService "uniportal_backend/internals/features/home/notifications/service"
	"uniportal_backend/internals/features/repository/dto"
	"uniportal_backend/internals/features/repository/model"
	helper "uniportal_backend/internals/helpers"
	authMw "uniportal_backend/internals/middlewares/auth"
)

type LinkController struct {
	DB *gorm.DB
}

func NewLinkController(db *gorm.DB) *LinkController {
	return &LinkController{DB: db}
}

// GET /api/u/repository/links
func (ctrl *LinkController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.RepositoryLinkModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(repository_link_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count links")
	}

	var links []model.RepositoryLinkModel
	if err := q.Order("repository_link_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&links).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list links")
	}

	return helper.JsonList(c, "repository links", dto.ToLinkResponseList(links),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/u/repository/links
func (ctrl *LinkController) Create(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}

	var req dto.CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	link := model.RepositoryLinkModel{
		RepositoryLinkTitle:     strings.TrimSpace(req.Title),
		RepositoryLinkURL:       strings.TrimSpace(req.URL),
		RepositoryLinkCreatedBy: userID,
	}
	if err := ctrl.DB.Create(&link).Error; err != nil {
		log.Printf("[ERROR] create repository link: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create link")
	}

	if err := notifService.EmitBroadcast(ctrl.DB, userID, constants.NotifTypeRepositoryUpdate,
		"New link in the repository",
		fmt.Sprintf("%q was added to the shared repository.", link.RepositoryLinkTitle)); err != nil {
		log.Printf("[ERROR] repository link notification: %v", err)
	}
	return helper.JsonCreated(c, "link created", dto.ToLinkResponse(&link))
}

// PUT /api/u/repository/links/:id, creator or admin only.
func (ctrl *LinkController) Update(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid link id")
	}

	var req dto.UpdateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var link model.RepositoryLinkModel
	if err := ctrl.DB.First(&link, "repository_link_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "link not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load link")
	}

	if link.RepositoryLinkCreatedBy != userID && !authMw.HasRole(c, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "only the creator can edit this link")
	}

	if req.Title != nil {
		link.RepositoryLinkTitle = strings.TrimSpace(*req.Title)
	}
	if req.URL != nil {
		link.RepositoryLinkURL = strings.TrimSpace(*req.URL)
	}
	if err := ctrl.DB.Save(&link).Error; err != nil {
		log.Printf("[ERROR] update repository link: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update link")
	}
	return helper.JsonUpdated(c, "link updated", dto.ToLinkResponse(&link))
}

// DELETE /api/u/repository/links/:id, creator or admin only.
func (ctrl *LinkController) Delete(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid link id")
	}

	var link model.RepositoryLinkModel
	if err := ctrl.DB.First(&link, "repository_link_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "link not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load link")
	}

	if link.RepositoryLinkCreatedBy != userID && !authMw.HasRole(c, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "only the creator can delete this link")
	}

	if err := ctrl.DB.Delete(&link).Error; err != nil {
		log.Printf("[ERROR] delete repository link: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete link")
	}
	return helper.JsonDeleted(c, "link deleted", nil)
}

package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/features/home/faqs/dto"
	"uniportal_backend/internals/features/home/faqs/model"
	helper "uniportal_backend/internals/helpers"
	authMw "uniportal_backend/internals/middlewares/auth"
)

type FaqController struct {
	DB *gorm.DB
}

func NewFaqController(db *gorm.DB) *FaqController {
	return &FaqController{DB: db}
}

// GET /api/u/faqs
func (ctrl *FaqController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.FaqModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(faq_question) LIKE ? OR LOWER(faq_answer) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count faqs")
	}

	var faqs []model.FaqModel
	if err := q.Order("faq_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&faqs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list faqs")
	}

	return helper.JsonList(c, "faqs", dto.ToFaqResponseList(faqs),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/a/faqs
func (ctrl *FaqController) Create(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}

	var req dto.CreateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	faq := model.FaqModel{
		FaqQuestion:  strings.TrimSpace(req.Question),
		FaqAnswer:    strings.TrimSpace(req.Answer),
		FaqCreatedBy: userID,
	}
	if err := ctrl.DB.Create(&faq).Error; err != nil {
		log.Printf("[ERROR] create faq: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create faq")
	}
	return helper.JsonCreated(c, "faq created", dto.ToFaqResponse(&faq))
}

// PUT /api/a/faqs/:id
func (ctrl *FaqController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid faq id")
	}

	var req dto.UpdateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var faq model.FaqModel
	if err := ctrl.DB.First(&faq, "faq_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "faq not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load faq")
	}

	if req.Question != nil {
		faq.FaqQuestion = strings.TrimSpace(*req.Question)
	}
	if req.Answer != nil {
		faq.FaqAnswer = strings.TrimSpace(*req.Answer)
	}
	if err := ctrl.DB.Save(&faq).Error; err != nil {
		log.Printf("[ERROR] update faq: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update faq")
	}
	return helper.JsonUpdated(c, "faq updated", dto.ToFaqResponse(&faq))
}

// DELETE /api/a/faqs/:id
func (ctrl *FaqController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid faq id")
	}

	res := ctrl.DB.Delete(&model.FaqModel{}, "faq_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete faq: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete faq")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "faq not found")
	}
	return helper.JsonDeleted(c, "faq deleted", nil)
}

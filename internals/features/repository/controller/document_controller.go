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
	moduleModel "uniportal_backend/internals/features/academics/modules/model"
	notifService "uniportal_backend/internals/features/home/notifications/service"
	"uniportal_backend/internals/features/repository/dto"
	"uniportal_backend/internals/features/repository/model"
	helper "uniportal_backend/internals/helpers"
	ossHelper "uniportal_backend/internals/helpers/oss"
	authMw "uniportal_backend/internals/middlewares/auth"
)

type DocumentController struct {
	DB   *gorm.DB
	Blob ossHelper.BlobService
}

func NewDocumentController(db *gorm.DB, blob ossHelper.BlobService) *DocumentController {
	return &DocumentController{DB: db, Blob: blob}
}

// POST /api/u/modules/:id/documents (multipart: file, optional title)
func (ctrl *DocumentController) UploadToModule(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid module id")
	}

	var mod moduleModel.ModuleModel
	if err := ctrl.DB.First(&mod, "module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load module")
	}

	return ctrl.upload(c, userID, &moduleID, "documents/"+strings.ToLower(mod.ModuleCode), nil)
}

// POST /api/u/repository/documents (multipart: file, optional title)
func (ctrl *DocumentController) UploadToRepository(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}

	afterSave := func(doc *model.DocumentModel) {
		if err := notifService.EmitBroadcast(ctrl.DB, userID, constants.NotifTypeRepositoryUpdate,
			"New file in the repository",
			fmt.Sprintf("%q was added to the shared repository.", doc.DocumentTitle)); err != nil {
			log.Printf("[ERROR] repository upload notification: %v", err)
		}
	}
	return ctrl.upload(c, userID, nil, "repository", afterSave)
}

func (ctrl *DocumentController) upload(c *fiber.Ctx, userID uuid.UUID, moduleID *uuid.UUID, dir string, afterSave func(*model.DocumentModel)) error {
	if ctrl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "file storage is not configured")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	if fh.Size > ossHelper.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "file exceeds the upload limit")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		title = fh.Filename
	}

	publicURL, objectKey, contentType, err := ctrl.Blob.UploadDocument(c.Context(), dir, fh)
	if err != nil {
		log.Printf("[ERROR] upload document: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "upload failed")
	}

	doc := model.DocumentModel{
		DocumentTitle:       title,
		DocumentFileURL:     publicURL,
		DocumentObjectKey:   objectKey,
		DocumentContentType: contentType,
		DocumentSize:        fh.Size,
		DocumentModuleID:    moduleID,
		DocumentUploadedBy:  userID,
	}
	if err := ctrl.DB.Create(&doc).Error; err != nil {
		log.Printf("[ERROR] save document row: %v", err)
		_ = ctrl.Blob.DeleteByPublicURL(c.Context(), publicURL)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save document")
	}

	if afterSave != nil {
		afterSave(&doc)
	}
	return helper.JsonCreated(c, "document uploaded", dto.ToDocumentResponse(&doc))
}

// GET /api/u/modules/:id/documents
func (ctrl *DocumentController) ListByModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid module id")
	}
	return ctrl.list(c, ctrl.DB.Where("document_module_id = ?", moduleID))
}

// GET /api/u/repository/documents
func (ctrl *DocumentController) ListRepository(c *fiber.Ctx) error {
	return ctrl.list(c, ctrl.DB.Where("document_module_id IS NULL"))
}

func (ctrl *DocumentController) list(c *fiber.Ctx, q *gorm.DB) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q = q.Model(&model.DocumentModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(document_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count documents")
	}

	var docs []model.DocumentModel
	if err := q.Order("document_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&docs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list documents")
	}

	return helper.JsonList(c, "documents", dto.ToDocumentResponseList(docs),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// DELETE /api/u/documents/:id, uploader or admin only. The blob delete
// is best effort; the metadata row always goes.
func (ctrl *DocumentController) Delete(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid document id")
	}

	var doc model.DocumentModel
	if err := ctrl.DB.First(&doc, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "document not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load document")
	}

	if doc.DocumentUploadedBy != userID && !authMw.HasRole(c, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "only the uploader can delete this document")
	}

	if err := ctrl.DB.Delete(&doc).Error; err != nil {
		log.Printf("[ERROR] delete document row: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete document")
	}
	if err := ctrl.Blob.DeleteByPublicURL(c.Context(), doc.DocumentFileURL); err != nil {
		log.Printf("[ERROR] delete document blob %s: %v", doc.DocumentObjectKey, err)
	}
	return helper.JsonDeleted(c, "document deleted", nil)
}

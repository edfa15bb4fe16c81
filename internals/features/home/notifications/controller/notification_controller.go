package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/constants"
	moduleModel "uniportal_backend/internals/features/academics/modules/model"
	"uniportal_backend/internals/features/home/notifications/dto"
	"uniportal_backend/internals/features/home/notifications/model"
	"uniportal_backend/internals/features/home/notifications/service"
	userModel "uniportal_backend/internals/features/users/user/model"
	helper "uniportal_backend/internals/helpers"
	authMw "uniportal_backend/internals/middlewares/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

func (ctrl *NotificationController) loadViewer(userID uuid.UUID) (service.Viewer, error) {
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return service.Viewer{}, err
	}
	var links []userModel.UserModuleModel
	if err := ctrl.DB.Where("user_module_user_id = ?", userID).Find(&links).Error; err != nil {
		return service.Viewer{}, err
	}
	moduleIDs := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		moduleIDs = append(moduleIDs, l.UserModuleModuleID)
	}
	return service.Viewer{
		ID:        user.ID,
		JoinedAt:  user.CreatedAt,
		Roles:     append([]string(nil), user.Roles...),
		ModuleIDs: moduleIDs,
	}, nil
}

// GET /api/u/notifications?filter=announcements|notifications
// The join-date cutoff runs in SQL; the audience/module clauses run over
// the candidate set in memory (they depend on the viewer's links, not on
// indexed columns), then the page is cut and read-state joined in.
func (ctrl *NotificationController) Feed(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	viewer, err := ctrl.loadViewer(userID)
	if err != nil {
		log.Printf("[ERROR] load viewer: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load feed")
	}

	filter := c.Query("filter")
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.
		Where("notification_created_at >= ?", viewer.JoinedAt).
		Order("notification_created_at DESC")
	switch filter {
	case service.FilterAnnouncements:
		q = q.Where("notification_type IN ?", constants.AnnouncementTypes)
	case service.FilterNotifications:
		q = q.Where("notification_type NOT IN ?", constants.AnnouncementTypes)
	}

	var candidates []model.NotificationModel
	if err := q.Find(&candidates).Error; err != nil {
		log.Printf("[ERROR] feed query: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load feed")
	}

	visible := make([]model.NotificationModel, 0, len(candidates))
	for i := range candidates {
		if service.VisibleTo(&candidates[i], viewer) {
			visible = append(visible, candidates[i])
		}
	}

	total := int64(len(visible))
	start := paging.Offset
	if start > len(visible) {
		start = len(visible)
	}
	end := start + paging.Limit
	if end > len(visible) {
		end = len(visible)
	}
	page := visible[start:end]

	readSet, err := ctrl.readSetFor(userID, page)
	if err != nil {
		log.Printf("[ERROR] read-state query: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load feed")
	}

	out := make([]dto.NotificationResponse, 0, len(page))
	for i := range page {
		out = append(out, dto.ToNotificationResponse(&page[i], readSet[page[i].NotificationID]))
	}
	return helper.JsonList(c, "notifications", out,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *NotificationController) readSetFor(userID uuid.UUID, page []model.NotificationModel) (map[uuid.UUID]bool, error) {
	readSet := make(map[uuid.UUID]bool, len(page))
	if len(page) == 0 {
		return readSet, nil
	}
	ids := make([]uuid.UUID, 0, len(page))
	for i := range page {
		ids = append(ids, page[i].NotificationID)
	}
	var reads []model.NotificationReadModel
	err := ctrl.DB.
		Where("notification_read_user_id = ? AND notification_read_notification_id IN ?", userID, ids).
		Find(&reads).Error
	if err != nil {
		return nil, err
	}
	for _, r := range reads {
		readSet[r.NotificationReadNotificationID] = true
	}
	return readSet, nil
}

// POST /api/u/notifications
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}

	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var creator userModel.UserModel
	if err := ctrl.DB.First(&creator, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "user not found")
	}

	in := service.CreateInput{
		Type:         req.Type,
		Audience:     req.Audience,
		Title:        req.Title,
		Message:      req.Message,
		ModuleID:     req.ModuleID,
		CreatorID:    userID,
		CreatorRoles: append([]string(nil), creator.Roles...),
	}

	if req.ModuleID != nil {
		var mod moduleModel.ModuleModel
		if err := ctrl.DB.First(&mod, "module_id = ?", *req.ModuleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "module not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load module")
		}
		in.ModuleCode = mod.ModuleCode
	}

	var lecturerLinks []userModel.UserModuleModel
	if err := ctrl.DB.
		Where("user_module_user_id = ? AND user_module_role_context = ?", userID, constants.RoleLecturer).
		Find(&lecturerLinks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load module links")
	}
	for _, l := range lecturerLinks {
		in.LecturerModuleIDs = append(in.LecturerModuleIDs, l.UserModuleModuleID)
	}

	n, err := service.PrepareCreate(in)
	if err != nil {
		var re *service.RuleError
		if errors.As(err, &re) {
			return helper.JsonError(c, re.Status, re.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(n).Error; err != nil {
		log.Printf("[ERROR] create notification: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create notification")
	}
	return helper.JsonCreated(c, "notification posted", dto.ToNotificationResponse(n, false))
}

// POST /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	var n model.NotificationModel
	if err := ctrl.DB.First(&n, "notification_id = ?", notifID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load notification")
	}

	row := model.NotificationReadModel{
		NotificationReadNotificationID: notifID,
		NotificationReadUserID:         userID,
	}
	if err := ctrl.DB.
		Where("notification_read_notification_id = ? AND notification_read_user_id = ?", notifID, userID).
		FirstOrCreate(&row).Error; err != nil {
		log.Printf("[ERROR] mark read: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to mark read")
	}
	return helper.JsonUpdated(c, "marked read", nil)
}

// DELETE /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkUnread(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := ctrl.DB.
		Where("notification_read_notification_id = ? AND notification_read_user_id = ?", notifID, userID).
		Delete(&model.NotificationReadModel{}).Error; err != nil {
		log.Printf("[ERROR] mark unread: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to mark unread")
	}
	return helper.JsonUpdated(c, "marked unread", nil)
}

// DELETE /api/u/notifications/:id, creator or admin.
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	var n model.NotificationModel
	if err := ctrl.DB.First(&n, "notification_id = ?", notifID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load notification")
	}

	if n.NotificationCreatedBy != userID && !authMw.HasRole(c, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "not allowed to delete this notification")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_read_notification_id = ?", notifID).
			Delete(&model.NotificationReadModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&n).Error
	})
	if err != nil {
		log.Printf("[ERROR] delete notification: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "delete failed")
	}
	return helper.JsonDeleted(c, "notification deleted", nil)
}

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
	"uniportal_backend/internals/features/academics/modules/dto"
	"uniportal_backend/internals/features/academics/modules/model"
	"uniportal_backend/internals/features/academics/modules/service"
	notifService "uniportal_backend/internals/features/home/notifications/service"
	userModel "uniportal_backend/internals/features/users/user/model"
	helper "uniportal_backend/internals/helpers"
	authMw "uniportal_backend/internals/middlewares/auth"
)

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db}
}

// POST /api/a/modules
func (ctrl *ModuleController) Create(c *fiber.Ctx) error {
	var req dto.CreateModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	mod := model.ModuleModel{
		ModuleCode:     strings.ToUpper(strings.TrimSpace(req.Code)),
		ModuleName:     strings.TrimSpace(req.Name),
		ModuleSemester: req.Semester,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mod).Error; err != nil {
			return err
		}
		for _, s := range req.ClassSessions {
			row := model.ClassSessionModel{
				ClassSessionModuleID:  mod.ModuleID,
				ClassSessionVenue:     s.Venue,
				ClassSessionWeekday:   s.Weekday,
				ClassSessionStartTime: s.StartTime,
				ClassSessionEndTime:   s.EndTime,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, a := range req.Assessments {
			row := model.AssessmentModel{
				AssessmentModuleID:  mod.ModuleID,
				AssessmentTitle:     a.Title,
				AssessmentVenue:     a.Venue,
				AssessmentDate:      a.Date,
				AssessmentStartTime: a.StartTime,
				AssessmentEndTime:   a.EndTime,
				AssessmentTimed:     a.Timed,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] create module: %v", err)
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "module code already exists")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "create failed: "+err.Error())
	}

	ctrl.DB.Preload("ClassSessions").Preload("Assessments").First(&mod, "module_id = ?", mod.ModuleID)
	return helper.JsonCreated(c, "module created", dto.ToModuleResponse(&mod))
}

// GET /api/u/modules
func (ctrl *ModuleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ModuleModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(module_code) LIKE ? OR LOWER(module_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count modules")
	}

	var modules []model.ModuleModel
	if err := q.Preload("ClassSessions").Preload("Assessments").
		Order("module_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list modules")
	}

	return helper.JsonList(c, "modules", dto.ToModuleResponseList(modules),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/modules/mine lists the modules the requester is linked to.
func (ctrl *ModuleController) Mine(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}

	var links []userModel.UserModuleModel
	if err := ctrl.DB.Where("user_module_user_id = ?", userID).Find(&links).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load module links")
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.UserModuleModuleID)
	}

	var modules []model.ModuleModel
	if len(ids) > 0 {
		if err := ctrl.DB.Preload("ClassSessions").Preload("Assessments").
			Where("module_id IN ?", ids).
			Order("module_code ASC").
			Find(&modules).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list modules")
		}
	}
	return helper.JsonOK(c, "my modules", dto.ToModuleResponseList(modules))
}

// GET /api/u/modules/:id
func (ctrl *ModuleController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid module id")
	}

	var mod model.ModuleModel
	if err := ctrl.DB.Preload("ClassSessions").Preload("Assessments").
		First(&mod, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load module")
	}
	return helper.JsonOK(c, "module", dto.ToModuleResponse(&mod))
}

// PUT /api/a/modules/:id snapshots the schedule before the write and
// diffs after, emitting at most one notification per changed category.
func (ctrl *ModuleController) Update(c *fiber.Ctx) error {
	userID, err := authMw.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid module id")
	}

	var req dto.UpdateModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var mod model.ModuleModel
	if err := ctrl.DB.Preload("ClassSessions").Preload("Assessments").
		First(&mod, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load module")
	}

	// snapshot before mutation
	oldClasses := service.ClassTuples(mod.ClassSessions)
	oldAssess := service.AssessTuples(mod.Assessments)
	oldCode, oldName := mod.ModuleCode, mod.ModuleName

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.Code != nil {
			mod.ModuleCode = strings.ToUpper(strings.TrimSpace(*req.Code))
		}
		if req.Name != nil {
			mod.ModuleName = strings.TrimSpace(*req.Name)
		}
		if req.Semester != nil {
			mod.ModuleSemester = *req.Semester
		}
		if err := tx.Save(&mod).Error; err != nil {
			return err
		}

		if req.ClassSessions != nil {
			if err := tx.Where("class_session_module_id = ?", mod.ModuleID).
				Delete(&model.ClassSessionModel{}).Error; err != nil {
				return err
			}
			for _, s := range *req.ClassSessions {
				row := model.ClassSessionModel{
					ClassSessionModuleID:  mod.ModuleID,
					ClassSessionVenue:     s.Venue,
					ClassSessionWeekday:   s.Weekday,
					ClassSessionStartTime: s.StartTime,
					ClassSessionEndTime:   s.EndTime,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if req.Assessments != nil {
			if err := tx.Where("assessment_module_id = ?", mod.ModuleID).
				Delete(&model.AssessmentModel{}).Error; err != nil {
				return err
			}
			for _, a := range *req.Assessments {
				row := model.AssessmentModel{
					AssessmentModuleID:  mod.ModuleID,
					AssessmentTitle:     a.Title,
					AssessmentVenue:     a.Venue,
					AssessmentDate:      a.Date,
					AssessmentStartTime: a.StartTime,
					AssessmentEndTime:   a.EndTime,
					AssessmentTimed:     a.Timed,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] update module: %v", err)
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "module code already exists")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "update failed: "+err.Error())
	}

	// re-fetch and diff
	var fresh model.ModuleModel
	if err := ctrl.DB.Preload("ClassSessions").Preload("Assessments").
		First(&fresh, "module_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload module")
	}

	diff := service.DiffSchedules(
		oldClasses, service.ClassTuples(fresh.ClassSessions),
		oldAssess, service.AssessTuples(fresh.Assessments),
		oldCode, fresh.ModuleCode, oldName, fresh.ModuleName,
	)
	ctrl.emitChangeNotifications(userID, &fresh, oldCode, oldName, diff)

	return helper.JsonUpdated(c, "module updated", dto.ToModuleResponse(&fresh))
}

func (ctrl *ModuleController) emitChangeNotifications(actor uuid.UUID, mod *model.ModuleModel, oldCode, oldName string, diff service.DiffResult) {
	if diff.NoChange() {
		return
	}
	if diff.ClassChanged {
		_ = notifService.EmitBroadcast(ctrl.DB, actor, constants.NotifTypeScheduleUpdate,
			fmt.Sprintf("Class schedule changed for %s", mod.ModuleCode),
			fmt.Sprintf("The class timetable of %s (%s) has been updated.", mod.ModuleCode, mod.ModuleName))
	}
	if diff.AssessChanged {
		_ = notifService.EmitBroadcast(ctrl.DB, actor, constants.NotifTypeScheduleUpdate,
			fmt.Sprintf("Assessment schedule changed for %s", mod.ModuleCode),
			fmt.Sprintf("The assessment dates of %s (%s) have been updated.", mod.ModuleCode, mod.ModuleName))
	}
	if diff.MetaOnly() {
		_ = notifService.EmitModuleUpdate(ctrl.DB, actor, mod.ModuleID, mod.ModuleCode,
			"Module details updated",
			fmt.Sprintf("Module %s (%s) is now %s (%s).", oldCode, oldName, mod.ModuleCode, mod.ModuleName),
			map[string]interface{}{
				"old_code": oldCode,
				"new_code": mod.ModuleCode,
				"old_name": oldName,
				"new_name": mod.ModuleName,
			})
	}
}

// DELETE /api/a/modules/:id
func (ctrl *ModuleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid module id")
	}

	var mod model.ModuleModel
	if err := ctrl.DB.First(&mod, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load module")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_session_module_id = ?", id).Delete(&model.ClassSessionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assessment_module_id = ?", id).Delete(&model.AssessmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_module_module_id = ?", id).Delete(&userModel.UserModuleModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&mod).Error
	})
	if err != nil {
		log.Printf("[ERROR] delete module: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "delete failed")
	}
	return helper.JsonDeleted(c, "module deleted", nil)
}

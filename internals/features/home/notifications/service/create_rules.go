package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"uniportal_backend/internals/constants"
	"uniportal_backend/internals/features/home/notifications/model"
)

// RuleError carries the HTTP status a rule violation should surface as.
type RuleError struct {
	Status  int
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func badRequest(msg string) *RuleError {
	return &RuleError{Status: fiber.StatusBadRequest, Message: msg}
}

func forbidden(msg string) *RuleError {
	return &RuleError{Status: fiber.StatusForbidden, Message: msg}
}

// CreateInput is a notification post after the controller resolved the
// target module (code + the creator's lecturer links).
type CreateInput struct {
	Type     string
	Audience string
	Title    string
	Message  string
	ModuleID *uuid.UUID

	ModuleCode        string // code of ModuleID, when set
	CreatorID         uuid.UUID
	CreatorRoles      []string
	LecturerModuleIDs []uuid.UUID // modules the creator is linked to as Lecturer
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func validType(t string) bool {
	for _, v := range constants.NotifTypes {
		if t == v {
			return true
		}
	}
	return false
}

func validAudience(a string) bool {
	for _, v := range constants.Audiences {
		if a == v {
			return true
		}
	}
	return false
}

func isBroadcastType(t string) bool {
	for _, v := range constants.BroadcastTypes {
		if t == v {
			return true
		}
	}
	return false
}

// EnsureModulePrefix prepends "[CODE] " to a title unless it is already
// there (case-insensitive). Re-running it never stacks prefixes.
func EnsureModulePrefix(title, code string) string {
	prefix := "[" + strings.ToUpper(strings.TrimSpace(code)) + "]"
	trimmed := strings.TrimSpace(title)
	if strings.HasPrefix(strings.ToUpper(trimmed), prefix) {
		return trimmed
	}
	return prefix + " " + trimmed
}

// PrepareCreate applies the creation-side authorization and audience rules
// and returns the row to persist:
//   - students cannot post;
//   - System posts are Admin-only;
//   - ScheduleUpdate/RepositoryUpdate broadcast with audience All and no
//     module binding;
//   - a pure Lecturer posting any other type must target exactly one
//     module they hold a Lecturer link on;
//   - a module target (or an explicit ModuleStudents audience) forces
//     audience ModuleStudents and the idempotent "[CODE]" title prefix.
func PrepareCreate(in CreateInput) (*model.NotificationModel, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, badRequest("title is required")
	}
	if !validType(in.Type) {
		return nil, badRequest("unknown notification type: " + in.Type)
	}
	if in.Audience != "" && !validAudience(in.Audience) {
		return nil, badRequest("unknown audience: " + in.Audience)
	}

	isAdmin := containsRole(in.CreatorRoles, constants.RoleAdmin)
	isCoordinator := containsRole(in.CreatorRoles, constants.RoleCoordinator)
	isLecturer := containsRole(in.CreatorRoles, constants.RoleLecturer)

	if !isAdmin && !isCoordinator && !isLecturer {
		return nil, forbidden("students may not post notifications")
	}
	if in.Type == constants.NotifTypeSystem && !isAdmin {
		return nil, forbidden("only admins may post system notifications")
	}

	n := &model.NotificationModel{
		NotificationType:      in.Type,
		NotificationAudience:  in.Audience,
		NotificationTitle:     strings.TrimSpace(in.Title),
		NotificationMessage:   in.Message,
		NotificationModuleID:  in.ModuleID,
		NotificationCreatedBy: in.CreatorID,
	}

	if isBroadcastType(in.Type) {
		n.NotificationAudience = constants.AudienceAll
		n.NotificationModuleID = nil
		return n, nil
	}

	// Lecturers without a wider role must post into one of their own
	// modules.
	if isLecturer && !isAdmin && !isCoordinator {
		if in.ModuleID == nil {
			return nil, badRequest("lecturers must target one of their modules")
		}
		if !containsID(in.LecturerModuleIDs, *in.ModuleID) {
			return nil, forbidden("module is not assigned to you as lecturer")
		}
	}

	if n.NotificationModuleID != nil || in.Audience == constants.AudienceModuleStudents {
		if n.NotificationModuleID == nil {
			return nil, badRequest("a module is required for a ModuleStudents audience")
		}
		n.NotificationAudience = constants.AudienceModuleStudents
		n.NotificationTitle = EnsureModulePrefix(n.NotificationTitle, in.ModuleCode)
	}

	if n.NotificationAudience == "" {
		n.NotificationAudience = constants.AudienceAll
	}
	return n, nil
}

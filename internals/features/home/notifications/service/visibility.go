package service

import (
	"time"

	"github.com/google/uuid"

	"uniportal_backend/internals/constants"
	"uniportal_backend/internals/features/home/notifications/model"
)

// Viewer is the slice of a user the feed filter needs.
type Viewer struct {
	ID        uuid.UUID
	JoinedAt  time.Time
	Roles     []string
	ModuleIDs []uuid.UUID
}

func (v Viewer) hasRole(role string) bool {
	for _, r := range v.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (v Viewer) isStaff() bool {
	for _, r := range constants.StaffRoles {
		if v.hasRole(r) {
			return true
		}
	}
	return false
}

func (v Viewer) enrolledIn(moduleID uuid.UUID) bool {
	for _, id := range v.ModuleIDs {
		if id == moduleID {
			return true
		}
	}
	return false
}

// VisibleTo decides whether one notification belongs in a viewer's feed.
// All clauses must hold:
//  1. not created before the viewer joined;
//  2. own post, or not module-bound, or viewer linked to the module;
//  3. own post, or the audience matches the viewer's roles (module
//     enrollment required for ModuleStudents).
func VisibleTo(n *model.NotificationModel, v Viewer) bool {
	own := n.NotificationCreatedBy == v.ID

	if n.NotificationCreatedAt.Before(v.JoinedAt) {
		return false
	}

	if !own && n.NotificationModuleID != nil && !v.enrolledIn(*n.NotificationModuleID) {
		return false
	}

	if own {
		return true
	}
	switch n.NotificationAudience {
	case constants.AudienceAll:
		return true
	case constants.AudienceStudents:
		return v.hasRole(constants.RoleStudent)
	case constants.AudienceStaff:
		return v.isStaff()
	case constants.AudienceModuleStudents:
		return v.hasRole(constants.RoleStudent) &&
			n.NotificationModuleID != nil && v.enrolledIn(*n.NotificationModuleID)
	default:
		return false
	}
}

// Feed filter values accepted on ?filter=.
const (
	FilterAnnouncements = "announcements"
	FilterNotifications = "notifications"
)

// MatchesFilter applies the optional type-class filter: announcements are
// General and System posts, notifications are everything else.
func MatchesFilter(notifType, filter string) bool {
	switch filter {
	case FilterAnnouncements:
		return isAnnouncementType(notifType)
	case FilterNotifications:
		return !isAnnouncementType(notifType)
	default:
		return true
	}
}

func isAnnouncementType(t string) bool {
	for _, a := range constants.AnnouncementTypes {
		if t == a {
			return true
		}
	}
	return false
}

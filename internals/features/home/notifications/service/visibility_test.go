package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"uniportal_backend/internals/constants"
	"uniportal_backend/internals/features/home/notifications/model"
)

func TestVisibleTo(t *testing.T) {
	creatorID := uuid.New()
	viewerID := uuid.New()
	moduleA := uuid.New()
	moduleB := uuid.New()
	joined := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	notif := func(audience string, moduleID *uuid.UUID, createdAt time.Time) *model.NotificationModel {
		return &model.NotificationModel{
			NotificationType:      constants.NotifTypeGeneral,
			NotificationAudience:  audience,
			NotificationTitle:     "t",
			NotificationModuleID:  moduleID,
			NotificationCreatedBy: creatorID,
			NotificationCreatedAt: createdAt,
		}
	}
	after := joined.Add(24 * time.Hour)
	before := joined.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		n      *model.NotificationModel
		viewer Viewer
		want   bool
	}{
		{
			name:   "posted before the viewer joined",
			n:      notif(constants.AudienceAll, nil, before),
			viewer: Viewer{ID: viewerID, JoinedAt: joined, Roles: []string{constants.RoleStudent}},
			want:   false,
		},
		{
			name:   "audience All",
			n:      notif(constants.AudienceAll, nil, after),
			viewer: Viewer{ID: viewerID, JoinedAt: joined, Roles: []string{constants.RoleStudent}},
			want:   true,
		},
		{
			name:   "audience Students for a student",
			n:      notif(constants.AudienceStudents, nil, after),
			viewer: Viewer{ID: viewerID, JoinedAt: joined, Roles: []string{constants.RoleStudent}},
			want:   true,
		},
		{
			name:   "audience Students for a lecturer",
			n:      notif(constants.AudienceStudents, nil, after),
			viewer: Viewer{ID: viewerID, JoinedAt: joined, Roles: []string{constants.RoleLecturer}},
			want:   false,
		},
		{
			name:   "audience Staff for a coordinator",
			n:      notif(constants.AudienceStaff, nil, after),
			viewer: Viewer{ID: viewerID, JoinedAt: joined, Roles: []string{constants.RoleCoordinator}},
			want:   true,
		},
		{
			name:   "audience Staff for a student",
			n:      notif(constants.AudienceStaff, nil, after),
			viewer: Viewer{ID: viewerID, JoinedAt: joined, Roles: []string{constants.RoleStudent}},
			want:   false,
		},
		{
			name: "module bound and viewer enrolled",
			n:    notif(constants.AudienceModuleStudents, &moduleA, after),
			viewer: Viewer{
				ID: viewerID, JoinedAt: joined,
				Roles:     []string{constants.RoleStudent},
				ModuleIDs: []uuid.UUID{moduleA},
			},
			want: true,
		},
		{
			name: "module bound and viewer not enrolled",
			n:    notif(constants.AudienceModuleStudents, &moduleA, after),
			viewer: Viewer{
				ID: viewerID, JoinedAt: joined,
				Roles:     []string{constants.RoleStudent},
				ModuleIDs: []uuid.UUID{moduleB},
			},
			want: false,
		},
		{
			name: "module bound and viewer is staff not student",
			n:    notif(constants.AudienceModuleStudents, &moduleA, after),
			viewer: Viewer{
				ID: viewerID, JoinedAt: joined,
				Roles:     []string{constants.RoleLecturer},
				ModuleIDs: []uuid.UUID{moduleA},
			},
			want: false,
		},
		{
			name:   "own post bypasses the audience clause",
			n:      notif(constants.AudienceStudents, nil, after),
			viewer: Viewer{ID: creatorID, JoinedAt: joined, Roles: []string{constants.RoleLecturer}},
			want:   true,
		},
		{
			name: "own post bypasses the module clause",
			n:    notif(constants.AudienceModuleStudents, &moduleA, after),
			viewer: Viewer{
				ID: creatorID, JoinedAt: joined,
				Roles: []string{constants.RoleLecturer},
			},
			want: true,
		},
		{
			name:   "own post still hidden when older than join date",
			n:      notif(constants.AudienceAll, nil, before),
			viewer: Viewer{ID: creatorID, JoinedAt: joined, Roles: []string{constants.RoleLecturer}},
			want:   false,
		},
		{
			name:   "unknown audience hidden",
			n:      notif("Everyone", nil, after),
			viewer: Viewer{ID: viewerID, JoinedAt: joined, Roles: []string{constants.RoleStudent}},
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleTo(tt.n, tt.viewer); got != tt.want {
				t.Errorf("VisibleTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesFilter(t *testing.T) {
	tests := []struct {
		notifType string
		filter    string
		want      bool
	}{
		{constants.NotifTypeGeneral, FilterAnnouncements, true},
		{constants.NotifTypeSystem, FilterAnnouncements, true},
		{constants.NotifTypeScheduleUpdate, FilterAnnouncements, false},
		{constants.NotifTypeScheduleUpdate, FilterNotifications, true},
		{constants.NotifTypeModuleUpdate, FilterNotifications, true},
		{constants.NotifTypeGeneral, FilterNotifications, false},
		{constants.NotifTypeGeneral, "", true},
		{constants.NotifTypeRepositoryUpdate, "", true},
	}
	for _, tt := range tests {
		if got := MatchesFilter(tt.notifType, tt.filter); got != tt.want {
			t.Errorf("MatchesFilter(%q, %q) = %v, want %v", tt.notifType, tt.filter, got, tt.want)
		}
	}
}

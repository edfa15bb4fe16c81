package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"uniportal_backend/internals/constants"
)

func TestEnsureModulePrefix(t *testing.T) {
	tests := []struct {
		name  string
		title string
		code  string
		want  string
	}{
		{"plain title", "Lecture moved", "CS101", "[CS101] Lecture moved"},
		{"already prefixed", "[CS101] Lecture moved", "CS101", "[CS101] Lecture moved"},
		{"prefix case insensitive", "[cs101] Lecture moved", "CS101", "[cs101] Lecture moved"},
		{"code normalised", "Lecture moved", " cs101 ", "[CS101] Lecture moved"},
		{"surrounding whitespace", "  Lecture moved ", "CS101", "[CS101] Lecture moved"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureModulePrefix(tt.title, tt.code); got != tt.want {
				t.Errorf("EnsureModulePrefix() = %q, want %q", got, tt.want)
			}
		})
	}

	// applying twice never stacks
	once := EnsureModulePrefix("Lecture moved", "CS101")
	if twice := EnsureModulePrefix(once, "CS101"); twice != once {
		t.Errorf("EnsureModulePrefix not idempotent: %q -> %q", once, twice)
	}
}

func TestPrepareCreate(t *testing.T) {
	creator := uuid.New()
	ownModule := uuid.New()
	otherModule := uuid.New()

	base := func() CreateInput {
		return CreateInput{
			Type:              constants.NotifTypeGeneral,
			Title:             "Hello",
			Message:           "msg",
			ModuleCode:        "CS101",
			CreatorID:         creator,
			CreatorRoles:      []string{constants.RoleCoordinator},
			LecturerModuleIDs: nil,
		}
	}

	t.Run("empty title rejected", func(t *testing.T) {
		in := base()
		in.Title = "   "
		assertRuleError(t, in, fiber.StatusBadRequest)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		in := base()
		in.Type = "Urgent"
		assertRuleError(t, in, fiber.StatusBadRequest)
	})

	t.Run("unknown audience rejected", func(t *testing.T) {
		in := base()
		in.Audience = "Everyone"
		assertRuleError(t, in, fiber.StatusBadRequest)
	})

	t.Run("student forbidden", func(t *testing.T) {
		in := base()
		in.CreatorRoles = []string{constants.RoleStudent}
		assertRuleError(t, in, fiber.StatusForbidden)
	})

	t.Run("system post needs admin", func(t *testing.T) {
		in := base()
		in.Type = constants.NotifTypeSystem
		assertRuleError(t, in, fiber.StatusForbidden)

		in.CreatorRoles = []string{constants.RoleAdmin}
		n, err := PrepareCreate(in)
		if err != nil {
			t.Fatalf("PrepareCreate() error = %v", err)
		}
		if n.NotificationType != constants.NotifTypeSystem {
			t.Errorf("type = %q", n.NotificationType)
		}
	})

	t.Run("broadcast type forces All and drops module", func(t *testing.T) {
		in := base()
		in.Type = constants.NotifTypeScheduleUpdate
		in.Audience = constants.AudienceStudents
		in.ModuleID = &ownModule
		n, err := PrepareCreate(in)
		if err != nil {
			t.Fatalf("PrepareCreate() error = %v", err)
		}
		if n.NotificationAudience != constants.AudienceAll {
			t.Errorf("audience = %q, want %q", n.NotificationAudience, constants.AudienceAll)
		}
		if n.NotificationModuleID != nil {
			t.Errorf("module id = %v, want nil", n.NotificationModuleID)
		}
	})

	t.Run("pure lecturer without module rejected", func(t *testing.T) {
		in := base()
		in.CreatorRoles = []string{constants.RoleLecturer}
		in.LecturerModuleIDs = []uuid.UUID{ownModule}
		assertRuleError(t, in, fiber.StatusBadRequest)
	})

	t.Run("pure lecturer targeting a foreign module rejected", func(t *testing.T) {
		in := base()
		in.CreatorRoles = []string{constants.RoleLecturer}
		in.LecturerModuleIDs = []uuid.UUID{ownModule}
		in.ModuleID = &otherModule
		assertRuleError(t, in, fiber.StatusForbidden)
	})

	t.Run("pure lecturer targeting an own module", func(t *testing.T) {
		in := base()
		in.CreatorRoles = []string{constants.RoleLecturer}
		in.LecturerModuleIDs = []uuid.UUID{ownModule}
		in.ModuleID = &ownModule
		n, err := PrepareCreate(in)
		if err != nil {
			t.Fatalf("PrepareCreate() error = %v", err)
		}
		if n.NotificationAudience != constants.AudienceModuleStudents {
			t.Errorf("audience = %q, want %q", n.NotificationAudience, constants.AudienceModuleStudents)
		}
		if n.NotificationTitle != "[CS101] Hello" {
			t.Errorf("title = %q, want %q", n.NotificationTitle, "[CS101] Hello")
		}
	})

	t.Run("ModuleStudents audience without module rejected", func(t *testing.T) {
		in := base()
		in.Audience = constants.AudienceModuleStudents
		assertRuleError(t, in, fiber.StatusBadRequest)
	})

	t.Run("module target forces ModuleStudents for coordinators too", func(t *testing.T) {
		in := base()
		in.ModuleID = &ownModule
		in.Audience = constants.AudienceAll
		n, err := PrepareCreate(in)
		if err != nil {
			t.Fatalf("PrepareCreate() error = %v", err)
		}
		if n.NotificationAudience != constants.AudienceModuleStudents {
			t.Errorf("audience = %q, want %q", n.NotificationAudience, constants.AudienceModuleStudents)
		}
	})

	t.Run("no audience defaults to All", func(t *testing.T) {
		in := base()
		n, err := PrepareCreate(in)
		if err != nil {
			t.Fatalf("PrepareCreate() error = %v", err)
		}
		if n.NotificationAudience != constants.AudienceAll {
			t.Errorf("audience = %q, want %q", n.NotificationAudience, constants.AudienceAll)
		}
	})
}

func assertRuleError(t *testing.T, in CreateInput, wantStatus int) {
	t.Helper()
	_, err := PrepareCreate(in)
	var re *RuleError
	if !errors.As(err, &re) {
		t.Fatalf("PrepareCreate() error = %v, want *RuleError", err)
	}
	if re.Status != wantStatus {
		t.Errorf("status = %d, want %d (%s)", re.Status, wantStatus, re.Message)
	}
}

package constants

// Global roles. A user carries one or more of these; staff is everything
// that is not Student.
const (
	RoleStudent     = "Student"
	RoleLecturer    = "Lecturer"
	RoleCoordinator = "Coordinator"
	RoleAdmin       = "Admin"
)

var AllRoles = []string{RoleStudent, RoleLecturer, RoleCoordinator, RoleAdmin}

var StaffRoles = []string{RoleLecturer, RoleCoordinator, RoleAdmin}

// Notification types.
const (
	NotifTypeGeneral          = "General"
	NotifTypeSystem           = "System"
	NotifTypeModuleUpdate     = "ModuleUpdate"
	NotifTypeScheduleUpdate   = "ScheduleUpdate"
	NotifTypeRepositoryUpdate = "RepositoryUpdate"
)

var NotifTypes = []string{
	NotifTypeGeneral,
	NotifTypeSystem,
	NotifTypeModuleUpdate,
	NotifTypeScheduleUpdate,
	NotifTypeRepositoryUpdate,
}

// Announcement types render in the "announcements" tab; everything else is
// a plain notification.
var AnnouncementTypes = []string{NotifTypeGeneral, NotifTypeSystem}

// Notification audiences.
const (
	AudienceAll            = "All"
	AudienceStudents       = "Students"
	AudienceStaff          = "Staff"
	AudienceModuleStudents = "ModuleStudents"
)

var Audiences = []string{AudienceAll, AudienceStudents, AudienceStaff, AudienceModuleStudents}

// Broadcast types skip the lecturer must-target-own-module rule and always
// go out with audience All.
var BroadcastTypes = []string{NotifTypeScheduleUpdate, NotifTypeRepositoryUpdate}

// Fiber locals keys set by the auth middleware.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocRoles    = "roles"
)

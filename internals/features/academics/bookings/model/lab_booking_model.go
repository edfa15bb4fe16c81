package model

import (
	"time"

	"github.com/google/uuid"
)

// LabBookingModel is one slot on the shared lab timetable. Ownership is
// matched by username string, not a foreign key.
type LabBookingModel struct {
	LabBookingID          uuid.UUID `gorm:"column:lab_booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lab_booking_id"`
	LabBookingBookedBy    string    `gorm:"column:lab_booking_booked_by;size:50;not null" json:"lab_booking_booked_by"`
	LabBookingWeekday     string    `gorm:"column:lab_booking_weekday;size:10;not null" json:"lab_booking_weekday"`
	LabBookingDate        string    `gorm:"column:lab_booking_date;size:10;not null;index" json:"lab_booking_date"` // "YYYY-MM-DD"
	LabBookingStartTime   string    `gorm:"column:lab_booking_start_time;size:5;not null" json:"lab_booking_start_time"`
	LabBookingEndTime     string    `gorm:"column:lab_booking_end_time;size:5;not null" json:"lab_booking_end_time"`
	LabBookingDescription string    `gorm:"column:lab_booking_description;type:text" json:"lab_booking_description"`
	LabBookingCreatedAt   time.Time `gorm:"column:lab_booking_created_at;autoCreateTime" json:"lab_booking_created_at"`
}

func (LabBookingModel) TableName() string {
	return "lab_bookings"
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"uniportal_backend/internals/features/academics/bookings/model"
)

type CreateBookingRequest struct {
	Weekday     string `json:"weekday" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	Description string `json:"description" validate:"max=500"`
}

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	BookedBy    string    `json:"booked_by"`
	Weekday     string    `json:"weekday"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToBookingResponse(b *model.LabBookingModel) BookingResponse {
	return BookingResponse{
		ID:          b.LabBookingID,
		BookedBy:    b.LabBookingBookedBy,
		Weekday:     b.LabBookingWeekday,
		Date:        b.LabBookingDate,
		StartTime:   b.LabBookingStartTime,
		EndTime:     b.LabBookingEndTime,
		Description: b.LabBookingDescription,
		CreatedAt:   b.LabBookingCreatedAt,
	}
}

func ToBookingResponseList(bookings []model.LabBookingModel) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingResponse(&bookings[i]))
	}
	return out
}

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
	"uniportal_backend/internals/features/academics/bookings/dto"
	"uniportal_backend/internals/features/academics/bookings/model"
	"uniportal_backend/internals/features/academics/bookings/service"
	helper "uniportal_backend/internals/helpers"
	authMw "uniportal_backend/internals/middlewares/auth"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// GET /api/u/bookings?date=YYYY-MM-DD
func (ctrl *BookingController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.LabBookingModel{})
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("lab_booking_date = ?", date)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count bookings")
	}

	var bookings []model.LabBookingModel
	if err := q.Order("lab_booking_date ASC, lab_booking_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&bookings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list bookings")
	}

	return helper.JsonList(c, "bookings", dto.ToBookingResponseList(bookings),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/u/bookings is rejected with 400 when the slot overlaps an
// existing booking on the same date.
func (ctrl *BookingController) Create(c *fiber.Ctx) error {
	userName := authMw.UserNameFromLocals(c)
	if userName == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no user in context")
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}
	if req.StartTime >= req.EndTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "start time must be before end time")
	}

	candidate := model.LabBookingModel{
		LabBookingBookedBy:    userName,
		LabBookingWeekday:     req.Weekday,
		LabBookingDate:        req.Date,
		LabBookingStartTime:   req.StartTime,
		LabBookingEndTime:     req.EndTime,
		LabBookingDescription: req.Description,
	}

	var sameDay []model.LabBookingModel
	if err := ctrl.DB.Where("lab_booking_date = ?", req.Date).Find(&sameDay).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check availability")
	}
	if conflict := service.FindConflict(candidate, sameDay); conflict != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("slot unavailable: already booked by %s from %s to %s",
				conflict.LabBookingBookedBy, conflict.LabBookingStartTime, conflict.LabBookingEndTime))
	}

	if err := ctrl.DB.Create(&candidate).Error; err != nil {
		log.Printf("[ERROR] create booking: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create booking")
	}
	return helper.JsonCreated(c, "booking created", dto.ToBookingResponse(&candidate))
}

// DELETE /api/u/bookings/:id, owner or admin only.
func (ctrl *BookingController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid booking id")
	}

	var booking model.LabBookingModel
	if err := ctrl.DB.First(&booking, "lab_booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load booking")
	}

	userName := authMw.UserNameFromLocals(c)
	if booking.LabBookingBookedBy != userName && !authMw.HasRole(c, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "only the owner can cancel this booking")
	}

	if err := ctrl.DB.Delete(&booking).Error; err != nil {
		log.Printf("[ERROR] delete booking: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete booking")
	}
	return helper.JsonDeleted(c, "booking deleted", nil)
}

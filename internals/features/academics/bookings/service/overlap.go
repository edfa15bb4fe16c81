package service

import (
	"uniportal_backend/internals/features/academics/bookings/model"
)

// Overlaps is the half-open interval test on "HH:MM" strings: two slots
// clash when aStart < bEnd && aEnd > bStart. Back-to-back slots
// (a.End == b.Start) do not clash.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// FindConflict returns the first existing booking on the same calendar
// date and weekday label whose interval overlaps the candidate, or nil.
func FindConflict(candidate model.LabBookingModel, existing []model.LabBookingModel) *model.LabBookingModel {
	for i := range existing {
		e := &existing[i]
		if e.LabBookingDate != candidate.LabBookingDate {
			continue
		}
		if e.LabBookingWeekday != candidate.LabBookingWeekday {
			continue
		}
		if Overlaps(candidate.LabBookingStartTime, candidate.LabBookingEndTime,
			e.LabBookingStartTime, e.LabBookingEndTime) {
			return e
		}
	}
	return nil
}

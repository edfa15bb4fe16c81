package service

import (
	"testing"

	"uniportal_backend/internals/features/academics/bookings/model"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"back to back", "09:00", "10:00", "10:00", "11:00", false},
		{"back to back reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "13:00", "14:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// symmetric
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []model.LabBookingModel{
		{
			LabBookingBookedBy:  "alice",
			LabBookingWeekday:   "Monday",
			LabBookingDate:      "2025-10-06",
			LabBookingStartTime: "09:00",
			LabBookingEndTime:   "10:00",
		},
		{
			LabBookingBookedBy:  "bob",
			LabBookingWeekday:   "Monday",
			LabBookingDate:      "2025-10-06",
			LabBookingStartTime: "13:00",
			LabBookingEndTime:   "15:00",
		},
	}

	candidate := func(date, start, end string) model.LabBookingModel {
		return model.LabBookingModel{
			LabBookingWeekday:   "Monday",
			LabBookingDate:      date,
			LabBookingStartTime: start,
			LabBookingEndTime:   end,
		}
	}

	tests := []struct {
		name     string
		cand     model.LabBookingModel
		wantUser string
	}{
		{"overlapping slot rejected", candidate("2025-10-06", "09:30", "10:30"), "alice"},
		{"second booking conflicts", candidate("2025-10-06", "14:00", "16:00"), "bob"},
		{"free gap accepted", candidate("2025-10-06", "10:00", "11:00"), ""},
		{"same time other date accepted", candidate("2025-10-13", "09:30", "10:30"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflict(tt.cand, existing)
			if tt.wantUser == "" {
				if got != nil {
					t.Errorf("FindConflict() = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.LabBookingBookedBy != tt.wantUser {
				t.Errorf("FindConflict() = %+v, want booking by %s", got, tt.wantUser)
			}
		})
	}
}

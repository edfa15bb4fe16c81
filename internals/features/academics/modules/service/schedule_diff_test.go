package service

import (
	"testing"

	"uniportal_backend/internals/features/academics/modules/model"
)

func classes(rows ...[4]string) []model.ClassSessionModel {
	out := make([]model.ClassSessionModel, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.ClassSessionModel{
			ClassSessionVenue:     r[0],
			ClassSessionWeekday:   r[1],
			ClassSessionStartTime: r[2],
			ClassSessionEndTime:   r[3],
		})
	}
	return out
}

func assessments(rows ...model.AssessmentModel) []model.AssessmentModel {
	return rows
}

func TestDiffSchedules(t *testing.T) {
	baseClasses := classes(
		[4]string{"Room A", "Monday", "09:00", "10:00"},
		[4]string{"Lab 2", "Wednesday", "14:00", "16:00"},
	)
	baseAssess := assessments(model.AssessmentModel{
		AssessmentTitle:     "Midterm",
		AssessmentVenue:     "Hall 1",
		AssessmentDate:      "2025-10-20",
		AssessmentStartTime: "09:00",
		AssessmentEndTime:   "11:00",
		AssessmentTimed:     true,
	})

	tests := []struct {
		name       string
		newClasses []model.ClassSessionModel
		newAssess  []model.AssessmentModel
		newCode    string
		newName    string
		want       DiffResult
	}{
		{
			name:       "no change",
			newClasses: baseClasses,
			newAssess:  baseAssess,
			newCode:    "CS101",
			newName:    "Intro",
			want:       DiffResult{},
		},
		{
			name: "reordered sessions are not a change",
			newClasses: classes(
				[4]string{"Lab 2", "Wednesday", "14:00", "16:00"},
				[4]string{"Room A", "Monday", "09:00", "10:00"},
			),
			newAssess: baseAssess,
			newCode:   "CS101",
			newName:   "Intro",
			want:      DiffResult{},
		},
		{
			name: "venue change",
			newClasses: classes(
				[4]string{"Room B", "Monday", "09:00", "10:00"},
				[4]string{"Lab 2", "Wednesday", "14:00", "16:00"},
			),
			newAssess: baseAssess,
			newCode:   "CS101",
			newName:   "Intro",
			want:      DiffResult{ClassChanged: true},
		},
		{
			name:       "session removed",
			newClasses: baseClasses[:1],
			newAssess:  baseAssess,
			newCode:    "CS101",
			newName:    "Intro",
			want:       DiffResult{ClassChanged: true},
		},
		{
			name:       "assessment date moved",
			newClasses: baseClasses,
			newAssess: assessments(model.AssessmentModel{
				AssessmentTitle:     "Midterm",
				AssessmentVenue:     "Hall 1",
				AssessmentDate:      "2025-10-27",
				AssessmentStartTime: "09:00",
				AssessmentEndTime:   "11:00",
				AssessmentTimed:     true,
			}),
			newCode: "CS101",
			newName: "Intro",
			want:    DiffResult{AssessChanged: true},
		},
		{
			name:       "code rename only",
			newClasses: baseClasses,
			newAssess:  baseAssess,
			newCode:    "CS102",
			newName:    "Intro",
			want:       DiffResult{MetaChanged: true},
		},
		{
			name: "schedule and meta both change",
			newClasses: classes(
				[4]string{"Room B", "Monday", "09:00", "10:00"},
				[4]string{"Lab 2", "Wednesday", "14:00", "16:00"},
			),
			newAssess: baseAssess,
			newCode:   "CS102",
			newName:   "Intro",
			want:      DiffResult{ClassChanged: true, MetaChanged: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffSchedules(
				ClassTuples(baseClasses), ClassTuples(tt.newClasses),
				AssessTuples(baseAssess), AssessTuples(tt.newAssess),
				"CS101", tt.newCode, "Intro", tt.newName,
			)
			if got != tt.want {
				t.Errorf("DiffSchedules() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDiffResultMetaOnly(t *testing.T) {
	if !(DiffResult{MetaChanged: true}).MetaOnly() {
		t.Error("MetaOnly() = false for a pure rename")
	}
	if (DiffResult{MetaChanged: true, ClassChanged: true}).MetaOnly() {
		t.Error("MetaOnly() = true when the schedule also changed")
	}
	if !(DiffResult{}).NoChange() {
		t.Error("NoChange() = false for the zero diff")
	}
}

package service

import (
	"sort"

	"uniportal_backend/internals/features/academics/modules/model"
)

// ClassTuple and AssessTuple are the fields that count as "the schedule".
// Snapshots are taken before a module update and compared after, sorted
// under stable keys so pure reordering never looks like a change.

type ClassTuple struct {
	Venue   string
	Weekday string
	Start   string
	End     string
}

type AssessTuple struct {
	Title string
	Venue string
	Date  string
	Start string
	End   string
	Timed bool
}

func ClassTuples(sessions []model.ClassSessionModel) []ClassTuple {
	out := make([]ClassTuple, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ClassTuple{
			Venue:   s.ClassSessionVenue,
			Weekday: s.ClassSessionWeekday,
			Start:   s.ClassSessionStartTime,
			End:     s.ClassSessionEndTime,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Venue < b.Venue
	})
	return out
}

func AssessTuples(assessments []model.AssessmentModel) []AssessTuple {
	out := make([]AssessTuple, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, AssessTuple{
			Title: a.AssessmentTitle,
			Venue: a.AssessmentVenue,
			Date:  a.AssessmentDate,
			Start: a.AssessmentStartTime,
			End:   a.AssessmentEndTime,
			Timed: a.AssessmentTimed,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Title < b.Title
	})
	return out
}

type DiffResult struct {
	ClassChanged  bool
	AssessChanged bool
	MetaChanged   bool
}

// NoChange reports whether the save warrants no notification at all.
func (d DiffResult) NoChange() bool {
	return !d.ClassChanged && !d.AssessChanged && !d.MetaChanged
}

// MetaOnly reports whether only code/name changed; schedule changes take
// precedence over a metadata notification.
func (d DiffResult) MetaOnly() bool {
	return d.MetaChanged && !d.ClassChanged && !d.AssessChanged
}

func classEqual(a, b []ClassTuple) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assessEqual(a, b []AssessTuple) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DiffSchedules classifies a module save. Inputs must come from
// ClassTuples/AssessTuples so both sides share the same ordering.
func DiffSchedules(oldClasses, newClasses []ClassTuple, oldAssess, newAssess []AssessTuple,
	oldCode, newCode, oldName, newName string) DiffResult {
	return DiffResult{
		ClassChanged:  !classEqual(oldClasses, newClasses),
		AssessChanged: !assessEqual(oldAssess, newAssess),
		MetaChanged:   oldCode != newCode || oldName != newName,
	}
}

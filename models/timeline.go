package models

import "time"

const periodLayout = "Jan 2006"

// Timeline is shared by Education and Experience.
type Timeline struct {
	StartDate *time.Time `gorm:"type:date;index" form:"-"`
	EndDate   *time.Time `gorm:"type:date" form:"-"`
	IsCurrent bool       `gorm:"not null" form:"is_current"`
}

// normalize drops the end date of a current entry and rejects reversed ranges.
func (t *Timeline) normalize() error {
	if t.IsCurrent {
		t.EndDate = nil
	}
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return NewValidationError("end_date", "end_date cannot be before start_date")
	}
	return nil
}

// Period renders the range for display, e.g. "Jan 2022 – Present".
func (t Timeline) Period() string {
	start := ""
	if t.StartDate != nil {
		start = t.StartDate.Format(periodLayout)
	}
	end := ""
	switch {
	case t.IsCurrent:
		end = "Present"
	case t.EndDate != nil:
		end = t.EndDate.Format(periodLayout)
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " – " + end
}

package calendar

import (
	"time"
)

// Holiday is an institution-scoped holiday. A nil InstitutionID marks a
// company-wide holiday that applies to every institution.
type Holiday struct {
	ID            string
	InstitutionID *string
	Date          time.Time
	Name          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DayClass is the classification of a single calendar date. Every date in a
// period maps to exactly one class.
type DayClass string

const (
	DayWorkday DayClass = "workday"
	DayWeekend DayClass = "weekend"
	DayHoliday DayClass = "holiday"
)

const dateKeyLayout = "2006-01-02"

// DateSet is a set of calendar dates, keyed by day (time of day is ignored).
type DateSet map[string]struct{}

func (s DateSet) Add(t time.Time) {
	s[t.Format(dateKeyLayout)] = struct{}{}
}

func (s DateSet) Contains(t time.Time) bool {
	_, ok := s[t.Format(dateKeyLayout)]
	return ok
}

// Classification holds the weekend and holiday dates of a period. The two
// sets may overlap as stored; Classify resolves the priority.
type Classification struct {
	Weekends DateSet
	Holidays DateSet
}

func NewClassification() Classification {
	return Classification{
		Weekends: make(DateSet),
		Holidays: make(DateSet),
	}
}

// Classify returns the single class of a date. Weekend takes priority over
// holiday, so a holiday falling on a weekend is a weekend day.
func Classify(date time.Time, c Classification) DayClass {
	if c.Weekends.Contains(date) {
		return DayWeekend
	}
	if c.Holidays.Contains(date) {
		return DayHoliday
	}
	return DayWorkday
}

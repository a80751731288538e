package booking

import (
	"strings"
	"time"
)

// Schedule decides whether a date/time pair is a bookable slot. The
// restaurant's time zone is an explicit field rather than ambient
// process state so the policy can be tested and relocated.
type Schedule struct {
	Location      *time.Location
	ClosedWeekday time.Weekday
	// Opening and LastSeating are minutes from midnight, both
	// inclusive: a reservation exactly at either boundary is allowed.
	Opening     int
	LastSeating int
}

// Schedule defaults: closed on Tuesdays, first seating 10:30, last
// seating 21:30.
const (
	defaultOpening     = 10*60 + 30
	defaultLastSeating = 21*60 + 30
)

// NewSchedule builds a Schedule from "HH:MM" opening and last-seating
// strings. Empty or malformed values fall back to the defaults.
func NewSchedule(loc *time.Location, closed time.Weekday, opening, lastSeating string) Schedule {
	s := Schedule{
		Location:      loc,
		ClosedWeekday: closed,
		Opening:       defaultOpening,
		LastSeating:   defaultLastSeating,
	}
	if loc == nil {
		s.Location = time.UTC
	}
	if m, ok := minutesOfDay(opening); ok {
		s.Opening = m
	}
	if m, ok := minutesOfDay(lastSeating); ok {
		s.LastSeating = m
	}
	return s
}

// Check reports whether the date/time pair is bookable relative to now.
// It returns a policy error naming the violated rule: "closed" for the
// weekly closed day, "hours" for a time outside the seating window, and
// "past" for an instant already behind now in the restaurant's zone.
func (s Schedule) Check(date, tod string, now time.Time) error {
	day, err := time.ParseInLocation(dateLayout, date, s.Location)
	if err != nil {
		return invalid("reservation_date must be a valid date")
	}
	mins, ok := minutesOfDay(tod)
	if !ok {
		return invalid("reservation_time must be a valid time")
	}
	if day.Weekday() == s.ClosedWeekday {
		return policy("closed: the restaurant is closed on " + s.ClosedWeekday.String() + "s")
	}
	if mins < s.Opening || mins > s.LastSeating {
		return policy("hours: reservation_time must be between " +
			formatMinutes(s.Opening) + " and " + formatMinutes(s.LastSeating))
	}
	// Build the instant from wall-clock components. Adding a duration to
	// midnight drifts an hour on DST transition days.
	at := time.Date(day.Year(), day.Month(), day.Day(), mins/60, mins%60, 0, 0, s.Location)
	if at.Before(now.In(s.Location)) {
		return policy("past: only future reservations are allowed")
	}
	return nil
}

// Today returns the current date in the restaurant's zone, formatted
// the way reservation dates are stored.
func (s Schedule) Today(now time.Time) string {
	return now.In(s.Location).Format(dateLayout)
}

// minutesOfDay parses "HH:MM" or "HH:MM:SS" into minutes from midnight,
// ignoring the seconds part.
func minutesOfDay(tod string) (int, bool) {
	tod = strings.TrimSpace(tod)
	if !validTime(tod) {
		return 0, false
	}
	h := int(tod[0]-'0')*10 + int(tod[1]-'0')
	m := int(tod[3]-'0')*10 + int(tod[4]-'0')
	return h*60 + m, true
}

func formatMinutes(m int) string {
	h := m / 60
	mm := m % 60
	return string([]byte{byte('0' + h/10), byte('0' + h%10), ':', byte('0' + mm/10), byte('0' + mm%10)})
}

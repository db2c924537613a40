package services

import (
	"time"
)

// SlotGrid is the fixed set of bookable one-hour session starts per day,
// in grid order. Every booking slot is drawn from this list.
var SlotGrid = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
}

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"
	// SessionDuration is the fixed length of every session.
	SessionDuration = time.Hour
)

func IsValidSlot(slot string) bool {
	for _, s := range SlotGrid {
		if s == slot {
			return true
		}
	}
	return false
}

// ParseDate validates a booking date in YYYY-MM-DD form.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(dateLayout, date)
}

// SessionTimes resolves a (date, slot) pair into the session's UTC start and
// end instants. End is always start plus exactly one hour.
func SessionTimes(date, slot string) (start, end time.Time, err error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	t, err := time.Parse(slotLayout, slot)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return start, start.Add(SessionDuration), nil
}

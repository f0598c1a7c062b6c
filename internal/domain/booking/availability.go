package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// SlotStep is the fixed width of a bookable slot.
	SlotStep = 30 * time.Minute

	// DefaultDurationMinutes applies when a salon has no offering record
	// for the booked service.
	DefaultDurationMinutes = 60
)

type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseClock parses an HH:MM time of day and returns its canonical form.
func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}

// Weekday returns the ISO weekday of d counted from Monday = 0.
func Weekday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// GenerateSlots walks every interval on its own in SlotStep increments and
// marks a slot unavailable when its start time is in booked. Intervals are
// never merged, so overlapping intervals yield repeated times.
func GenerateSlots(intervals []models.OpeningInterval, booked map[string]struct{}) ([]Slot, error) {
	slots := []Slot{}

	for _, iv := range intervals {
		start, err := time.Parse(ClockLayout, iv.StartTime)
		if err != nil {
			return nil, fmt.Errorf("interval %d start %q: %w", iv.ID, iv.StartTime, err)
		}
		end, err := time.Parse(ClockLayout, iv.EndTime)
		if err != nil {
			return nil, fmt.Errorf("interval %d end %q: %w", iv.ID, iv.EndTime, err)
		}

		for cur := start; !cur.Add(SlotStep).After(end); cur = cur.Add(SlotStep) {
			hm := cur.Format(ClockLayout)
			_, taken := booked[hm]
			slots = append(slots, Slot{Time: hm, Available: !taken})
		}
	}

	return slots, nil
}

// BookedSet indexes booked start times for GenerateSlots.
func BookedSet(times []string) map[string]struct{} {
	set := make(map[string]struct{}, len(times))
	for _, t := range times {
		set[t] = struct{}{}
	}
	return set
}
